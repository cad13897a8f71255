// Package lifecycle holds shared values for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook, such as the database ping
// or the HTTP server shutdown.
const DefaultTimeout = 10 * time.Second
