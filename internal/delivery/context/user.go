package context

import (
	"resumeapp/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyUser is the echo.Context key holding the authorized *entity.User.
const KeyUser ContextKey = "user"

// SetUser stores the authorized user in echo.Context.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
}

// GetUser returns the user set by the auth middleware.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyUser)).(*entity.User)

	return user, ok && user != nil
}
