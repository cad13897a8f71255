package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"resumeapp/internal/domain/service"
	"resumeapp/internal/errors"

	"golang.org/x/crypto/argon2"
)

const (
	defaultArgon2Time    uint32 = 3
	defaultArgon2Memory  uint32 = 64 * 1024
	defaultArgon2Threads uint8  = 2
	argon2KeyLen         uint32 = 32
	argon2SaltLen               = 16

	// Bounds for parameters read back from a stored hash. A value outside
	// them means the hash is corrupted, not that the password is wrong.
	maxArgon2Memory  uint32 = 1024 * 1024 // KiB, 1 GiB
	maxArgon2Time    uint32 = 64
	minArgon2ByteLen        = 8
	maxArgon2ByteLen        = 64
)

// argon2Hasher implements PasswordHasher with argon2id. Hashes use the PHC
// string format: $argon2id$v=19$m=MEMORY,t=TIME,p=THREADS$SALT$HASH
type argon2Hasher struct {
	time    uint32
	memory  uint32
	threads uint8
}

// Argon2Option configures the argon2id hasher. Zero values are ignored.
type Argon2Option func(*argon2Hasher)

// WithArgon2Time sets the number of iterations.
func WithArgon2Time(t uint32) Argon2Option {
	return func(h *argon2Hasher) {
		if t > 0 {
			h.time = t
		}
	}
}

// WithArgon2Memory sets the memory usage in KiB.
func WithArgon2Memory(m uint32) Argon2Option {
	return func(h *argon2Hasher) {
		if m > 0 {
			h.memory = m
		}
	}
}

// WithArgon2Threads sets the parallelism.
func WithArgon2Threads(p uint8) Argon2Option {
	return func(h *argon2Hasher) {
		if p > 0 {
			h.threads = p
		}
	}
}

// NewArgon2Hasher creates an argon2id-based password hasher.
func NewArgon2Hasher(opts ...Argon2Option) service.PasswordHasher {
	h := &argon2Hasher{
		time:    defaultArgon2Time,
		memory:  defaultArgon2Memory,
		threads: defaultArgon2Threads,
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "generate salt")
	}

	key := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, argon2KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (h *argon2Hasher) Verify(password, encodedHash string) (bool, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return false, errors.Wrap(service.ErrMalformedHash, "not an argon2id hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false, errors.Wrapf(service.ErrMalformedHash, "unsupported argon2 version %q", parts[2])
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, errors.Wrapf(service.ErrMalformedHash, "parse argon2id params: %v", err)
	}
	if iterations == 0 || threads == 0 || memory == 0 {
		return false, errors.Wrap(service.ErrMalformedHash, "argon2id params must be positive")
	}
	if memory > max(maxArgon2Memory, h.memory) || iterations > max(maxArgon2Time, h.time) {
		return false, errors.Wrapf(service.ErrMalformedHash, "argon2id params out of range: %s", parts[3])
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, errors.Wrapf(service.ErrMalformedHash, "decode salt: %v", err)
	}
	if !validArgon2ByteLen(len(salt)) {
		return false, errors.Wrapf(service.ErrMalformedHash, "salt length %d", len(salt))
	}

	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || !validArgon2ByteLen(len(expected)) {
		return false, errors.Wrap(service.ErrMalformedHash, "decode hash")
	}

	key := argon2.IDKey([]byte(password), salt, iterations, memory, threads, uint32(len(expected)))

	return subtle.ConstantTimeCompare(key, expected) == 1, nil
}

func validArgon2ByteLen(n int) bool {
	return n >= minArgon2ByteLen && n <= maxArgon2ByteLen
}
