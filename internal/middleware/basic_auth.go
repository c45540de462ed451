package middleware

import (
	"BloggerPlatform/pkg/bcrypt"
	"BloggerPlatform/pkg/handlerUtil"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"strings"
	"sync/atomic"
)

const (
	DefaultBasicAuthUsername = "admin"
	DefaultBasicAuthPassword = "qwerty"
)

type basicAuth struct {
	username     string
	passwordHash string
	hasher       bcrypt.IBcrypt

	// verified is the SHA-256 of the accepted password once known. While it
	// is set, passwordHash is not consulted.
	verified atomic.Pointer[[sha256.Size]byte]
}

// newBasicAuth accepts either a plaintext password or a bcrypt hash, which
// takes precedence. A hash is compared with bcrypt until the first request
// that matches it.
func newBasicAuth(username, password, passwordHash string, hasher bcrypt.IBcrypt) (*basicAuth, error) {
	if username == "" {
		username = DefaultBasicAuthUsername
	}

	auth := &basicAuth{
		username: username,
		hasher:   hasher,
	}

	if passwordHash != "" {
		if _, err := hasher.Cost(passwordHash); err != nil {
			return nil, fmt.Errorf("configured basic auth password hash: %w", err)
		}
		auth.passwordHash = passwordHash
		return auth, nil
	}

	if password == "" {
		password = DefaultBasicAuthPassword
	}
	sum := sha256.Sum256([]byte(password))
	auth.verified.Store(&sum)
	return auth, nil
}

var (
	errMissingAuthHeader = errors.New("authorization header is missing")
	errInvalidAuthScheme = errors.New("authorization scheme must be Basic")
	errInvalidAuthToken  = errors.New("authorization token is malformed")
	errBadCredentials    = errors.New("invalid username or password")
)

func (a *basicAuth) verify(header string) error {
	if header == "" {
		return errMissingAuthHeader
	}

	kind, token, ok := strings.Cut(header, " ")
	if !ok || kind != "Basic" {
		return errInvalidAuthScheme
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return errInvalidAuthToken
	}

	username, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return errInvalidAuthToken
	}

	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passMatch := a.passwordMatches(password)
	if !userMatch || !passMatch {
		return errBadCredentials
	}

	return nil
}

func (a *basicAuth) passwordMatches(password string) bool {
	sum := sha256.Sum256([]byte(password))
	if known := a.verified.Load(); known != nil {
		return subtle.ConstantTimeCompare(sum[:], known[:]) == 1
	}

	if a.hasher.ComparePassword(a.passwordHash, password) != nil {
		return false
	}
	a.verified.CompareAndSwap(nil, &sum)
	return true
}

func (m *middleware) NewBasicAuthMiddleware(ctx *fiber.Ctx) error {
	requestID := m.GetRequestID(ctx)

	if err := m.basicAuth.verify(ctx.Get(fiber.HeaderAuthorization)); err != nil {
		m.metrics.AuthFailures.Inc()
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"method":     ctx.Method(),
			"client_ip":  ctx.IP(),
			"error":      err.Error(),
		}).Warn("Basic auth check failed")
		return handlerUtil.New(m.log).HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	return ctx.Next()
}
