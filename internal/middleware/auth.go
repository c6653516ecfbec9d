package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tribertmuto/alx-travel-app-0x01/internal/authz"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/session"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	callerKey  = "user_id"
	sessionKey = "session_id"
)

type TokenParser interface {
	Parse(token string) (string, error)
}

type SessionResolver interface {
	Resolve(ctx context.Context, id string) (string, error)
}

// Authenticate resolves the caller from a bearer token or, without one, from
// the session cookie. A bearer token that fails to parse ends the request
// with 401. An unknown cookie leaves the request anonymous. sessions may be nil.
func Authenticate(tokens TokenParser, sessions SessionResolver, cookieName string, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			scheme, token, ok := strings.Cut(header, " ")
			token = strings.TrimSpace(token)
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				abortUnauthorized(c, "invalid authorization header")
				return
			}

			userID, err := tokens.Parse(token)
			if err != nil {
				abortUnauthorized(c, "invalid or expired token")
				return
			}

			c.Set(callerKey, userID)
			c.Next()
			return
		}

		if sessions != nil {
			if sid, err := c.Cookie(cookieName); err == nil && sid != "" {
				userID, err := sessions.Resolve(c.Request.Context(), sid)
				switch {
				case err == nil:
					c.Set(callerKey, userID)
					c.Set(sessionKey, sid)
				case !errors.Is(err, session.ErrSessionNotFound):
					log.LogAttrs(c.Request.Context(), logger.WarnLevel, "session lookup failed",
						logger.String("error", err.Error()),
					)
				}
			}
		}

		c.Next()
	}
}

// Authorize rejects anonymous callers on operations that need a caller.
// Ownership is checked later, once the record is loaded.
func Authorize(res authz.Resource, op authz.Operation) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if authz.RequiresAuth(res, op) && CallerID(c) == "" {
			abortUnauthorized(c, domain.ErrUnauthenticated.Error())
			return
		}
		c.Next()
	}
}

// CallerID returns the authenticated user id, or "" for anonymous requests.
func CallerID(c *ginext.Context) string {
	return c.GetString(callerKey)
}

// SessionID returns the cookie session the caller was resolved from, if any.
func SessionID(c *ginext.Context) string {
	return c.GetString(sessionKey)
}

func abortUnauthorized(c *ginext.Context, msg string) {
	c.Header("WWW-Authenticate", `Bearer realm="api"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": msg})
}
