package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/auth"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/authz"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/session"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type fakeSessions map[string]string

func (f fakeSessions) Resolve(_ context.Context, id string) (string, error) {
	if id == "broken" {
		return "", errors.New("redis down")
	}
	userID, ok := f[id]
	if !ok {
		return "", session.ErrSessionNotFound
	}
	return userID, nil
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func setupEngine(t *testing.T, tokens *auth.TokenManager, sessions SessionResolver) *ginext.Engine {
	t.Helper()
	r := ginext.New("test")
	r.Use(RequestID(), Authenticate(tokens, sessions, "session_id", newTestLogger(t)))
	r.GET("/whoami", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"user": CallerID(c), "session": SessionID(c)})
	})
	r.GET("/private", Authorize(authz.Booking, authz.List), func(c *ginext.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/public", Authorize(authz.Listing, authz.List), func(c *ginext.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r http.Handler, path string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_Bearer(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	r := setupEngine(t, tokens, nil)
	token, err := tokens.Issue("u1")
	require.NoError(t, err)

	w := do(r, "/whoami", func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"u1","session":""}`, w.Body.String())
}

func TestAuthenticate_InvalidBearer(t *testing.T) {
	r := setupEngine(t, auth.NewTokenManager("secret", time.Hour), nil)

	for _, header := range []string{"Bearer garbage", "Basic dXNlcjpwYXNz", "Bearer", "Bearer "} {
		t.Run(header, func(t *testing.T) {
			w := do(r, "/public", func(req *http.Request) {
				req.Header.Set("Authorization", header)
			})

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthenticate_SessionCookie(t *testing.T) {
	r := setupEngine(t, auth.NewTokenManager("secret", time.Hour), fakeSessions{"sid": "u2"})

	w := do(r, "/whoami", func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "session_id", Value: "sid"})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"u2","session":"sid"}`, w.Body.String())
}

func TestAuthenticate_UnknownCookieIsAnonymous(t *testing.T) {
	r := setupEngine(t, auth.NewTokenManager("secret", time.Hour), fakeSessions{})

	for _, sid := range []string{"stale", "broken"} {
		w := do(r, "/whoami", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: "session_id", Value: sid})
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user":"","session":""}`, w.Body.String())
	}
}

func TestAuthorize(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	r := setupEngine(t, tokens, nil)
	token, err := tokens.Issue("u1")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, do(r, "/private", nil).Code)
	assert.Equal(t, http.StatusNoContent, do(r, "/public", nil).Code)
	assert.Equal(t, http.StatusNoContent, do(r, "/private", func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}).Code)
}

func TestRequestID(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/", func(c *ginext.Context) {
		c.String(http.StatusOK, logger.GetRequestID(c.Request.Context()))
	})

	w := do(r, "/", func(req *http.Request) { req.Header.Set(RequestIDHeader, "abc") })
	assert.Equal(t, "abc", w.Body.String())
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))

	w = do(r, "/", nil)
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := ginext.New("test")
	r.Use(Recovery(newTestLogger(t)))
	r.GET("/", func(c *ginext.Context) { panic("boom") })

	w := do(r, "/", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
