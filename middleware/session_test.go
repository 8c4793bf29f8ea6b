package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionEcho() (http.Handler, *string) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := SessionID(r.Context())
		if ok {
			seen = sessionID
		}
	})
	return SessionMiddleware(next), &seen
}

func TestSessionMiddlewareSetsCookieForNewVisitors(t *testing.T) {
	handler, seen := sessionEcho()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	require.NotEmpty(t, *seen)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_id", cookies[0].Name)
	assert.Equal(t, *seen, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSessionMiddlewareReusesCookie(t *testing.T) {
	handler, seen := sessionEcho()

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "existing-session"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "existing-session", *seen)
	assert.Empty(t, rec.Result().Cookies()) // no new cookie issued
}

func TestSessionMiddlewareHonorsHeader(t *testing.T) {
	handler, seen := sessionEcho()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Session-ID", "api-client-session")
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "cookie-session"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// The explicit header wins over the cookie.
	assert.Equal(t, "api-client-session", *seen)
}
