package auth

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == SessionName {
			return c
		}
	}
	return nil
}

func TestSessionManager_ClientID_RoundTrip(t *testing.T) {
	sm := NewSessionManager("test-secret")

	req := httptest.NewRequest("GET", "http://example.com/", nil)
	rr := httptest.NewRecorder()

	id, err := sm.ClientID(rr, req)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	cookie := sessionCookie(t, rr)
	require.NotNil(t, cookie)
	require.NotEmpty(t, cookie.Value)
	require.True(t, cookie.HttpOnly)

	req2 := httptest.NewRequest("GET", "http://example.com/", nil)
	req2.AddCookie(cookie)
	rr2 := httptest.NewRecorder()

	again, err := sm.ClientID(rr2, req2)
	require.NoError(t, err)
	require.Equal(t, id, again)
	require.Nil(t, sessionCookie(t, rr2), "an existing client id is not reissued")

	peeked, ok := sm.Peek(req2)
	require.True(t, ok)
	require.Equal(t, id, peeked)

	createdAt := sm.GetSessionCreatedAt(req2)
	require.False(t, createdAt.IsZero())
	require.WithinDuration(t, time.Now(), createdAt, 5*time.Second)
}

func TestSessionManager_ClientID_DistinctClients(t *testing.T) {
	sm := NewSessionManager("test-secret")

	a, err := sm.ClientID(httptest.NewRecorder(), httptest.NewRequest("GET", "http://example.com/", nil))
	require.NoError(t, err)
	b, err := sm.ClientID(httptest.NewRecorder(), httptest.NewRequest("GET", "http://example.com/", nil))
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestSessionManager_ClientID_SecureDetection(t *testing.T) {
	sm := NewSessionManager("test-secret")

	t.Run("tls implies secure", func(t *testing.T) {
		req := httptest.NewRequest("GET", "https://example.com/", nil)
		req.TLS = &tls.ConnectionState{}
		rr := httptest.NewRecorder()

		_, err := sm.ClientID(rr, req)
		require.NoError(t, err)

		c := sessionCookie(t, rr)
		require.NotNil(t, c)
		require.True(t, c.Secure)
	})

	t.Run("x-forwarded-proto implies secure", func(t *testing.T) {
		req := httptest.NewRequest("GET", "http://example.com/", nil)
		req.Header.Set("X-Forwarded-Proto", "https")
		rr := httptest.NewRecorder()

		_, err := sm.ClientID(rr, req)
		require.NoError(t, err)

		c := sessionCookie(t, rr)
		require.NotNil(t, c)
		require.True(t, c.Secure)
	})

	t.Run("plain http is not secure", func(t *testing.T) {
		rr := httptest.NewRecorder()
		_, err := sm.ClientID(rr, httptest.NewRequest("GET", "http://example.com/", nil))
		require.NoError(t, err)
		require.False(t, sessionCookie(t, rr).Secure)
	})
}

func TestSessionManager_BadCookieIsReissued(t *testing.T) {
	sm := NewSessionManager("test-secret")

	req := httptest.NewRequest("GET", "http://example.com/", nil)
	req.AddCookie(&http.Cookie{Name: SessionName, Value: "this-is-not-a-valid-cookie"})

	_, ok := sm.Peek(req)
	require.False(t, ok)

	rr := httptest.NewRecorder()
	id, err := sm.ClientID(rr, req)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.NotNil(t, sessionCookie(t, rr))
}

func TestSessionManager_OtherSecretRejected(t *testing.T) {
	rr := httptest.NewRecorder()
	_, err := NewSessionManager("secret-a").ClientID(rr, httptest.NewRequest("GET", "http://example.com/", nil))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "http://example.com/", nil)
	req.AddCookie(sessionCookie(t, rr))
	_, ok := NewSessionManager("secret-b").Peek(req)
	require.False(t, ok)
}

func TestSessionManager_ClearSession(t *testing.T) {
	sm := NewSessionManager("test-secret")

	req := httptest.NewRequest("GET", "http://example.com/", nil)
	rr := httptest.NewRecorder()

	err := sm.ClearSession(rr, req)
	require.NoError(t, err)

	setCookies := rr.Result().Header.Values("Set-Cookie")
	require.NotEmpty(t, setCookies)

	var found bool
	for _, v := range setCookies {
		if strings.HasPrefix(v, SessionName+"=") {
			found = true
			require.True(t, strings.Contains(v, "Max-Age=0") || strings.Contains(v, "Max-Age=-1") || strings.Contains(v, "Expires="))
			break
		}
	}
	require.True(t, found)
}
