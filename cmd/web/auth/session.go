package auth

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	SessionName       = "studio_session"
	ClientIDKey       = "client_id"
	SessionCreatedKey = "created_at"
)

// SessionManager hands every browser a stable client id. Overlay editing
// buffers are scoped to it, so two tabs of the same browser share a buffer
// and two browsers never do.
type SessionManager struct {
	store *sessions.CookieStore
}

func NewSessionManager(secret string) *SessionManager {
	if secret == "" {
		secret = generateSecret()
	}
	return &SessionManager{
		store: sessions.NewCookieStore([]byte(secret)),
	}
}

func generateSecret() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}

// ClientID returns the client id from the session cookie, issuing a new one
// when the cookie is missing or cannot be decoded.
func (sm *SessionManager) ClientID(w http.ResponseWriter, r *http.Request) (string, error) {
	if id, ok := sm.Peek(r); ok {
		return id, nil
	}

	session, err := sm.store.Get(r, SessionName)
	if err != nil {
		_, cookieErr := r.Cookie(SessionName)
		slog.Warn("failed to decode session, issuing a new one", "error", err, "host", r.Host, "has_cookie", cookieErr == nil)
	}
	id := uuid.NewString()
	session.Values[ClientIDKey] = id
	session.Values[SessionCreatedKey] = time.Now().Unix()

	session.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https",
	}
	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return id, nil
}

// Peek reads the client id without issuing one.
func (sm *SessionManager) Peek(r *http.Request) (string, bool) {
	session, err := sm.store.Get(r, SessionName)
	if err != nil {
		return "", false
	}
	id, ok := session.Values[ClientIDKey].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// GetSessionCreatedAt returns the time the client id was issued.
// Returns zero time if the session is missing or invalid.
func (sm *SessionManager) GetSessionCreatedAt(r *http.Request) time.Time {
	session, err := sm.store.Get(r, SessionName)
	if err != nil {
		return time.Time{}
	}

	unix, ok := session.Values[SessionCreatedKey].(int64)
	if !ok {
		return time.Time{}
	}
	return time.Unix(unix, 0)
}

func (sm *SessionManager) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session, _ := sm.store.Get(r, SessionName)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
