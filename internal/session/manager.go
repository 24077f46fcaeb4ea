package session

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// CookieName is the browser cookie carrying the session token.
const CookieName = "hm_session"

// Session is the server-side identity bound to one browser session.
// Admin may be true with UserID zero: the admin login does not go
// through the user table.
type Session struct {
	UserID   int64
	Username string
	Admin    bool
}

// Manager tracks active sessions in memory, keyed by opaque tokens.
// Sessions never expire on their own; logout is the only removal path.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create registers a new session and returns its token.
func (m *Manager) Create(s *Session) string {
	token := uuid.NewString()
	m.mu.Lock()
	m.sessions[token] = s
	m.mu.Unlock()
	return token
}

// Get returns the session for token, or nil if none exists.
func (m *Manager) Get(token string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[token]
}

// Destroy removes the session for token. Unknown tokens are a no-op.
func (m *Manager) Destroy(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// FromRequest resolves the request's cookie to a live session.
func (m *Manager) FromRequest(r *http.Request) *Session {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}
	return m.Get(c.Value)
}

// SetCookie attaches the session token to the response.
func SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

// ClearCookie expires the session cookie on the client.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
