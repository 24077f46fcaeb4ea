package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/healthmate/healthmate/internal/session"
)

// Sessions resolves the session cookie and attaches the live session
// (if any) to the request context under "session".
func Sessions(manager *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s := manager.FromRequest(r); s != nil {
				r = r.WithContext(context.WithValue(r.Context(), "session", s))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// FromContext returns the session attached by Sessions, or nil.
func FromContext(ctx context.Context) *session.Session {
	s, _ := ctx.Value("session").(*session.Session)
	return s
}

// RequireUserPage guards page endpoints: anonymous requests are sent
// to the login page.
func RequireUserPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := FromContext(r.Context())
		if s == nil || s.UserID == 0 {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireUserJSON guards JSON endpoints: anonymous requests get a 401.
func RequireUserJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := FromContext(r.Context())
		if s == nil || s.UserID == 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Not logged in"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin guards the dashboard: anything without the admin flag,
// including a plain user session, is sent to the admin login.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := FromContext(r.Context())
		if s == nil || !s.Admin {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
