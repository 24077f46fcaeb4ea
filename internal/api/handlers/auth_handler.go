package handlers

import (
	"net/http"

	"github.com/healthmate/healthmate/internal/config"
	db "github.com/healthmate/healthmate/internal/core/database"
	"github.com/healthmate/healthmate/internal/models"
	"github.com/healthmate/healthmate/internal/session"
)

type AuthHandler struct {
	dbclient db.DbClient
	sessions *session.Manager
	cfg      *config.Config
}

func NewAuthHandler(dbclient db.DbClient, sessions *session.Manager, cfg *config.Config) *AuthHandler {
	return &AuthHandler{dbclient: dbclient, sessions: sessions, cfg: cfg}
}

// verifyPassword is the single place credentials are compared, so the
// scheme can change without touching call sites.
func verifyPassword(stored, supplied string) bool {
	return stored == supplied
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "register.html", nil)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	user := &models.User{Username: username, Password: password}
	if err := h.dbclient.CreateUser(r.Context(), user); err != nil {
		if err == db.ErrDuplicateUsername {
			http.Error(w, "Username already exists.", http.StatusConflict)
			return
		}
		http.Error(w, "registration failed", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "login.html", map[string]any{"Admin": false})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.dbclient.GetUserByUsername(r.Context(), username)
	if err != nil {
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}
	if user == nil || !verifyPassword(user.Password, password) {
		http.Error(w, "Invalid credentials.", http.StatusUnauthorized)
		return
	}

	token := h.sessions.Create(&session.Session{UserID: user.ID, Username: user.Username})
	session.SetCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(session.CookieName); err == nil {
		h.sessions.Destroy(c.Value)
	}
	session.ClearCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) AdminLoginPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "login.html", map[string]any{"Admin": true})
}

// AdminLogin checks the configured admin pair; admin identities never
// live in the user table.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	if username != h.cfg.AdminUsername || password != h.cfg.AdminPassword {
		http.Error(w, "Invalid admin credentials.", http.StatusUnauthorized)
		return
	}

	// A logged-in user who also passes the admin check keeps their
	// user identity and gains the admin flag.
	if s := h.sessions.FromRequest(r); s != nil {
		s.Admin = true
	} else {
		token := h.sessions.Create(&session.Session{Admin: true})
		session.SetCookie(w, token)
	}
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}
