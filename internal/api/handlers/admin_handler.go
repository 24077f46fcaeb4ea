package handlers

import (
	"net/http"

	db "github.com/healthmate/healthmate/internal/core/database"
)

type AdminHandler struct {
	dbclient db.DbClient
}

func NewAdminHandler(dbclient db.DbClient) *AdminHandler {
	return &AdminHandler{dbclient: dbclient}
}

// Dashboard renders live aggregates across all users.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := collectStats(r, h.dbclient)
	if err != nil {
		http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
		return
	}
	renderPage(w, "admin.html", stats)
}
