package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/healthmate/healthmate/internal/api/middlewares"
	db "github.com/healthmate/healthmate/internal/core/database"
	"github.com/healthmate/healthmate/internal/core/report"
	"github.com/healthmate/healthmate/internal/models"
)

type PageHandler struct {
	dbclient db.DbClient
}

func NewPageHandler(dbclient db.DbClient) *PageHandler {
	return &PageHandler{dbclient: dbclient}
}

// Home shows the logged-in user's chat history.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	s := middleware.FromContext(r.Context())

	chats, err := h.dbclient.ListChatsByUser(r.Context(), s.UserID)
	if err != nil {
		http.Error(w, "failed to load chats", http.StatusInternalServerError)
		return
	}
	renderPage(w, "index.html", map[string]any{"Chats": chats})
}

func (h *PageHandler) SymptomsPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "symptoms.html", nil)
}

// ExportPDF streams the user's chat history as a PDF attachment.
func (h *PageHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	s := middleware.FromContext(r.Context())

	chats, err := h.dbclient.ListChatsByUser(r.Context(), s.UserID)
	if err != nil {
		http.Error(w, "failed to load chats", http.StatusInternalServerError)
		return
	}

	pdf, err := report.ChatHistoryPDF(s.Username, chats)
	if err != nil {
		log.Printf("export pdf: %v", err)
		http.Error(w, "Error generating PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=chat_history.pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.Write(pdf)
}

// Analytics is open to anonymous visitors and reports live aggregates.
func (h *PageHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	stats, err := collectStats(r, h.dbclient)
	if err != nil {
		http.Error(w, "failed to load analytics", http.StatusInternalServerError)
		return
	}
	renderPage(w, "analytics.html", stats)
}

func collectStats(r *http.Request, dbclient db.DbClient) (*models.DashboardStats, error) {
	ctx := r.Context()

	totalUsers, err := dbclient.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	totalChats, err := dbclient.CountChats(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := dbclient.RecentChats(ctx, 10)
	if err != nil {
		return nil, err
	}
	categories, err := dbclient.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalUsers:  totalUsers,
		TotalChats:  totalChats,
		RecentChats: recent,
		Categories:  categories,
	}, nil
}
