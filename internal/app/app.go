package app

import (
	"context"
	"log"

	"github.com/healthmate/healthmate/internal/config"
	db "github.com/healthmate/healthmate/internal/core/database"
	"github.com/healthmate/healthmate/internal/core/llm"
	"github.com/healthmate/healthmate/internal/session"
)

type App struct {
	DBClient db.DbClient
	LLM      *llm.GeminiLLM
	Sessions *session.Manager
	Server   *Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	dbClient, err := db.NewDatabaseClient(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}
	log.Println("Database initialized and ready.")

	llmProvider, err := llm.NewGeminiLLM(ctx, cfg.AIAPIKey, cfg.GenModel)
	if err != nil {
		_ = dbClient.Close()
		return nil, err
	}
	log.Println("Gemini client initialized and ready.")

	sessions := session.NewManager()

	server := NewServer(ctx, cfg, dbClient, llmProvider, sessions)

	return &App{DBClient: dbClient, LLM: llmProvider, Sessions: sessions, Server: server}, nil
}

func (a *App) Close() {
	if a.LLM != nil {
		_ = a.LLM.Close()
	}
	if a.DBClient != nil {
		_ = a.DBClient.Close()
	}
}
