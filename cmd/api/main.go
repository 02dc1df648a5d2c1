package main

import (
	"context"
	"log"

	"cashorclout-backend/internal/analyses"
	"cashorclout-backend/internal/checkout"
	"cashorclout-backend/internal/llm"
	"cashorclout-backend/internal/llm/anthropic"
	"cashorclout-backend/internal/shared/config"
	"cashorclout-backend/internal/shared/server"
	"cashorclout-backend/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()

	// Without an API key the server still boots; analyses fail with
	// ErrNotImplemented until one is configured.
	llmClient := llm.Client(llm.PlaceholderClient{})
	if cfg.AnthropicAPIKey != "" {
		client, err := anthropic.NewClient(cfg.AnthropicAPIKey, cfg.LLMModel)
		if err != nil {
			log.Fatalf("llm client: %v", err)
		}
		llmClient = client
	} else {
		log.Printf("ANTHROPIC_API_KEY not set, using placeholder LLM client")
	}

	provider, err := checkout.NewStripeProvider(cfg.StripeSecretKey)
	if err != nil {
		log.Fatalf("stripe client: %v", err)
	}

	repo := newRepo(cfg)

	r := server.NewRouter(cfg, server.Deps{
		LLM:      llmClient,
		Checkout: provider,
		Repo:     repo,
	})

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// newRepo prefers Postgres when configured and falls back to memory, so a
// missing database degrades share links instead of taking the service down.
func newRepo(cfg config.Config) analyses.Repo {
	if cfg.DatabaseURL == "" {
		return analyses.NewMemoryRepo()
	}

	ctx := context.Background()
	conn, err := db.Connect(ctx, cfg.DatabaseURL, db.DefaultServerOptions())
	if err != nil {
		log.Printf("failed to connect database, falling back to memory: %v", err)
		return analyses.NewMemoryRepo()
	}
	if err := db.RunMigrations(ctx, conn); err != nil {
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		conn.Close()
		return analyses.NewMemoryRepo()
	}
	return &analyses.PGRepo{DB: conn}
}
