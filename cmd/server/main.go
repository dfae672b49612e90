// cmd/server/main.go
package main

import (
	"log"
	"log/slog"

	"github.com/sozercan/feedbacklens/internal/analyzer"
	"github.com/sozercan/feedbacklens/internal/config"
	"github.com/sozercan/feedbacklens/internal/llm"
	"github.com/sozercan/feedbacklens/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	llmProvider, err := llm.NewOpenAI(&cfg.OpenAI)
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}

	analyzer, err := analyzer.New(llmProvider, cfg)
	if err != nil {
		log.Fatalf("failed to create analyzer: %v", err)
	}

	srv := server.New(*cfg, analyzer)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
