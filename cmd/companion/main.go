// Package main is the entry point for the affect-driven companion agent.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/cmd/launcher"
	"google.golang.org/adk/cmd/launcher/full"

	internal "github.com/easeaico/affect-engine/internal/agent"
	"github.com/easeaico/affect-engine/internal/config"
	"github.com/easeaico/affect-engine/internal/repository"
	"github.com/easeaico/affect-engine/internal/session"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	slog.Info("configuration loaded", "llm_model", cfg.LLMModel, "character_id", cfg.CharacterID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		slog.Info("shutting down")
		cancel()
		// The launcher may be blocked on stdin, which context cancellation
		// cannot interrupt; give it a moment, then force exit.
		time.Sleep(500 * time.Millisecond)
		os.Exit(0)
	}()

	store, err := repository.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer store.Close()

	manager := session.NewManager(store.Characters, session.Defaults{
		BaselineValence:   cfg.BaselineValence,
		BaselineArousal:   cfg.BaselineArousal,
		BaselineDominance: cfg.BaselineDominance,
		Inertia:           cfg.EmotionalInertia,
	})

	companion, err := internal.NewCompanionAgent(ctx, store, manager, &cfg)
	if err != nil {
		log.Fatalf("failed to initialize agent: %v", err)
	}

	launcherConfig := &launcher.Config{
		AgentLoader: agent.NewSingleLoader(companion),
	}
	l := full.NewLauncher()

	if err := l.Execute(ctx, launcherConfig, os.Args[1:]); err != nil {
		if err != context.Canceled && err != context.DeadlineExceeded {
			log.Fatalf("failed to run agent: %v\n\n%s", err, l.CommandLineSyntax())
		}
	}
}
