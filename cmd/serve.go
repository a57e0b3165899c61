package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abhisek/guruji/internal/classify"
	"github.com/abhisek/guruji/internal/conversation"
	"github.com/abhisek/guruji/internal/drillgen"
	"github.com/abhisek/guruji/internal/intent"
	"github.com/abhisek/guruji/internal/llm"
	"github.com/abhisek/guruji/internal/nudge"
	"github.com/abhisek/guruji/internal/store"
	"github.com/abhisek/guruji/internal/wa"
	"github.com/abhisek/guruji/internal/webhook"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the webhook server and background jobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe opens the store, builds the message pipeline, and runs the
// webhook server and the nudge runner until SIGINT or SIGTERM.
func runServe(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	repos := st.Repos()

	var generator *drillgen.Generator
	provider, err := llm.NewProviderFromEnv(ctx, repos.Events)
	if err != nil {
		logger.Warn("LLM provider not configured, falling back to keyword routing and stored drills", "error", err)
		provider = nil
	} else {
		generator = drillgen.New(provider, drillgen.DefaultConfig())
	}
	intents := intent.NewClassifier(provider)
	classifier := classify.NewClassifier(provider, classify.DefaultClassifierConfig())

	sender := wa.NewSender(wa.ConfigFromEnv(), logger)
	router := conversation.NewRouter(repos, intents, classifier, generator, logger)
	server := webhook.New(webhook.ConfigFromEnv(), router, sender, logger)
	runner := nudge.NewRunner(repos, sender, generator, nudge.DefaultConfig(), logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("webhook server starting", "db", dbPath)
		return server.Start()
	})
	g.Go(func() error {
		runner.Run(gctx)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
