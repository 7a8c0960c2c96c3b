package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"story-album-server/modules/common/config"
	"story-album-server/modules/common/database"
	"story-album-server/modules/common/logger"
	"story-album-server/modules/common/storage"
	"story-album-server/modules/editsession"
	"story-album-server/modules/planner"
	"story-album-server/modules/post"
	"story-album-server/modules/upload"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP and WebSocket server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServe(ctx)
	},
}

func runServe(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.AppEnv)
	if !cfg.EnvFileLoaded() {
		log.Info().Msg("⚠️  .env file not found, using environment variables")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log.Info().
		Str("supabase", cfg.SupabaseURL).
		Str("bucket", cfg.SupabaseBucket).
		Bool("gemini", cfg.GeminiEnabled()).
		Bool("redis", cfg.RedisEnabled()).
		Int("aiQuota", cfg.AIPlanQuotaPerSession).
		Msg("✅ Configuration loaded successfully")

	db, err := database.NewClient(cfg, log)
	if err != nil {
		return err
	}
	store := storage.NewClient(cfg, log)

	plannerService, rdb := newPlannerService(ctx, cfg, log)
	if rdb != nil {
		defer rdb.Close()
	}

	rooms := editsession.NewManager(log)
	rooms.Start(ctx)
	defer rooms.Shutdown()

	router := NewRouter(log,
		planner.NewHandler(plannerService, log),
		post.NewHandler(post.NewService(db, log), log),
		upload.NewHandler(upload.NewService(store, log), log),
		editsession.NewHandler(rooms, log),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("🚀 Story Album server starting")
		log.Info().Msgf("📡 WebSocket endpoint: ws://localhost:%s/ws/edit", cfg.Port)
		log.Info().Msgf("❤️  Health check: http://localhost:%s/health", cfg.Port)
		log.Info().Msgf("📊 Metrics: http://localhost:%s/metrics", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("🛑 Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info().Msg("✅ Server stopped")
	return nil
}
