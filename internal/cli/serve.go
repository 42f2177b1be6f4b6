package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"rr-simulator/api"
	"rr-simulator/internal/sessions"
	"rr-simulator/internal/storage"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			store, err := openStore(cmd.Context(), cfg.StoragePath, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			manager := sessions.NewManager(cfg.SessionTTL, cfg.MaxSessions, cfg.MaxSlices, logger)
			app := api.NewApp(api.NewSchedulerHandlerImpl(cfg, manager, store, logger), logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				logger.Info().Msg("shutting down")
				_ = app.Shutdown()
			}()

			logger.Info().
				Str("addr", cfg.Address()).
				Int("quantum", cfg.RoundRobinTimeQuantum).
				Str("storage", cfg.StoragePath).
				Msg("rrsim listening")
			return app.Listen(cfg.Address())
		},
	}
}

func openStore(ctx context.Context, path string, logger zerolog.Logger) (storage.RunStore, error) {
	if path == "" {
		logger.Info().Msg("run history disabled")
		return storage.NopStore{}, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := storage.NewSQLiteStore(path, logger)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}
