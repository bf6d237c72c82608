package cli

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"task-manager/internal/api"
	"task-manager/internal/config"
	"task-manager/internal/logging"
	"task-manager/internal/services"
	"task-manager/internal/validation"

	"github.com/spf13/cobra"
)

// newServeCommand starts the HTTP API
func (r *RootCommand) newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the task HTTP API",
		Long:  "Run the task HTTP API until SIGINT or SIGTERM, then shut down gracefully.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := r.loadConfig()
			if err != nil {
				return err
			}

			logger, err := logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
			if err != nil {
				return r.errorHandler.Handle("configure logging", err)
			}

			handler, cleanup, err := r.buildHandler(cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			ln, err := net.Listen("tcp", cfg.Server.Addr)
			if err != nil {
				return r.errorHandler.Handle("listen", err)
			}

			if err := RunServer(cmd.Context(), ln, handler, cfg.Server, logger); err != nil {
				return r.errorHandler.Handle("serve", err)
			}
			return nil
		},
	}
}

// buildHandler wires store, service and router for the given configuration
func (r *RootCommand) buildHandler(cfg *config.Config, logger *slog.Logger) (http.Handler, func(), error) {
	taskStore, err := config.CreateStore(cfg)
	if err != nil {
		return nil, nil, r.errorHandler.Handle("create task store", err)
	}
	logging.Debugf("using %s task store\n", cfg.Store.Driver)

	service := services.NewTaskService(taskStore,
		services.WithLogger(logger),
		services.WithTaskValidator(validation.NewTaskValidatorWithConfig(cfg)),
	)

	handler := api.NewRouter(service,
		api.WithLogger(logger),
		api.WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
		api.WithBuildInfo(r.info.Version, cfg.Store.Driver),
	)

	cleanup := func() {
		if err := taskStore.Close(); err != nil {
			logger.Error("failed to close task store", "error", err)
			return
		}
		logging.Debugln("task store closed")
	}
	return handler, cleanup, nil
}

// RunServer serves HTTP on ln until ctx is done, then shuts down within the configured timeout.
func RunServer(ctx context.Context, ln net.Listener, handler http.Handler, cfg config.ServerConfig, logger *slog.Logger) error {
	server := &http.Server{
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", ln.Addr().String())
		serveErr <- server.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shut down signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	logger.Info("shut down gracefully", "timeout", cfg.ShutdownTimeout.String(), "at", time.Now().UTC().Format(time.RFC3339))
	return nil
}
