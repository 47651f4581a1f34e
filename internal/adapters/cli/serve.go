package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/atorres/orderhub/internal/adapters/httpapi"
	"github.com/atorres/orderhub/internal/infrastructure/config"
	"github.com/atorres/orderhub/internal/infrastructure/database"
	"github.com/atorres/orderhub/internal/infrastructure/logging"
)

// newServeCommand creates the serve command
func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the order HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configPath)
			if err != nil {
				return err
			}

			logger, err := logging.NewZapAppLogger(&cfg.Logging)
			if err != nil {
				return err
			}

			m, db, err := newDispatcher(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			handler := httpapi.NewOrderHandler(m, cfg.Orders.MaxPageSize)
			router := httpapi.NewRouter(handler, logger)
			server := httpapi.NewServer(&cfg.Server, router)

			errCh := make(chan error, 1)
			go func() {
				logger.Log("INFO", "server listening", map[string]interface{}{"addr": server.Addr})
				errCh <- server.ListenAndServe()
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server error: %w", err)
				}
				return nil
			case sig := <-stop:
				logger.Log("INFO", "shutting down", map[string]interface{}{"signal": sig.String()})
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}
}
