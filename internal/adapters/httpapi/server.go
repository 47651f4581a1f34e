package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/atorres/orderhub/internal/application/mediator"
	"github.com/atorres/orderhub/internal/infrastructure/config"
)

// NewRouter builds the HTTP router with the order routes mounted and
// the application logger injected into every request context.
func NewRouter(handler *OrderHandler, logger mediator.AppLogger) chi.Router {
	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(mediator.WithLogger(r.Context(), logger)))
		})
	})

	handler.RegisterRoutes(router)
	return router
}

// NewServer builds an http.Server from the server config
func NewServer(cfg *config.ServerConfig, router chi.Router) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}
