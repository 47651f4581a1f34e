package cli

import (
	"fmt"

	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/atorres/orderhub/internal/adapters/persistence"
	"github.com/atorres/orderhub/internal/application/mediator"
	"github.com/atorres/orderhub/internal/application/setup"
	"github.com/atorres/orderhub/internal/infrastructure/config"
	"github.com/atorres/orderhub/internal/infrastructure/database"
)

// newDispatcher wires the full dispatch stack for one process: database
// connection, repository, validator, handler registration and dispatch
// middleware. The returned mediator is ready for concurrent use.
func newDispatcher(cfg *config.Config) (mediator.Mediator, *gorm.DB, error) {
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	validator := setup.NewRequestValidator()
	registry := setup.NewHandlerRegistry(
		persistence.NewGormOrderRepository(db),
		validator,
		cfg.Orders.EmptyPageAsFailure,
	)

	m := mediator.New()
	m.Use(mediator.Logging())
	if cfg.Server.RateLimit.Requests > 0 {
		limiter := rate.NewLimiter(rate.Limit(cfg.Server.RateLimit.Requests), cfg.Server.RateLimit.Burst)
		m.Use(mediator.Throttle(limiter))
	}

	if err := registry.RegisterOrderHandlers(m); err != nil {
		return nil, nil, fmt.Errorf("failed to register handlers: %w", err)
	}

	return m, db, nil
}
