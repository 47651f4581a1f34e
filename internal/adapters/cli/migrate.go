package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atorres/orderhub/internal/infrastructure/config"
	"github.com/atorres/orderhub/internal/infrastructure/database"
)

// newMigrateCommand creates the migrate command
func newMigrateCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configPath)
			if err != nil {
				return err
			}

			db, err := database.NewConnection(&cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close(db)

			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Println("Migrations applied")
			return nil
		},
	}
}
