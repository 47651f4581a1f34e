package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root orderhub command
func NewRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "orderhub",
		Short: "Order management service",
		Long: `Order management service built on an in-process request dispatcher.

Commands and queries are routed through a mediator to exactly one
handler; every handler returns a uniform success/failure envelope.

Examples:
  orderhub serve
  orderhub migrate
  orderhub order create --customer 0f8fad5b-d9cb-469f-a165-70867728950e --description "Two widgets" --amount-cents 1999
  orderhub order list --page 1 --page-size 20`,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: search ./config.yaml)")

	cmd.AddCommand(newServeCommand(&configPath))
	cmd.AddCommand(newMigrateCommand(&configPath))
	cmd.AddCommand(newOrderCommand(&configPath))

	return cmd
}
