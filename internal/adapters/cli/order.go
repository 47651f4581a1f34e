package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/atorres/orderhub/internal/application/mediator"
	"github.com/atorres/orderhub/internal/application/order/commands"
	"github.com/atorres/orderhub/internal/application/order/queries"
	"github.com/atorres/orderhub/internal/domain/order"
	"github.com/atorres/orderhub/internal/infrastructure/config"
	"github.com/atorres/orderhub/internal/infrastructure/database"
)

// NewOrderCommand creates the order command with subcommands
func newOrderCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Create, inspect and cancel orders",
	}

	cmd.AddCommand(newOrderCreateCommand(configPath))
	cmd.AddCommand(newOrderGetCommand(configPath))
	cmd.AddCommand(newOrderCancelCommand(configPath))
	cmd.AddCommand(newOrderListCommand(configPath))

	return cmd
}

// withDispatcher loads config, wires the dispatch stack, runs fn and
// closes the database afterwards
func withDispatcher(configPath *string, fn func(m mediator.Mediator) error) error {
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	m, db, err := newDispatcher(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	return fn(m)
}

func newOrderCreateCommand(configPath *string) *cobra.Command {
	var customerID string
	var description string
	var amountCents int64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDispatcher(configPath, func(m mediator.Mediator) error {
				parsedCustomer, _ := uuid.Parse(customerID)
				create := commands.NewCreateOrderCommand(parsedCustomer, description, amountCents)

				response, err := mediator.Send[mediator.Response[*order.Order]](cmd.Context(), m, create)
				if err != nil {
					return err
				}
				return printEnvelope(response)
			})
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "Customer ID (UUID)")
	cmd.Flags().StringVar(&description, "description", "", "Order description")
	cmd.Flags().Int64Var(&amountCents, "amount-cents", 0, "Order amount in cents")

	return cmd
}

func newOrderGetCommand(configPath *string) *cobra.Command {
	var orderID string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch a single order by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDispatcher(configPath, func(m mediator.Mediator) error {
				parsedOrder, _ := uuid.Parse(orderID)
				query := queries.NewGetOrderQuery(parsedOrder)

				response, err := mediator.Send[mediator.Response[*order.Order]](cmd.Context(), m, query)
				if err != nil {
					return err
				}
				return printEnvelope(response)
			})
		},
	}

	cmd.Flags().StringVar(&orderID, "id", "", "Order ID (UUID)")

	return cmd
}

func newOrderCancelCommand(configPath *string) *cobra.Command {
	var orderID string

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel an existing order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDispatcher(configPath, func(m mediator.Mediator) error {
				parsedOrder, _ := uuid.Parse(orderID)
				cancel := commands.NewCancelOrderCommand(parsedOrder)

				response, err := mediator.Send[mediator.Response[*order.Order]](cmd.Context(), m, cancel)
				if err != nil {
					return err
				}
				return printEnvelope(response)
			})
		},
	}

	cmd.Flags().StringVar(&orderID, "id", "", "Order ID (UUID)")

	return cmd
}

func newOrderListCommand(configPath *string) *cobra.Command {
	var customerID string
	var pageNumber int
	var pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDispatcher(configPath, func(m mediator.Mediator) error {
				parsedCustomer, _ := uuid.Parse(customerID)
				query := queries.NewListOrdersQuery(parsedCustomer, pageNumber, pageSize)

				response, err := mediator.Send[mediator.PagedResponse[order.Order]](cmd.Context(), m, query)
				if err != nil {
					return err
				}
				return printEnvelope(response)
			})
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "Filter by customer ID (UUID)")
	cmd.Flags().IntVar(&pageNumber, "page", 1, "Page number (1-based)")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "Page size")

	return cmd
}

// printEnvelope renders the response envelope as indented JSON
func printEnvelope(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return nil
}
