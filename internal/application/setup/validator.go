package setup

import (
	"github.com/atorres/orderhub/internal/infrastructure/validation"
)

// NewRequestValidator builds the validator used by every order handler,
// with business-facing messages in place of the tag-derived defaults.
func NewRequestValidator() *validation.Validator {
	v := validation.New()

	v.RegisterMessage("CustomerID.required", "Customer ID cannot be empty.")
	v.RegisterMessage("OrderID.required", "Order ID cannot be empty.")
	v.RegisterMessage("Description.required", "Order description cannot be empty.")
	v.RegisterMessage("AmountCents.gt", "Order amount must be greater than zero.")
	v.RegisterMessage("AmountCents.required", "Order amount must be greater than zero.")

	return v
}
