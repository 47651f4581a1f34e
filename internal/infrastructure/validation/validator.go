package validation

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/atorres/orderhub/internal/application/mediator"
)

// Validator is a wrapper around go-playground/validator implementing
// the mediator's validation capability: struct tags on request types
// become ordered (field, message) notifications.
type Validator struct {
	validate *validator.Validate
	messages map[string]string
}

// New creates a new validator instance with custom validation rules
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Register custom validation functions here if needed
	// Example: v.RegisterValidation("custom_rule", customRuleFunc)

	return &Validator{
		validate: v,
		messages: make(map[string]string),
	}
}

// RegisterMessage overrides the generated message for a field. The key
// is either "Field.tag" for one rule or "Field" for every rule on the
// field; the more specific key wins.
func (v *Validator) RegisterMessage(key, message string) {
	v.messages[key] = message
}

// Validate runs tag validation against the request and returns one
// notification per failed rule, in field declaration order. A nil
// result means the request is valid.
func (v *Validator) Validate(ctx context.Context, request any) []mediator.Notification {
	err := v.validate.StructCtx(ctx, request)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		// Non-struct input or a misconfigured rule; still a failed request
		return []mediator.Notification{mediator.NewNotification("", err.Error())}
	}

	notifications := make([]mediator.Notification, 0, len(validationErrs))
	for _, e := range validationErrs {
		notifications = append(notifications, mediator.NewNotification(e.Field(), v.messageFor(e)))
	}
	return notifications
}

// messageFor resolves the message for a failed rule, preferring
// registered overrides over the generated default.
func (v *Validator) messageFor(e validator.FieldError) string {
	if msg, ok := v.messages[e.Field()+"."+e.Tag()]; ok {
		return msg
	}
	if msg, ok := v.messages[e.Field()]; ok {
		return msg
	}
	return fmt.Sprintf("Field '%s' failed validation on the '%s' rule.", e.Field(), e.Tag())
}

// Interface guard
var _ mediator.Validator = (*Validator)(nil)
