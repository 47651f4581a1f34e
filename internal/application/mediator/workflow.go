package mediator

import "context"

// Validator is the external rule-validation capability. It reports the
// failures of a request as ordered (field, message) pairs; an empty
// result means the request is valid.
type Validator interface {
	Validate(ctx context.Context, request any) []Notification
}

// Workflow carries the per-request validation and notification state
// shared by all handlers. Create one at the top of Handle and let it go
// out of scope with the call; a Workflow must never outlive the request
// it was created for or be shared across concurrent dispatches.
type Workflow struct {
	notificator *Notificator
}

// NewWorkflow creates a workflow with a fresh, empty Notificator.
func NewWorkflow() *Workflow {
	return &Workflow{notificator: NewNotificator()}
}

// ExecuteValidation runs the validator against the request and records
// every reported failure. Returns false if any failure was recorded;
// the handler must not run business logic in that case.
func (w *Workflow) ExecuteValidation(ctx context.Context, validator Validator, request any) bool {
	failures := validator.Validate(ctx, request)
	for _, failure := range failures {
		w.notificator.Append(failure)
	}
	return len(failures) == 0
}

// Notify records a business-rule failure discovered during execution,
// with no field path.
func (w *Workflow) Notify(message string) {
	w.notificator.Append(NewNotification("", message))
}

// Notifications returns the recorded notifications in insertion order.
func (w *Workflow) Notifications() []Notification {
	return w.notificator.List()
}

// HasNotifications reports whether any failure was recorded.
func (w *Workflow) HasNotifications() bool {
	return w.notificator.HasAny()
}
