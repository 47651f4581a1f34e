package mediator

// Notification is an immutable (field, message) failure record. There
// are no severity levels; the presence of a notification means the
// current request failed.
type Notification struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewNotification creates a notification for a field path. Business-rule
// failures that are not tied to a field use an empty field path.
func NewNotification(field, message string) Notification {
	return Notification{Field: field, Message: message}
}

// Notificator collects the notifications of a single dispatched request.
// One instance exists per dispatch and must never be shared across
// concurrent dispatches; a fresh instance starts empty.
type Notificator struct {
	notifications []Notification
}

// NewNotificator creates an empty collector.
func NewNotificator() *Notificator {
	return &Notificator{}
}

// Append records a notification, preserving insertion order.
func (n *Notificator) Append(notification Notification) {
	n.notifications = append(n.notifications, notification)
}

// List returns the collected notifications in insertion order.
func (n *Notificator) List() []Notification {
	out := make([]Notification, len(n.notifications))
	copy(out, n.notifications)
	return out
}

// HasAny reports whether any notification was collected.
func (n *Notificator) HasAny() bool {
	return len(n.notifications) > 0
}
