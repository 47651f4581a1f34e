package mediator

import "github.com/google/uuid"

// Request is the marker for values dispatched through the Mediator.
// A request is immutable after construction and is consumed by exactly
// one handler. Concrete requests embed Command, Query or PagedQuery.
type Request interface {
	isRequest()
}

// Command marks a request that changes system state. Every command
// carries an identity assigned once at construction and never reused;
// handlers can use it as the identity of whatever the command creates.
type Command struct {
	id uuid.UUID
}

// NewCommand creates a command marker with a fresh identity.
func NewCommand() Command {
	return Command{id: uuid.New()}
}

// CommandID returns the identity assigned at construction.
func (c Command) CommandID() uuid.UUID {
	return c.id
}

func (Command) isRequest() {}

// Query marks a read-only request with no side effects.
type Query struct{}

func (Query) isRequest() {}

// PagedQuery marks a read-only request for one bounded page of a larger
// result set. PageNumber is 1-based.
type PagedQuery struct {
	Query

	PageNumber int `validate:"gte=1"`
	PageSize   int `validate:"gte=1"`
}

// NewPagedQuery creates a paged query marker for the given page.
func NewPagedQuery(pageNumber, pageSize int) PagedQuery {
	return PagedQuery{PageNumber: pageNumber, PageSize: pageSize}
}
