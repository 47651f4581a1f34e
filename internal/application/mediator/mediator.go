package mediator

import (
	"context"
	"fmt"
	"reflect"
)

// RequestHandler handles a specific request type. Handle returns the
// handler's response envelope (Response[T] or PagedResponse[T]); the
// error return is reserved for unexpected failures and cancellation,
// which propagate to the caller instead of becoming notifications.
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (any, error)
}

// HandlerFunc is a function that handles a request.
type HandlerFunc func(ctx context.Context, request Request) (any, error)

// Middleware wraps handler execution with cross-cutting concerns such
// as logging or throttling. It must pass the context through unchanged
// so cancellation reaches the handler.
type Middleware func(ctx context.Context, request Request, next HandlerFunc) (any, error)

// Mediator dispatches requests to their handlers. Registration happens
// once at startup; the registry is read-only afterwards, so Send is
// safe for concurrent use without locking.
type Mediator interface {
	Send(ctx context.Context, request Request) (any, error)
	Register(requestType reflect.Type, handler RequestHandler) error
	Use(middleware Middleware)
}

// HandlerNotFoundError reports a dispatch for a request type that was
// never registered. This is a configuration error, not a recoverable
// runtime condition.
type HandlerNotFoundError struct {
	RequestType reflect.Type
}

func (e *HandlerNotFoundError) Error() string {
	return fmt.Sprintf("no handler registered for request type %s", e.RequestType)
}

// mediator is the concrete implementation
type mediator struct {
	handlers    map[reflect.Type]RequestHandler
	middlewares []Middleware
}

// New creates a new mediator instance
func New() Mediator {
	return &mediator{
		handlers: make(map[reflect.Type]RequestHandler),
	}
}

// Register registers a handler for a specific request type. Registering
// a second handler for the same type fails: ambiguous routing is a
// configuration error and is never resolved by picking one.
func (m *mediator) Register(requestType reflect.Type, handler RequestHandler) error {
	if requestType == nil {
		return fmt.Errorf("request type cannot be nil")
	}

	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	if _, exists := m.handlers[requestType]; exists {
		return fmt.Errorf("handler already registered for type %s", requestType)
	}

	m.handlers[requestType] = handler
	return nil
}

// Use appends a middleware to the dispatch chain. Middlewares run in
// registration order, outermost first. Like Register, Use belongs to
// startup and must not race with Send.
func (m *mediator) Use(middleware Middleware) {
	m.middlewares = append(m.middlewares, middleware)
}

// Send dispatches a request to its registered handler. Resolution is by
// the exact runtime type of the request value, never by a base type,
// and the handler's result is returned unchanged.
func (m *mediator) Send(ctx context.Context, request Request) (any, error) {
	if request == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}

	requestType := reflect.TypeOf(request)
	handler, ok := m.handlers[requestType]

	if !ok {
		return nil, &HandlerNotFoundError{RequestType: requestType}
	}

	invoke := handler.Handle
	for i := len(m.middlewares) - 1; i >= 0; i-- {
		middleware := m.middlewares[i]
		next := invoke
		invoke = func(ctx context.Context, request Request) (any, error) {
			return middleware(ctx, request, next)
		}
	}

	return invoke(ctx, request)
}

// Handler processes requests of concrete type R, producing result T.
// Concrete handlers implement this and are bridged onto the untyped
// registry by RegisterHandler.
type Handler[R Request, T any] interface {
	Handle(ctx context.Context, request R) (T, error)
}

// handlerAdapter bridges a typed Handler onto RequestHandler.
type handlerAdapter[R Request, T any] struct {
	inner Handler[R, T]
}

func (a handlerAdapter[R, T]) Handle(ctx context.Context, request Request) (any, error) {
	typed, ok := request.(R)
	if !ok {
		return nil, fmt.Errorf("invalid request type %T", request)
	}
	return a.inner.Handle(ctx, typed)
}

// RegisterHandler registers a typed handler with type inference.
func RegisterHandler[R Request, T any](m Mediator, handler Handler[R, T]) error {
	var zero R
	requestType := reflect.TypeOf(zero)
	return m.Register(requestType, handlerAdapter[R, T]{inner: handler})
}

// MustRegisterHandler is RegisterHandler that panics on error, for use
// in startup wiring where a registration failure is fatal.
func MustRegisterHandler[R Request, T any](m Mediator, handler Handler[R, T]) {
	if err := RegisterHandler(m, handler); err != nil {
		panic(err)
	}
}

// Send dispatches a request and asserts the result to the envelope type
// the caller expects, typically Response[T] or PagedResponse[T].
func Send[T any](ctx context.Context, m Mediator, request Request) (T, error) {
	var zero T

	result, err := m.Send(ctx, request)
	if err != nil {
		return zero, err
	}

	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("handler for %T returned %T, want %T", request, result, zero)
	}
	return typed, nil
}
