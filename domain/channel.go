package domain

import "context"

// Channel names an event stream and carries the Go type of its events, so
// handlers can be subscribed before any producer of E exists.
type Channel[E BaseDomainEvent] string

func (c Channel[E]) Name() string { return string(c) }

// TypedHandler adapts a func over a concrete event type. Events published
// under the same name with a different Go type are ignored.
type TypedHandler[E BaseDomainEvent] struct {
	fn func(ctx context.Context, event E) error
}

func NewTypedHandler[E BaseDomainEvent](fn func(ctx context.Context, event E) error) *TypedHandler[E] {
	return &TypedHandler[E]{fn: fn}
}

func (h *TypedHandler[E]) Handle(ctx context.Context, event BaseDomainEvent) error {
	e, ok := event.(E)
	if !ok {
		return nil
	}

	return h.fn(ctx, e)
}

// Subscribe registers fn on the channel and returns the handler so it can be
// passed to Unregister later.
func Subscribe[E BaseDomainEvent](d EventDispatcher, ch Channel[E], fn func(ctx context.Context, event E) error) EventHandler {
	h := NewTypedHandler(fn)
	d.Register(ch.Name(), h)

	return h
}

// Listen registers an existing handler on a typed channel.
func Listen[E BaseDomainEvent](d EventDispatcher, ch Channel[E], handler EventHandler) {
	d.Register(ch.Name(), handler)
}
