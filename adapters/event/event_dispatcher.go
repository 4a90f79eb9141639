package event

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/ddd-patterns/backend/domain"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Options func(ed *eventDispatcher) error

func WithPolicy(policy DeliveryPolicy) Options {
	return func(ed *eventDispatcher) error {
		ed.policy = policy
		return nil
	}
}

func WithLogger(logger *zap.SugaredLogger) Options {
	return func(ed *eventDispatcher) error {
		ed.logger = logger
		return nil
	}
}

func WithMetrics(reg prometheus.Registerer) Options {
	return func(ed *eventDispatcher) error {
		m, err := newMetrics(reg)
		if err != nil {
			return fmt.Errorf("register dispatcher metrics: %w", err)
		}

		ed.metrics = m
		return nil
	}
}

// WithTracer opens one span per delivered event.
func WithTracer(tp trace.TracerProvider) Options {
	return func(ed *eventDispatcher) error {
		ed.tracer = tp.Tracer("github.com/ddd-patterns/backend/adapters/event")
		return nil
	}
}

// eventDispatcher is a synchronous in-process registry of handlers keyed by
// event name. It is safe for concurrent use; handlers run on the goroutine
// that calls Notify and never under the registry lock.
type eventDispatcher struct {
	handlers map[string][]domain.EventHandler
	mutex    sync.RWMutex

	policy  DeliveryPolicy
	logger  *zap.SugaredLogger
	metrics *metrics
	tracer  trace.Tracer
}

func NewEventDispatcher(options ...Options) (*eventDispatcher, error) {
	ed := &eventDispatcher{
		handlers: make(map[string][]domain.EventHandler),
		policy:   FailFast,
		logger:   zap.NewNop().Sugar(),
		tracer:   noop.NewTracerProvider().Tracer(""),
	}

	for _, fn := range options {
		if err := fn(ed); err != nil {
			return nil, err
		}
	}

	return ed, nil
}

// Register appends handler to the list for eventName. The same handler may be
// registered more than once and then runs once per registration.
func (ed *eventDispatcher) Register(eventName string, handler domain.EventHandler) {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	if ed.handlers == nil {
		ed.handlers = make(map[string][]domain.EventHandler)
	}
	ed.handlers[eventName] = append(ed.handlers[eventName], handler)
}

// Unregister removes every registration of handler under eventName. The key
// stays in the registry even when its list becomes empty.
func (ed *eventDispatcher) Unregister(eventName string, handler domain.EventHandler) {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	handlers, ok := ed.handlers[eventName]
	if !ok {
		return
	}

	kept := make([]domain.EventHandler, 0, len(handlers))
	for _, h := range handlers {
		if !sameHandler(h, handler) {
			kept = append(kept, h)
		}
	}
	ed.handlers[eventName] = kept
}

// UnregisterAll drops every key from the registry.
func (ed *eventDispatcher) UnregisterAll() {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	ed.handlers = make(map[string][]domain.EventHandler)
}

func (ed *eventDispatcher) Notify(ctx context.Context, event domain.BaseDomainEvent) error {
	name := event.EventName()

	ed.mutex.RLock()
	handlers, ok := ed.handlers[name]
	handlers = append([]domain.EventHandler(nil), handlers...)
	ed.mutex.RUnlock()

	if !ok {
		return nil
	}

	ed.metrics.observeNotify(name)
	ed.logger.Debugw("notify", "event", name, "handlers", len(handlers))

	ctx, span := ed.tracer.Start(ctx, "notify "+name, trace.WithAttributes(
		attribute.String("event.name", name),
		attribute.Int("event.handlers", len(handlers)),
	))
	defer span.End()

	err := ed.deliver(ctx, name, event, handlers)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "event handler failed")
	}

	return err
}

func (ed *eventDispatcher) deliver(ctx context.Context, name string, event domain.BaseDomainEvent, handlers []domain.EventHandler) error {
	var errs error
	for i, handler := range handlers {
		if err := handler.Handle(ctx, event); err != nil {
			ed.metrics.observeFailure(name)
			err = fmt.Errorf("handle %s (handler %d): %w", name, i, err)

			if ed.policy == FailFast {
				return err
			}
			errs = multierr.Append(errs, err)
		}
	}

	return errs
}

// Handlers returns a copy of the registry.
func (ed *eventDispatcher) Handlers() map[string][]domain.EventHandler {
	ed.mutex.RLock()
	defer ed.mutex.RUnlock()

	out := make(map[string][]domain.EventHandler, len(ed.handlers))
	for name, handlers := range ed.handlers {
		out[name] = append(make([]domain.EventHandler, 0, len(handlers)), handlers...)
	}

	return out
}

// sameHandler compares by interface identity. Values of non-comparable
// dynamic types never match.
func sameHandler(a, b domain.EventHandler) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}

	return a == b
}
