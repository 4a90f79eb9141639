package event_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ddd-patterns/backend/adapters/event"
	"github.com/ddd-patterns/backend/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/multierr"
)

type recordingHandler struct {
	name  string
	calls *[]string
	seen  []domain.BaseDomainEvent
	err   error
}

func newRecordingHandler(name string, calls *[]string) *recordingHandler {
	return &recordingHandler{name: name, calls: calls}
}

func (h *recordingHandler) Handle(_ context.Context, e domain.BaseDomainEvent) error {
	if h.calls != nil {
		*h.calls = append(*h.calls, h.name)
	}
	h.seen = append(h.seen, e)

	return h.err
}

func newDispatcher(t *testing.T, options ...event.Options) domain.EventDispatcher {
	t.Helper()

	ed, err := event.NewEventDispatcher(options...)
	require.NoError(t, err)

	return ed
}

func mustEvent(t *testing.T, name string, data any) domain.Event {
	t.Helper()

	e, err := domain.NewEvent(name, data)
	require.NoError(t, err)

	return e
}

func TestRegister(t *testing.T) {
	t.Run("it should append handlers in registration order", func(t *testing.T) {
		ed := newDispatcher(t)
		first := newRecordingHandler("first", nil)
		second := newRecordingHandler("second", nil)

		ed.Register("CustomerCreatedEvent", first)
		ed.Register("CustomerCreatedEvent", second)

		handlers := ed.Handlers()["CustomerCreatedEvent"]
		require.Len(t, handlers, 2)
		assert.Same(t, first, handlers[0])
		assert.Same(t, second, handlers[1])
	})

	t.Run("it should keep duplicate registrations", func(t *testing.T) {
		ed := newDispatcher(t)
		h := newRecordingHandler("h", nil)

		ed.Register("ProductCreatedEvent", h)
		ed.Register("ProductCreatedEvent", h)

		assert.Len(t, ed.Handlers()["ProductCreatedEvent"], 2)

		require.NoError(t, ed.Notify(context.Background(), mustEvent(t, "ProductCreatedEvent", nil)))
		assert.Len(t, h.seen, 2)
	})
}

func TestUnregister(t *testing.T) {
	t.Run("it should leave an empty list behind", func(t *testing.T) {
		ed := newDispatcher(t)
		h := newRecordingHandler("a", nil)

		ed.Register("X", h)
		ed.Unregister("X", h)

		handlers, ok := ed.Handlers()["X"]
		assert.True(t, ok)
		assert.Len(t, handlers, 0)

		require.NoError(t, ed.Notify(context.Background(), mustEvent(t, "X", nil)))
		assert.Empty(t, h.seen)
	})

	t.Run("it should remove only the given handler", func(t *testing.T) {
		ed := newDispatcher(t)
		first := newRecordingHandler("first", nil)
		second := newRecordingHandler("second", nil)

		ed.Register("CustomerCreatedEvent", first)
		ed.Register("CustomerCreatedEvent", second)
		ed.Unregister("CustomerCreatedEvent", first)

		handlers := ed.Handlers()["CustomerCreatedEvent"]
		require.Len(t, handlers, 1)
		assert.Same(t, second, handlers[0])
	})

	t.Run("it should remove every registration of the handler", func(t *testing.T) {
		ed := newDispatcher(t)
		h := newRecordingHandler("h", nil)
		other := newRecordingHandler("other", nil)

		ed.Register("X", h)
		ed.Register("X", other)
		ed.Register("X", h)
		ed.Unregister("X", h)

		handlers := ed.Handlers()["X"]
		require.Len(t, handlers, 1)
		assert.Same(t, other, handlers[0])
	})

	t.Run("it should ignore handlers that were never registered", func(t *testing.T) {
		ed := newDispatcher(t)
		first := newRecordingHandler("first", nil)
		second := newRecordingHandler("second", nil)
		stranger := newRecordingHandler("stranger", nil)

		ed.Register("X", first)
		ed.Register("X", second)
		ed.Unregister("X", stranger)
		ed.Unregister("unknown", stranger)

		handlers := ed.Handlers()["X"]
		require.Len(t, handlers, 2)
		assert.Same(t, first, handlers[0])
		assert.Same(t, second, handlers[1])
		_, ok := ed.Handlers()["unknown"]
		assert.False(t, ok)
	})

	t.Run("it should not match handlers of non-comparable types", func(t *testing.T) {
		ed := newDispatcher(t)
		h := sliceHandler{"a"}

		ed.Register("X", h)
		assert.NotPanics(t, func() { ed.Unregister("X", h) })
		assert.Len(t, ed.Handlers()["X"], 1)
	})
}

type sliceHandler []string

func (sliceHandler) Handle(context.Context, domain.BaseDomainEvent) error { return nil }

func TestUnregisterAll(t *testing.T) {
	ed := newDispatcher(t)
	ed.Register("CustomerCreatedEvent", newRecordingHandler("a", nil))
	ed.Register("CustomerCreatedEvent", newRecordingHandler("b", nil))
	ed.Register("ProductCreatedEvent", newRecordingHandler("c", nil))

	ed.UnregisterAll()

	handlers := ed.Handlers()
	assert.Empty(t, handlers)
	_, ok := handlers["CustomerCreatedEvent"]
	assert.False(t, ok)
	_, ok = handlers["ProductCreatedEvent"]
	assert.False(t, ok)
}

func TestNotify(t *testing.T) {
	t.Run("it should do nothing for an unregistered event", func(t *testing.T) {
		ed := newDispatcher(t)
		h := newRecordingHandler("h", nil)
		ed.Register("Registered", h)

		assert.NoError(t, ed.Notify(context.Background(), mustEvent(t, "NeverRegistered", nil)))
		assert.Empty(t, h.seen)
	})

	t.Run("it should call every handler once in registration order", func(t *testing.T) {
		var calls []string
		ed := newDispatcher(t)
		for _, name := range []string{"a", "b", "c", "d"} {
			ed.Register("X", newRecordingHandler(name, &calls))
		}

		require.NoError(t, ed.Notify(context.Background(), mustEvent(t, "X", nil)))
		assert.Equal(t, []string{"a", "b", "c", "d"}, calls)
	})

	t.Run("it should pass the same event to every handler", func(t *testing.T) {
		ed := newDispatcher(t)
		a := newRecordingHandler("a", nil)
		b := newRecordingHandler("b", nil)
		ed.Register("CustomerCreatedEvent", a)
		ed.Register("CustomerCreatedEvent", b)

		e := mustEvent(t, "CustomerCreatedEvent", map[string]string{"id": "1", "name": "Joao Ninguem"})
		require.NoError(t, ed.Notify(context.Background(), e))

		require.Len(t, a.seen, 1)
		require.Len(t, b.seen, 1)
		assert.Equal(t, e, a.seen[0])
		assert.Equal(t, e, b.seen[0])
	})

	t.Run("it should deliver on every call", func(t *testing.T) {
		ed := newDispatcher(t)
		h := newRecordingHandler("h", nil)
		ed.Register("T", h)

		e := mustEvent(t, "T", nil)
		require.NoError(t, ed.Notify(context.Background(), e))
		require.NoError(t, ed.Notify(context.Background(), e))

		assert.Len(t, h.seen, 2)
	})

	t.Run("it should route by name regardless of event type", func(t *testing.T) {
		ed := newDispatcher(t)
		h := newRecordingHandler("h", nil)
		ed.Register("Shared", h)

		require.NoError(t, ed.Notify(context.Background(), mustEvent(t, "Shared", 1)))
		require.NoError(t, ed.Notify(context.Background(), namedEvent("Shared")))

		assert.Len(t, h.seen, 2)
	})
}

type namedEvent string

func (e namedEvent) EventName() string { return string(e) }

func (namedEvent) OccurredAt() time.Time { return time.Time{} }

func (namedEvent) EventData() any { return nil }

func TestNotifyFailFast(t *testing.T) {
	var calls []string
	ed := newDispatcher(t)
	boom := errors.New("boom")

	failing := newRecordingHandler("failing", &calls)
	failing.err = boom

	ed.Register("X", newRecordingHandler("before", &calls))
	ed.Register("X", failing)
	ed.Register("X", newRecordingHandler("after", &calls))

	err := ed.Notify(context.Background(), mustEvent(t, "X", nil))

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"before", "failing"}, calls)
}

func TestNotifyBestEffort(t *testing.T) {
	var calls []string
	ed := newDispatcher(t, event.WithPolicy(event.BestEffort))
	errA, errB := errors.New("a failed"), errors.New("b failed")

	a := newRecordingHandler("a", &calls)
	a.err = errA
	b := newRecordingHandler("b", &calls)
	b.err = errB

	ed.Register("X", a)
	ed.Register("X", newRecordingHandler("ok", &calls))
	ed.Register("X", b)

	err := ed.Notify(context.Background(), mustEvent(t, "X", nil))

	assert.Equal(t, []string{"a", "ok", "b"}, calls)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Len(t, multierr.Errors(err), 2)
}

type panicHandler struct{}

func (*panicHandler) Handle(context.Context, domain.BaseDomainEvent) error { panic("handler fault") }

func TestNotifyPropagatesPanics(t *testing.T) {
	ed := newDispatcher(t, event.WithPolicy(event.BestEffort))
	ed.Register("X", &panicHandler{})

	assert.PanicsWithValue(t, "handler fault", func() {
		_ = ed.Notify(context.Background(), mustEvent(t, "X", nil))
	})
}

type reentrantHandler struct {
	ed    domain.EventDispatcher
	extra domain.EventHandler
}

func (h *reentrantHandler) Handle(context.Context, domain.BaseDomainEvent) error {
	h.ed.Register("X", h.extra)
	return nil
}

func TestNotifyAllowsRegistrationFromHandler(t *testing.T) {
	ed := newDispatcher(t)
	extra := newRecordingHandler("extra", nil)
	ed.Register("X", &reentrantHandler{ed: ed, extra: extra})

	require.NoError(t, ed.Notify(context.Background(), mustEvent(t, "X", nil)))

	// the snapshot taken by the first call does not include extra
	assert.Empty(t, extra.seen)
	assert.Len(t, ed.Handlers()["X"], 2)
}

func TestDispatchersAreIndependent(t *testing.T) {
	one := newDispatcher(t)
	two := newDispatcher(t)
	h := newRecordingHandler("h", nil)

	one.Register("X", h)

	_, ok := two.Handlers()["X"]
	assert.False(t, ok)
	require.NoError(t, two.Notify(context.Background(), mustEvent(t, "X", nil)))
	assert.Empty(t, h.seen)

	two.UnregisterAll()
	assert.Len(t, one.Handlers()["X"], 1)
}

func TestHandlersReturnsCopy(t *testing.T) {
	ed := newDispatcher(t)
	ed.Register("X", newRecordingHandler("a", nil))

	snapshot := ed.Handlers()
	snapshot["X"] = nil
	delete(snapshot, "X")

	assert.Len(t, ed.Handlers()["X"], 1)
}

type countingHandler struct{ n atomic.Int64 }

func (h *countingHandler) Handle(context.Context, domain.BaseDomainEvent) error {
	h.n.Add(1)
	return nil
}

func TestConcurrentUse(t *testing.T) {
	ed := newDispatcher(t)
	e := mustEvent(t, "X", nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h := &countingHandler{}
			ed.Register("X", h)
			_ = ed.Notify(context.Background(), e)
			ed.Unregister("X", h)
		}()
	}
	wg.Wait()

	assert.Len(t, ed.Handlers()["X"], 0)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	ed := newDispatcher(t, event.WithMetrics(reg), event.WithPolicy(event.BestEffort))

	failing := newRecordingHandler("failing", nil)
	failing.err = errors.New("boom")
	ed.Register("X", failing)
	ed.Register("X", newRecordingHandler("ok", nil))

	_ = ed.Notify(context.Background(), mustEvent(t, "X", nil))
	_ = ed.Notify(context.Background(), mustEvent(t, "Unregistered", nil))

	count, err := testutil.GatherAndCount(reg, "events_notified_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// a second dispatcher on the same registry reuses the collectors
	_, err = event.NewEventDispatcher(event.WithMetrics(reg))
	assert.NoError(t, err)
}

func TestTracing(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	ed := newDispatcher(t, event.WithTracer(tp))

	failing := newRecordingHandler("failing", nil)
	failing.err = errors.New("boom")
	ed.Register("Ok", newRecordingHandler("ok", nil))
	ed.Register("Failing", failing)

	require.NoError(t, ed.Notify(context.Background(), mustEvent(t, "Ok", nil)))
	require.Error(t, ed.Notify(context.Background(), mustEvent(t, "Failing", nil)))
	require.NoError(t, ed.Notify(context.Background(), mustEvent(t, "Unregistered", nil)))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "notify Ok", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, "notify Failing", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    event.DeliveryPolicy
		wantErr bool
	}{
		{"", event.FailFast, false},
		{"fail-fast", event.FailFast, false},
		{"Best-Effort", event.BestEffort, false},
		{"retry", event.FailFast, true},
	}

	for _, tt := range tests {
		got, err := event.ParsePolicy(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
