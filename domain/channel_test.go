package domain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ddd-patterns/backend/adapters/event"
	"github.com/ddd-patterns/backend/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pinged struct{ n int }

func (pinged) EventName() string     { return "Pinged" }
func (pinged) OccurredAt() time.Time { return time.Time{} }
func (p pinged) EventData() any      { return p.n }

var pingedChannel = domain.Channel[pinged]("Pinged")

func TestNewEvent(t *testing.T) {
	_, err := domain.NewEvent("", nil)
	assert.ErrorIs(t, err, domain.ErrEmptyEventName)

	e, err := domain.NewEvent("X", 42)
	require.NoError(t, err)
	assert.Equal(t, "X", e.EventName())
	assert.Equal(t, 42, e.EventData())
	assert.False(t, e.OccurredAt().IsZero())
}

func TestSubscribe(t *testing.T) {
	ed, err := event.NewEventDispatcher()
	require.NoError(t, err)

	var got []int
	h := domain.Subscribe(ed, pingedChannel, func(_ context.Context, e pinged) error {
		got = append(got, e.n)
		return nil
	})

	require.NoError(t, ed.Notify(context.Background(), pinged{n: 1}))

	// same name, different Go type: ignored by the typed handler
	other, err := domain.NewEvent("Pinged", 2)
	require.NoError(t, err)
	require.NoError(t, ed.Notify(context.Background(), other))

	assert.Equal(t, []int{1}, got)

	ed.Unregister(pingedChannel.Name(), h)
	require.NoError(t, ed.Notify(context.Background(), pinged{n: 3}))
	assert.Equal(t, []int{1}, got)
	assert.Len(t, ed.Handlers()["Pinged"], 0)
}

func TestTypedHandlerReturnsError(t *testing.T) {
	boom := errors.New("boom")
	h := domain.NewTypedHandler(func(context.Context, pinged) error { return boom })

	assert.ErrorIs(t, h.Handle(context.Background(), pinged{}), boom)
}
