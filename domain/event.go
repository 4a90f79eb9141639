package domain

import (
	"errors"
	"time"
)

var (
	ErrEmptyEventName = errors.New("event name is required")
	ErrDispatchFailed = errors.New("event dispatch failed")
)

// BaseDomainEvent is implemented by every event handed to an EventDispatcher.
// Events are routed by EventName only.
type BaseDomainEvent interface {
	EventName() string
	OccurredAt() time.Time
	EventData() any
}

// Event is a generic named event for producers that have no dedicated type.
type Event struct {
	name       string
	occurredAt time.Time
	data       any
}

func NewEvent(name string, data any) (Event, error) {
	if name == "" {
		return Event{}, ErrEmptyEventName
	}

	return Event{
		name:       name,
		occurredAt: time.Now().UTC(),
		data:       data,
	}, nil
}

func (e Event) EventName() string { return e.name }

func (e Event) OccurredAt() time.Time { return e.occurredAt }

func (e Event) EventData() any { return e.data }
