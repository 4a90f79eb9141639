package domain

import "context"

type EventHandler interface {
	Handle(ctx context.Context, event BaseDomainEvent) error
}

type EventDispatcher interface {
	Register(eventName string, handler EventHandler)
	Unregister(eventName string, handler EventHandler)
	UnregisterAll()
	Notify(ctx context.Context, event BaseDomainEvent) error
	Handlers() map[string][]EventHandler
}
