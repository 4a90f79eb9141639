package model

type EventSubscription struct {
	Event    string `json:"event"`
	Handlers int    `json:"handlers"`
} // @name model.EventSubscription
