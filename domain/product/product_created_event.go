package product

import (
	"time"

	"github.com/ddd-patterns/backend/domain"
)

const CreatedEventName = "ProductCreatedEvent"

var CreatedChannel = domain.Channel[ProductCreatedEvent](CreatedEventName)

type Created struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type ProductCreatedEvent struct {
	Created
	occurred time.Time
}

func NewProductCreatedEvent(p *Product) ProductCreatedEvent {
	return ProductCreatedEvent{
		Created: Created{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
		},
		occurred: time.Now().UTC(),
	}
}

func (e ProductCreatedEvent) EventName() string {
	return CreatedEventName
}

func (e ProductCreatedEvent) OccurredAt() time.Time {
	return e.occurred
}

func (e ProductCreatedEvent) EventData() any {
	return e.Created
}
