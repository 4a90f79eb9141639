package customer

import (
	"time"

	"github.com/ddd-patterns/backend/domain"
)

const CreatedEventName = "CustomerCreatedEvent"

var CreatedChannel = domain.Channel[CustomerCreatedEvent](CreatedEventName)

// CustomerCreatedEvent carries a snapshot of the customer at creation time.
// Readers get their own copy, so no handler can alter what the next one sees.
type CustomerCreatedEvent struct {
	customer Customer
	occurred time.Time
}

func NewCustomerCreatedEvent(c *Customer) CustomerCreatedEvent {
	return CustomerCreatedEvent{
		customer: *c.Clone(),
		occurred: time.Now().UTC(),
	}
}

func (e CustomerCreatedEvent) EventName() string {
	return CreatedEventName
}

func (e CustomerCreatedEvent) OccurredAt() time.Time {
	return e.occurred
}

func (e CustomerCreatedEvent) Customer() Customer {
	return *e.customer.Clone()
}

func (e CustomerCreatedEvent) EventData() any {
	return e.Customer()
}
