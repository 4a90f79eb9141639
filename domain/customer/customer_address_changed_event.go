package customer

import (
	"time"

	"github.com/ddd-patterns/backend/domain"
)

const AddressChangedEventName = "CustomerAddressChangedEvent"

var AddressChangedChannel = domain.Channel[CustomerAddressChangedEvent](AddressChangedEventName)

type AddressChanged struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address Address `json:"address"`
}

type CustomerAddressChangedEvent struct {
	AddressChanged
	occurred time.Time
}

func NewCustomerAddressChangedEvent(c *Customer) CustomerAddressChangedEvent {
	e := CustomerAddressChangedEvent{
		AddressChanged: AddressChanged{ID: c.ID, Name: c.Name},
		occurred:       time.Now().UTC(),
	}
	if c.Address != nil {
		e.Address = *c.Address
	}

	return e
}

func (e CustomerAddressChangedEvent) EventName() string {
	return AddressChangedEventName
}

func (e CustomerAddressChangedEvent) OccurredAt() time.Time {
	return e.occurred
}

func (e CustomerAddressChangedEvent) EventData() any {
	return e.AddressChanged
}
