package listeners

import (
	"github.com/ddd-patterns/backend/domain"
	"github.com/ddd-patterns/backend/domain/customer"
	"github.com/ddd-patterns/backend/domain/notification"
	"github.com/ddd-patterns/backend/domain/product"
	"go.uber.org/zap"
)

type Options struct {
	Logger         *zap.SugaredLogger
	Mailer         notification.Mailer
	EmailRecipient string
}

// RegisterAll subscribes the application handlers. Order matters: handlers
// on the same channel run in the order they are registered here.
func RegisterAll(d domain.EventDispatcher, opts Options) {
	domain.Listen(d, customer.CreatedChannel, NewConsoleLog1Handler(opts.Logger))
	domain.Listen(d, customer.CreatedChannel, NewConsoleLog2Handler(opts.Logger))
	domain.Listen(d, customer.AddressChangedChannel, NewConsoleLogAddressHandler(opts.Logger))
	domain.Listen(d, product.CreatedChannel, NewSendEmailWhenProductIsCreatedHandler(opts.Mailer, opts.EmailRecipient))
}
