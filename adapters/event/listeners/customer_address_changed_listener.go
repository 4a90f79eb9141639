package listeners

import (
	"context"

	"github.com/ddd-patterns/backend/domain"
	"github.com/ddd-patterns/backend/domain/customer"
	"github.com/ddd-patterns/backend/pkg/mycontext"
	"go.uber.org/zap"
)

type ConsoleLogAddressHandler struct {
	logger *zap.SugaredLogger
}

func NewConsoleLogAddressHandler(logger *zap.SugaredLogger) *ConsoleLogAddressHandler {
	return &ConsoleLogAddressHandler{logger: logger}
}

func (h *ConsoleLogAddressHandler) Handle(ctx context.Context, event domain.BaseDomainEvent) error {
	e, ok := event.(customer.CustomerAddressChangedEvent)
	if !ok {
		return nil
	}

	h.logger.With("request_id", mycontext.RequestID(ctx)).Infof("Customer address: %s, %s changed to: %s", e.ID, e.Name, e.Address)

	return nil
}
