package listeners

import (
	"context"

	"github.com/ddd-patterns/backend/domain"
	"github.com/ddd-patterns/backend/domain/customer"
	"go.uber.org/zap"
)

type ConsoleLog1Handler struct {
	logger *zap.SugaredLogger
}

func NewConsoleLog1Handler(logger *zap.SugaredLogger) *ConsoleLog1Handler {
	return &ConsoleLog1Handler{logger: logger}
}

func (h *ConsoleLog1Handler) Handle(_ context.Context, event domain.BaseDomainEvent) error {
	if _, ok := event.(customer.CustomerCreatedEvent); !ok {
		return nil
	}

	h.logger.Info("This is the first console.log of the event: CustomerCreated")

	return nil
}

type ConsoleLog2Handler struct {
	logger *zap.SugaredLogger
}

func NewConsoleLog2Handler(logger *zap.SugaredLogger) *ConsoleLog2Handler {
	return &ConsoleLog2Handler{logger: logger}
}

func (h *ConsoleLog2Handler) Handle(_ context.Context, event domain.BaseDomainEvent) error {
	if _, ok := event.(customer.CustomerCreatedEvent); !ok {
		return nil
	}

	h.logger.Info("This is the second console.log of the event: CustomerCreated")

	return nil
}
