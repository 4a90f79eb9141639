package listeners

import (
	"context"
	"fmt"

	"github.com/ddd-patterns/backend/domain"
	"github.com/ddd-patterns/backend/domain/notification"
	"github.com/ddd-patterns/backend/domain/product"
)

type SendEmailWhenProductIsCreatedHandler struct {
	mailer    notification.Mailer
	recipient string
}

func NewSendEmailWhenProductIsCreatedHandler(mailer notification.Mailer, recipient string) *SendEmailWhenProductIsCreatedHandler {
	return &SendEmailWhenProductIsCreatedHandler{mailer: mailer, recipient: recipient}
}

func (h *SendEmailWhenProductIsCreatedHandler) Handle(ctx context.Context, event domain.BaseDomainEvent) error {
	e, ok := event.(product.ProductCreatedEvent)
	if !ok {
		return nil
	}

	err := h.mailer.Send(ctx, notification.Email{
		To:      h.recipient,
		Subject: fmt.Sprintf("New product: %s", e.Name),
		Body:    fmt.Sprintf("%s (%s) is now available for %.2f", e.Name, e.Description, e.Price),
	})
	if err != nil {
		return fmt.Errorf("send product created email: %w", err)
	}

	return nil
}
