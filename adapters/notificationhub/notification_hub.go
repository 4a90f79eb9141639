package notificationhub

import (
	"context"
	"errors"

	"github.com/ddd-patterns/backend/domain/notification"
	"github.com/ddd-patterns/backend/pkg/mycontext"
	"go.uber.org/zap"
)

var ErrRecipientRequired = errors.New("email recipient is required")

// NotificationHub simulates an outgoing mail gateway: messages are logged,
// not delivered.
type NotificationHub struct {
	from   string
	logger *zap.SugaredLogger
}

func NewNotificationHub(from string, logger *zap.SugaredLogger) *NotificationHub {
	return &NotificationHub{from: from, logger: logger}
}

func (n *NotificationHub) Send(ctx context.Context, email notification.Email) error {
	if email.To == "" {
		return ErrRecipientRequired
	}

	n.logger.Infow("email sent",
		"from", n.from,
		"to", email.To,
		"subject", email.Subject,
		"body", email.Body,
		"request_id", mycontext.RequestID(ctx),
	)

	return nil
}
