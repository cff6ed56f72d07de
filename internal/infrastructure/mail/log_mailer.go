package mail

import (
	"context"

	"acredge/pkg/logger"
)

// LogMailer writes messages to the log instead of sending them. It is used
// in development when no SMTP relay is configured.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	logger.Info("mail to %s: %s: %s", to, subject, textBody)
	return nil
}
