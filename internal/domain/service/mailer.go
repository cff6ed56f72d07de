package service

import "context"

type Mailer interface {
	Send(ctx context.Context, to, subject, textBody, htmlBody string) error
}
