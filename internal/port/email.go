package port

import "context"

// EmailSender defines the contract for sending transactional emails.
type EmailSender interface {
	SendWelcomeEmail(ctx context.Context, toEmail, toName, tempPassword string) error
}
