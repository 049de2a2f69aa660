package noop

import (
	"context"
	"log"

	"markguard/internal/port"
)

type noopSender struct {
	frontendURL string
}

// NewNoopSender creates a no-op EmailSender that logs credentials to stdout.
// Used in development where SES is not configured.
func NewNoopSender(frontendURL string) port.EmailSender {
	return &noopSender{frontendURL: frontendURL}
}

func (s *noopSender) SendWelcomeEmail(_ context.Context, toEmail, toName, tempPassword string) error {
	log.Printf("[NOOP EMAIL] Welcome email for %s (%s): temporary password %q, sign in at %s",
		toName, toEmail, tempPassword, s.frontendURL)
	return nil
}
