package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"markguard/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	frontendURL string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName, frontendURL string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
		frontendURL: frontendURL,
	}, nil
}

func (s *sesSender) SendWelcomeEmail(ctx context.Context, toEmail, toName, tempPassword string) error {
	subject := "Your MarkGuard account is ready"
	htmlBody := buildWelcomeHTML(toName, toEmail, tempPassword, s.frontendURL)
	textBody := fmt.Sprintf("Hi %s,\n\nAn account was created for you on MarkGuard.\n\nEmail: %s\nTemporary password: %s\n\nSign in at %s and change your password after the first login.\n\nMarkGuard Team", toName, toEmail, tempPassword, s.frontendURL)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildWelcomeHTML(name, email, tempPassword, frontendURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Welcome to MarkGuard</h2>
  <p>Hi %s,</p>
  <p>An account was created for you. Use the credentials below for your first login:</p>
  <p style="background: #f5f5f5; padding: 12px; border-radius: 6px;">
    Email: <strong>%s</strong><br>
    Temporary password: <strong>%s</strong>
  </p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Sign In</a>
  </p>
  <p style="color: #999; font-size: 12px;">Change your password after the first login.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">MarkGuard - Brand Protection Platform</p>
</body>
</html>`, name, email, tempPassword, frontendURL)
}
