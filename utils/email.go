// utils/email.go
package utils

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/keighl/postmark"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService() *EmailService {
	apiToken := os.Getenv("POSTMARK_API_TOKEN")
	if apiToken == "" {
		panic("POSTMARK_API_TOKEN is not set in environment variables")
	}
	client := postmark.NewClient(apiToken, "")
	return &EmailService{
		client: client,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent, textContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     os.Getenv("EMAIL_SENDER"),
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: textContent,
	})

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOrderCopy mails the store inbox a copy of an order summary that
// was handed off to WhatsApp. Best effort only; the order itself does
// not depend on this email.
func (es *EmailService) SendOrderCopy(toEmail, storeName, orderMessage string) error {
	subject := fmt.Sprintf("Novo pedido - %s", storeName)
	htmlContent := "<pre>" + html.EscapeString(orderMessage) + "</pre>"
	textContent := strings.ReplaceAll(orderMessage, "*", "")

	return es.SendEmail(toEmail, subject, htmlContent, textContent)
}
