package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/kloppmigidemo-web/MVPAssessment3/internal/assessment"
	"github.com/kloppmigidemo-web/MVPAssessment3/pkg/mailer"
)

// Mailer sends one transactional email.
type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// ResultEmail builds the result notification for a recipient.
type ResultEmail struct {
	ContactPhone string
	sanitizer    *bluemonday.Policy
}

// NewResultEmail constructs the composer. An empty phone falls back to
// assessment.DefaultContactPhone.
func NewResultEmail(contactPhone string) *ResultEmail {
	contactPhone = strings.TrimSpace(contactPhone)
	if contactPhone == "" {
		contactPhone = assessment.DefaultContactPhone
	}
	return &ResultEmail{ContactPhone: contactPhone, sanitizer: bluemonday.StrictPolicy()}
}

// Compose renders subject and bodies embedding the result and contact number.
// The recipient name is user input and is stripped of markup before it is
// placed in the HTML body.
func (e *ResultEmail) Compose(toName, toEmail, result string) mailer.Message {
	name := strings.TrimSpace(e.sanitizer.Sanitize(toName))
	greeting := "<p>Thank you.</p>"
	if name != "" {
		greeting = fmt.Sprintf("<p>Thank you, %s.</p>", name)
	}

	body := greeting + fmt.Sprintf(
		"<p>Please contact <strong>%s</strong> for more information.</p><p><strong>%s</strong></p>",
		html.EscapeString(e.ContactPhone),
		html.EscapeString(result),
	)

	return mailer.Message{
		To:      toEmail,
		ToName:  toName,
		Subject: fmt.Sprintf("You need %s", result),
		Text:    fmt.Sprintf("Please contact %s for more information.\n\nAssessment Result: %s", e.ContactPhone, result),
		HTML:    body,
	}
}

// LogMailer is a development mailer that only logs messages.
type LogMailer struct {
	logger zerolog.Logger
}

// NewLogMailer constructs a logging mailer.
func NewLogMailer(logger zerolog.Logger) *LogMailer {
	return &LogMailer{logger: logger.With().Str("component", "log_mailer").Logger()}
}

// Send logs the message and reports success.
func (l *LogMailer) Send(ctx context.Context, msg mailer.Message) error {
	l.logger.Info().
		Str("to", maskEmailAddress(msg.To)).
		Str("subject", msg.Subject).
		Msg("email delivery skipped, no provider configured")
	return nil
}

func maskEmailAddress(email string) string {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return ""
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" {
		return "***"
	}
	local := []rune(parts[0])
	domain := parts[1]
	if len(local) <= 2 {
		return string(local[:1]) + "***@" + domain
	}
	return string(local[:1]) + "***" + string(local[len(local)-1:]) + "@" + domain
}
