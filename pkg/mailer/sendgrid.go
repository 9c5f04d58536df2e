package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendEndpoint = "/v3/mail/send"

// Message is a single transactional email.
type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

// Config contains the SendGrid credentials and sender identity.
type Config struct {
	APIKey    string
	FromEmail string
	FromName  string
	Timeout   time.Duration
	// Host overrides the API host, mainly for tests.
	Host string
}

// APIError is returned when SendGrid answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sendgrid responded with status %d: %s", e.StatusCode, strings.TrimSpace(e.Body))
}

// SendGrid delivers messages through the SendGrid v3 mail send API.
type SendGrid struct {
	apiKey  string
	host    string
	from    *mail.Email
	timeout time.Duration
	logger  zerolog.Logger
}

// NewSendGrid constructs a SendGrid mailer.
func NewSendGrid(cfg Config, logger zerolog.Logger) (*SendGrid, error) {
	if cfg.APIKey == "" || cfg.FromEmail == "" {
		return nil, fmt.Errorf("sendgrid api key and sender address must be provided")
	}

	host := cfg.Host
	if host == "" {
		host = "https://api.sendgrid.com"
	}

	return &SendGrid{
		apiKey:  cfg.APIKey,
		host:    host,
		from:    mail.NewEmail(cfg.FromName, cfg.FromEmail),
		timeout: cfg.Timeout,
		logger:  logger.With().Str("component", "sendgrid").Logger(),
	}, nil
}

// Send posts the message. A fresh request is built per call since the
// SendGrid request value carries the body.
func (s *SendGrid) Send(ctx context.Context, msg Message) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(s.from, msg.Subject, to, msg.Text, msg.HTML)

	request := sendgrid.GetRequest(s.apiKey, sendEndpoint, s.host)
	request.Method = rest.Post
	request.Body = mail.GetRequestBody(message)

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return &APIError{StatusCode: response.StatusCode, Body: response.Body}
	}

	s.logger.Info().
		Int("status", response.StatusCode).
		Str("message_id", firstHeader(response.Headers, "X-Message-Id")).
		Msg("email accepted by sendgrid")

	return nil
}

func firstHeader(headers map[string][]string, key string) string {
	for name, values := range headers {
		if strings.EqualFold(name, key) && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}
