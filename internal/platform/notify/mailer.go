package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shepherdsuite/church_mgmt_app/internal/platform/config"
)

// Mailer dispatches transactional email. Implementations must be best-effort
// safe: callers treat failures as non-fatal.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// emailRequest is the ZeptoMail-compatible API payload.
type emailRequest struct {
	From     emailAddress  `json:"from"`
	To       []toRecipient `json:"to"`
	Subject  string        `json:"subject"`
	HTMLBody string        `json:"htmlbody"`
}

type emailAddress struct {
	Address string `json:"address"`
}

type toRecipient struct {
	Email emailWithName `json:"email_address"`
}

type emailWithName struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// HTTPMailer sends email through a ZeptoMail-compatible HTTP API.
type HTTPMailer struct {
	apiURL string
	apiKey string
	from   string
	client *http.Client
}

// NewHTTPMailer creates a mailer from config.
func NewHTTPMailer(cfg *config.Config) *HTTPMailer {
	return &HTTPMailer{
		apiURL: cfg.MailAPIURL,
		apiKey: cfg.MailAPIKey,
		from:   cfg.MailFromEmail,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Send posts an HTML email to the mail API.
func (m *HTTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.apiURL == "" || m.apiKey == "" || m.from == "" {
		return fmt.Errorf("mailer not configured")
	}

	payload := emailRequest{
		From:     emailAddress{Address: m.from},
		To:       []toRecipient{{Email: emailWithName{Address: to}}},
		Subject:  subject,
		HTMLBody: htmlBody,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("mail API error: %s", resp.Status)
	}

	return nil
}

// NoopMailer drops email on the floor. Used when mail is not configured.
type NoopMailer struct{}

func (NoopMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	return nil
}
