package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rpupo63/domp-site-backend/errs"
	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// Email is a message to send through Resend.
type Email struct {
	To      []string
	Subject string
	Html    string
	Text    string
	ReplyTo string
}

// Mailer sends transactional email through the Resend HTTP API.
type Mailer struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
}

func NewMailer(apiKey, from string) *Mailer {
	return &Mailer{
		apiKey:   apiKey,
		from:     from,
		endpoint: resendEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// WithEndpoint points the mailer at another Resend compatible URL.
func (m *Mailer) WithEndpoint(endpoint string) *Mailer {
	m.endpoint = endpoint
	return m
}

// Send delivers email and returns the Resend message id.
func (m *Mailer) Send(ctx context.Context, email Email) (string, error) {
	if m == nil || m.apiKey == "" {
		return "", errs.NewConfigMissingError("RESEND_API_KEY", "RESEND_API_KEY no está configurado en las variables de entorno")
	}
	if len(email.To) == 0 {
		return "", fmt.Errorf("at least one recipient is required")
	}

	payload, err := json.Marshal(ResendEmailRequest{
		From:    m.from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.Html,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", errs.NewServiceUnavailableError("Resend", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Message != "" {
			return "", fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return "", fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(body))
	}

	var sent ResendEmailResponse
	if err := json.Unmarshal(body, &sent); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
		return "", nil
	}
	log.Info().Str("emailId", sent.ID).Msg("Successfully sent email via Resend")
	return sent.ID, nil
}
