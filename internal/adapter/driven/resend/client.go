// Package resend implements the Notifier port using the Resend email API.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"github.com/ericfisherdev/portfolio-api/internal/domain/model"
	"github.com/ericfisherdev/portfolio-api/internal/domain/port/driven"
)

const defaultBaseURL = "https://api.resend.com"

// Compile-time interface satisfaction check.
var _ driven.Notifier = (*Client)(nil)

// Client sends contact-form notification emails through the Resend REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	from       string
	to         string
}

// NewClient creates a notifier that delivers to the given recipient.
func NewClient(apiKey, from, to string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		from:       from,
		to:         to,
	}
}

// NewClientWithBaseURL creates a Client pointed at a custom endpoint.
// Intended for testing against an httptest server.
func NewClientWithBaseURL(httpClient *http.Client, baseURL, apiKey, from, to string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		from:       from,
		to:         to,
	}
}

// sendRequest is the Resend /emails payload.
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// Notify emails the admin about a newly persisted contact message. The
// sender's address is set as reply-to so the admin can answer directly.
func (c *Client) Notify(ctx context.Context, msg model.ContactMessage) error {
	subject := msg.Subject
	if subject == "" {
		subject = "New Message"
	}

	payload := sendRequest{
		From:    c.from,
		To:      []string{c.to},
		Subject: "Portfolio Contact: " + subject,
		HTML:    renderHTML(msg),
		Text:    renderText(msg),
		ReplyTo: msg.Email,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("send notification: resend responded %d: %s", resp.StatusCode, detail)
	}

	return nil
}

func renderText(msg model.ContactMessage) string {
	subject := msg.Subject
	if subject == "" {
		subject = "No subject"
	}

	return fmt.Sprintf("New Contact Form Submission\n\nFrom: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s\n\n---\nReply to: %s\n",
		msg.Name, msg.Email, subject, msg.Message, msg.Email)
}

func renderHTML(msg model.ContactMessage) string {
	subject := msg.Subject
	if subject == "" {
		subject = "No subject"
	}

	return fmt.Sprintf(
		`<h2>New Contact Form Submission</h2>
<p><strong>From:</strong> %s</p>
<p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<blockquote style="white-space: pre-wrap">%s</blockquote>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Email),
		html.EscapeString(subject),
		html.EscapeString(msg.Message),
	)
}
