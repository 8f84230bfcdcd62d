// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

// Package mail sends transactional email through the Resend HTTP API.
// The contact form uses it to notify the site owner of new submissions.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"devportfolio/internal/models"
)

// DefaultBaseURL is the production Resend API endpoint. Tests point the
// mailer at an httptest server instead.
const DefaultBaseURL = "https://api.resend.com"

// Notifier is implemented by anything that can announce a new contact
// submission. The public handler depends on this interface so tests can
// substitute a recorder.
type Notifier interface {
	NotifySubmission(ctx context.Context, sub *models.ContactSubmission) error
}

// Mailer sends email via Resend. A nil Mailer is a valid no-op Notifier,
// letting the app run without outbound email configured.
type Mailer struct {
	apiKey   string
	from     string
	notifyTo string
	baseURL  string
	client   *http.Client
}

// New creates a Mailer. Returns nil when apiKey or notifyTo is empty, which
// disables notifications without special-casing at every call site.
func New(apiKey, from, notifyTo string) *Mailer {
	if apiKey == "" || notifyTo == "" {
		return nil
	}
	return &Mailer{
		apiKey:   apiKey,
		from:     from,
		notifyTo: notifyTo,
		baseURL:  DefaultBaseURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// WithBaseURL overrides the API endpoint. Used by tests.
func (m *Mailer) WithBaseURL(url string) *Mailer {
	m.baseURL = url
	return m
}

// sendRequest is the Resend API payload.
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
}

// sendResponse is the success body; errorResponse the failure body.
type sendResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// NotifySubmission emails the configured inbox about a new contact
// submission. Safe to call on a nil Mailer.
func (m *Mailer) NotifySubmission(ctx context.Context, sub *models.ContactSubmission) error {
	if m == nil {
		return nil
	}

	subject := "New contact submission: " + sub.Subject
	body := fmt.Sprintf(
		"<h2>New contact form submission</h2>"+
			"<p><strong>From:</strong> %s &lt;%s&gt;</p>"+
			"<p><strong>Subject:</strong> %s</p>"+
			"<p>%s</p>",
		html.EscapeString(sub.Name),
		html.EscapeString(sub.Email),
		html.EscapeString(sub.Subject),
		html.EscapeString(sub.Message),
	)

	return m.send(ctx, subject, body)
}

// send posts one email to the Resend API.
func (m *Mailer) send(ctx context.Context, subject, htmlBody string) error {
	payload, err := json.Marshal(sendRequest{
		From:    m.from,
		To:      []string{m.notifyTo},
		Subject: subject,
		HTML:    htmlBody,
	})
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read email response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("resend api (status %d): %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("resend api (status %d): %s", resp.StatusCode, raw)
	}

	var ok sendResponse
	if err := json.Unmarshal(raw, &ok); err != nil {
		// The mail went out; a malformed body is not worth failing over.
		return nil
	}
	return nil
}
