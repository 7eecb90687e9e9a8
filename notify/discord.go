// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go"
)

// Notifier forwards listener submissions to the team's chat. Failures are
// the caller's to log; a notification must never fail the request that
// triggered it.
type Notifier interface {
	SongRequest(ctx context.Context, nick, style, idea, id string) error
	Suggestion(ctx context.Context, nick, message, id string) error
	Report(ctx context.Context, nick, message, id string) error
}

// Discord posts messages to Discord webhooks, one URL per submission
// type. An empty URL silently disables that notification.
type Discord struct {
	requestsURL    string
	suggestionsURL string
	reportsURL     string
	client         *http.Client
}

func NewDiscord(requestsURL, suggestionsURL, reportsURL string) *Discord {
	return &Discord{
		requestsURL:    requestsURL,
		suggestionsURL: suggestionsURL,
		reportsURL:     reportsURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (d *Discord) SongRequest(ctx context.Context, nick, style, idea, id string) error {
	content := fmt.Sprintf(
		"🎵 **Nueva petición de canción**\n👤 Nick: %s\n🎧 Estilo: %s\n📝 Idea:\n%s\n\n🆔 ID petición: %s",
		nick, style, idea, id,
	)
	return d.post(ctx, d.requestsURL, content)
}

func (d *Discord) Suggestion(ctx context.Context, nick, message, id string) error {
	content := fmt.Sprintf(
		"💡 **Nueva sugerencia para BeefMusic**\n👤 Nick: %s\n📝 Sugerencia:\n%s\n\n🆔 ID sugerencia: %s",
		orAnonymous(nick), message, id,
	)
	return d.post(ctx, d.suggestionsURL, content)
}

func (d *Discord) Report(ctx context.Context, nick, message, id string) error {
	content := fmt.Sprintf(
		"🐛 **Nuevo reporte de problema en BeefMusic**\n👤 Nick: %s\n📝 Detalle del problema:\n%s\n\n🆔 ID reporte: %s",
		orAnonymous(nick), message, id,
	)
	return d.post(ctx, d.reportsURL, content)
}

func (d *Discord) post(ctx context.Context, url, content string) error {
	if url == "" {
		return nil
	}

	body, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	err = retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := d.client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				return fmt.Errorf("webhook returned status %d", resp.StatusCode)
			}
			return nil
		},
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
	)
	if err != nil {
		return fmt.Errorf("posting to webhook: %w", err)
	}
	return nil
}

func orAnonymous(nick string) string {
	if nick == "" {
		return "Anónimo"
	}
	return nick
}
