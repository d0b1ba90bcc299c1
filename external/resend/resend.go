package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultBaseURL = "https://api.resend.com"

// Mailer delivers registration verification mail through the Resend
// HTTP API. The message it sends carries the only copy of the pending
// registration token, so a lost email means signing up again.
type Mailer struct {
	apiKey  string
	from    string
	baseURL string
	client  *http.Client
}

func NewMailer(from string) (*Mailer, error) {
	key := os.Getenv("RESEND_API_KEY")
	if key == "" {
		return nil, errors.New("RESEND_API_KEY not set")
	}
	return &Mailer{
		apiKey:  key,
		from:    from,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

const verificationHTML = `<p>Welcome to the club!</p>
<p>Click the link below to confirm your email address and activate your membership account:</p>
<p><a href="%s">Confirm Email</a></p>
<p>If you did not sign up, you can ignore this message.</p>`

func (m *Mailer) SendVerificationEmail(ctx context.Context, toEmail, verifyURL string) error {
	return m.send(ctx, message{
		From:    m.from,
		To:      []string{toEmail},
		Subject: "Confirm your club registration",
		HTML:    fmt.Sprintf(verificationHTML, verifyURL),
	})
}

func (m *Mailer) send(ctx context.Context, msg message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("resend: status %d: %s", resp.StatusCode, detail)
	}
	return nil
}
