package speaker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client drives the clubroom speaker peripheral over its HTTP control
// surface. Like cleezy, the peripheral may simply not be deployed.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// Queued returns the speaker's current play queue as raw JSON; the API
// forwards it untouched.
func (c *Client) Queued(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/queued", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("speaker queued: %s", resp.Status)
	}

	var out json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// Stream asks the speaker to queue the given stream URL.
func (c *Client) Stream(ctx context.Context, streamURL string) error {
	return c.post(ctx, "/stream", map[string]string{"url": streamURL})
}

func (c *Client) Pause(ctx context.Context) error  { return c.post(ctx, "/pause", nil) }
func (c *Client) Resume(ctx context.Context) error { return c.post(ctx, "/resume", nil) }
func (c *Client) Skip(ctx context.Context) error   { return c.post(ctx, "/skip", nil) }

func (c *Client) post(ctx context.Context, path string, body any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("speaker %s: %s", path, resp.Status)
	}
	return nil
}
