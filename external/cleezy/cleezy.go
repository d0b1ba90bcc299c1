package cleezy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client talks to the cleezy URL-shortener service. The API stays
// usable when the service is not deployed: Enabled() lets handlers
// answer {disabled:true} instead of erroring.
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

type ShortURL struct {
	URL       string `json:"url"`
	Alias     string `json:"alias"`
	CreatedAt string `json:"created_at,omitempty"`
}

type ListResult struct {
	Data        []ShortURL `json:"data"`
	Total       int        `json:"total"`
	RowsPerPage int        `json:"rows_per_page"`
}

func (c *Client) List(ctx context.Context, page int, search, sortBy, order string) (*ListResult, error) {
	u, err := url.Parse(c.baseURL + "/list")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	if search != "" {
		q.Set("search", search)
	}
	q.Set("sort_by", sortBy)
	q.Set("order", order)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cleezy list: %s", resp.Status)
	}

	var out ListResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

type createRequest struct {
	URL            string  `json:"url"`
	Alias          *string `json:"alias"`
	ExpirationDate *string `json:"expiration_date"`
}

func (c *Client) Create(ctx context.Context, target, alias, expireDate string) (*ShortURL, error) {
	if target == "" {
		return nil, errors.New("url is required")
	}
	body := createRequest{URL: target}
	if alias != "" {
		body.Alias = &alias
	}
	if expireDate != "" {
		body.ExpirationDate = &expireDate
	}

	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/create_url", bytes.NewBuffer(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("cleezy create: %s", resp.Status)
	}

	var out ShortURL
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Delete(ctx context.Context, alias string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/delete/"+url.PathEscape(alias), nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("cleezy delete: %s", resp.Status)
	}
	return nil
}
