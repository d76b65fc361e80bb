package strapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bekwynlaw/law-site-api/pkg/logging"
)

const defaultTimeout = 20 * time.Second

// Client talks to the Strapi instance that acts as both the CMS and the
// store of record for inquiries and newsletter subscribers.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *logging.Logger
}

// NewClient creates a Strapi client. A trailing slash on baseURL is
// trimmed so request paths can always start with "/".
func NewClient(baseURL, token string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// HasToken reports whether a bearer token is configured. Write paths
// require one; callers check this before attempting a network call.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// BaseURL returns the configured Strapi base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// UpstreamError is a non-2xx response from Strapi. Detail carries the
// decoded response body when the store returned JSON, or {"raw": text}
// otherwise.
type UpstreamError struct {
	Status int
	Detail any
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("strapi: upstream returned status %d", e.Status)
}

// Inquiry is the lead record persisted to the store. Nil Phone and
// Service are serialized as JSON null, matching the store's schema.
type Inquiry struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Service   *string `json:"service"`
	Message   string  `json:"message"`
	Source    string  `json:"source"`
}

// CreateInquiry persists one lead. Any non-2xx status is returned as an
// *UpstreamError; the caller decides whether that is fatal.
func (c *Client) CreateInquiry(ctx context.Context, inquiry Inquiry) error {
	payload := map[string]Inquiry{"data": inquiry}

	resp, err := c.post(ctx, "/api/inquiries", payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	var detail any
	if err := json.Unmarshal(body, &detail); err != nil {
		detail = map[string]string{"raw": string(body)}
	}
	c.logger.Error("strapi rejected inquiry", "status", resp.StatusCode, "source", inquiry.Source)
	return &UpstreamError{Status: resp.StatusCode, Detail: detail}
}

// SubscribeStatus distinguishes a fresh subscriber from a repeat signup.
type SubscribeStatus string

const (
	SubscribeCreated SubscribeStatus = "created"
	SubscribeExists  SubscribeStatus = "exists"
)

// Subscriber is the newsletter upsert payload. Email is expected to be
// lowercased by the caller.
type Subscriber struct {
	Email  string  `json:"email"`
	Name   *string `json:"name"`
	Source *string `json:"source"`
}

// UpsertSubscriber upserts a subscriber by email. Strapi answers 200 or
// 201 with a status field; "exists" means the email was already on the
// list, anything else counts as created.
func (c *Client) UpsertSubscriber(ctx context.Context, sub Subscriber) (SubscribeStatus, error) {
	resp, err := c.post(ctx, "/api/newsletter/subscribe", sub)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		var result struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err == nil && result.Status == "exists" {
			return SubscribeExists, nil
		}
		return SubscribeCreated, nil
	}

	body, _ := io.ReadAll(resp.Body)
	return "", fmt.Errorf("strapi: unable to create subscriber (%d): %s", resp.StatusCode, string(body))
}

// GetJSON fetches a content endpoint and decodes the response body.
// The content read path tolerates missing data, so callers treat any
// error here as "no content right now" rather than a page failure.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values) (map[string]any, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("strapi: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("strapi: get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("strapi: decode %s: %w", path, err)
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("strapi: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("strapi: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("strapi: post %s: %w", path, err)
	}
	return resp, nil
}
