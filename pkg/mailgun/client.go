package mailgun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// maxResponseSize bounds how much of a Mailgun response body is read.
const maxResponseSize = 1 << 20

// Client is the external handle that delivers a prepared payload.
// Implementations must be safe for concurrent use.
type Client interface {
	Send(ctx context.Context, payload *Payload) (*Response, error)
}

// Response is Mailgun's reply to an accepted message.
type Response struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// HTTPClient posts payloads to the Mailgun Messages API as multipart forms.
type HTTPClient struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

// NewHTTPClient creates a Mailgun API client for cfg.Domain.
// Returns an error if APIKey or Domain is empty.
func NewHTTPClient(cfg Config, opts ...Option) (*HTTPClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Domain == "" {
		return nil, ErrMissingDomain
	}

	o := newOptions(opts)

	base := cfg.BaseURL
	if o.baseURL != "" {
		base = o.baseURL
	}
	if base == "" {
		base = DefaultBaseURL
	}

	return &HTTPClient{
		httpClient: o.httpClient,
		endpoint:   strings.TrimRight(base, "/") + "/" + url.PathEscape(cfg.Domain) + "/messages",
		apiKey:     cfg.APIKey,
	}, nil
}

// Endpoint returns the messages URL requests are posted to.
func (c *HTTPClient) Endpoint() string {
	return c.endpoint
}

// Send implements Client.
func (c *HTTPClient) Send(ctx context.Context, payload *Payload) (*Response, error) {
	body, contentType, err := encodeForm(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, errors.Join(ErrSendFailed, fmt.Errorf("build request: %w", err))
	}
	req.SetBasicAuth("api", c.apiKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrSendFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Join(ErrDecodeFailed, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Join(ErrRequestFailed, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data),
		})
	}

	var out Response
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Join(ErrDecodeFailed, err)
	}

	return &out, nil
}

// errorMessage extracts Mailgun's {"message": ...} or falls back to the raw body.
func errorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return strings.TrimSpace(string(data))
}
