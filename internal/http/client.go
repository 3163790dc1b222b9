package http

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/Jrokz2315/SecureID/internal/log"
)

// NewRetryableTransport returns a RoundTripper with the default retry policy.
// Gateways mount it under their auth transports so transient upstream errors
// are retried before they surface.
func NewRetryableTransport() http.RoundTripper {
	rc := retryablehttp.NewClient()
	rc.Logger = nil
	return &retryablehttp.RoundTripper{Client: rc}
}

// Client represents default http client that can be used to send requests to third party services
type Client struct {
	base *http.Client
}

// NewClient returns new instance of custom client
func NewClient(c *http.Client) *Client {
	return &Client{base: c}
}

// Get sends a GET request to url
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}
	return c.execute(ctx, req)
}

// Post sends a POST request to url with the given json body
func (c *Client) Post(ctx context.Context, url string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	return c.execute(ctx, req)
}

// Patch sends a PATCH request to url with the given json body
func (c *Client) Patch(ctx context.Context, url string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	return c.execute(ctx, req)
}

// Delete sends a DELETE request to url
func (c *Client) Delete(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, http.NoBody)
	if err != nil {
		return nil, err
	}
	return c.execute(ctx, req)
}

// StatusError is returned when the upstream service answers with a non 2xx
// status code. It keeps the upstream status so callers can propagate it.
type StatusError struct {
	Status int
	Body   string
}

// Error satisfies the error interface for StatusError
func (e *StatusError) Error() string {
	return errors.Errorf("http request failed with status %d, error: %s", e.Status, e.Body).Error()
}

func (c *Client) execute(ctx context.Context, r *http.Request) ([]byte, error) {
	r.Header.Set("Content-Type", "application/json")
	if requestID := middleware.GetReqID(ctx); requestID != "" {
		r.Header.Set(middleware.RequestIDHeader, requestID)
	}

	resp, err := c.base.Do(r)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Error(ctx, "can not close body", "err", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
