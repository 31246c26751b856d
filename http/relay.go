package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sitebind/sitebind"
)

// Relay strategies route fetches through third-party cross-origin relay
// services. Individual relays are unreliable; the Gateway chains several
// so an outage of one does not fail the run.

// Ensure relays implement sitebind.Fetcher at compile time.
var (
	_ sitebind.Fetcher = (*WrappedRelay)(nil)
	_ sitebind.Fetcher = (*RawRelay)(nil)
)

// WrappedRelay fetches through a relay service that returns a JSON
// envelope with the target's markup in a "contents" field.
type WrappedRelay struct {
	endpoint string
	client   *http.Client
}

// wrappedPayload is the relay's response envelope.
type wrappedPayload struct {
	Contents string `json:"contents"`
}

// NewWrappedRelay creates a WrappedRelay for the given endpoint.
// The endpoint receives the URL-escaped target as a `url` query parameter.
func NewWrappedRelay(endpoint string, timeout time.Duration) *WrappedRelay {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &WrappedRelay{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves markup for the target URL through the relay.
func (r *WrappedRelay) Fetch(ctx context.Context, target string) (string, error) {
	body, err := relayRequest(ctx, r.client, r.endpoint+"?url="+url.QueryEscape(target))
	if err != nil {
		return "", err
	}

	var payload wrappedPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decoding relay payload: %w", err)
	}
	if payload.Contents == "" {
		return "", fmt.Errorf("relay returned empty contents for %s", target)
	}
	return payload.Contents, nil
}

// Close is a no-op.
func (r *WrappedRelay) Close() error {
	return nil
}

// RawRelay fetches through a relay service that returns the target's
// markup directly as the response body.
type RawRelay struct {
	endpoint string
	client   *http.Client
}

// NewRawRelay creates a RawRelay for the given endpoint.
// The URL-escaped target is appended to the endpoint.
func NewRawRelay(endpoint string, timeout time.Duration) *RawRelay {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &RawRelay{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves markup for the target URL through the relay.
func (r *RawRelay) Fetch(ctx context.Context, target string) (string, error) {
	body, err := relayRequest(ctx, r.client, r.endpoint+url.QueryEscape(target))
	if err != nil {
		return "", err
	}
	if len(body) == 0 {
		return "", fmt.Errorf("relay returned empty body for %s", target)
	}
	return string(body), nil
}

// Close is a no-op.
func (r *RawRelay) Close() error {
	return nil
}

// relayRequest performs a GET against the relay endpoint and returns the
// response body. Non-200 responses count as strategy failure.
func relayRequest(ctx context.Context, client *http.Client, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("relay HTTP %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
