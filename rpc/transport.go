package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/CADMonkey21/pivx-rpc-go/pivxjson"
)

// Transport performs one request/response exchange with the node. It returns
// the raw response body, or an error. Returning a *TransportError lets the
// implementation say whether the failure is worth retrying; any other error
// is treated as permanent.
//
// RoundTrip must return once ctx is done. The client gives up on an attempt
// at its timeout and frees the request slot, so a transport that keeps
// running past that point is no longer counted against MaxConcurrent.
type Transport interface {
	RoundTrip(ctx context.Context, body []byte) ([]byte, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, body []byte) ([]byte, error)

func (f TransportFunc) RoundTrip(ctx context.Context, body []byte) ([]byte, error) {
	return f(ctx, body)
}

// HTTPTransport posts envelopes to the node with HTTP basic authentication.
type HTTPTransport struct {
	httpClient *http.Client
	endpoint   string
	username   string
	password   string
}

func NewHTTPTransport(endpoint, username, password string, httpClient *http.Client) *HTTPTransport {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPTransport{
		httpClient: httpClient,
		endpoint:   endpoint,
		username:   username,
		password:   password,
	}
}

func (t *HTTPTransport) RoundTrip(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if t.username != "" || t.password != "" {
		req.SetBasicAuth(t.username, t.password)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Retryable: true, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Retryable: true, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}
	// The node reports its own errors with 404/500 and an error envelope.
	// Those are answers, hand them to the decoder.
	if carriesRPCError(raw) {
		return raw, nil
	}

	te := &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected HTTP status %q", resp.Status)}
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		te.Err = ErrUnauthorized
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		te.Retryable = true
	}
	return nil, te
}

func carriesRPCError(body []byte) bool {
	if pivxjson.Shape(body) != "object" {
		return false
	}
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return false
	}
	return pivxjson.Shape(envelope.Error) == "object"
}
