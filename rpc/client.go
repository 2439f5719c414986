package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/CADMonkey21/pivx-rpc-go/logging"
)

// Client is a JSON-RPC client for pivxd. It is safe for concurrent use.
type Client struct {
	cfg       ConnConfig
	transport Transport
	limiter   *limiter
	nextID    atomic.Uint64
}

// NewClient validates cfg and builds a client. It performs no network I/O;
// the node is first contacted by the first call.
func NewClient(cfg ConnConfig) (*Client, error) {
	cfg, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	transport := cfg.Transport
	if transport == nil {
		transport = NewHTTPTransport(cfg.Endpoint, cfg.User, cfg.Pass, cfg.HTTPClient)
	}
	return &Client{
		cfg:       cfg,
		transport: transport,
		limiter:   newLimiter(cfg.MaxConcurrent),
	}, nil
}

// Config returns the client's configuration.
func (c *Client) Config() ConnConfig {
	return c.cfg
}

// InFlight returns the number of occupied request slots.
func (c *Client) InFlight() int {
	return c.limiter.inFlight()
}

// Capacity returns the number of request slots, MaxConcurrent.
func (c *Client) Capacity() int {
	return c.limiter.capacity()
}

// Call performs a JSON-RPC call and decodes its result into result, which
// must be a pointer or nil. params are sent in order; trailing nil values
// are omitted.
//
// The call waits for a free request slot, then retries retryable transport
// failures up to MaxRetries times with the same envelope. Node errors come
// back as *RPCError, unusable responses as *DecodeError, exchange
// failures as *TransportError and requests that cannot be encoded as
// *RequestError.
func (c *Client) Call(ctx context.Context, method string, result interface{}, params ...interface{}) error {
	if err := c.limiter.acquire(ctx); err != nil {
		return &TransportError{Method: method, Err: err}
	}
	defer c.limiter.release()

	req := newRequest(c.nextID.Add(1), method, params)
	body, err := json.Marshal(req)
	if err != nil {
		return requestErrorf(method, "encode request: %w", err)
	}

	logging.Debugf("RPC: -> %s id=%d params=%d", method, req.ID, len(req.Params))
	raw, err := c.send(ctx, method, body)
	if err != nil {
		return err
	}
	return decodeResponse(method, req.ID, raw, result)
}

// CallRaw performs a call and returns the undecoded result payload.
func (c *Client) CallRaw(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.Call(ctx, method, &raw, params...); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) send(ctx context.Context, method string, body []byte) ([]byte, error) {
	attempts := c.cfg.MaxRetries + 1
	var lastErr *TransportError
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			logging.Debugf("RPC: retrying %s (attempt %d/%d) after: %v", method, attempt, attempts, lastErr.Err)
			if err := sleep(ctx, c.cfg.RetryDelay); err != nil {
				return nil, &TransportError{Method: method, Attempts: attempt - 1, Err: err}
			}
		}

		raw, err := c.attempt(ctx, body)
		if err == nil {
			return raw, nil
		}
		te := asTransportError(err)
		te.Method = method
		te.Attempts = attempt
		if ctx.Err() != nil {
			te.Retryable = false
			te.Err = ctx.Err()
		}
		if !te.Retryable {
			return nil, te
		}
		lastErr = te
	}
	logging.Warnf("RPC: %s failed after %d attempt(s): %v", method, attempts, lastErr.Err)
	return nil, lastErr
}

type roundTripResult struct {
	raw []byte
	err error
}

// attempt runs one exchange under the per-attempt timeout. The timeout is
// enforced here even if the transport ignores its context.
func (c *Client) attempt(ctx context.Context, body []byte) ([]byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	done := make(chan roundTripResult, 1)
	go func() {
		raw, err := c.transport.RoundTrip(attemptCtx, body)
		done <- roundTripResult{raw: raw, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil && ctx.Err() == nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return nil, timeoutError(c.cfg.Timeout)
		}
		return res.raw, res.err
	case <-attemptCtx.Done():
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, timeoutError(c.cfg.Timeout)
	}
}

func timeoutError(d time.Duration) *TransportError {
	return &TransportError{Retryable: true, Err: fmt.Errorf("no response within %s: %w", d, context.DeadlineExceeded)}
}

func asTransportError(err error) *TransportError {
	var te *TransportError
	if errors.As(err, &te) {
		cp := *te
		if cp.Err == nil {
			cp.Err = fmt.Errorf("transport failed with HTTP status %d", cp.StatusCode)
		}
		return &cp
	}
	return &TransportError{Err: err}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
