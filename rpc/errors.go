package rpc

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
)

// codeInWarmup is returned while the node is still loading its block index.
const codeInWarmup btcjson.RPCErrorCode = -28

// ErrUnauthorized is wrapped by the TransportError returned when the node
// rejects the configured credentials.
var ErrUnauthorized = errors.New("authentication rejected")

// RPCError is an error payload returned by the node. It is the node's answer,
// not a local failure, and is never retried.
type RPCError struct {
	Method  string
	Code    btcjson.RPCErrorCode
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("RPC Error - Method: %s, Code: %d, Message: %s", e.Method, e.Code, e.Message)
}

func (e *RPCError) IsWarmup() bool {
	return e.Code == codeInWarmup
}

func (e *RPCError) IsMethodNotFound() bool {
	return e.Code == btcjson.ErrRPCMethodNotFound.Code
}

// IsNotFound reports the code the node uses for unknown blocks,
// transactions and addresses.
func (e *RPCError) IsNotFound() bool {
	return e.Code == btcjson.ErrRPCInvalidAddressOrKey
}

// TransportError reports a failure to exchange a request with the node:
// connection errors, timeouts and HTTP statuses that carry no JSON-RPC answer.
type TransportError struct {
	Method     string
	Attempts   int
	StatusCode int
	Retryable  bool
	Err        error
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("rpc %s: transport failure", e.Method)
	if e.Attempts > 0 {
		msg += fmt.Sprintf(" after %d attempt(s)", e.Attempts)
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (HTTP %d)", e.StatusCode)
	}
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response the client could not understand: a broken
// envelope, a result of the wrong shape or a missing required field. It
// usually means client and node disagree on the schema.
type DecodeError struct {
	Method string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("rpc %s: decode response: %v", e.Method, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RequestError reports a call rejected before anything was sent: an
// argument failed a local check or the request could not be encoded. It is
// never retried.
type RequestError struct {
	Method string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("rpc %s: %v", e.Method, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func requestErrorf(method, format string, args ...interface{}) *RequestError {
	return &RequestError{Method: method, Err: fmt.Errorf(format, args...)}
}

// ConfigError reports an invalid ConnConfig. It is only returned by NewClient.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rpc config: %s %s", e.Field, e.Reason)
}

// IsRetryable reports whether err is a transport failure of a transient kind.
func IsRetryable(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.Retryable
}
