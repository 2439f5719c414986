package feed

import "encoding/json"

const (
	MethodLatest    = "feed.latest"
	MethodSubscribe = "feed.subscribe"
	MethodPing      = "feed.ping"
	MethodSnapshot  = "feed.snapshot"
)

// Request is one line sent by a feed client.
type Request struct {
	ID     *json.RawMessage `json:"id"`
	Method string           `json:"method"`
}

// Response answers a request, or with ID unset carries a pushed snapshot.
type Response struct {
	ID     *json.RawMessage `json:"id,omitempty"`
	Result interface{}      `json:"result,omitempty"`
	Error  *Error           `json:"error,omitempty"`
	Method string           `json:"method,omitempty"`
	Params interface{}      `json:"params,omitempty"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errUnknownMethod = &Error{Code: -32601, Message: "method not found"}
	errNoSnapshot    = &Error{Code: -1, Message: "no snapshot yet"}
)
