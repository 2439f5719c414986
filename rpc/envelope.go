package rpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/btcsuite/btcd/btcjson"

	"github.com/CADMonkey21/pivx-rpc-go/pivxjson"
)

// Request is the JSON-RPC envelope sent to the node.
type Request struct {
	Jsonrpc string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// Response is the JSON-RPC envelope returned by the node.
type Response struct {
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
	ID     json.RawMessage `json:"id"`
}

func newRequest(id uint64, method string, params []interface{}) *Request {
	return &Request{
		Jsonrpc: "1.0",
		ID:      id,
		Method:  method,
		Params:  trimParams(params),
	}
}

// trimParams drops trailing absent optional parameters. Absent parameters
// followed by a present one stay in place and encode as null.
func trimParams(params []interface{}) []interface{} {
	n := len(params)
	for n > 0 && isAbsent(params[n-1]) {
		n--
	}
	out := make([]interface{}, n)
	copy(out, params[:n])
	return out
}

func isAbsent(p interface{}) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func idMatches(raw json.RawMessage, id uint64) bool {
	raw = bytes.TrimSpace(raw)
	want := strconv.FormatUint(id, 10)
	if string(raw) == want {
		return true
	}
	var s string
	return json.Unmarshal(raw, &s) == nil && s == want
}

// decodeResponse parses the envelope in body and decodes its result into
// result. An error payload short-circuits decoding.
func decodeResponse(method string, id uint64, body []byte, result interface{}) error {
	if pivxjson.Shape(body) != "object" {
		return &DecodeError{Method: method, Err: fmt.Errorf("%w: envelope is %s", pivxjson.ErrUnknownShape, pivxjson.Shape(body))}
	}
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return &DecodeError{Method: method, Err: err}
	}

	if !pivxjson.IsNull(resp.Error) {
		var nodeErr btcjson.RPCError
		if err := json.Unmarshal(resp.Error, &nodeErr); err != nil {
			return &DecodeError{Method: method, Err: fmt.Errorf("error payload: %w", err)}
		}
		return &RPCError{Method: method, Code: nodeErr.Code, Message: nodeErr.Message}
	}

	if !idMatches(resp.ID, id) {
		return &DecodeError{Method: method, Err: fmt.Errorf("response id %s does not match request id %d", resp.ID, id)}
	}

	if len(resp.Result) == 0 {
		return &DecodeError{Method: method, Err: errors.New("envelope carries neither result nor error")}
	}

	switch target := result.(type) {
	case nil:
		return nil
	case *json.RawMessage:
		*target = append((*target)[:0], resp.Result...)
		return nil
	case json.Unmarshaler:
		// Variant types decide for themselves whether null is acceptable.
	default:
		if pivxjson.IsNull(resp.Result) {
			return &DecodeError{Method: method, Err: errors.New("result is null")}
		}
	}
	if err := json.Unmarshal(resp.Result, result); err != nil {
		return &DecodeError{Method: method, Err: err}
	}
	return nil
}
