// Package pivxjson models the results returned by a PIVX full node's JSON-RPC
// interface.
//
// Records mirror the node's JSON schema. A non-pointer field without
// omitempty is required: decoding fails with ErrMissingField when the node
// leaves it out or sends null. Pointer fields are optional and stay nil when
// absent.
//
// Several results change shape with runtime conditions instead of carrying a
// discriminant. Those are modeled as closed variant sets (TxOutReply, Vin,
// RawMempool, RawTransactionReply, BlockTxList) that pick their variant by
// looking at the JSON actually returned.
package pivxjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

var (
	// ErrUnknownShape is wrapped when a value matches none of the shapes its
	// type accepts.
	ErrUnknownShape = errors.New("unrecognized json shape")

	// ErrMissingField is wrapped when a required record field is absent or null.
	ErrMissingField = errors.New("missing required field")
)

// Shape names the JSON kind of a raw value: "null", "object", "array",
// "string", "number", "boolean" or "invalid".
func Shape(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "invalid"
	}
	switch data[0] {
	case 'n':
		return "null"
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return "number"
	}
	return "invalid"
}

// IsNull reports whether data is empty or the JSON literal null.
func IsNull(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}

var requiredCache sync.Map // reflect.Type -> []string

func requiredFields(t reflect.Type) []string {
	if cached, ok := requiredCache.Load(t); ok {
		return cached.([]string)
	}
	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Type.Kind() == reflect.Pointer {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if strings.Contains(opts, "omitempty") {
			continue
		}
		if name == "" {
			name = f.Name
		}
		names = append(names, name)
	}
	requiredCache.Store(t, names)
	return names
}

// decodeRecord unmarshals a JSON object into v, a pointer to a method-less
// copy of a record type, after checking that every required field is present.
func decodeRecord(data []byte, v interface{}) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return fmt.Errorf("%w: want object, got %s", ErrUnknownShape, Shape(data))
	}
	t := reflect.TypeOf(v).Elem()
	for _, name := range requiredFields(t) {
		raw, ok := fields[name]
		if !ok || IsNull(raw) {
			return fmt.Errorf("%w %q", ErrMissingField, name)
		}
	}
	return json.Unmarshal(data, v)
}
