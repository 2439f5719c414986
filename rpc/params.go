package rpc

import (
	"github.com/CADMonkey21/pivx-rpc-go/util"
)

func hashParam(method, name, value string) (string, error) {
	h, err := util.NormalizeHash(value)
	if err != nil {
		return "", requestErrorf(method, "%s: %w", name, err)
	}
	return h, nil
}

// optString turns an empty optional string into an absent parameter.
func optString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
