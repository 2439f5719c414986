package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParams(t *testing.T) {
	params := parseParams([]string{"123", "true", "null", `["a"]`, `{"k":1}`, "DAddr", "0xzz"})
	assert.Equal(t, []interface{}{
		float64(123),
		true,
		nil,
		[]interface{}{"a"},
		map[string]interface{}{"k": float64(1)},
		"DAddr",
		"0xzz",
	}, params)
}

func TestIsClosed(t *testing.T) {
	assert.True(t, isClosed(nil))
	assert.False(t, isClosed(assert.AnError))
}
