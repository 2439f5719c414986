package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLogLevel(LogLevelInfo)

	SetLogLevel(LogLevelWarning)
	Infof("hidden %d", 1)
	Debugf("hidden %d", 2)
	Warnf("shown %d", 3)
	Errorf("shown %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown 3")
	assert.Contains(t, out, "[ERROR] shown 4")
	assert.True(t, Enabled(LogLevelError))
	assert.False(t, Enabled(LogLevelInfo))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LogLevelWarning, ParseLevel("warn"))
	assert.Equal(t, LogLevelError, ParseLevel("error"))
	assert.Equal(t, LogLevelInfo, ParseLevel("verbose"))
}
