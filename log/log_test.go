package log

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel("info")

	require.NoError(t, SetLevel("debug"))
	assert.True(t, IsDebug())

	require.NoError(t, SetLevel("warn"))
	assert.False(t, IsDebug())

	assert.Error(t, SetLevel("loud"))
}

func TestSetFormat(t *testing.T) {
	assert.NoError(t, SetFormat("text"))
	assert.NoError(t, SetFormat("JSON"))
	assert.Error(t, SetFormat("xml"))

	SetFormat("text")
}

func TestWith(t *testing.T) {
	var b bytes.Buffer

	SetOutput(&b)
	SetFormat("json")
	defer func() {
		SetFormat("text")
		SetOutput(os.Stderr)
	}()

	With("tab", "Lisde").Warnf("unable to read tab (%v)", "permission denied")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(b.Bytes(), &entry))

	assert.Equal(t, "Lisde", entry["tab"])
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "unable to read tab (permission denied)", entry["msg"])
}

func TestFatalf(t *testing.T) {
	var b bytes.Buffer
	var code int

	SetOutput(&b)
	logger.ExitFunc = func(c int) { code = c }
	defer func() {
		logger.ExitFunc = os.Exit
		SetOutput(os.Stderr)
	}()

	Fatalf("%v", "missing spreadsheet ID")

	assert.Equal(t, 1, code)
	assert.Contains(t, b.String(), "level=fatal")
	assert.Contains(t, b.String(), "missing spreadsheet ID")
}
