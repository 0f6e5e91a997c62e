package slog

import (
	"bytes"
	"encoding/json"
	stdslog "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unkn0wn-root/cachedhash"
)

func TestSlogLoggerLevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	h := stdslog.NewJSONHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug})
	l := Logger{L: stdslog.New(h)}

	l.Debug("d", cachedhash.Fields{"code": 7})
	l.Error("e", nil)

	dec := json.NewDecoder(&buf)
	var first, second map[string]any
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))

	assert.Equal(t, "DEBUG", first["level"])
	assert.Equal(t, "d", first["msg"])
	assert.Equal(t, float64(7), first["code"])
	assert.Equal(t, "ERROR", second["level"])
}
