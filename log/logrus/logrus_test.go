package logrus

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unkn0wn-root/cachedhash"
)

func TestLogrusLoggerLevelsAndFields(t *testing.T) {
	base := logrus.New()
	base.SetOutput(io.Discard)
	base.SetLevel(logrus.DebugLevel)
	hook := test.NewLocal(base)

	l := LogrusLogger{E: logrus.NewEntry(base)}
	l.Debug("d", cachedhash.Fields{"code": uint64(7)})
	l.Info("i", nil)
	l.Warn("w", nil)
	l.Error("e", cachedhash.Fields{"k": "v"})

	entries := hook.AllEntries()
	require.Len(t, entries, 4)
	assert.Equal(t, logrus.DebugLevel, entries[0].Level)
	assert.Equal(t, uint64(7), entries[0].Data["code"])
	assert.Equal(t, logrus.InfoLevel, entries[1].Level)
	assert.Equal(t, logrus.WarnLevel, entries[2].Level)
	assert.Equal(t, logrus.ErrorLevel, entries[3].Level)
	assert.Equal(t, "v", entries[3].Data["k"])
}
