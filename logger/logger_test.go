package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_KeyValues(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &zapLogger{sugar: zap.New(core).Sugar()}

	l.Debug("ray cast", "columns", 240, "hits", 240)
	l.Warn("clipboard unavailable", "err", "no display")

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "ray cast", entries[0].Message)
	assert.Equal(t, int64(240), entries[0].ContextMap()["columns"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
}

func TestNew_BadLevelDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		New("loud").Info("started")
	})
}
