package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core))

	log.Debugf("debug %d", 1)
	log.Infof("info %s", "x")
	log.Warnf("warn")
	log.Errorf(errors.New("boom"), "failed %s", "upload")

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "info x", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)

	errEntry := entries[3]
	assert.Equal(t, zapcore.ErrorLevel, errEntry.Level)
	assert.Equal(t, "failed upload", errEntry.Message)
	assert.Equal(t, "boom", errEntry.ContextMap()["error"])
}

func TestZapLogger_With(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := FromZap(zap.New(core)).With(zap.String("component", "catalog"))

	log.Infof("ready")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "catalog", logs.All()[0].ContextMap()["component"])
}

func TestNewZapLogger(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		l, err := NewZapLogger(env)
		require.NoError(t, err)
		assert.NotNil(t, l)
	}
}
