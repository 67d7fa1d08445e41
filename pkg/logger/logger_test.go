package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitAppliesLevel(t *testing.T) {
	Init("jablonet-adapter", "prod", "debug")

	require.NotNil(t, L())
	assert.True(t, L().Core().Enabled(zapcore.DebugLevel))
}

func TestInitInvalidLevelKeepsDefault(t *testing.T) {
	Init("", "prod", "chatty")

	assert.False(t, L().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, L().Core().Enabled(zapcore.InfoLevel))
}

func TestLazyAccessorsSelfInitialize(t *testing.T) {
	log = nil
	sugar = nil

	require.NotNil(t, L())
	require.NotNil(t, S())
}
