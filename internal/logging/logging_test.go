package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	t.Setenv(DebugEnv, "")
	log, err := New()
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zapcore.DebugLevel))
	require.False(t, Debug())

	t.Setenv(DebugEnv, "0")
	require.False(t, Debug())

	t.Setenv(DebugEnv, "1")
	log, err = New()
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(zapcore.DebugLevel))
	require.True(t, Debug())
}
