package logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Setenv("GIN_MODE", "release")

	log, err := New()
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))

	log, err = New(WithLevel("error"))
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.WarnLevel))

	_, err = New(WithLevel("loud"))
	require.Error(t, err)
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(WithLevel("loud"))
	})
}
