package player

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogEngine_Lifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.mp3")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	var buf bytes.Buffer
	e := NewLogEngine(zerolog.New(&buf))

	require.NoError(t, e.SetSource(path))
	e.Play()
	assert.Equal(t, Playing, e.State())

	e.Pause()
	assert.Equal(t, Paused, e.State())

	e.Stop()
	assert.Equal(t, Stopped, e.State())

	out := buf.String()
	assert.Contains(t, out, `"message":"play"`)
	assert.Contains(t, out, `"component":"engine"`)
	assert.Equal(t, 1, strings.Count(out, `"message":"stop"`))
}

func TestLogEngine_MissingSource(t *testing.T) {
	e := NewLogEngine(zerolog.Nop())

	err := e.SetSource(filepath.Join(t.TempDir(), "missing.mp3"))
	assert.True(t, errors.Is(err, ErrMissingSource))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	e.Play()
	assert.Equal(t, Stopped, e.State(), "nothing loaded, nothing plays")

	err = e.Enqueue(filepath.Join(t.TempDir(), "missing.mp3"))
	assert.ErrorIs(t, err, ErrMissingSource)
}
