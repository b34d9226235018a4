package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickofolas/wdle/internal/config"
)

func TestWordsCommand(t *testing.T) {
	dir := t.TempDir()
	secrets := filepath.Join(dir, "secrets.txt")
	guesses := filepath.Join(dir, "guesses.txt")
	require.NoError(t, os.WriteFile(secrets, []byte("crane\nslate\n"), 0o644))
	require.NoError(t, os.WriteFile(guesses, []byte("zincy\n"), 0o644))

	cfg := config.Config{}
	cmd := newWordsCmd(&cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--secrets", secrets, "--guesses", guesses})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "secrets: 2\nguesses: 3\n", out.String())
}

func TestWordsCommandMissingFile(t *testing.T) {
	cfg := config.Config{}
	cmd := newWordsCmd(&cfg)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--secrets", filepath.Join(t.TempDir(), "missing.txt")})
	assert.Error(t, cmd.Execute())
}

func TestServeRefusesDevSecretInProduction(t *testing.T) {
	cfg := config.FromEnv()
	cfg.Production = true
	cfg.SessionSecret = config.DefaultSessionSecret
	cfg.Store = config.StoreMemory

	err := runServe(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}
