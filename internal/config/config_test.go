package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/schnorr/schnorr"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 256, cfg.Group.BitLength)
	assert.Equal(t, 100, cfg.Group.Certainty)
	assert.Equal(t, "sha256", cfg.Signature.Hash)
	assert.Equal(t, "production", cfg.Logging.Mode)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.File)

	h, err := cfg.Hasher()
	require.NoError(t, err)
	assert.Equal(t, "sha256", h.Name())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schnorr.yaml")
	content := `
group:
  bit_length: 64
  certainty: 40
signature:
  hash: blake2b-512
logging:
  mode: development
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Group.BitLength)
	assert.Equal(t, 40, cfg.Group.Certainty)
	assert.Equal(t, "blake2b-512", cfg.Signature.Hash)
	assert.Equal(t, "development", cfg.Logging.Mode)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("SCHNORR_GROUP_BIT_LENGTH", "32")
	t.Setenv("SCHNORR_SIGNATURE_HASH", "sha3-256")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Group.BitLength)
	assert.Equal(t, "sha3-256", cfg.Signature.Hash)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Group:     GroupConfig{BitLength: 16, Certainty: 10},
			Signature: SignatureConfig{Hash: "sha256"},
			Logging:   LoggingConfig{Mode: "production", Level: "info"},
		}
	}
	require.NoError(t, valid().Validate())

	tests := map[string]func(c *Config){
		"bit length":   func(c *Config) { c.Group.BitLength = 1 },
		"certainty":    func(c *Config) { c.Group.Certainty = 0 },
		"hash":         func(c *Config) { c.Signature.Hash = "md5" },
		"logging mode": func(c *Config) { c.Logging.Mode = "verbose" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}

	c := valid()
	c.Signature.Hash = "md5"
	assert.ErrorIs(t, c.Validate(), schnorr.ErrUnknownHash)
}
