package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, ModeExtract, cfg.Mode)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, int64(DefaultMaxFileSize), cfg.MaxFileSize)
	assert.Equal(t, DefaultChunkPages, cfg.ChunkPages)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
}

func TestValidateExtractMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeExtract

	// Extract mode needs an input file
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--input")

	cfg.InputFile = "some.pdf"
	assert.NoError(t, cfg.Validate())
}

func TestValidateBatchMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeBatch
	cfg.SourceDir = t.TempDir()
	cfg.DatabasePath = "questions.db"

	assert.NoError(t, cfg.Validate())

	cfg.DatabasePath = ""
	assert.Error(t, cfg.Validate())

	cfg.DatabasePath = "questions.db"
	cfg.SourceDir = "/definitely/not/a/real/path"
	assert.Error(t, cfg.Validate())
}

func TestValidateInvalidMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = "serve"
	cfg.InputFile = "some.pdf"

	assert.Error(t, cfg.Validate())
}

func TestValidateBounds(t *testing.T) {
	base := func() *Config {
		cfg := DefaultConfig()
		cfg.InputFile = "some.pdf"
		return cfg
	}

	cfg := base()
	cfg.Workers = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.ChunkPages = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.MaxFileSize = -1
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.LogLevel = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestModeHelpers(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.IsExtractMode())
	assert.False(t, cfg.IsBatchMode())
	assert.False(t, cfg.IsDebug())

	cfg.Mode = ModeBatch
	cfg.LogLevel = "debug"
	assert.True(t, cfg.IsBatchMode())
	assert.True(t, cfg.IsDebug())
}
