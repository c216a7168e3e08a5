package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDefaults(t *testing.T) {
	cfg := Config{}
	require.NoError(t, Init(&cfg))

	assert.Equal(t, "german", cfg.Language)
	assert.Equal(t, "punkt", cfg.Segmenter)
	assert.Equal(t, OnErrorFail, cfg.OnError)
	assert.Equal(t, FormatPlain, cfg.TextFormat)
	assert.True(t, cfg.NormalizeUnicode)
	assert.True(t, cfg.Echo)
	assert.False(t, cfg.IndexEnabled)
	assert.Equal(t, 10, cfg.TopK)
	assert.NoError(t, cfg.Validate())
}

func TestInitFromEnv(t *testing.T) {
	t.Setenv("INPUT_DIR", "/corpus")
	t.Setenv("OUTPUT_FILE", "/out/sentences.txt")
	t.Setenv("SEGMENTER_LANGUAGE", "de")
	t.Setenv("ON_ERROR", "skip")
	t.Setenv("ECHO", "false")
	t.Setenv("TOP_K", "3")

	cfg := Config{}
	require.NoError(t, Init(&cfg))

	assert.Equal(t, "/corpus", cfg.InputDir)
	assert.Equal(t, "/out/sentences.txt", cfg.OutputFile)
	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, OnErrorSkip, cfg.OnError)
	assert.False(t, cfg.Echo)
	assert.Equal(t, 3, cfg.TopK)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		cfg := Config{}
		require.NoError(t, Init(&cfg))
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"empty input", func(c *Config) { c.InputDir = " " }, "input directory"},
		{"empty output", func(c *Config) { c.OutputFile = "" }, "output file"},
		{"empty language", func(c *Config) { c.Language = "" }, "language"},
		{"bad on-error", func(c *Config) { c.OnError = "retry" }, "ON_ERROR"},
		{"bad format", func(c *Config) { c.TextFormat = "html" }, "TEXT_FORMAT"},
		{"zero top-k", func(c *Config) { c.TopK = 0 }, "TOP_K"},
		{"index without file", func(c *Config) { c.IndexEnabled = true; c.IndexFile = "" }, "INDEX_FILE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
