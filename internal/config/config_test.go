package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scitblr.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\ndirectory = \"logs\"\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultHeaderRow, cfg.Format.HeaderRow)
	assert.Equal(t, DefaultSuffix, cfg.Format.Suffix)
	assert.Equal(t, "logs", cfg.Log.Directory)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoadConfigReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scitblr.toml")
	body := `
[format]
header_row = 2
suffix = "_3line"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Format.HeaderRow)
	assert.Equal(t, "_3line", cfg.Format.Suffix)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "absent.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[format\n"), 0644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("negative header row", func(t *testing.T) {
		path := filepath.Join(dir, "neg.toml")
		require.NoError(t, os.WriteFile(path, []byte("[format]\nheader_row = -3\n"), 0644))
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "header_row")
	})

	t.Run("suffix with separator", func(t *testing.T) {
		path := filepath.Join(dir, "sep.toml")
		require.NoError(t, os.WriteFile(path, []byte("[format]\nsuffix = \"a/b\"\n"), 0644))
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "suffix")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"header row zero", func(c *Config) { c.Format.HeaderRow = 0 }, "header_row must be >= 1"},
		{"empty suffix", func(c *Config) { c.Format.Suffix = "" }, "suffix must not be empty"},
		{"suffix with separator", func(c *Config) { c.Format.Suffix = "x/y" }, "must not contain path separators"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.edit(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scitblr.toml")
	cfg := Default()
	cfg.Format.HeaderRow = 3

	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
