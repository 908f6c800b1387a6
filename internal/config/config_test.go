package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, FormatText, cfg.Log.Format)
	require.Equal(t, FormatText, cfg.Output.Format)
	require.Equal(t, 10, cfg.Log.MaxSizeMB)
	require.Empty(t, cfg.Tables.Path)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: json
  file: /tmp/bleadv.log
output:
  format: json
tables:
  path: numbers.yaml
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, FormatJSON, cfg.Log.Format)
	require.Equal(t, "/tmp/bleadv.log", cfg.Log.File)
	require.Equal(t, 3, cfg.Log.MaxBackups)
	require.Equal(t, FormatJSON, cfg.Output.Format)
	require.Equal(t, "numbers.yaml", cfg.Tables.Path)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BLEADV_OUTPUT_FORMAT", "json")
	cfg, err := Load(writeConfig(t, "output:\n  format: text\n"))
	require.NoError(t, err)
	require.Equal(t, FormatJSON, cfg.Output.Format)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, "log:\n  level: loud\n"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "output:\n  format: xml\n"))
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bleadv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}
