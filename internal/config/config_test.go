package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bjaus/pp"
	"github.com/bjaus/pp/internal/config"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:6379", cfg.Address)
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
address: cache:6380
db: 2
colors:
  key: hi-red
  string: none
table:
  border: rounded
csv:
  delimiter: ";"
  crlf: true
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", cfg.Address)
	assert.Equal(t, 2, cfg.DB)
	assert.Equal(t, "cyan", cfg.Colors.Null)

	enc, err := cfg.Encoding()
	require.NoError(t, err)
	assert.Equal(t, text.FgHiRed, enc.Palette.Key)
	assert.Equal(t, text.Reset, enc.Palette.String)
	assert.Equal(t, text.FgCyan, enc.Palette.Null)
	assert.Equal(t, pp.BorderRounded, enc.Border)
	assert.Equal(t, ';', enc.CSV.Delimiter)
	assert.True(t, enc.CSV.UseCRLF)
	assert.Equal(t, pp.DefaultIndent, enc.Indent)
}

func TestLoadDefaultCommand(t *testing.T) {
	t.Parallel()
	cfg, err := config.Load(writeConfig(t, "default_command: h\n"))
	require.NoError(t, err)
	assert.Equal(t, "h", cfg.DefaultCommand)
	assert.Equal(t, "pp.j", config.Default().DefaultCommand)
}

func TestLoadInvalid(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"malformed yaml":  "address: [\n",
		"unknown color":   "colors:\n  key: mauve\n",
		"unknown border":  "table:\n  border: dotted\n",
		"long delimiter":  "csv:\n  delimiter: ab\n",
		"quote delimiter": "csv:\n  delimiter: '\"'\n",
		"bad log level":   "log_level: loud\n",
		"unknown command": "default_command: pp.x\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := config.Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestDefaultEncodingMatchesPackageDefault(t *testing.T) {
	t.Parallel()
	enc, err := config.Default().Encoding()
	require.NoError(t, err)
	assert.Equal(t, pp.DefaultEncoding(), enc)
}
