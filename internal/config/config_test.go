package config

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "csvjoin.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	assert.NilError(t, err)
	assert.DeepEqual(t, cfg, DefaultConfig())

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NilError(t, err)
	assert.Equal(t, cfg.CSV.DelimiterRune(), ',')
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: json
  seq_url: http://localhost:5341
csv:
  delimiter: ";"
  comment: "#"
  trim_leading_space: true
server:
  port: 9000
`)

	cfg, err := Load(path)
	assert.NilError(t, err)
	assert.Equal(t, cfg.Log.Level, "debug")
	assert.Equal(t, cfg.Log.Format, "json")
	assert.Equal(t, cfg.Log.SeqURL, "http://localhost:5341")
	assert.Equal(t, cfg.CSV.DelimiterRune(), ';')
	assert.Equal(t, cfg.CSV.CommentRune(), '#')
	assert.Assert(t, cfg.CSV.TrimLeadingSpace)
	assert.Assert(t, !cfg.CSV.LazyQuotes)
	assert.Equal(t, cfg.Server.Port, 9000)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad level", "log:\n  level: loud\n", "invalid log level"},
		{"bad format", "log:\n  format: xml\n", "invalid log format"},
		{"long delimiter", "csv:\n  delimiter: \"::\"\n", "invalid csv delimiter"},
		{"comment equals delimiter", "csv:\n  comment: \",\"\n", "must differ"},
		{"bad port", "server:\n  port: 70000\n", "invalid port"},
		{"not yaml", "log: [", "failed to parse YAML config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
