package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger("test-component")
	require.NotNil(t, logger)
	assert.Equal(t, "test-component", logger.Data["component"])

	// Same component returns the cached entry
	assert.Same(t, logger, NewLogger("test-component"))
}

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{Config: FormatConfig{}})

	entry := logger.WithField("component", "test")
	entry.Info("Test message")

	output := buf.String()
	assert.Contains(t, output, "[INFO]")
	assert.Contains(t, output, "test")
	assert.Contains(t, output, "Test message")
}

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name    string
		config  FormatConfig
		level   logrus.Level
		data    logrus.Fields
		want    []string
		notWant []string
	}{
		{
			name:  "warning is shortened",
			level: logrus.WarnLevel,
			data:  logrus.Fields{"component": "config"},
			want:  []string{"[WARN]", "config", "hello"},
		},
		{
			name:    "disable component",
			config:  FormatConfig{DisableComponent: true},
			level:   logrus.InfoLevel,
			data:    logrus.Fields{"component": "config"},
			want:    []string{"[INFO]", "hello"},
			notWant: []string{"config"},
		},
		{
			name:   "fields are appended in order",
			config: FormatConfig{DisableTimestamp: true},
			level:  logrus.DebugLevel,
			data:   logrus.Fields{"component": "hooks", "path": "/x", "hook": "pre-commit"},
			want:   []string{"hello hook=pre-commit path=/x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := logrus.New()
			entry := logrus.NewEntry(logger).WithFields(tt.data)
			entry.Level = tt.level
			entry.Message = "hello"

			f := &TextFormatter{Config: tt.config}
			out, err := f.Format(entry)
			require.NoError(t, err)

			for _, w := range tt.want {
				assert.Contains(t, string(out), w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, string(out), nw)
			}
			assert.True(t, strings.HasSuffix(string(out), "\n"))
		})
	}
}

func TestNewLogrusOutputModes(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		interactive bool
		wantOutput  bool
	}{
		{name: "auto interactive info is quiet", cfg: Config{}, interactive: true, wantOutput: false},
		{name: "auto interactive debug writes", cfg: Config{Level: "debug"}, interactive: true, wantOutput: true},
		{name: "auto non-interactive writes", cfg: Config{}, interactive: false, wantOutput: true},
		{name: "always", cfg: Config{Format: FormatConfig{StructuredToStderr: "always"}}, interactive: true, wantOutput: true},
		{name: "never", cfg: Config{Level: "debug", Format: FormatConfig{StructuredToStderr: "never"}}, interactive: false, wantOutput: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogrus(tt.cfg, &buf, tt.interactive)
			if tt.wantOutput {
				assert.Same(t, io.Writer(&buf), logger.Out)
			} else {
				assert.Equal(t, io.Discard, logger.Out)
			}
		})
	}
}

func TestNewLogrusLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogrus(Config{Level: "bogus", Format: FormatConfig{Preset: "json"}}, &buf, false)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

	logger.WithField("component", "config").Info("loaded")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "loaded", decoded["msg"])
	assert.Equal(t, "config", decoded["component"])
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(EnvLevel, "")
	t.Setenv(EnvDebug, "1")
	t.Setenv(EnvFormat, "JSON")
	t.Setenv(EnvCaller, "true")
	t.Setenv(EnvStderr, "never")

	cfg := LoadConfig()
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "json", cfg.Format.Preset)
	assert.Equal(t, "never", cfg.Format.StructuredToStderr)
	assert.True(t, cfg.ReportCaller)

	t.Setenv(EnvLevel, "warn")
	assert.Equal(t, "warn", LoadConfig().Level)
}
