//go:build unit
// +build unit

package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/splashcamper/splashcamper-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func fileSettings(dir string) *config.LoggerSettings {
	return &config.LoggerSettings{
		LogLevel:   config.LogLevelInfo,
		LogType:    config.LogTypeFile,
		FilePath:   filepath.Join(dir, "splashcamper.log"),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

func readJSONLines(t *testing.T, path string) []map[string]any {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var lines []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	return lines
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name     string
		settings func(dir string) *config.LoggerSettings
		errMsg   string
	}{
		{
			name: "console",
			settings: func(string) *config.LoggerSettings {
				return &config.LoggerSettings{LogLevel: config.LogLevelDebug, LogType: config.LogTypeConsole}
			},
		},
		{
			name:     "rotated file",
			settings: fileSettings,
		},
		{
			name: "unknown level",
			settings: func(string) *config.LoggerSettings {
				return &config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole}
			},
			errMsg: "LogLevel",
		},
		{
			name: "unknown type",
			settings: func(string) *config.LoggerSettings {
				return &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"}
			},
			errMsg: "LogType",
		},
		{
			name: "file without path",
			settings: func(dir string) *config.LoggerSettings {
				s := fileSettings(dir)
				s.FilePath = ""
				return s
			},
			errMsg: "file path is required",
		},
		{
			name: "file with oversized rotation",
			settings: func(dir string) *config.LoggerSettings {
				s := fileSettings(dir)
				s.MaxSize = 500
				return s
			},
			errMsg: "max size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(resetLoggerSingleton)

			err := InitLogger(tt.settings(t.TempDir()))
			log, getErr := GetLogger()

			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Error(t, getErr)
				assert.Nil(t, log)
				return
			}
			require.NoError(t, err)
			require.NoError(t, getErr)
			assert.NotNil(t, log)
		})
	}
}

func TestFileLogger_WritesStructuredJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splashcamper.log")
	log := NewFileLogger(config.LogLevelWarning, path, 1, 1, 1)

	log.Info("station listed", "count", 3)
	log.Warn("failed to remove orphaned image", "id", "img-1", "station_id", "station_17")
	log.Error("database unreachable")

	lines := readJSONLines(t, path)
	require.Len(t, lines, 2)

	assert.Equal(t, "WARN", lines[0]["level"])
	assert.Equal(t, "failed to remove orphaned image", lines[0]["msg"])
	assert.Equal(t, "img-1", lines[0]["id"])
	assert.Equal(t, "station_17", lines[0]["station_id"])

	assert.Equal(t, "ERROR", lines[1]["level"])
	assert.Equal(t, "database unreachable", lines[1]["msg"])
}

func TestConfiguredLevels(t *testing.T) {
	tests := []struct {
		level   string
		emitted []string
	}{
		{config.LogLevelDebug, []string{"debug", "info", "warn", "error"}},
		{config.LogLevelInfo, []string{"info", "warn", "error"}},
		{config.LogLevelWarning, []string{"warn", "error"}},
		{config.LogLevelError, []string{"error"}},
		{config.LogLevelCritical, []string{"error"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: parseLevel(tt.level)})
			log := &ConsoleLogger{logger: slog.New(handler)}

			log.Debug("debug")
			log.Info("info")
			log.Warn("warn")
			log.Error("error")

			output := buf.String()
			for _, msg := range []string{"debug", "info", "warn", "error"} {
				if contains(tt.emitted, msg) {
					assert.Contains(t, output, "msg="+msg)
				} else {
					assert.NotContains(t, output, "msg="+msg)
				}
			}
		})
	}

	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func TestGetLogger_BeforeInit(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	log, err := GetLogger()
	assert.Nil(t, log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestInitLogger_FirstSettingsWin(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}))
	first, err := GetLogger()
	require.NoError(t, err)

	require.NoError(t, InitLogger(fileSettings(t.TempDir())))
	second, err := GetLogger()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.IsType(t, &ConsoleLogger{}, second)
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []interface{}
		wantMsg   string
		wantAttrs []any
	}{
		{"message only", []interface{}{"legacy import finished"}, "legacy import finished", nil},
		{"attributes", []interface{}{"wash lanes resolved", "id", "station_17", "lanes", 4}, "wash lanes resolved", []any{"id", "station_17", "lanes", 4}},
		{"dangling key", []interface{}{"user created", "id"}, "user createdid", nil},
		{"non string key", []interface{}{"lanes", 2, "x"}, "lanes2x", nil},
		{"non string message", []interface{}{404, "id", "station_99"}, "404idstation_99", nil},
		{"empty", nil, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, attrs := splitArgs(tt.args...)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Equal(t, tt.wantAttrs, attrs)
		})
	}
}
