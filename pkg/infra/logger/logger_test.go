package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/kuokgroup/automation-bridge/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestNewLogger_WritesJSONToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "bridge.log")

	logger, closeFn, err := NewLogger(config.LogConfig{Level: "debug", File: logFile})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithField("endpoint", "callWorkato").Info("request forwarded")
	closeFn()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "request forwarded", entry["msg"])
	assert.Equal(t, "callWorkato", entry["endpoint"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestNewLogger_StdoutOnly(t *testing.T) {
	logger, closeFn, err := NewLogger(config.LogConfig{Level: "not-a-level"})
	require.NoError(t, err)
	defer closeFn()
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.Equal(t, os.Stdout, logger.Out)
}

func TestNewLogger_RejectsEscapingPath(t *testing.T) {
	_, _, err := NewLogger(config.LogConfig{File: "../outside.log"})
	assert.Error(t, err)
}

func TestAsyncConsoleHook_MirrorsEntries(t *testing.T) {
	out := &syncBuffer{}
	hook := NewAsyncConsoleHook(out, 16)

	logger := NewDiscardLogger()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.AddHook(hook)

	logger.Warn("folder listing failed")
	hook.Close()

	assert.True(t, strings.Contains(out.String(), "folder listing failed"))
}

func TestAsyncFileWriter_CloseIsIdempotent(t *testing.T) {
	w, err := NewAsyncFileWriter(filepath.Join(t.TempDir(), "x.log"), 64)
	require.NoError(t, err)

	n, err := w.Write([]byte("line\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	w.Close()
	w.Close()
}
