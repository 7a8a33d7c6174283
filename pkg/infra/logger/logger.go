package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kuokgroup/automation-bridge/pkg/config"
	"github.com/sirupsen/logrus"
)

const (
	fileBufferSize    = 32 * 1024
	consoleBufferSize = 1024
)

// NewLogger builds the process logger. When cfg.File is set, entries go to
// that file through an async buffered writer and are mirrored on stdout;
// otherwise they go to stdout only. The returned func flushes and closes
// the sinks.
func NewLogger(cfg config.LogConfig) (*logrus.Logger, func(), error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(parseLevel(cfg.Level))

	if cfg.File == "" {
		logger.SetOutput(os.Stdout)
		return logger, func() {}, nil
	}

	logFile := filepath.Clean(cfg.File)
	if strings.HasPrefix(logFile, "..") {
		return nil, nil, fmt.Errorf("invalid log file path %q: must not leave the working directory", cfg.File)
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	fileWriter, err := NewAsyncFileWriter(logFile, fileBufferSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize async log writer: %w", err)
	}
	logger.SetOutput(fileWriter)

	consoleHook := NewAsyncConsoleHook(os.Stdout, consoleBufferSize)
	logger.AddHook(consoleHook)

	closeFn := func() {
		consoleHook.Close()
		fileWriter.Close()
	}
	return logger, closeFn, nil
}

// NewDiscardLogger is used by tests and tools that need a logger but no
// output.
func NewDiscardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func parseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
