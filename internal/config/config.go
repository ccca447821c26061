// Package config wires process environment into runtime settings. A .env
// file next to the working directory is honoured when present.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	// DebugEnvVar enables the full diagnostic error chain on CLI failures.
	DebugEnvVar = "PDF_EXTRACT_DEBUG"

	logDirName = ".pdf-extract-mcp"
)

// Load reads the optional .env file. Missing files are fine.
func Load() {
	_ = godotenv.Load()
}

// Debug reports whether diagnostic tracing is requested.
func Debug() bool {
	switch strings.ToLower(os.Getenv(DebugEnvVar)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// ParseLogLevel maps the LOG_LEVEL environment variable to a logrus level,
// defaulting to warn.
func ParseLogLevel() logrus.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.WarnLevel
	}
}

// NewCLILogger returns a logger writing to stderr, for the one-shot CLI
// commands.
func NewCLILogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(ParseLogLevel())
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger
}

// NewServeLogger returns a logger for stdio-server mode. Output goes to a
// log file under the user's home directory; stdout and stderr belong to the
// MCP protocol and must stay clean. If no log file can be opened the logger
// discards everything. The returned closer is nil if no file was opened.
func NewServeLogger() (*logrus.Logger, io.Closer) {
	logger := logrus.New()
	logger.SetLevel(ParseLogLevel())
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetOutput(io.Discard)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return logger, nil
	}
	logDir := filepath.Join(homeDir, logDirName, "logs")
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return logger, nil
	}
	file, err := os.OpenFile(filepath.Join(logDir, "pdf-extract-mcp.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return logger, nil
	}
	logger.SetOutput(file)
	return logger, file
}
