// Package logger configures the rotating application log.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the global logger instance; nil until Init runs.
var Logger *log.Logger

// Config holds logger configuration
type Config struct {
	Debug  bool
	LogDir string // defaults to <user config dir>/planpage/logs
}

// Init initializes the global logger with the given configuration
func Init(cfg Config) error {
	logDir := cfg.LogDir
	if logDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return err
		}
		logDir = filepath.Join(base, "planpage", "logs")
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	// Create rotating file handler
	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "planpage.log"),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	level := log.InfoLevel
	if cfg.Debug {
		level = log.DebugLevel
	}

	// In debug mode, write to both stderr and the file; stay silent on
	// stderr otherwise.
	var writer io.Writer = fileWriter
	if cfg.Debug {
		writer = io.MultiWriter(os.Stderr, fileWriter)
	}

	Logger = log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "planpage",
	})

	return nil
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
