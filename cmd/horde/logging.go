package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

const (
	logDir      = "logs"
	logFileName = "horde.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging points the default logger at logs/horde.log when debug is set and discards everything otherwise
// The terminal belongs to the UI, nothing is ever logged to stdout or stderr
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetDefault(log.New(io.Discard))
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetDefault(log.New(io.Discard))
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("horde-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetDefault(log.New(io.Discard))
		return nil
	}

	log.SetDefault(log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
	}))
	return f
}
