// Package debug provides debug logging infrastructure for hntui.
// File logging is only enabled when --verbose (or the verbose setting) is
// given at startup; the in-memory panel records regardless.
// Logs are written to ~/.hntui/debug.log, truncated on each launch.
package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	// LogFileName is the name of the debug log file.
	LogFileName = "debug.log"
	// LogDirName is the name of the directory containing the log file.
	LogDirName = ".hntui"
	// PanelCapacity bounds the in-memory ring buffer the debug overlay
	// reads from.
	PanelCapacity = 50
)

var (
	mu      sync.RWMutex
	enabled bool
	logger  *log.Logger
	logFile *os.File
	panel   []string

	// getLogPath is a function variable to allow overriding in tests.
	getLogPath = defaultGetLogPath
)

// Init initializes the debug logging system.
// If enable is false, all logging operations become no-ops except for the
// in-memory panel, which always records (the debug overlay is a UI toggle,
// independent of whether logging to disk is on).
func Init(enable bool) error {
	mu.Lock()
	defer mu.Unlock()

	enabled = enable
	panel = nil
	if !enable {
		logger = log.New(io.Discard, "", 0)
		return nil
	}

	logPath, err := getLogPath()
	if err != nil {
		return fmt.Errorf("determine log path: %w", err)
	}

	dir := filepath.Dir(logPath)
	//nolint:gosec // G301: User config directory needs standard permissions
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	//nolint:gosec // G304: Log path is computed from user home, not user input
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f

	logger = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds)
	logger.Printf("=== hntui debug log started at %s ===", time.Now().Format(time.RFC3339))

	return nil
}

// Close closes the debug log file if open.
// Safe to call even if logging is disabled.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Log writes a debug message if debug logging is enabled, and always records
// it in the in-memory panel the debug overlay reads.
func Log(v ...any) {
	record(fmt.Sprint(v...))
}

// Logf writes a formatted debug message if debug logging is enabled, and
// always records it in the in-memory panel the debug overlay reads.
func Logf(format string, v ...any) {
	record(fmt.Sprintf(format, v...))
}

func record(msg string) {
	mu.Lock()
	defer mu.Unlock()

	panel = append(panel, msg)
	if len(panel) > PanelCapacity {
		panel = panel[len(panel)-PanelCapacity:]
	}
	if enabled && logger != nil {
		logger.Print(msg)
	}
}

// Panel returns a snapshot of the most recent log entries, newest last, for
// the debug overlay.
func Panel() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(panel))
	copy(out, panel)
	return out
}

// Enabled returns whether debug logging is currently enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// defaultGetLogPath returns the path to the debug log file.
func defaultGetLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, LogDirName, LogFileName), nil
}

// GetLogPath returns the path to the debug log file.
// Exported for use by other packages that need to know where logs are.
func GetLogPath() (string, error) {
	return getLogPath()
}
