package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
	debug   bool
)

// Init routes the standard logger to stderr and, when logPath is set, to an
// append-mode log file. stdout is left to command output.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stderr)

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// SetDebug toggles LogDebug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = enabled
}

func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogDebug logs only when debug output is enabled.
func LogDebug(format string, args ...any) {
	mu.Lock()
	enabled := debug
	mu.Unlock()
	if !enabled {
		return
	}
	log.Println("[DEBUG] " + fmt.Sprintf(format, args...))
}

// LogAnalysis records the outcome of an analysis step for a named source.
func LogAnalysis(component, source, system string, payload any) {
	log.Println(buildAnalysisMessage(component, source, system, payload))
}

func buildAnalysisMessage(component, source, system string, payload any) string {
	comp := strings.TrimSpace(component)
	if comp != "" {
		comp = strings.ToUpper(comp)
	}
	sourceValue := strings.TrimSpace(source)
	if sourceValue == "" {
		sourceValue = "inline"
	}
	parts := []string{fmt.Sprintf("[%s]", comp)}
	parts = append(parts, fmt.Sprintf("source=%s", sourceValue))
	if system = strings.TrimSpace(system); system != "" {
		parts = append(parts, fmt.Sprintf("system=%s", system))
	}
	parts = append(parts, fmt.Sprintf("payload=%s", formatPayload(payload)))
	return strings.Join(parts, " ")
}

func formatPayload(payload any) string {
	switch v := payload.(type) {
	case nil:
		return "null"
	case string:
		if strings.TrimSpace(v) == "" {
			return `""`
		}
		return v
	case []byte:
		if len(v) == 0 {
			return "[]"
		}
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
