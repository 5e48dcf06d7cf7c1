package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file, relative to the working directory.
const DefaultPath = "logs/portfolio.txt"

// maxLines bounds the in-memory history; the debug overlay shows its tail.
const maxLines = 256

// Logger keeps recent lines in memory, appends every line to a file on disk
// and echoes it to a console writer. Safe for use from the loading goroutines.
type Logger struct {
	mu      sync.Mutex
	path    string
	console io.Writer
	lines   []string
}

// New returns a Logger writing to path (DefaultPath when empty) and stderr.
// The log directory is created if needed.
func New(path string) *Logger {
	if path == "" {
		path = DefaultPath
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return &Logger{path: path, console: os.Stderr, lines: make([]string, 0)}
}

// SetConsole replaces the console writer; nil disables console output.
func (l *Logger) SetConsole(w io.Writer) {
	l.mu.Lock()
	l.console = w
	l.mu.Unlock()
}

// Log records one line, prefixed with [timestamp].
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}
	console := l.console
	l.mu.Unlock()

	if console != nil {
		_, _ = io.WriteString(console, stamped+"\n")
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats and records one line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Tail returns a copy of the last n recorded lines, oldest first.
// n <= 0 returns the whole history.
func (l *Logger) Tail(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	lines := l.lines
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}
