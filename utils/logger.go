package utils

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Level orders log severities; messages below the logger's level are dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps "debug", "info", "warn" and "error" to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger provides leveled logging to the console and, optionally, a log file.
type Logger struct {
	info  *log.Logger
	warn  *log.Logger
	err   *log.Logger
	debug *log.Logger

	mu    sync.Mutex
	level Level
	file  *os.File
	plain *log.Logger
}

// NewLogger creates a new Logger writing to stdout/stderr with every level enabled.
func NewLogger() *Logger {
	flags := 0
	return &Logger{
		info:  log.New(os.Stdout, "", flags),
		warn:  log.New(os.Stdout, "", flags),
		err:   log.New(os.Stderr, "", flags),
		debug: log.New(os.Stdout, "", flags),
		level: LevelDebug,
	}
}

// SetLevel drops messages below lvl from now on.
func (l *Logger) SetLevel(lvl Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = lvl
}

// AttachFile additionally appends every logged line, without colours, to path.
func (l *Logger) AttachFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("logger: open %q: %w", path, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_ = l.file.Close()
	}
	l.file = f
	l.plain = log.New(f, "", 0)
	return nil
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file, l.plain = nil, nil
	return err
}

func (l *Logger) timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func (l *Logger) logf(lvl Level, out *log.Logger, tag, color, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if lvl < l.level {
		return
	}

	ts := l.timestamp()
	msg := fmt.Sprintf(format, args...)
	out.Printf("[%s] \033[%sm%-5s\033[0m %s\n", ts, color, tag, msg)
	if l.plain != nil {
		l.plain.Printf("%s - %s - %s\n", ts, tag, msg)
	}
}

func (l *Logger) Info(format string, args ...any) {
	l.logf(LevelInfo, l.info, "INFO", "32", format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.logf(LevelWarn, l.warn, "WARN", "33", format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.logf(LevelError, l.err, "ERROR", "31", format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.logf(LevelDebug, l.debug, "DEBUG", "36", format, args...)
}
