package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions controls how a Logger is built.
type LogOptions struct {
	Level      string
	Format     string // "text" or "json"
	File       string // optional rotated log file, written alongside stdout
	MaxSizeMB  int
	MaxAgeDays int
}

// Logger provides structured, leveled logging throughout the application.
type Logger struct {
	entry  *logrus.Entry
	closer io.Closer
}

// NewLogger creates a Logger writing human-readable lines to stdout at info level.
func NewLogger() *Logger {
	l, _ := NewLoggerWithOptions(LogOptions{})
	return l
}

// NewLoggerWithOptions builds a Logger from opts. An unknown level or format is an error.
func NewLoggerWithOptions(opts LogOptions) (*Logger, error) {
	base := logrus.New()
	base.SetOutput(os.Stdout)

	level := logrus.InfoLevel
	if opts.Level != "" {
		lvl, err := logrus.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		level = lvl
	}
	base.SetLevel(level)

	switch strings.ToLower(opts.Format) {
	case "", "text":
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	case "json":
		base.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	default:
		return nil, fmt.Errorf("logger: unknown format %q", opts.Format)
	}

	l := &Logger{entry: logrus.NewEntry(base)}

	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename: opts.File,
			MaxSize:  opts.MaxSizeMB,
			MaxAge:   opts.MaxAgeDays,
			Compress: true,
		}
		base.SetOutput(io.MultiWriter(os.Stdout, rotator))
		l.closer = rotator
	}

	return l, nil
}

// SetOutput redirects log output, mainly for tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.entry.Logger.SetOutput(w)
}

// WithField returns a child Logger that attaches key=value to every line.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{entry: l.entry.WithField(key, value), closer: l.closer}
}

// WithFields returns a child Logger that attaches all fields to every line.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields(fields)), closer: l.closer}
}

func (l *Logger) Info(format string, args ...any) {
	l.entry.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.entry.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.entry.Errorf(format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.entry.Debugf(format, args...)
}

// StdLogger adapts the Logger for APIs that want a *log.Logger, such as http.Server.ErrorLog.
func (l *Logger) StdLogger() *log.Logger {
	return log.New(l.entry.WriterLevel(logrus.ErrorLevel), "", 0)
}

// Close releases the rotated log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
