package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const recentLoggerSize = 200

// LogEntry is one captured log event, kept for `manthan status --debug`.
type LogEntry struct {
	Time    time.Time
	Level   logrus.Level
	Message string
	Fields  logrus.Fields
}

// recentLogger is a logrus hook holding the most recent events in a ring
// buffer.
type recentLogger struct {
	eventBuffer []LogEntry
	currentPos  int
	isFull      bool
	mu          sync.RWMutex
}

func (t *recentLogger) Fire(entry *logrus.Entry) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.eventBuffer == nil {
		t.eventBuffer = make([]LogEntry, recentLoggerSize)
	}

	fields := make(logrus.Fields, len(entry.Data))
	for k, v := range entry.Data {
		fields[k] = v
	}

	t.eventBuffer[t.currentPos] = LogEntry{
		Time:    entry.Time,
		Level:   entry.Level,
		Message: entry.Message,
		Fields:  fields,
	}
	t.currentPos = (t.currentPos + 1) % recentLoggerSize

	if t.currentPos == 0 {
		t.isFull = true
	}

	return nil
}

func (t *recentLogger) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
		logrus.DebugLevel,
	}
}

// GetRecentEvents returns up to count events, oldest first.
func (t *recentLogger) GetRecentEvents(count int) []LogEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var events []LogEntry
	if !t.isFull {
		events = make([]LogEntry, t.currentPos)
		copy(events, t.eventBuffer[:t.currentPos])
	} else {
		events = make([]LogEntry, recentLoggerSize)
		copy(events, t.eventBuffer[t.currentPos:])
		copy(events[recentLoggerSize-t.currentPos:], t.eventBuffer[:t.currentPos])
	}

	if len(events) <= count {
		return events
	}
	return events[len(events)-count:]
}

// setupLogging configures the logging system based on the config
func setupLogging(config *Config) error {
	logrusLevel, err := logrus.ParseLevel(config.Logging.Level)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}

	logrus.SetLevel(logrusLevel)
	logrus.AddHook(&config.logger)

	switch strings.ToLower(config.Logging.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	default:
		logrus.Warnf("Unknown logging format %q, using text", config.Logging.Format)
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return nil
}
