// Package corelog provides the leveled logger and repetition event sink
// consumed by the scheduler engine.
package corelog

import (
	"log"

	"github.com/jcalvez/srscore/pkg/resync"
)

var (
	// Lazy-load and ensure a single read
	loggerOnce      resync.Once
	loggerSingleton *Logger
)

type VerboseLevel int

const (
	VerboseOff VerboseLevel = iota
	VerboseInfo
	VerboseDebug
	VerboseTrace
)

// RepetitionEvent is the log event emitted on every grading commit.
type RepetitionEvent struct {
	CardOID            string
	ScheduledInterval  int64
	ActualInterval     int64
	ThinkingTimeMillis int64
}

func CurrentLogger() *Logger {
	loggerOnce.Do(func() {
		loggerSingleton = NewLogger()
	})
	return loggerSingleton
}

// SetLogger overrides the singleton, mainly for tests that want to capture events.
func SetLogger(l *Logger) {
	loggerSingleton = l
	loggerOnce.Do(func() {})
}

type Logger struct {
	verbose VerboseLevel
	events  *[]RepetitionEvent // non-nil only for test loggers that capture events
}

func NewLogger() *Logger {
	return &Logger{
		verbose: VerboseOff,
	}
}

// NewCapturingLogger returns a logger that records repetition events in
// memory instead of printing them, for deterministic assertions in tests.
func NewCapturingLogger() *Logger {
	return &Logger{
		verbose: VerboseTrace,
		events:  &[]RepetitionEvent{},
	}
}

// Events returns the repetition events recorded so far (only non-empty for a capturing logger).
func (l *Logger) Events() []RepetitionEvent {
	if l.events == nil {
		return nil
	}
	return *l.events
}

// SetVerboseLevel overrides the default verbose level.
func (l *Logger) SetVerboseLevel(level VerboseLevel) *Logger {
	l.verbose = level
	return l
}

func (l *Logger) Fatal(v ...any) {
	log.Fatalln(v...)
}
func (l *Logger) Fatalf(format string, v ...any) {
	log.Fatalf(format, v...)
}

func (l *Logger) Warn(v ...any) {
	log.Println(v...)
}
func (l *Logger) Warnf(format string, v ...any) {
	log.Printf(format, v...)
}

func (l *Logger) Info(v ...any) {
	if l.verbose >= VerboseInfo {
		log.Println(v...)
	}
}
func (l *Logger) Infof(format string, v ...any) {
	if l.verbose >= VerboseInfo {
		log.Printf(format, v...)
	}
}

func (l *Logger) Debug(v ...any) {
	if l.verbose >= VerboseDebug {
		log.Println(v...)
	}
}
func (l *Logger) Debugf(format string, v ...any) {
	if l.verbose >= VerboseDebug {
		log.Printf(format, v...)
	}
}

func (l *Logger) Trace(v ...any) {
	if l.verbose >= VerboseTrace {
		log.Println(v...)
	}
}
func (l *Logger) Tracef(format string, v ...any) {
	if l.verbose >= VerboseTrace {
		log.Printf(format, v...)
	}
}

// Repetition records a repetition log event.
func (l *Logger) Repetition(event RepetitionEvent) {
	if l.events != nil {
		*l.events = append(*l.events, event)
		return
	}
	l.Debugf("repetition %s: scheduled=%ds actual=%ds thinking=%dms",
		event.CardOID, event.ScheduledInterval, event.ActualInterval, event.ThinkingTimeMillis)
}

// Reset restores the default (non-capturing) singleton logger. Useful between unit tests.
func Reset() {
	loggerOnce.Reset()
	loggerSingleton = nil
}
