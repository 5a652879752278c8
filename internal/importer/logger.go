package importer

import (
	"time"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
	"go.uber.org/zap"
)

// Logger is the append-only event sink for one import run. It is
// created per run and discarded with the report; there is no shared
// process-wide instance. When echo is set, every event is additionally
// written to the service logger for console progress.
type Logger struct {
	start  time.Time
	events []domain.ImportEvent
	counts map[domain.ImportEventLevel]int
	echo   *zap.SugaredLogger
}

// Summary is a snapshot of the logger state: the full ordered event
// list, counts by severity, and elapsed time since construction.
type Summary struct {
	Events  []domain.ImportEvent
	Counts  map[domain.ImportEventLevel]int
	Elapsed time.Duration
}

func NewLogger(echo *zap.SugaredLogger) *Logger {
	return &Logger{
		start:  time.Now(),
		counts: make(map[domain.ImportEventLevel]int),
		echo:   echo,
	}
}

func (l *Logger) Info(message string) {
	l.append(domain.LevelInfo, message)
}

func (l *Logger) Warning(message string) {
	l.append(domain.LevelWarning, message)
}

func (l *Logger) Error(message string) {
	l.append(domain.LevelError, message)
}

func (l *Logger) append(level domain.ImportEventLevel, message string) {
	l.events = append(l.events, domain.ImportEvent{
		Level:     level,
		Message:   message,
		Timestamp: time.Now(),
	})
	l.counts[level]++

	if l.echo == nil {
		return
	}
	switch level {
	case domain.LevelWarning:
		l.echo.Warn(message)
	case domain.LevelError:
		l.echo.Error(message)
	default:
		l.echo.Info(message)
	}
}

func (l *Logger) Summary() Summary {
	events := make([]domain.ImportEvent, len(l.events))
	copy(events, l.events)

	counts := make(map[domain.ImportEventLevel]int, len(l.counts))
	for level, n := range l.counts {
		counts[level] = n
	}

	return Summary{
		Events:  events,
		Counts:  counts,
		Elapsed: time.Since(l.start),
	}
}
