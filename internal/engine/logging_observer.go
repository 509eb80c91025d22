package engine

import (
	"log/slog"

	"github.com/leengari/csvjoin/internal/query/operations/join"
)

// LoggingObserver is a simple observer that logs all events using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a new logging observer.
// A nil logger falls back to slog.Default().
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{
		logger: logger,
	}
}

// OnEvent implements the Observer interface
func (lo *LoggingObserver) OnEvent(event Event) {
	attrs := []any{
		slog.String("event", string(event.Type)),
		slog.String("run_id", event.RunID),
		slog.Time("timestamp", event.Timestamp),
	}

	switch d := event.Data.(type) {
	case JoinRequest:
		attrs = append(attrs,
			slog.String("left_table", d.Left),
			slog.String("right_table", d.Right),
			slog.String("key", d.Key),
		)
	case join.Stats:
		attrs = append(attrs,
			slog.Int("left_rows", d.LeftRows),
			slog.Int("right_rows", d.RightRows),
			slog.Int("matched_groups", d.MatchedGroups),
			slog.Int("output_rows", d.OutputRows),
		)
	case error:
		lo.logger.Error("join_lifecycle", append(attrs, slog.Any("error", d))...)
		return
	}

	lo.logger.Info("join_lifecycle", attrs...)
}
