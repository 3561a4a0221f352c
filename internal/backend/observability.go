package backend

import (
	"io"
	"log/slog"
)

// CallEvent records metadata about a single backend request.
type CallEvent struct {
	Call       string
	Method     string
	Path       string
	LatencyMs  int64
	StatusCode int
	Success    bool
	ErrorCode  string
}

// Observer receives events about backend calls for logging.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events through a slog text handler.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	attrs := []any{
		"call", event.Call,
		"method", event.Method,
		"path", event.Path,
		"latency_ms", event.LatencyMs,
		"http_status", event.StatusCode,
	}
	if !event.Success {
		o.logger.Error("api_call", append(attrs, "error_code", event.ErrorCode)...)
		return
	}
	o.logger.Info("api_call", attrs...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
