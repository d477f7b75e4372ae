package testhelpers

import (
	"io"
	"log/slog"

	"github.com/okotila/liftsight/internal/logging"
)

// NewLogger creates a debug-level text logger writing to the given sink,
// such as testhelpers.NewWriter(t) or a bytes.Buffer for assertions.
func NewLogger(logSink io.Writer) *slog.Logger {
	handler := logging.NewContextHandler(slog.NewTextHandler(logSink, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	return slog.New(handler)
}
