package text

import (
	"log/slog"

	"github.com/gogpu/mctext"
)

// slogger returns the current package logger.
// All logging in text goes through this function and follows
// mctext.SetLogger.
func slogger() *slog.Logger { return mctext.Logger() }
