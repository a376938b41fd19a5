package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the default JSON logger. When logFile is non-empty, output goes
// to a size-rotated file instead of stdout; watch mode can then run for days
// without unbounded log growth.
func New(logFile string, maxSizeMB, maxBackups int) Logger {
	var w io.Writer = os.Stdout
	if logFile != "" {
		w = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
		}
	}
	return NewSlogLogger(slog.New(slog.NewJSONHandler(w, nil)))
}
