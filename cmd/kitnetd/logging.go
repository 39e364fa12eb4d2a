package main

import (
	"log/slog"
	"os"

	"github.com/MatusOllah/slogcolor"
)

// newLogger builds a colored console logger, matching the teacher's
// slogcolor wiring but without its log-directory/rotation machinery,
// which has no analogue for a short-lived CLI process.
func newLogger(debug bool) *slog.Logger {
	opts := slogcolor.DefaultOptions
	opts.SrcFileMode = slogcolor.Nop
	if debug {
		opts.Level = slog.LevelDebug
	} else {
		opts.Level = slog.LevelInfo
	}
	return slog.New(slogcolor.NewHandler(os.Stdout, opts))
}
