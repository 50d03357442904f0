// Package command implements the audiotags subcommands. Each command writes
// its output to the Runner's writer so it can be tested without a terminal.
package command

import (
	"io"

	"go.uber.org/zap"

	"github.com/llehouerou/audiotags"
)

// Runner executes subcommands against audio files.
type Runner struct {
	out    io.Writer
	reader *audiotags.Tag
	logger *zap.Logger
}

// New creates a Runner. reader carries the format, configuration and
// detection settings used for every file read.
func New(out io.Writer, reader *audiotags.Tag, logger *zap.Logger) *Runner {
	if reader == nil {
		reader = audiotags.NewTag()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		out:    out,
		reader: reader.WithLogger(logger),
		logger: logger,
	}
}
