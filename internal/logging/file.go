package logging

import (
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions configures a rotating log file.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// NewWriter returns stdout when opts.Path is empty, otherwise a size-rotated
// file writer. The returned closer must be closed on shutdown.
func NewWriter(opts FileOptions) io.WriteCloser {
	if opts.Path == "" {
		return nopCloser{os.Stdout}
	}
	if opts.MaxSizeMB == 0 {
		opts.MaxSizeMB = 50
	}
	if opts.MaxBackups == 0 {
		opts.MaxBackups = 5
	}
	return &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   true,
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
