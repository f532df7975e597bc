package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
)

const Name = "bikeshare"

// Options selects where the logger writes. With an empty File the logger
// writes to Output, or discards everything when Output is nil.
type Options struct {
	Level  string
	File   string
	Output io.Writer
}

// New builds the application logger. The returned cleanup closes the log
// file, if one was opened.
func New(opts Options) (hclog.Logger, func(), error) {
	level := hclog.Info
	if strings.TrimSpace(opts.Level) != "" {
		level = hclog.LevelFromString(opts.Level)
		if level == hclog.NoLevel {
			return nil, nil, fmt.Errorf("unknown log level %q", opts.Level)
		}
	}

	if opts.File == "" {
		out := opts.Output
		if out == nil {
			return hclog.NewNullLogger(), func() {}, nil
		}
		return hclog.New(&hclog.LoggerOptions{Name: Name, Level: level, Output: out}), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := hclog.New(&hclog.LoggerOptions{Name: Name, Level: level, Output: f})
	return logger, func() { _ = f.Close() }, nil
}
