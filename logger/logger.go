// Package logger holds the process-wide debug logger.
// The terminal belongs to the renderer while an animation runs, so log output
// goes to a file or nowhere, never to stdout/stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultDir  = "logs"
	FileName    = "termsort.log"
	MaxFileSize = 10 * 1024 * 1024 // 10MB
)

// Logger is discarded until Setup enables it
var Logger = zerolog.Nop()

// Setup configures the global logger.
// With debug disabled the logger is a no-op and the returned closer is nil.
// With debug enabled logs are appended to dir/termsort.log as JSON lines; an
// existing file larger than MaxFileSize is first renamed with a timestamp.
func Setup(debug bool, dir string) (io.Closer, error) {
	if !debug {
		Logger = zerolog.Nop()
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return nil, nil
	}

	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxFileSize {
		rotated := filepath.Join(dir, fmt.Sprintf("termsort_%s.log", time.Now().Format("20060102_150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	Logger = zerolog.New(f).With().Timestamp().Logger()
	Logger.Info().Str("path", path).Msg("debug logging enabled")
	return f, nil
}
