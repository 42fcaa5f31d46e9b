package walk

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the verbosity of logging.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// Options configures a search.
type Options struct {
	Keyword       string      // Literal text to look for
	Recurse       bool        // Descend into subdirectories
	MatchNames    bool        // Match file and directory names
	MatchContents bool        // Match file contents
	Logger        *zap.Logger // Optional; built from LogLevel when nil
	LogLevel      LogLevel
}

// Validate rejects option sets that can never produce an occurrence.
func (o Options) Validate() error {
	if !o.MatchNames && !o.MatchContents {
		return ErrNoSearchTarget
	}
	return nil
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Stats holds counters collected during a walk. Each node returns its own
// counts and the parent adds them up.
type Stats struct {
	DirsWalked     int64         // Directories visited, including the root
	FilesWalked    int64         // Regular files visited
	FilesScanned   int64         // Files whose contents were searched
	FilesSkipped   int64         // Files whose contents could not be read or decoded
	EntriesSkipped int64         // Entries that produced a warning
	Elapsed        time.Duration // Wall time of the whole search, set by Search
}

func (s *Stats) add(other Stats) {
	s.DirsWalked += other.DirsWalked
	s.FilesWalked += other.FilesWalked
	s.FilesScanned += other.FilesScanned
	s.FilesSkipped += other.FilesSkipped
	s.EntriesSkipped += other.EntriesSkipped
}

// Result is what a walk produces: occurrences in traversal order, plus
// warnings for entries that had to be skipped.
type Result struct {
	Occurrences []Occurrence
	Warnings    []Warning
	Stats       Stats
}

// Err joins all warnings into a single error, or returns nil when there are none.
func (r Result) Err() error {
	if len(r.Warnings) == 0 {
		return nil
	}
	errs := make([]error, len(r.Warnings))
	for i, w := range r.Warnings {
		errs[i] = w
	}
	return errors.Join(errs...)
}

func (r *Result) merge(other Result) {
	r.Occurrences = append(r.Occurrences, other.Occurrences...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Stats.add(other.Stats)
}

func (r *Result) warn(path string, err error) {
	r.Warnings = append(r.Warnings, Warning{Path: path, Err: err})
	r.Stats.EntriesSkipped++
}

// NewLogger creates a zap logger with the specified log level.
func NewLogger(level LogLevel) *zap.Logger {
	var config zap.Config

	switch level {
	case LogLevelError:
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	case LogLevelWarn:
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case LogLevelDebug:
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
