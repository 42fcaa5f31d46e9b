package walk

import (
	"context"
	"io"

	internal "github.com/TFMV/keyseek/internal/walk"
	"go.uber.org/zap"
)

// Re-export the types from the internal package
type (
	// Occurrence is a single match in a name or in file contents.
	Occurrence = internal.Occurrence

	// OccurrenceKind tags the variant of an Occurrence.
	OccurrenceKind = internal.OccurrenceKind

	// Options configures a search.
	Options = internal.Options

	// Result holds the occurrences and warnings of a search.
	Result = internal.Result

	// Stats holds counters collected during a search.
	Stats = internal.Stats

	// Warning describes an entry that was skipped.
	Warning = internal.Warning

	// LogLevel defines the verbosity of logging.
	LogLevel = internal.LogLevel

	// Walkable is implemented by Directory and File.
	Walkable = internal.Walkable

	// Directory is a directory node.
	Directory = internal.Directory

	// File is a regular file node.
	File = internal.File

	// OccurrenceHandler processes a single occurrence.
	OccurrenceHandler = internal.OccurrenceHandler

	// Re-export watch types
	WatchEvent   = internal.WatchEvent
	WatchOptions = internal.WatchOptions
	WatchResult  = internal.WatchResult
	WatchHandler = internal.WatchHandler
)

// Re-export the constants
const (
	OccurrenceFileName    = internal.OccurrenceFileName
	OccurrenceFileContent = internal.OccurrenceFileContent

	// Log levels
	LogLevelError = internal.LogLevelError
	LogLevelWarn  = internal.LogLevelWarn
	LogLevelInfo  = internal.LogLevelInfo
	LogLevelDebug = internal.LogLevelDebug

	// Watch event constants
	EventCreate = internal.EventCreate
	EventModify = internal.EventModify
	EventDelete = internal.EventDelete
	EventRename = internal.EventRename
	EventChmod  = internal.EventChmod

	DefaultDebounce = internal.DefaultDebounce
)

// Re-export the sentinel errors
var (
	ErrNotDirectory   = internal.ErrNotDirectory
	ErrNotRegularFile = internal.ErrNotRegularFile
	ErrUndecodable    = internal.ErrUndecodable
	ErrNoSearchTarget = internal.ErrNoSearchTarget
)

// Search walks the tree rooted at root and returns every occurrence of opts.Keyword.
func Search(root string, opts Options) (Result, error) {
	return internal.Search(root, opts)
}

// ScanContents returns every occurrence of keyword in contents.
func ScanContents(path, contents, keyword string) []Occurrence {
	return internal.ScanContents(path, contents, keyword)
}

// OpenRoot validates and canonicalizes a search root.
func OpenRoot(root string) (Directory, error) {
	return internal.OpenRoot(root)
}

// NewDirectory returns a Directory node for path.
func NewDirectory(path string) (Directory, error) {
	return internal.NewDirectory(path)
}

// NewFile returns a File node for path.
func NewFile(path string) (File, error) {
	return internal.NewFile(path)
}

// NewLogger creates a zap logger with the specified log level.
func NewLogger(level LogLevel) *zap.Logger {
	return internal.NewLogger(level)
}

// Dispatch calls handler for every occurrence of res.
func Dispatch(ctx context.Context, res Result, handler OccurrenceHandler) error {
	return internal.Dispatch(ctx, res, handler)
}

// FormatOccurrence fills template placeholders from occ.
func FormatOccurrence(template string, occ Occurrence) string {
	return internal.FormatOccurrence(template, occ)
}

// FormatHandler returns a handler that writes formatted occurrences to w.
func FormatHandler(w io.Writer, template string) OccurrenceHandler {
	return internal.FormatHandler(w, template)
}

// ExecHandler returns a handler that runs a command per occurrence.
func ExecHandler(w io.Writer, template string) OccurrenceHandler {
	return internal.ExecHandler(w, template)
}

// Watch re-runs a search every time the tree under root changes.
func Watch(ctx context.Context, root string, opts Options, wopts WatchOptions, handler WatchHandler) error {
	return internal.Watch(ctx, root, opts, wopts, handler)
}
