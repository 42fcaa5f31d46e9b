package walk

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/karrick/godirwalk"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period after the last filesystem event before a
// search is re-run.
const DefaultDebounce = 200 * time.Millisecond

// WatchEvent represents a filesystem event type
type WatchEvent string

// Watch event types
const (
	EventCreate WatchEvent = "create"
	EventModify WatchEvent = "modify"
	EventDelete WatchEvent = "delete"
	EventRename WatchEvent = "rename"
	EventChmod  WatchEvent = "chmod"
)

// WatchOptions defines options for watching a tree and re-running a search
type WatchOptions struct {
	// Events that trigger a new search. If empty, all events do.
	Events []WatchEvent

	// Quiet period before re-running; DefaultDebounce when zero.
	Debounce time.Duration

	// Timeout duration (0 means no timeout)
	Timeout time.Duration
}

// WatchResult is delivered once per completed search. Trigger is empty for the
// initial search.
type WatchResult struct {
	Trigger WatchEvent
	Path    string
	Result  Result
	Error   error
}

// WatchHandler is a function that processes watch results
type WatchHandler func(ctx context.Context, result WatchResult) error

// Watch runs a search, then re-runs it every time the tree under root changes.
// Every run is a complete search and the handler receives the whole result.
// Runs happen one at a time on the calling goroutine. Watch returns nil when
// ctx is done or the timeout expires.
func Watch(ctx context.Context, root string, opts Options, wopts WatchOptions, handler WatchHandler) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	dir, err := OpenRoot(root)
	if err != nil {
		return err
	}
	root = dir.Path()

	if opts.Logger == nil {
		opts.Logger = NewLogger(opts.LogLevel)
		defer opts.Logger.Sync()
	}
	logger := opts.Logger

	if wopts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, wopts.Timeout)
		defer cancel()
	}
	debounce := wopts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(root); err != nil {
		return fmt.Errorf("error watching directory %s: %w", root, err)
	}
	if opts.Recurse {
		addSubdirectories(watcher, root, logger)
	}

	run := func(trigger WatchEvent, path string) {
		res, err := Search(root, opts)
		if herr := handler(ctx, WatchResult{Trigger: trigger, Path: path, Result: res, Error: err}); herr != nil {
			logger.Warn("watch handler failed", zap.Error(herr))
		}
	}

	run("", root)

	var (
		timer       *time.Timer
		fire        <-chan time.Time
		lastTrigger WatchEvent
		lastPath    string
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			eventType, interesting := classifyEvent(event, wopts.Events)

			// New directories must be watched even if their creation is not
			// an interesting event, or later changes inside them are missed.
			if opts.Recurse && event.Has(fsnotify.Create) {
				if d, err := NewDirectory(event.Name); err == nil {
					addSubdirectories(watcher, d.Path(), logger)
				}
			}
			if !interesting {
				continue
			}

			logger.Debug("change detected", zap.String("event", string(eventType)), zap.String("path", event.Name))
			lastTrigger, lastPath = eventType, event.Name
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			run(lastTrigger, lastPath)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))

		case <-ctx.Done():
			return nil
		}
	}
}

// classifyEvent maps an fsnotify event to a WatchEvent and reports whether it
// is one of the wanted events.
func classifyEvent(event fsnotify.Event, wanted []WatchEvent) (WatchEvent, bool) {
	var eventType WatchEvent
	switch {
	case event.Has(fsnotify.Create):
		eventType = EventCreate
	case event.Has(fsnotify.Write):
		eventType = EventModify
	case event.Has(fsnotify.Remove):
		eventType = EventDelete
	case event.Has(fsnotify.Rename):
		eventType = EventRename
	case event.Has(fsnotify.Chmod):
		eventType = EventChmod
	default:
		return "", false
	}

	if len(wanted) == 0 {
		return eventType, true
	}
	for _, w := range wanted {
		if w == eventType {
			return eventType, true
		}
	}
	return eventType, false
}

// addSubdirectories registers dir and every directory below it with the watcher.
func addSubdirectories(watcher *fsnotify.Watcher, dir string, logger *zap.Logger) {
	err := godirwalk.Walk(dir, &godirwalk.Options{
		Unsorted: true,
		Callback: func(path string, de *godirwalk.Dirent) error {
			if !de.IsDir() {
				return nil
			}
			if err := watcher.Add(path); err != nil {
				logger.Warn("error watching directory", zap.String("path", path), zap.Error(err))
			}
			return nil
		},
		ErrorCallback: func(path string, err error) godirwalk.ErrorAction {
			logger.Warn("error walking directory", zap.String("path", path), zap.Error(err))
			return godirwalk.SkipNode
		},
	})
	if err != nil {
		logger.Warn("error registering directories", zap.String("root", dir), zap.Error(err))
	}
}
