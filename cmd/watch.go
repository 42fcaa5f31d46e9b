package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/TFMV/keyseek/internal/report"
	"github.com/TFMV/keyseek/internal/walk"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	// Watch command options
	watchEvents   []string
	watchDebounce time.Duration
	watchTimeout  time.Duration
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [options] <keyword>",
	Short: "Re-run a search whenever the directory changes",
	Long: `Run a search, then run it again every time files below the directory are
created, modified, or deleted. Every run prints its complete result.

Examples:
  keyseek watch -c -r TODO
  keyseek watch -n --events=create,delete -d ./inbox invoice
  keyseek watch -c -r --debounce=1s --timeout=10m needle`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		return runWatch(ctx, cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringSliceVar(&watchEvents, "events", []string{}, "Events that trigger a search (create, modify, delete, rename, chmod)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", walk.DefaultDebounce, "Quiet period after a change before searching again")
	watchCmd.Flags().DurationVar(&watchTimeout, "timeout", 0, "Duration to watch before exiting (e.g., 1h, 30m)")
}

// parseEvents converts event names to WatchEvent values.
func parseEvents(names []string) ([]walk.WatchEvent, error) {
	var events []walk.WatchEvent
	for _, e := range names {
		switch strings.ToLower(strings.TrimSpace(e)) {
		case "create":
			events = append(events, walk.EventCreate)
		case "write", "modify":
			events = append(events, walk.EventModify)
		case "remove", "delete":
			events = append(events, walk.EventDelete)
		case "rename":
			events = append(events, walk.EventRename)
		case "chmod":
			events = append(events, walk.EventChmod)
		default:
			return nil, fmt.Errorf("unknown event type: %s", e)
		}
	}
	return events, nil
}

func runWatch(ctx context.Context, cmd *cobra.Command, keyword string) error {
	out := cmd.OutOrStdout()

	logger := newLogger()
	defer logger.Sync()

	opts := searchOptions(keyword, logger)
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("%w (use --name and/or --content)", err)
	}

	events, err := parseEvents(watchEvents)
	if err != nil {
		return err
	}

	printer, err := report.NewPrinter(out, report.Format(viper.GetString("format")), colorEnabled(out))
	if err != nil {
		return err
	}

	wopts := walk.WatchOptions{
		Events:   events,
		Debounce: watchDebounce,
		Timeout:  watchTimeout,
	}

	root := viper.GetString("dir")
	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s for changes...\n", displayDir(root))
	fmt.Fprintln(cmd.ErrOrStderr(), "Press Ctrl+C to exit.")

	return walk.Watch(ctx, root, opts, wopts, func(ctx context.Context, result walk.WatchResult) error {
		if result.Error != nil {
			return result.Error
		}
		if result.Trigger != "" {
			logger.Info("re-running search", zap.String("event", string(result.Trigger)), zap.String("path", result.Path))
		}
		if err := printer.Print(result.Result.Occurrences); err != nil {
			return err
		}
		logWarnings(logger, result.Result)
		return nil
	})
}

func displayDir(dir string) string {
	if dir == "" {
		return "current directory"
	}
	return dir
}
