package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/TFMV/keyseek/internal/report"
	"github.com/TFMV/keyseek/internal/walk"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "keyseek [options] <keyword>",
	Short: "Find a keyword in file names and file contents",
	Long: `keyseek searches a directory for a keyword. It reports every file or
directory whose name contains the keyword and every line of every text file
that contains it.

Examples:
  keyseek --name config
  keyseek -c -r -d ./src TODO
  keyseek -n -c -r --format=json needle
  keyseek -c -r --template="{path}:{line}" needle
  keyseek -n -r --exec="wc -c {}" report`,
	Version:       version,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd.Context(), cmd.OutOrStdout(), args[0])
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.keyseek.yaml)")

	// Search flags, shared with watch
	rootCmd.PersistentFlags().BoolP("name", "n", false, "Search through the names of files and directories")
	rootCmd.PersistentFlags().BoolP("content", "c", false, "Search through the contents of files")
	rootCmd.PersistentFlags().BoolP("recurse", "r", false, "Search recursively through directories")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to search (default is the current directory)")

	// Output flags
	rootCmd.PersistentFlags().String("format", "text", "Output format (text|json|yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("silent", false, "Only log errors")
	rootCmd.Flags().String("template", "", "Format string for each occurrence, e.g. \"{path}:{line}\"")
	rootCmd.Flags().String("exec", "", "Command to execute for each occurrence")
	rootCmd.Flags().Bool("stats", false, "Print a summary after the occurrences")

	// Bind flags to viper
	viper.BindPFlag("name", rootCmd.PersistentFlags().Lookup("name"))
	viper.BindPFlag("content", rootCmd.PersistentFlags().Lookup("content"))
	viper.BindPFlag("recurse", rootCmd.PersistentFlags().Lookup("recurse"))
	viper.BindPFlag("dir", rootCmd.PersistentFlags().Lookup("dir"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("silent", rootCmd.PersistentFlags().Lookup("silent"))
	viper.BindPFlag("template", rootCmd.Flags().Lookup("template"))
	viper.BindPFlag("exec", rootCmd.Flags().Lookup("exec"))
	viper.BindPFlag("stats", rootCmd.Flags().Lookup("stats"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		// Search config in home directory with name ".keyseek" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".keyseek")
	}

	viper.SetEnvPrefix("keyseek")
	viper.AutomaticEnv() // read in environment variables that match

	// A missing config file is fine; a broken one is reported.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
		}
	}
}

// searchOptions builds walk.Options from the merged flag/config/env values.
func searchOptions(keyword string, logger *zap.Logger) walk.Options {
	return walk.Options{
		Keyword:       keyword,
		Recurse:       viper.GetBool("recurse"),
		MatchNames:    viper.GetBool("name"),
		MatchContents: viper.GetBool("content"),
		Logger:        logger,
	}
}

// newLogger picks the log level from --verbose and --silent.
func newLogger() *zap.Logger {
	switch {
	case viper.GetBool("verbose"):
		return walk.NewLogger(walk.LogLevelDebug)
	case viper.GetBool("silent"):
		return walk.NewLogger(walk.LogLevelError)
	default:
		return walk.NewLogger(walk.LogLevelWarn)
	}
}

// colorEnabled reports whether text output to w should be colored.
func colorEnabled(w io.Writer) bool {
	if viper.GetBool("no-color") {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func runSearch(ctx context.Context, out io.Writer, keyword string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := newLogger()
	defer logger.Sync()

	opts := searchOptions(keyword, logger)
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("%w (use --name and/or --content)", err)
	}

	printer, err := report.NewPrinter(out, report.Format(viper.GetString("format")), colorEnabled(out))
	if err != nil {
		return err
	}

	root := viper.GetString("dir")
	logger.Info("searching", zap.String("dir", root), zap.String("keyword", keyword))

	res, err := walk.Search(root, opts)
	if err != nil {
		return err
	}

	switch {
	case viper.GetString("exec") != "":
		err = walk.Dispatch(ctx, res, walk.ExecHandler(out, viper.GetString("exec")))
	case viper.GetString("template") != "":
		err = walk.Dispatch(ctx, res, walk.FormatHandler(out, viper.GetString("template")))
	default:
		err = printer.Print(res.Occurrences)
	}
	if err != nil {
		return err
	}

	// Warnings go to the log only after every occurrence has been written.
	logWarnings(logger, res)

	if viper.GetBool("stats") {
		return report.PrintStats(out, res)
	}
	return nil
}

func logWarnings(logger *zap.Logger, res walk.Result) {
	for _, w := range res.Warnings {
		logger.Warn("skipped entry", zap.String("path", w.Path), zap.Error(w.Err))
	}
}
