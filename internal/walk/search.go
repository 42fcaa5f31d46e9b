package walk

import (
	"time"

	"go.uber.org/zap"
)

// Search walks the tree rooted at root and returns every occurrence of
// opts.Keyword. An empty root means the current working directory.
//
// Only an invalid root or an invalid option set is returned as an error.
// Problems with individual entries end up in Result.Warnings.
func Search(root string, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	dir, err := OpenRoot(root)
	if err != nil {
		return Result{}, err
	}

	if opts.Logger == nil {
		opts.Logger = NewLogger(opts.LogLevel)
		defer opts.Logger.Sync()
	}

	opts.Logger.Debug("starting search",
		zap.String("root", dir.Path()),
		zap.String("keyword", opts.Keyword),
		zap.Bool("recurse", opts.Recurse),
		zap.Bool("names", opts.MatchNames),
		zap.Bool("contents", opts.MatchContents),
	)

	start := time.Now()
	res := dir.Walk(opts)
	res.Stats.Elapsed = time.Since(start)

	opts.Logger.Debug("search finished",
		zap.Int("occurrences", len(res.Occurrences)),
		zap.Int("warnings", len(res.Warnings)),
		zap.Duration("elapsed", res.Stats.Elapsed),
	)
	return res, nil
}
