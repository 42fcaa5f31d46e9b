// Package walk searches a directory tree for a keyword in file names and file
// contents.
//
// Basic usage:
//
//	res, err := walk.Search("/path/to/search", walk.Options{
//		Keyword:       "needle",
//		Recurse:       true,
//		MatchContents: true,
//	})
//	if err != nil {
//		return err
//	}
//	for _, occ := range res.Occurrences {
//		fmt.Println(occ)
//	}
//
// Entries that cannot be read do not stop the search; they are reported in
// res.Warnings.
//
// Watch functionality
//
//	err := walk.Watch(ctx, "/path/to/watch", opts, walk.WatchOptions{}, func(ctx context.Context, result walk.WatchResult) error {
//		if result.Error != nil {
//			return result.Error
//		}
//		fmt.Printf("%d occurrences\n", len(result.Result.Occurrences))
//		return nil
//	})
package walk
