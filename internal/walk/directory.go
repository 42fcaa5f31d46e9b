package walk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"
	"go.uber.org/zap"
)

// Directory is a directory node of the walk.
type Directory struct {
	path string
}

// NewDirectory returns a Directory for path. It fails unless path currently
// refers to a directory. Symbolic links are not followed.
func NewDirectory(path string) (Directory, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Directory{}, err
	}
	if !info.IsDir() {
		return Directory{}, fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	return Directory{path: path}, nil
}

// OpenRoot validates and canonicalizes the root of a search. An empty root
// falls back to the current working directory.
func OpenRoot(root string) (Directory, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Directory{}, fmt.Errorf("resolving working directory: %w", err)
		}
		root = wd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return Directory{}, fmt.Errorf("resolving %s: %w", root, err)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return Directory{}, fmt.Errorf("resolving %s: %w", root, err)
	}
	return NewDirectory(canonical)
}

// Path returns the directory path.
func (d Directory) Path() string {
	return d.path
}

// Walk checks the directory's own name, then visits every child. Children that
// cannot be read are reported as warnings; children that are neither a
// directory (when recursing) nor a regular file are skipped.
func (d Directory) Walk(opts Options) Result {
	logger := opts.logger()
	res := Result{Stats: Stats{DirsWalked: 1}}

	if opts.MatchNames && strings.Contains(filepath.Base(d.path), opts.Keyword) {
		res.Occurrences = append(res.Occurrences, NewFileNameOccurrence(opts.Keyword, d.path))
	}

	scanner, err := godirwalk.NewScanner(d.path)
	if err != nil {
		logger.Debug("cannot read directory", zap.String("path", d.path), zap.Error(err))
		res.warn(d.path, err)
		return res
	}

	for scanner.Scan() {
		childPath := filepath.Join(d.path, scanner.Name())

		de, err := scanner.Dirent()
		if err != nil {
			logger.Debug("cannot read directory entry", zap.String("path", childPath), zap.Error(err))
			res.warn(childPath, err)
			continue
		}
		if de.IsSymlink() {
			logger.Debug("skipping symlink", zap.String("path", childPath))
			continue
		}

		if opts.Recurse {
			if dir, err := NewDirectory(childPath); err == nil {
				res.merge(dir.Walk(opts))
				continue
			}
		}

		file, err := NewFile(childPath)
		if err != nil {
			logger.Debug("skipping entry", zap.String("path", childPath), zap.Error(err))
			continue
		}
		res.merge(file.Walk(opts))
	}

	if err := scanner.Err(); err != nil {
		logger.Debug("directory listing interrupted", zap.String("path", d.path), zap.Error(err))
		res.warn(d.path, err)
	}

	return res
}
