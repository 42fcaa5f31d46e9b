package walk

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// File is a regular file node of the walk.
type File struct {
	path string
}

// NewFile returns a File for path. It fails unless path currently refers to a
// regular file.
func NewFile(path string) (File, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return File{}, err
	}
	if !info.Mode().IsRegular() {
		return File{}, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}
	return File{path: path}, nil
}

// Path returns the file path.
func (f File) Path() string {
	return f.path
}

// Walk matches the file name and, when requested, its contents. opts.Recurse is
// ignored. Files that cannot be read or are not valid text contribute no
// content occurrences.
func (f File) Walk(opts Options) Result {
	res := Result{Stats: Stats{FilesWalked: 1}}

	if opts.MatchNames && strings.Contains(filepath.Base(f.path), opts.Keyword) {
		res.Occurrences = append(res.Occurrences, NewFileNameOccurrence(opts.Keyword, f.path))
	}

	if !opts.MatchContents {
		return res
	}

	contents, err := readText(f.path)
	if err != nil {
		opts.logger().Debug("skipping contents", zap.String("path", f.path), zap.Error(err))
		res.Stats.FilesSkipped++
		return res
	}
	res.Stats.FilesScanned++
	res.Occurrences = append(res.Occurrences, ScanContents(f.path, contents, opts.Keyword)...)
	return res
}

// readText reads the whole file, failing with ErrUndecodable if the contents
// are not valid UTF-8.
func readText(path string) (string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer fh.Close()

	data, err := io.ReadAll(transform.NewReader(fh, encoding.UTF8Validator))
	if err != nil {
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return "", fmt.Errorf("%w: %s", ErrUndecodable, path)
		}
		return "", err
	}
	return string(data), nil
}
