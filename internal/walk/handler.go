package walk

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// OccurrenceHandler processes a single occurrence of a finished search.
type OccurrenceHandler func(ctx context.Context, occ Occurrence) error

// Dispatch calls handler for every occurrence of res, in order. A failing
// handler does not stop the remaining occurrences; all errors are joined.
func Dispatch(ctx context.Context, res Result, handler OccurrenceHandler) error {
	var errs []error
	for _, occ := range res.Occurrences {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if err := handler(ctx, occ); err != nil {
			errs = append(errs, fmt.Errorf("path %q: %w", occ.Path, err))
		}
	}
	return errors.Join(errs...)
}

// FormatHandler returns a handler that writes each occurrence formatted with template.
func FormatHandler(w io.Writer, template string) OccurrenceHandler {
	return func(ctx context.Context, occ Occurrence) error {
		_, err := fmt.Fprintln(w, FormatOccurrence(template, occ))
		return err
	}
}

// ExecHandler returns a handler that runs a command for each occurrence. The
// command line is built from template the same way FormatOccurrence does.
func ExecHandler(w io.Writer, template string) OccurrenceHandler {
	return func(ctx context.Context, occ Occurrence) error {
		return executeCommand(ctx, w, FormatOccurrence(template, occ))
	}
}

// FormatOccurrence replaces placeholders in template with values from occ:
//
//	{} {path}   full path
//	{base}      base name
//	{dir}       containing directory
//	{line}      zero-based line, empty for filename matches
//	{kind}      filename or content
//	{keyword}   the matching text
//
// {""}, {"base"} and {"dir"} insert Go-quoted forms.
func FormatOccurrence(template string, occ Occurrence) string {
	line := ""
	if occ.IsContent() {
		line = strconv.Itoa(occ.LineNumber)
	}
	base := filepath.Base(occ.Path)
	dir := filepath.Dir(occ.Path)

	r := strings.NewReplacer(
		`{""}`, strconv.Quote(occ.Path),
		`{"base"}`, strconv.Quote(base),
		`{"dir"}`, strconv.Quote(dir),
		"{}", occ.Path,
		"{path}", occ.Path,
		"{base}", base,
		"{dir}", dir,
		"{line}", line,
		"{kind}", string(occ.Kind),
		"{keyword}", occ.MatchingText,
	)
	return r.Replace(template)
}

// executeCommand runs cmdStr, copying its output to w.
func executeCommand(ctx context.Context, w io.Writer, cmdStr string) error {
	args := strings.Fields(cmdStr)
	if len(args) == 0 {
		return fmt.Errorf("empty command")
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("command error: %s: %w", strings.TrimSpace(stderr.String()), err)
		}
		return err
	}

	if stdout.Len() > 0 {
		if _, err := w.Write(stdout.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
