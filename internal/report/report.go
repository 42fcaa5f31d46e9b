// Package report renders search occurrences for the terminal or for other programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/TFMV/keyseek/internal/walk"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Format selects how occurrences are rendered.
type Format string

// Supported formats
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// record is the serialized shape of an occurrence.
type record struct {
	Kind         string `json:"kind" yaml:"kind"`
	MatchingText string `json:"matching_text" yaml:"matching_text"`
	Path         string `json:"path" yaml:"path"`
	LineNumber   *int   `json:"line_number,omitempty" yaml:"line_number,omitempty"`
}

func newRecord(occ walk.Occurrence) record {
	r := record{
		Kind:         string(occ.Kind),
		MatchingText: occ.MatchingText,
		Path:         occ.Path,
	}
	if occ.IsContent() {
		line := occ.LineNumber
		r.LineNumber = &line
	}
	return r
}

// Printer writes occurrences to a writer in a fixed format.
type Printer struct {
	w       io.Writer
	format  Format
	keyword *color.Color
	path    *color.Color
}

// NewPrinter returns a Printer for format. colorOutput only affects FormatText.
func NewPrinter(w io.Writer, format Format, colorOutput bool) (*Printer, error) {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	case "":
		format = FormatText
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}

	keyword := color.New(color.FgYellow, color.Bold)
	path := color.New(color.FgCyan)
	if colorOutput {
		keyword.EnableColor()
		path.EnableColor()
	} else {
		keyword.DisableColor()
		path.DisableColor()
	}

	return &Printer{w: w, format: format, keyword: keyword, path: path}, nil
}

// Print renders all occurrences.
func (p *Printer) Print(occurrences []walk.Occurrence) error {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		for _, occ := range occurrences {
			if err := enc.Encode(newRecord(occ)); err != nil {
				return err
			}
		}
		return nil
	case FormatYAML:
		if len(occurrences) == 0 {
			_, err := fmt.Fprintln(p.w, "[]")
			return err
		}
		records := make([]record, len(occurrences))
		for i, occ := range occurrences {
			records[i] = newRecord(occ)
		}
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, occ := range occurrences {
			if _, err := fmt.Fprintln(p.w, p.text(occ)); err != nil {
				return err
			}
		}
		return nil
	}
}

// text mirrors walk.Occurrence.String with colors applied.
func (p *Printer) text(occ walk.Occurrence) string {
	kw := p.keyword.Sprint(occ.MatchingText)
	path := p.path.Sprint(occ.Path)
	if occ.IsContent() {
		return fmt.Sprintf("'%s' found on line %d in file: '%s'", kw, occ.LineNumber, path)
	}
	return fmt.Sprintf("'%s' found in filename: '%s'", kw, path)
}

// PrintStats writes a one-line summary of a search.
func PrintStats(w io.Writer, res walk.Result) error {
	s := res.Stats
	_, err := fmt.Fprintf(w, "%d occurrences in %d dirs, %d files (%d scanned, %d skipped), %d warnings, %s\n",
		len(res.Occurrences), s.DirsWalked, s.FilesWalked, s.FilesScanned, s.FilesSkipped, len(res.Warnings), s.Elapsed)
	return err
}
