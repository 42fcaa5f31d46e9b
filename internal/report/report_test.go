package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/TFMV/keyseek/internal/walk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleOccurrences() []walk.Occurrence {
	return []walk.Occurrence{
		walk.NewFileNameOccurrence("foo", "/r/foo.txt"),
		walk.NewFileContentOccurrence("foo", "/r/foo.txt", 0),
		walk.NewFileContentOccurrence("foo", "/r/sub/b.txt", 2),
	}
}

func TestPrinterText(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewPrinter(&buf, FormatText, false)
	require.NoError(t, err)

	require.NoError(t, p.Print(sampleOccurrences()))
	assert.Equal(t, strings.Join([]string{
		"'foo' found in filename: '/r/foo.txt'",
		"'foo' found on line 0 in file: '/r/foo.txt'",
		"'foo' found on line 2 in file: '/r/sub/b.txt'",
	}, "\n")+"\n", buf.String())
}

func TestPrinterTextColor(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewPrinter(&buf, FormatText, true)
	require.NoError(t, err)

	require.NoError(t, p.Print(sampleOccurrences()[:1]))
	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "foo")
	assert.Contains(t, out, "/r/foo.txt")
}

func TestPrinterDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewPrinter(&buf, "", false)
	require.NoError(t, err)
	require.NoError(t, p.Print(sampleOccurrences()[:1]))
	assert.Equal(t, "'foo' found in filename: '/r/foo.txt'\n", buf.String())
}

func TestPrinterJSON(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewPrinter(&buf, FormatJSON, true)
	require.NoError(t, err)
	require.NoError(t, p.Print(sampleOccurrences()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var name map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &name))
	assert.Equal(t, "filename", name["kind"])
	assert.Equal(t, "/r/foo.txt", name["path"])
	assert.NotContains(t, name, "line_number")

	var content record
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &content))
	assert.Equal(t, "content", content.Kind)
	assert.Equal(t, "foo", content.MatchingText)
	require.NotNil(t, content.LineNumber)
	assert.Equal(t, 2, *content.LineNumber)

	// Line zero must still be present.
	assert.Contains(t, lines[1], `"line_number":0`)
}

func TestPrinterYAML(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewPrinter(&buf, FormatYAML, false)
	require.NoError(t, err)
	require.NoError(t, p.Print(sampleOccurrences()))

	var records []record
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 3)
	assert.Equal(t, "filename", records[0].Kind)
	assert.Nil(t, records[0].LineNumber)
	require.NotNil(t, records[1].LineNumber)
	assert.Equal(t, 0, *records[1].LineNumber)
	assert.Equal(t, "/r/sub/b.txt", records[2].Path)
}

func TestPrinterYAMLEmpty(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewPrinter(&buf, FormatYAML, false)
	require.NoError(t, err)
	require.NoError(t, p.Print(nil))

	var records []record
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &records))
	assert.Empty(t, records)
}

func TestNewPrinterUnknownFormat(t *testing.T) {
	_, err := NewPrinter(&bytes.Buffer{}, "xml", false)
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}

func TestPrintStats(t *testing.T) {
	res := walk.Result{
		Occurrences: sampleOccurrences(),
		Warnings:    []walk.Warning{{Path: "/r/locked"}},
		Stats: walk.Stats{
			DirsWalked:   2,
			FilesWalked:  5,
			FilesScanned: 4,
			FilesSkipped: 1,
			Elapsed:      1500 * time.Millisecond,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, PrintStats(&buf, res))
	assert.Equal(t, "3 occurrences in 2 dirs, 5 files (4 scanned, 1 skipped), 1 warnings, 1.5s\n", buf.String())
}
