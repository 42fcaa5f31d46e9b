package walk

import "fmt"

// OccurrenceKind tags the variant of an Occurrence.
type OccurrenceKind string

// Occurrence kinds
const (
	OccurrenceFileName    OccurrenceKind = "filename"
	OccurrenceFileContent OccurrenceKind = "content"
)

// Occurrence is a single reported match of the keyword, either in the name of a
// file or directory, or inside the contents of a file.
type Occurrence struct {
	Kind         OccurrenceKind // filename or content
	MatchingText string         // The keyword as found
	Path         string         // Matched file or directory path
	LineNumber   int            // Zero-based line of a content match; unused for filename matches
}

// NewFileNameOccurrence returns a filename match for path.
func NewFileNameOccurrence(keyword, path string) Occurrence {
	return Occurrence{
		Kind:         OccurrenceFileName,
		MatchingText: keyword,
		Path:         path,
	}
}

// NewFileContentOccurrence returns a content match in path on the given zero-based line.
func NewFileContentOccurrence(keyword, path string, line int) Occurrence {
	return Occurrence{
		Kind:         OccurrenceFileContent,
		MatchingText: keyword,
		Path:         path,
		LineNumber:   line,
	}
}

// IsContent reports whether the occurrence was found in file contents.
func (o Occurrence) IsContent() bool {
	return o.Kind == OccurrenceFileContent
}

func (o Occurrence) String() string {
	if o.IsContent() {
		return fmt.Sprintf("'%s' found on line %d in file: '%s'", o.MatchingText, o.LineNumber, o.Path)
	}
	return fmt.Sprintf("'%s' found in filename: '%s'", o.MatchingText, o.Path)
}
