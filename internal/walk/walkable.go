// Package walk implements keyword search over a directory tree.
//
// A tree is walked through two node types, Directory and File, which share the
// Walkable capability. Each Walk call builds its own Result and returns it to
// the caller, which concatenates it into its own. There is no shared collector
// and no concurrency: a walk is a plain depth-first recursion.
package walk

// Walkable is implemented by Directory and File.
type Walkable interface {
	Walk(opts Options) Result
}

var (
	_ Walkable = Directory{}
	_ Walkable = File{}
)
