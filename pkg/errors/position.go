package errors

// Position represents a specific location in the source code.
// Line is 1-based; Column is the 0-based code-point offset within the line.
type Position struct {
	Line   int
	Column int
}
