package scansion

import "errors"

// Input-shape errors (spec.md §7 kind 1): caller's fault, no partial
// result returned alongside them.
var (
	ErrEmptyLine = errors.New("scansion: line is empty")
	ErrNoWords   = errors.New("scansion: line has no words")
)
