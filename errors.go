package jamo

import "fmt"

// InvalidJamoError reports a code point that cannot be interpreted in the
// role an operation requires. It is the only error kind the engine itself
// produces.
type InvalidJamoError struct {
	Codepoint rune
	Reason    string
}

func (e *InvalidJamoError) Error() string {
	return fmt.Sprintf("invalid jamo U+%04X: %s", e.Codepoint, e.Reason)
}

func invalidJamo(r rune, reason string) *InvalidJamoError {
	return &InvalidJamoError{Codepoint: r, Reason: reason}
}
