package config

import "fmt"

// ErrorKind classifies configuration failures. Each kind selects one fixed
// message template in Error.
type ErrorKind uint8

const (
	// ErrAccess means the config file could not be opened.
	ErrAccess ErrorKind = iota
	// ErrSyntax means the document text could not be parsed at all.
	ErrSyntax
	// ErrShape means a known section is present but is not an object.
	ErrShape
	// ErrType means a field holds a value of the wrong type.
	ErrType
	// ErrRange means a compression level lies outside the accepted range.
	ErrRange
)

// Error is a configuration loading or validation failure. Kind selects the
// message template and the remaining fields fill it in, so callers can
// assert on structure while the rendered text stays stable. The message
// strings are part of the package's contract; scripts match on them.
type Error struct {
	Kind    ErrorKind
	Path    string // config file path, for ErrAccess
	Section string // top-level section name, for ErrShape
	Field   string // dotted field name, for ErrType and ErrRange
	Got     string // rendering of the offending node, empty when the template omits the echo
	Value   int64  // offending level, for ErrRange
	Err     error  // underlying cause, if any
}

// Error renders the fixed message for the error's kind.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrAccess:
		return fmt.Sprintf("Could not open config file '%s'", e.Path)
	case ErrSyntax:
		return fmt.Sprintf("YAML parsing error: %v", e.Err)
	case ErrShape:
		if e.Got != "" {
			return fmt.Sprintf("'%s' must be an object, but was %s", e.Section, e.Got)
		}

		return fmt.Sprintf("'%s' must be an object", e.Section)
	case ErrType:
		// remoteMachine.host has a shorter message than the compression
		// fields and never echoes the offending value.
		if e.Field == "remoteMachine.host" {
			return "remoteMachine.host must be a string"
		}

		return fmt.Sprintf("'%s' must be a positive integer from %d to %d, but was %s",
			e.Field, MinCompressionLevel, MaxCompressionLevel, e.Got)
	case ErrRange:
		return fmt.Sprintf("'%s' must be a positive integer from %d to %d, but was %d",
			e.Field, MinCompressionLevel, MaxCompressionLevel, e.Value)
	default:
		return "invalid configuration"
	}
}

// Unwrap returns the underlying cause, if any, so errors.Is and errors.As
// see through the fixed message.
func (e *Error) Unwrap() error {
	return e.Err
}
