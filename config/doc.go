// Package config loads and validates the tool's config file.
//
// The config file is a small YAML document with two optional sections:
//
//	remoteMachine:
//	  host: computer1
//	compression:
//	  local: 5
//	  remote: 2
//
// Loading is strict about what it checks and lenient about what it does not:
// both sections and every field are optional, unknown keys are ignored, but
// a present value of the wrong shape, type, or range fails immediately with
// a fixed, script-matchable message. The result type Intermediate mirrors
// the document's optionality with pointer fields and carries no defaults.
//
// # Entry points
//
//	cfg, err := config.Load("config.yml")   // read a file
//	cfg, err := config.Parse(data)          // parse in-memory bytes
//	cfg, err := config.Translate(root)      // validate an already parsed tree
//
// Each entry point is a thin layer over the next: Load fetches the file and
// adds path context to failures, Parse turns bytes into a document tree, and
// Translate applies the validation rules. Translate is a pure function and
// safe for concurrent use.
//
// # Extension points
//
// Two interfaces decouple the pipeline from its sources:
//   - DocumentParser: turns raw bytes into a generic document tree
//   - DataFetcher: retrieves raw config data (file, embedded, etc.)
//
// New composes the two, which fits fx.Provide directly; NewModule packages
// the default file-based pipeline as an Fx module.
//
// # Errors
//
// Failures are *Error values whose Kind selects a fixed message template,
// so callers can assert on structured fields while users see stable text.
// Use errors.As to reach the structured form and Unwrap to reach underlying
// I/O or parser errors.
package config
