// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml to parse raw bytes into a
// syntax tree, then converts that tree into the generic document model the
// translator consumes.
//
// Usage:
//
//	parser := yaml.NewParser()
//	root, err := parser.Parse(data)
//
// Conversion rules:
//   - Empty input and bodyless documents become a Null root.
//   - Multi-document streams keep only the first document.
//   - Anchors register their value; aliases resolve against seen anchors.
//   - Integers above the int64 range, unresolved aliases, and node kinds
//     outside the document model become BadValue.
package yaml
