package document

import (
	"strconv"
	"strings"
)

// Kind identifies what a Node holds.
type Kind uint8

const (
	// KindBadValue marks a node that could not be resolved: a failed lookup,
	// an unresolvable alias, or a value outside the model. It is the zero
	// value, so uninitialized nodes are bad values rather than nulls.
	KindBadValue Kind = iota
	// KindNull is an explicit null value.
	KindNull
	// KindBoolean holds Bool.
	KindBoolean
	// KindInteger holds Int.
	KindInteger
	// KindFloat holds Float.
	KindFloat
	// KindString holds Str.
	KindString
	// KindSequence holds Seq.
	KindSequence
	// KindMapping holds Pairs.
	KindMapping
)

// String returns the kind's name as it appears in node renderings.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBoolean:
		return "Boolean"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindSequence:
		return "Sequence"
	case KindMapping:
		return "Mapping"
	default:
		return "BadValue"
	}
}

// Pair is one entry of a mapping node. Keys are nodes themselves so documents
// with non-string keys survive parsing; lookups only ever match string keys.
type Pair struct {
	Key   Node
	Value Node
}

// Node is one value of a parsed document. Kind selects which value field is
// meaningful; the others keep their zero values. Nodes are plain values and
// safe to copy, but Seq and Pairs share backing arrays with their copies.
type Node struct {
	Kind  Kind
	Bool  bool
	Int   int64
	Float float64
	Str   string
	Seq   []Node
	Pairs []Pair
}

// Get looks up the value stored under the given string key. The second
// return reports whether the key was present at all, which keeps "absent"
// distinguishable from an explicit null value. When the document repeats a
// key, the last occurrence wins. Non-mapping nodes have no keys, so Get
// reports absence for them.
func (n Node) Get(key string) (Node, bool) {
	if n.Kind != KindMapping {
		return Node{}, false
	}
	var value Node
	found := false
	for _, pair := range n.Pairs {
		if pair.Key.Kind == KindString && pair.Key.Str == key {
			value = pair.Value
			found = true
		}
	}
	return value, found
}

// String renders the node as a single line of kind-and-value text. The
// rendering is stable across runs and is embedded verbatim in validation
// messages, so changing it changes user-visible output.
func (n Node) String() string {
	switch n.Kind {
	case KindNull:
		return "Null"
	case KindBoolean:
		return "Boolean(" + strconv.FormatBool(n.Bool) + ")"
	case KindInteger:
		return "Integer(" + strconv.FormatInt(n.Int, 10) + ")"
	case KindFloat:
		return "Float(" + strconv.FormatFloat(n.Float, 'g', -1, 64) + ")"
	case KindString:
		return "String(" + strconv.Quote(n.Str) + ")"
	case KindSequence:
		var b strings.Builder
		b.WriteString("Sequence([")
		for i, v := range n.Seq {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(v.String())
		}
		b.WriteString("])")
		return b.String()
	case KindMapping:
		var b strings.Builder
		b.WriteString("Mapping({")
		for i, pair := range n.Pairs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(pair.Key.String())
			b.WriteString(": ")
			b.WriteString(pair.Value.String())
		}
		b.WriteString("})")
		return b.String()
	default:
		return "BadValue"
	}
}
