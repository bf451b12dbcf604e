package yaml

import (
	"math"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/ntsk/mainframer/config/document"
)

// Parser implements config.DocumentParser for YAML data.
// It uses goccy/go-yaml to build a syntax tree and converts it into the
// generic document model.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses YAML data into a generic document tree. Empty input and
// documents without a body yield a Null root. When the data contains more
// than one document, only the first is returned.
//
// Syntax failures return the library's own diagnostic unchanged; callers own
// the message context.
func (p *Parser) Parse(data []byte) (document.Node, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return document.Node{}, err
	}

	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return document.Node{Kind: document.KindNull}, nil
	}

	c := &converter{anchors: map[string]document.Node{}}

	return c.convert(file.Docs[0].Body), nil
}

// converter walks a goccy syntax tree and rebuilds it as document nodes.
// Anchors seen during the walk are recorded so later aliases resolve to the
// anchored value.
type converter struct {
	anchors map[string]document.Node
}

//nolint:cyclop // one case per syntax node kind; splitting would obscure the mapping
func (c *converter) convert(n ast.Node) document.Node {
	switch n := n.(type) {
	case *ast.NullNode:
		return document.Node{Kind: document.KindNull}
	case *ast.BoolNode:
		return document.Node{Kind: document.KindBoolean, Bool: n.Value}
	case *ast.IntegerNode:
		return integerNode(n.Value)
	case *ast.FloatNode:
		return document.Node{Kind: document.KindFloat, Float: n.Value}
	case *ast.InfinityNode:
		return document.Node{Kind: document.KindFloat, Float: n.Value}
	case *ast.NanNode:
		return document.Node{Kind: document.KindFloat, Float: math.NaN()}
	case *ast.StringNode:
		return document.Node{Kind: document.KindString, Str: n.Value}
	case *ast.LiteralNode:
		return document.Node{Kind: document.KindString, Str: n.Value.Value}
	case *ast.SequenceNode:
		values := make([]document.Node, 0, len(n.Values))
		for _, v := range n.Values {
			values = append(values, c.convert(v))
		}

		return document.Node{Kind: document.KindSequence, Seq: values}
	case *ast.MappingNode:
		pairs := make([]document.Pair, 0, len(n.Values))
		for _, v := range n.Values {
			pairs = append(pairs, c.pair(v))
		}

		return document.Node{Kind: document.KindMapping, Pairs: pairs}
	case *ast.MappingValueNode:
		// A single key-value pair parses as a bare MappingValueNode rather
		// than a MappingNode wrapping one.
		return document.Node{Kind: document.KindMapping, Pairs: []document.Pair{c.pair(n)}}
	case *ast.AnchorNode:
		value := c.convert(n.Value)
		if name, ok := n.Name.(*ast.StringNode); ok {
			c.anchors[name.Value] = value
		}

		return value
	case *ast.AliasNode:
		if name, ok := n.Value.(*ast.StringNode); ok {
			if value, ok := c.anchors[name.Value]; ok {
				return value
			}
		}

		return document.Node{}
	case *ast.TagNode:
		return c.convert(n.Value)
	case *ast.MergeKeyNode:
		return document.Node{Kind: document.KindString, Str: "<<"}
	default:
		return document.Node{}
	}
}

func (c *converter) pair(v *ast.MappingValueNode) document.Pair {
	return document.Pair{Key: c.convert(v.Key), Value: c.convert(v.Value)}
}

// integerNode converts the library's integer representation, which is int64
// for negative literals and uint64 otherwise. Values above the int64 range
// have no place in the document model and become bad values.
func integerNode(value any) document.Node {
	switch value := value.(type) {
	case int64:
		return document.Node{Kind: document.KindInteger, Int: value}
	case uint64:
		if value > math.MaxInt64 {
			return document.Node{}
		}

		return document.Node{Kind: document.KindInteger, Int: int64(value)}
	default:
		return document.Node{}
	}
}
