package config

import (
	"github.com/ntsk/mainframer/config/document"
)

// Translate converts a parsed document tree into an Intermediate
// configuration. It is a pure function of the tree: nothing is mutated, no
// I/O happens, and the same tree always yields the same result, so it is
// safe to call concurrently on independent inputs.
//
// Sections are validated in a fixed order, remoteMachine then compression,
// and the first failure aborts the whole translation; there is no multi-error
// aggregation. Keys other than the two known sections are ignored, as are
// unknown keys inside the sections.
func Translate(root document.Node) (*Intermediate, error) {
	remoteMachine, err := translateRemoteMachine(root)
	if err != nil {
		return nil, err
	}

	compression, err := translateCompression(root)
	if err != nil {
		return nil, err
	}

	return &Intermediate{
		RemoteMachine: remoteMachine,
		Compression:   compression,
	}, nil
}

// translateRemoteMachine reads the remoteMachine section. A missing, null,
// or unresolvable section means the tool should stay local, so it maps to
// nil rather than an error; only a section of the wrong shape fails.
func translateRemoteMachine(root document.Node) (*RemoteMachine, error) {
	section, found := root.Get("remoteMachine")
	if !found {
		return nil, nil
	}

	switch section.Kind {
	case document.KindMapping:
		host, err := hostName(section)
		if err != nil {
			return nil, err
		}

		return &RemoteMachine{Host: host}, nil
	case document.KindNull, document.KindBadValue:
		return nil, nil
	default:
		return nil, &Error{Kind: ErrShape, Section: "remoteMachine", Got: section.String()}
	}
}

// hostName reads the host field of a remoteMachine mapping. Unlike the
// compression fields, a present but unresolvable host is an error here, and
// the shape of its message differs; see Error.
func hostName(section document.Node) (*string, error) {
	host, found := section.Get("host")
	if !found {
		return nil, nil
	}

	switch host.Kind {
	case document.KindString:
		value := host.Str

		return &value, nil
	case document.KindNull:
		return nil, nil
	default:
		return nil, &Error{Kind: ErrType, Field: "remoteMachine.host", Got: host.String()}
	}
}

// translateCompression reads the compression section. The section's shape
// message does not echo the offending node; the per-field messages do.
func translateCompression(root document.Node) (*Compression, error) {
	section, found := root.Get("compression")
	if !found {
		return nil, nil
	}

	switch section.Kind {
	case document.KindMapping:
		local, err := compressionLevel(section, "local")
		if err != nil {
			return nil, err
		}

		remote, err := compressionLevel(section, "remote")
		if err != nil {
			return nil, err
		}

		return &Compression{Local: local, Remote: remote}, nil
	case document.KindNull, document.KindBadValue:
		return nil, nil
	default:
		return nil, &Error{Kind: ErrShape, Section: "compression"}
	}
}

// compressionLevel reads one level field of a compression mapping. Absent,
// null, and unresolvable values all mean "not configured" and map to nil; a
// present integer must lie within the accepted range.
func compressionLevel(section document.Node, name string) (*int64, error) {
	field := "compression." + name

	level, found := section.Get(name)
	if !found {
		return nil, nil
	}

	switch level.Kind {
	case document.KindInteger:
		if level.Int < MinCompressionLevel || level.Int > MaxCompressionLevel {
			return nil, &Error{Kind: ErrRange, Field: field, Value: level.Int}
		}

		value := level.Int

		return &value, nil
	case document.KindNull, document.KindBadValue:
		return nil, nil
	default:
		return nil, &Error{Kind: ErrType, Field: field, Got: level.String()}
	}
}
