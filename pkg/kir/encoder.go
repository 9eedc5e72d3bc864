package kir

import "github.com/kryon-dev/kir/pkg/ir"

// encoder carries the per-call ID counter. It is local to one Encode
// invocation and must not be shared across concurrent encodes.
type encoder struct {
	nextID uint32
}

// Encode converts a tree into a KIR document. Nodes without an explicit ID
// are assigned one in preorder starting at 1; explicit IDs are kept
// verbatim and do not advance the counter. The input tree is not mutated,
// so re-encoding the same tree yields identical IDs.
func Encode(root *ir.Node) *Document {
	return EncodeWithLanguage(root, DefaultLanguage)
}

// EncodeWithLanguage is Encode with an explicit metadata language tag.
func EncodeWithLanguage(root *ir.Node, language string) *Document {
	e := &encoder{nextID: 1}
	return &Document{
		Version:  FormatVersion,
		Metadata: Metadata{Format: FormatName, Language: language},
		Root:     e.encodeNode(root),
	}
}

func (e *encoder) encodeNode(n *ir.Node) *Node {
	if n == nil {
		return nil
	}

	w := &Node{Type: n.Kind.String()}

	if n.ID != 0 {
		w.ID = n.ID
	} else {
		w.ID = e.nextID
		e.nextID++
	}

	if len(n.Props) > 0 {
		w.Properties = encodeProps(n.Props)
	}
	if n.Style != nil {
		if m := n.Style.EncodeStyle(); len(m) > 0 {
			w.Style = m
		}
	}
	if n.Layout != nil {
		if m := n.Layout.EncodeLayout(); len(m) > 0 {
			w.Layout = m
		}
	}
	if len(n.Children) > 0 {
		w.Children = make([]*Node, 0, len(n.Children))
		for _, child := range n.Children {
			w.Children = append(w.Children, e.encodeNode(child))
		}
	}
	if len(n.Events) > 0 {
		w.Events = append([]ir.Event(nil), n.Events...)
	}

	return w
}

// encodeProps converts property keys to wire form and structured values
// (dimensions, colors) to their wire shapes. Plain values pass through.
// The conversion is one-way: the decoder leaves property values in wire
// shape, since the untyped bag gives it nothing to reparse against.
// Typed dimensions and colors round-trip through Style and Layout.
func encodeProps(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for key, value := range props {
		out[ir.EncodeKey(key)] = encodeValue(value)
	}
	return out
}

func encodeValue(value any) any {
	switch v := value.(type) {
	case ir.Dimension:
		return map[string]any{"value": v.String()}
	case *ir.Dimension:
		if v == nil {
			return nil
		}
		return map[string]any{"value": v.String()}
	case ir.Color:
		return v.String()
	case *ir.Color:
		if v == nil {
			return nil
		}
		return v.String()
	default:
		return value
	}
}
