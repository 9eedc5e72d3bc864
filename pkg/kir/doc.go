// Package kir implements the KIR JSON wire format for component trees.
//
// A KIR document wraps a single encoded tree:
//
//	{
//	  "version": "2.0",
//	  "metadata": {"format": "KIR", "language": "go"},
//	  "root": { "type": "Column", "id": 1, ... }
//	}
//
// Node objects carry a PascalCase "type" tag, a numeric "id", and optional
// "properties", "style", "layout", "children" and "events" fields. Optional
// fields are omitted entirely when empty, never emitted as null, so
// encode→decode→encode is idempotent over present fields.
//
// # Encoding
//
// Encode walks the tree in preorder. Nodes without an explicit ID receive
// one from a counter that starts at 1 on every call, so encoding the same
// tree twice assigns identical IDs. Property, style and layout keys are
// converted from internal snake_case to wire camelCase; dimension and color
// values take their text wire forms.
//
// That flattening is one-way for the property bag: the decoder keeps
// property values in their wire shapes (a dimension comes back as the
// {"value": ...} object, a color as its text form) because the bag is
// untyped and reparsing would also capture ordinary strings. Typed
// dimension and color round-trips belong in Style and Layout, whose
// fields declare what they hold.
//
// # Decoding
//
// Decode is the inverse and is deliberately forward-compatible: unknown
// "type" tags fall back to Container, and unknown style or layout fields
// are preserved. Nodes whose kinds require named constructor parameters
// (text content, button title, heading level, ...) are rebuilt through the
// ir constructors so decoded trees behave like DSL-built ones.
//
// The codec performs no I/O of its own beyond the ReadFile/WriteFile
// helpers; it is a pure function of its input, and distinct trees may be
// encoded or decoded concurrently.
package kir
