// Package ir provides the in-memory component tree model.
//
// The tree is the intermediate representation shared by the DSL
// constructors, the KIR wire codec and the source regenerator. A Node
// carries a closed-set kind tag, an optional numeric ID, a property bag
// under internal snake_case keys, optional Style and Layout records,
// ordered children and ordered event bindings.
//
// # Building Trees
//
// Trees are built through per-kind constructors and chained mutators:
//
//	app := ir.Column().
//	    SetStyle(&ir.Style{Width: ir.Ptr(ir.Pct(100))}).
//	    AddChildren(
//	        ir.Text("Hello"),
//	        ir.Button("Save").On("click", "onSave"),
//	    )
//
// # Key Spellings
//
// Property, style and layout keys have an internal snake_case spelling and
// a camelCase wire spelling. EncodeKey and DecodeKey convert between them;
// an override table pins the irregular pairs.
//
// # Values
//
// Dimension and Color model the two structured value types of the wire
// format. Dimensions render as "auto", "<n>%" or "<n>px"; colors render as
// 6-digit hex when opaque and rgba(...) text otherwise.
//
// All operations are synchronous and allocation is the only side effect;
// distinct trees are safe to use concurrently, but a single tree must not
// be mutated while it is being encoded.
package ir
