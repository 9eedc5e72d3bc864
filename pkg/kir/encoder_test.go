package kir

import (
	"testing"

	"github.com/kryon-dev/kir/pkg/ir"
)

func TestEncodeAssignsPreorderIDs(t *testing.T) {
	tree := ir.Column().AddChildren(
		ir.Row().AddChildren(ir.Text("a"), ir.Text("b")),
		ir.Button("c"),
	)

	doc := Encode(tree)

	root := doc.Root
	if root.ID != 1 {
		t.Errorf("root ID = %d, want 1", root.ID)
	}
	if root.Children[0].ID != 2 {
		t.Errorf("row ID = %d, want 2", root.Children[0].ID)
	}
	if root.Children[0].Children[0].ID != 3 {
		t.Errorf("first text ID = %d, want 3", root.Children[0].Children[0].ID)
	}
	if root.Children[0].Children[1].ID != 4 {
		t.Errorf("second text ID = %d, want 4", root.Children[0].Children[1].ID)
	}
	if root.Children[1].ID != 5 {
		t.Errorf("button ID = %d, want 5", root.Children[1].ID)
	}
}

func TestEncodeKeepsExplicitIDs(t *testing.T) {
	tree := ir.Column().AddChildren(
		ir.Text("a").SetID(100),
		ir.Text("b"),
	)

	doc := Encode(tree)

	if doc.Root.ID != 1 {
		t.Errorf("root ID = %d, want 1", doc.Root.ID)
	}
	if doc.Root.Children[0].ID != 100 {
		t.Errorf("explicit ID = %d, want 100", doc.Root.Children[0].ID)
	}
	// Explicit IDs do not advance the counter.
	if doc.Root.Children[1].ID != 2 {
		t.Errorf("auto ID after explicit = %d, want 2", doc.Root.Children[1].ID)
	}
}

func TestEncodeDoesNotMutateInput(t *testing.T) {
	tree := ir.Text("a")
	Encode(tree)
	if tree.ID != 0 {
		t.Errorf("input ID = %d, encoding must not assign into the tree", tree.ID)
	}
}

func TestEncodeCounterResetsPerCall(t *testing.T) {
	tree := ir.Column().AddChild(ir.Text("a"))

	first, err := Marshal(Encode(tree))
	if err != nil {
		t.Fatal(err)
	}
	second, err := Marshal(Encode(tree))
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("re-encoding the same tree changed output:\n%s\n%s", first, second)
	}
}

func TestEncodeOmitsEmptyCollections(t *testing.T) {
	data, err := Marshal(Encode(ir.Container()))
	if err != nil {
		t.Fatal(err)
	}

	want := `{"version":"2.0","metadata":{"format":"KIR","language":"go"},"root":{"type":"Container","id":1}}`
	if string(data) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", data, want)
	}
}

func TestEncodeWireShapes(t *testing.T) {
	tree := ir.Column().
		SetStyle(&ir.Style{Width: ir.Ptr(ir.Pct(100))}).
		AddChild(ir.Text("Hello"))

	data, err := Marshal(Encode(tree))
	if err != nil {
		t.Fatal(err)
	}

	want := `{"version":"2.0","metadata":{"format":"KIR","language":"go"},` +
		`"root":{"type":"Column","id":1,"style":{"width":{"value":"100%"}},` +
		`"layout":{"flexDirection":"column"},` +
		`"children":[{"type":"Text","id":2,"properties":{"textContent":"Hello"}}]}}`
	if string(data) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", data, want)
	}
}

func TestEncodePropValues(t *testing.T) {
	tree := ir.Container().
		Set("width", ir.Px(120)).
		Set("accent_color", ir.RGB(255, 0, 0)).
		Set("custom_data", map[string]any{"k": 1})

	doc := Encode(tree)
	props := doc.Root.Properties

	dim, ok := props["width"].(map[string]any)
	if !ok || dim["value"] != "120px" {
		t.Errorf(`props["width"] = %#v`, props["width"])
	}
	if props["accentColor"] != "#ff0000" {
		t.Errorf(`props["accentColor"] = %#v`, props["accentColor"])
	}
	if _, ok := props["customData"].(map[string]any); !ok {
		t.Errorf(`props["customData"] = %#v`, props["customData"])
	}
}

func TestEncodeEvents(t *testing.T) {
	tree := ir.Button("OK").On("click", "submit").On("hover", "peek")

	doc := Encode(tree)

	if len(doc.Root.Events) != 2 {
		t.Fatalf("Events = %+v", doc.Root.Events)
	}
	if doc.Root.Events[0] != (ir.Event{Type: "click", Handler: "submit"}) {
		t.Errorf("Events[0] = %+v", doc.Root.Events[0])
	}
	if doc.Root.Events[1] != (ir.Event{Type: "hover", Handler: "peek"}) {
		t.Errorf("Events[1] = %+v", doc.Root.Events[1])
	}
}

func TestEncodeWithLanguage(t *testing.T) {
	doc := EncodeWithLanguage(ir.Container(), "kotlin")
	if doc.Metadata.Language != "kotlin" {
		t.Errorf("Language = %q", doc.Metadata.Language)
	}
	if doc.Metadata.Format != FormatName || doc.Version != FormatVersion {
		t.Errorf("wrapper = %+v", doc.Metadata)
	}
}
