package kir

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kryon-dev/kir/pkg/ir"
)

func TestDecodeBasicTree(t *testing.T) {
	data := []byte(`{
		"version": "2.0",
		"metadata": {"format": "KIR", "language": "python"},
		"root": {
			"type": "Column",
			"id": 1,
			"layout": {"flexDirection": "column"},
			"children": [
				{"type": "Text", "id": 2, "properties": {"textContent": "hi"}},
				{"type": "Button", "id": 3, "properties": {"title": "OK"},
				 "events": [{"type": "click", "handler": "submit"}]}
			]
		}
	}`)

	root, err := DecodeBytes(data)
	if err != nil {
		t.Fatal(err)
	}

	if root.Kind != ir.KindColumn || root.ID != 1 {
		t.Fatalf("root = %+v", root)
	}
	if root.Layout == nil || root.Layout.FlexDirection == nil || *root.Layout.FlexDirection != "column" {
		t.Errorf("Layout = %+v", root.Layout)
	}
	if len(root.Children) != 2 {
		t.Fatalf("children = %d", len(root.Children))
	}

	text := root.Children[0]
	if text.Kind != ir.KindText {
		t.Errorf("first child kind = %v", text.Kind)
	}
	if got, _ := text.Get("text_content"); got != "hi" {
		t.Errorf("text_content = %v", got)
	}

	button := root.Children[1]
	if got, _ := button.Get("title"); got != "OK" {
		t.Errorf("title = %v", got)
	}
	if len(button.Events) != 1 || button.Events[0] != (ir.Event{Type: "click", Handler: "submit"}) {
		t.Errorf("Events = %+v", button.Events)
	}
}

func TestDecodeMatchesConstructor(t *testing.T) {
	// A decoded node must be indistinguishable from the same node built
	// through the constructors, ids aside.
	data := []byte(`{"type": "Checkbox", "id": 1,
		"properties": {"checked": true, "label": "Agree"}}`)

	decoded, err := DecodeBytes(data)
	if err != nil {
		t.Fatal(err)
	}

	want := ir.Checkbox(true, "Agree")
	if !reflect.DeepEqual(decoded.Props, want.Props) {
		t.Errorf("Props = %#v, want %#v", decoded.Props, want.Props)
	}
}

func TestDecodeNormalizesNumbers(t *testing.T) {
	data := []byte(`{"type": "Dropdown", "id": 1,
		"properties": {"options": ["a", "b"], "selectedIndex": 1}}`)

	decoded, err := DecodeBytes(data)
	if err != nil {
		t.Fatal(err)
	}

	// JSON numbers arrive as float64; whole values normalize to int so
	// decoded trees compare equal to constructor-built ones.
	if got, _ := decoded.Get("selected_index"); got != 1 {
		t.Errorf("selected_index = %#v, want int 1", got)
	}
	opts, _ := decoded.Get("options")
	if !reflect.DeepEqual(opts, []string{"a", "b"}) {
		t.Errorf("options = %#v, want []string", opts)
	}
}

func TestDecodeUnknownKindFallsBack(t *testing.T) {
	data := []byte(`{"type": "FutureWidget", "id": 1,
		"properties": {"someProp": "kept"}}`)

	decoded, err := DecodeBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Kind != ir.KindContainer {
		t.Errorf("Kind = %v, want Container fallback", decoded.Kind)
	}
	if got, _ := decoded.Get("some_prop"); got != "kept" {
		t.Errorf("some_prop = %v, unknown kinds must keep their properties", got)
	}
}

func TestDecodeHeading(t *testing.T) {
	good := []byte(`{"type": "Heading", "id": 1, "properties": {"text": "Title", "level": 2}}`)
	decoded, err := DecodeBytes(good)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := decoded.Get("level"); got != 2 {
		t.Errorf("level = %v", got)
	}

	bad := []byte(`{"type": "Heading", "id": 1, "properties": {"text": "Title", "level": 7}}`)
	if _, err := DecodeBytes(bad); err == nil {
		t.Error("heading level 7 should fail to decode")
	}
	var valErr *ir.ValidationError
	if _, err := DecodeBytes(bad); !errors.As(err, &valErr) {
		t.Errorf("want ValidationError, got %v", err)
	}
}

func TestDecodeStyleHandling(t *testing.T) {
	data := []byte(`{"type": "Container", "id": 1,
		"style": {"width": {"value": "50%"}, "backgroundColor": "#336699", "futureField": 1}}`)

	decoded, err := DecodeBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	s := decoded.Style
	if s == nil {
		t.Fatal("Style not decoded")
	}
	if s.Width == nil || *s.Width != ir.Pct(50) {
		t.Errorf("Width = %v", s.Width)
	}
	if s.BackgroundColor == nil || *s.BackgroundColor != ir.RGB(0x33, 0x66, 0x99) {
		t.Errorf("BackgroundColor = %v", s.BackgroundColor)
	}
	if _, ok := s.Extra["future_field"]; !ok {
		t.Errorf("Extra = %#v, unknown style fields must survive", s.Extra)
	}

	bad := []byte(`{"type": "Container", "id": 1, "style": {"color": "nope"}}`)
	if _, err := DecodeBytes(bad); err == nil {
		t.Error("malformed style color should fail to decode")
	}
}

func TestDecodeDocumentPropsWinOverSeeds(t *testing.T) {
	// The constructor seeds selected_index, but the document's value and
	// extra properties must win.
	data := []byte(`{"type": "TabGroup", "id": 1,
		"properties": {"selectedIndex": 4, "customData": {"a": 1}}}`)

	decoded, err := DecodeBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := decoded.Get("selected_index"); got != 4 {
		t.Errorf("selected_index = %v, want 4", got)
	}
	if _, ok := decoded.Get("custom_data"); !ok {
		t.Error("custom_data should survive decoding")
	}
}

// Structured values in the untyped property bag flatten to wire shapes on
// encode and stay that way on decode; only Style and Layout fields reparse
// into typed dimensions and colors.
func TestDecodePropValuesStayWireShaped(t *testing.T) {
	n := ir.Container().
		Set("indent", ir.Px(120)).
		Set("tint", ir.RGB(255, 0, 0))

	data, err := Marshal(Encode(n))
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodeBytes(data)
	if err != nil {
		t.Fatal(err)
	}

	indent, _ := decoded.Get("indent")
	if !reflect.DeepEqual(indent, map[string]any{"value": "120px"}) {
		t.Errorf("indent = %#v, want the wire object form", indent)
	}
	tint, _ := decoded.Get("tint")
	if tint != "#ff0000" {
		t.Errorf("tint = %#v, want the wire text form", tint)
	}
}

func TestDecodeNilDocument(t *testing.T) {
	if _, err := Decode(nil); !errors.Is(err, ErrMissingRoot) {
		t.Errorf("Decode(nil) = %v, want ErrMissingRoot", err)
	}
	if _, err := Decode(&Document{}); !errors.Is(err, ErrMissingRoot) {
		t.Errorf("Decode(empty) = %v, want ErrMissingRoot", err)
	}
}
