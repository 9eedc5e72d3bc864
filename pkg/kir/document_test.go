package kir

import (
	"errors"
	"strings"
	"testing"
)

func TestMarshalWrapper(t *testing.T) {
	doc := &Document{
		Version:  FormatVersion,
		Metadata: Metadata{Format: FormatName, Language: "go"},
		Root:     &Node{Type: "Container", ID: 1},
	}

	data, err := Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	want := `{"version":"2.0","metadata":{"format":"KIR","language":"go"},"root":{"type":"Container","id":1}}`
	if string(data) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", data, want)
	}
}

// Marshal a tree whose parent and child both carry populated map fields;
// this shape is the canonical Column-with-Text document and must render
// without error through both the compact and indented paths.
func TestMarshalNestedMapFields(t *testing.T) {
	doc := &Document{
		Version:  FormatVersion,
		Metadata: Metadata{Format: FormatName, Language: "go"},
		Root: &Node{
			Type:   "Column",
			ID:     1,
			Layout: map[string]any{"flexDirection": "column"},
			Children: []*Node{
				{Type: "Text", ID: 2, Properties: map[string]any{"textContent": "hello"}},
			},
		},
	}

	data, err := Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"version":"2.0","metadata":{"format":"KIR","language":"go"},` +
		`"root":{"type":"Column","id":1,"layout":{"flexDirection":"column"},` +
		`"children":[{"type":"Text","id":2,"properties":{"textContent":"hello"}}]}}`
	if string(data) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", data, want)
	}

	pretty, err := MarshalIndent(doc)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Unmarshal(pretty)
	if err != nil {
		t.Fatal(err)
	}
	if len(back.Root.Children) != 1 || back.Root.Children[0].Properties["textContent"] != "hello" {
		t.Errorf("round trip lost the child: %+v", back.Root)
	}
}

func TestMarshalOmitsUnassignedID(t *testing.T) {
	data, err := Marshal(&Document{
		Version:  FormatVersion,
		Metadata: Metadata{Format: FormatName, Language: "go"},
		Root:     &Node{Type: "Container"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), `"id"`) {
		t.Errorf("Marshal() emitted an id for an unassigned node:\n%s", data)
	}
}

func TestUnmarshalWrapper(t *testing.T) {
	data := []byte(`{
		"version": "2.0",
		"metadata": {"format": "KIR", "language": "python"},
		"root": {"type": "Text", "id": 1, "properties": {"textContent": "hi"}}
	}`)

	doc, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Version != "2.0" {
		t.Errorf("Version = %q", doc.Version)
	}
	if doc.Metadata.Language != "python" {
		t.Errorf("Language = %q", doc.Metadata.Language)
	}
	if doc.Root == nil || doc.Root.Type != "Text" {
		t.Fatalf("Root = %+v", doc.Root)
	}
	if doc.Root.Properties["textContent"] != "hi" {
		t.Errorf("Properties = %+v", doc.Root.Properties)
	}
}

func TestUnmarshalBareNode(t *testing.T) {
	data := []byte(`{"type": "Button", "id": 3, "properties": {"title": "OK"}}`)

	doc, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Version != FormatVersion {
		t.Errorf("Version = %q, want the default", doc.Version)
	}
	if doc.Metadata.Format != FormatName {
		t.Errorf("Format = %q", doc.Metadata.Format)
	}
	if doc.Root == nil || doc.Root.Type != "Button" || doc.Root.ID != 3 {
		t.Errorf("Root = %+v", doc.Root)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"invalid json", `{not json`, ErrMalformedDocument},
		{"empty object", `{}`, ErrMissingRoot},
		{"wrapper without root", `{"version":"2.0","metadata":{"format":"KIR","language":"go"}}`, ErrMissingRoot},
		{"array", `[1,2,3]`, ErrMalformedDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Unmarshal error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMarshalIndent(t *testing.T) {
	doc := &Document{
		Version:  FormatVersion,
		Metadata: Metadata{Format: FormatName, Language: "go"},
		Root:     &Node{Type: "Container", ID: 1},
	}

	data, err := MarshalIndent(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  \"version\": \"2.0\"") {
		t.Errorf("MarshalIndent not indented:\n%s", data)
	}

	back, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if back.Root.Type != "Container" {
		t.Errorf("Root.Type = %q", back.Root.Type)
	}
}
