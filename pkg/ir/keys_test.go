package ir

import "testing"

func TestEncodeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		// Override table entries.
		{"text_content", "textContent"},
		{"custom_data", "customData"},
		{"source_module", "sourceModule"},
		{"export_name", "exportName"},
		{"module_ref", "moduleRef"},
		{"component_ref", "componentRef"},
		{"component_props", "componentProps"},
		{"selected_index", "selectedIndex"},
		{"is_open", "isOpen"},
		// Generic conversion.
		{"background_color", "backgroundColor"},
		{"margin_top", "marginTop"},
		{"flex_basis", "flexBasis"},
		{"title", "title"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := EncodeKey(tt.in); got != tt.want {
				t.Errorf("EncodeKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"textContent", "text_content"},
		{"isOpen", "is_open"},
		{"selectedIndex", "selected_index"},
		{"backgroundColor", "background_color"},
		{"flexDirection", "flex_direction"},
		{"gap", "gap"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := DecodeKey(tt.in); got != tt.want {
				t.Errorf("DecodeKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKeyRoundTrip(t *testing.T) {
	keys := []string{
		"text_content", "is_open", "selected_index", "component_props",
		"background_color", "border_radius", "flex_grow", "item_name",
		"title", "checked", "x",
	}
	for _, key := range keys {
		if got := DecodeKey(EncodeKey(key)); got != key {
			t.Errorf("DecodeKey(EncodeKey(%q)) = %q", key, got)
		}
	}
}

func TestEncodeKeys(t *testing.T) {
	in := map[string]any{"text_content": "hi", "is_open": true, "title": "x"}
	out := EncodeKeys(in)

	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	if out["textContent"] != "hi" {
		t.Errorf(`out["textContent"] = %v`, out["textContent"])
	}
	if out["isOpen"] != true {
		t.Errorf(`out["isOpen"] = %v`, out["isOpen"])
	}
	if out["title"] != "x" {
		t.Errorf(`out["title"] = %v`, out["title"])
	}
}

func TestDecodeKeys(t *testing.T) {
	in := map[string]any{"textContent": "hi", "selectedIndex": 2}
	out := DecodeKeys(in)

	if out["text_content"] != "hi" {
		t.Errorf(`out["text_content"] = %v`, out["text_content"])
	}
	if out["selected_index"] != 2 {
		t.Errorf(`out["selected_index"] = %v`, out["selected_index"])
	}
}
