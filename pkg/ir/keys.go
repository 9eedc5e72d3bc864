package ir

import (
	"strings"
	"unicode"
)

// Property, style and layout keys have two spellings: the internal
// snake_case form used throughout the node model, and the camelCase form
// used on the wire. A small set of irregular pairs is pinned in an override
// table; every other key goes through the generic algorithmic conversion.
//
// The override table is authoritative: the generic camelCase decode treats
// every uppercase rune as a word start, which round-trips all keys this
// system produces but is not invertible for arbitrary foreign keys with
// consecutive capitals.
var keyOverrides = map[string]string{
	"text_content":    "textContent",
	"custom_data":     "customData",
	"source_module":   "sourceModule",
	"export_name":     "exportName",
	"module_ref":      "moduleRef",
	"component_ref":   "componentRef",
	"component_props": "componentProps",
	"selected_index":  "selectedIndex",
	"is_open":         "isOpen",
}

// wireKeyOverrides is the inverse of keyOverrides, built at init.
var wireKeyOverrides = make(map[string]string, len(keyOverrides))

func init() {
	for internal, wire := range keyOverrides {
		wireKeyOverrides[wire] = internal
	}
}

// EncodeKey converts an internal snake_case key to its wire camelCase form.
func EncodeKey(key string) string {
	if wire, ok := keyOverrides[key]; ok {
		return wire
	}
	if !strings.Contains(key, "_") {
		return key
	}
	parts := strings.Split(key, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// DecodeKey converts a wire camelCase key back to its internal snake_case
// form. DecodeKey(EncodeKey(k)) == k for every key this system produces.
func DecodeKey(key string) string {
	if internal, ok := wireKeyOverrides[key]; ok {
		return internal
	}
	var b strings.Builder
	b.Grow(len(key) + 4)
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EncodeKeys returns a copy of props with every key in wire form. Values
// are carried through untouched.
func EncodeKeys(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[EncodeKey(k)] = v
	}
	return out
}

// DecodeKeys returns a copy of props with every key in internal form.
func DecodeKeys(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[DecodeKey(k)] = v
	}
	return out
}
