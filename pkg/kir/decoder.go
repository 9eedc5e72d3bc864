package kir

import "github.com/kryon-dev/kir/pkg/ir"

// Decode reconstructs the component tree from a document.
func Decode(doc *Document) (*ir.Node, error) {
	if doc == nil || doc.Root == nil {
		return nil, ErrMissingRoot
	}
	return decodeNode(doc.Root)
}

// DecodeBytes parses document JSON and reconstructs its tree.
func DecodeBytes(data []byte) (*ir.Node, error) {
	doc, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return Decode(doc)
}

func decodeNode(w *Node) (*ir.Node, error) {
	props := normalizeProps(ir.DecodeKeys(w.Properties))

	n, err := nodeFromProps(ir.KindFromWireName(w.Type), props)
	if err != nil {
		return nil, err
	}
	n.ID = w.ID

	// The constructor consumed its named parameters; everything the
	// document carries wins over constructor defaults.
	for key, value := range props {
		n.Set(key, value)
	}

	if w.Style != nil {
		style, err := ir.DecodeStyle(w.Style)
		if err != nil {
			return nil, err
		}
		n.Style = style
	}
	if w.Layout != nil {
		n.Layout = ir.DecodeLayout(w.Layout)
	}

	for _, child := range w.Children {
		if child == nil {
			continue
		}
		decoded, err := decodeNode(child)
		if err != nil {
			return nil, err
		}
		n.AddChild(decoded)
	}

	for _, ev := range w.Events {
		n.On(ev.Type, ev.Handler)
	}

	return n, nil
}

// nodeFromProps rebuilds a node through its kind's constructor, pulling the
// constructor's named parameters out of the decoded property bag so decoded
// nodes behave exactly like DSL-built ones. Kinds with bare constructors
// (and unknown kinds, already mapped to Container) take the generic path.
func nodeFromProps(kind ir.NodeKind, props map[string]any) (*ir.Node, error) {
	switch kind {
	case ir.KindText:
		return ir.Text(getString(props, "text_content")), nil
	case ir.KindButton:
		return ir.Button(getString(props, "title")), nil
	case ir.KindInput:
		return ir.Input(getString(props, "value"), getString(props, "placeholder")), nil
	case ir.KindTextarea:
		return ir.Textarea(getString(props, "value"), getString(props, "placeholder")), nil
	case ir.KindCheckbox:
		return ir.Checkbox(getBool(props, "checked"), getString(props, "label")), nil
	case ir.KindDropdown:
		return ir.Dropdown(getStrings(props, "options"), getInt(props, "selected_index", 0)), nil
	case ir.KindRow:
		return ir.NewNode(kind), nil // layout arrives from the document
	case ir.KindColumn, ir.KindCenter:
		return ir.NewNode(kind), nil
	case ir.KindImage:
		return ir.Image(getString(props, "src")), nil
	case ir.KindSprite:
		return ir.Sprite(getString(props, "src")), nil
	case ir.KindCanvas, ir.KindNativeCanvas:
		width, wok := getFloat(props, "width")
		height, hok := getFloat(props, "height")
		if !wok || !hok {
			return ir.NewNode(kind), nil
		}
		if kind == ir.KindCanvas {
			return ir.Canvas(width, height), nil
		}
		return ir.NativeCanvas(width, height), nil
	case ir.KindMarkdown:
		return ir.Markdown(getString(props, "content")), nil
	case ir.KindTabGroup:
		return ir.TabGroup(getInt(props, "selected_index", 0)), nil
	case ir.KindTab:
		return ir.Tab(getString(props, "title")), nil
	case ir.KindTabPanel:
		return ir.TabPanel(getString(props, "title")), nil
	case ir.KindModal:
		return ir.Modal(getBool(props, "is_open"), getString(props, "title")), nil
	case ir.KindHeading:
		return ir.NewHeading(getString(props, "text"), getInt(props, "level", 1))
	case ir.KindParagraph:
		return ir.Paragraph(getString(props, "text_content")), nil
	case ir.KindBlockquote:
		return ir.Blockquote(getString(props, "text_content")), nil
	case ir.KindCodeBlock:
		return ir.CodeBlock(getString(props, "code"), getString(props, "language")), nil
	case ir.KindList:
		return ir.List(getBool(props, "ordered"), getInt(props, "start", 1)), nil
	case ir.KindListItem:
		return ir.ListItem(getString(props, "text_content")), nil
	case ir.KindLink:
		return ir.Link(getString(props, "text_content"), getString(props, "url")), nil
	case ir.KindStrong:
		return ir.Strong(getString(props, "text_content")), nil
	case ir.KindEm:
		return ir.Em(getString(props, "text_content")), nil
	case ir.KindCodeInline:
		return ir.CodeInline(getString(props, "text_content")), nil
	case ir.KindSmall:
		return ir.Small(getString(props, "text_content")), nil
	case ir.KindMark:
		return ir.Mark(getString(props, "text_content")), nil
	case ir.KindCustom:
		return ir.Custom(getString(props, "component_name")), nil
	case ir.KindForEach:
		return ir.ForEach(getString(props, "items"), getString(props, "item_name")), nil
	case ir.KindPlaceholder:
		return ir.Placeholder(getString(props, "name")), nil
	case ir.KindFlowchartNode:
		return ir.FlowchartNode(getString(props, "id"), getString(props, "label")), nil
	case ir.KindFlowchartEdge:
		return ir.FlowchartEdge(getString(props, "from"), getString(props, "to"), getString(props, "label")), nil
	case ir.KindFlowchartSubgraph:
		return ir.FlowchartSubgraph(getString(props, "id")), nil
	case ir.KindFlowchartLabel:
		return ir.FlowchartLabel(getString(props, "text")), nil
	default:
		return ir.NewNode(kind), nil
	}
}

// normalizeProps canonicalizes JSON-decoded values: whole float64 numbers
// become ints (matching constructor seeds), string arrays become []string,
// and nested objects are normalized recursively.
func normalizeProps(props map[string]any) map[string]any {
	if props == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(props))
	for key, value := range props {
		out[key] = normalizeValue(value)
	}
	return out
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case float64:
		if v == float64(int(v)) {
			return int(v)
		}
		return v
	case []any:
		allStrings := len(v) > 0
		for _, item := range v {
			if _, ok := item.(string); !ok {
				allStrings = false
				break
			}
		}
		if allStrings {
			out := make([]string, len(v))
			for i, item := range v {
				out[i] = item.(string)
			}
			return out
		}
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normalizeValue(item)
		}
		return out
	default:
		return value
	}
}

func getString(props map[string]any, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}

func getBool(props map[string]any, key string) bool {
	if v, ok := props[key].(bool); ok {
		return v
	}
	return false
}

func getInt(props map[string]any, key string, def int) int {
	switch v := props[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return def
}

func getFloat(props map[string]any, key string) (float64, bool) {
	switch v := props[key].(type) {
	case int:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

func getStrings(props map[string]any, key string) []string {
	if v, ok := props[key].([]string); ok {
		return v
	}
	return nil
}
