package ir

import "math"

// Per-kind constructors. Each seeds the properties the kind requires, under
// internal (snake_case) keys; everything else is attached through Set,
// SetStyle, SetLayout, AddChild and On. Constructors never validate how
// kinds nest; structural legality is the layout engine's concern.

// Container creates a generic container node.
func Container() *Node { return NewNode(KindContainer) }

// Text creates a text node with the given content.
func Text(content string) *Node {
	return NewNode(KindText).Set("text_content", content)
}

// Button creates a button with the given title.
func Button(title string) *Node {
	return NewNode(KindButton).Set("title", title)
}

// Input creates a text input. Empty value and placeholder are not seeded.
func Input(value, placeholder string) *Node {
	n := NewNode(KindInput)
	if value != "" {
		n.Set("value", value)
	}
	if placeholder != "" {
		n.Set("placeholder", placeholder)
	}
	return n
}

// Checkbox creates a checkbox. The label is seeded only when non-empty.
func Checkbox(checked bool, label string) *Node {
	n := NewNode(KindCheckbox).Set("checked", checked)
	if label != "" {
		n.Set("label", label)
	}
	return n
}

// Dropdown creates a dropdown with the given options and selection.
func Dropdown(options []string, selectedIndex int) *Node {
	n := NewNode(KindDropdown)
	if len(options) > 0 {
		n.Set("options", options)
	}
	return n.Set("selected_index", selectedIndex)
}

// Textarea creates a multi-line text input.
func Textarea(value, placeholder string) *Node {
	n := NewNode(KindTextarea)
	if value != "" {
		n.Set("value", value)
	}
	if placeholder != "" {
		n.Set("placeholder", placeholder)
	}
	return n
}

// Row creates a horizontal container (flex direction row).
func Row() *Node {
	return NewNode(KindRow).SetLayout(&Layout{FlexDirection: Ptr("row")})
}

// Column creates a vertical container (flex direction column).
func Column() *Node {
	return NewNode(KindColumn).SetLayout(&Layout{FlexDirection: Ptr("column")})
}

// Center creates a container that centers its children on both axes.
func Center() *Node {
	return NewNode(KindCenter).SetLayout(&Layout{
		JustifyContent: Ptr("center"),
		AlignItems:     Ptr("center"),
	})
}

// Image creates an image node pointing at src.
func Image(src string) *Node {
	return NewNode(KindImage).Set("src", src)
}

// Canvas creates a drawing canvas of the given size.
func Canvas(width, height float64) *Node {
	return NewNode(KindCanvas).Set("width", numProp(width)).Set("height", numProp(height))
}

// NativeCanvas creates a platform canvas of the given size.
func NativeCanvas(width, height float64) *Node {
	return NewNode(KindNativeCanvas).Set("width", numProp(width)).Set("height", numProp(height))
}

// numProp stores whole values as ints, the same representation decoded
// documents carry, so constructor-built and decoded nodes compare equal.
func numProp(v float64) any {
	if v == math.Trunc(v) {
		return int(v)
	}
	return v
}

// Markdown creates a markdown-rendering node.
func Markdown(content string) *Node {
	return NewNode(KindMarkdown).Set("content", content)
}

// Sprite creates a 2D sprite node pointing at src.
func Sprite(src string) *Node {
	return NewNode(KindSprite).Set("src", src)
}

// TabGroup creates a tab group with the given selected tab.
func TabGroup(selectedIndex int) *Node {
	return NewNode(KindTabGroup).Set("selected_index", selectedIndex)
}

// TabBar creates a tab bar container.
func TabBar() *Node { return NewNode(KindTabBar) }

// Tab creates a single tab.
func Tab(title string) *Node {
	return NewNode(KindTab).Set("title", title)
}

// TabContent creates a tab content container.
func TabContent() *Node { return NewNode(KindTabContent) }

// TabPanel creates a titled tab panel.
func TabPanel(title string) *Node {
	return NewNode(KindTabPanel).Set("title", title)
}

// Modal creates a modal overlay. The title is seeded only when non-empty.
func Modal(isOpen bool, title string) *Node {
	n := NewNode(KindModal).Set("is_open", isOpen)
	if title != "" {
		n.Set("title", title)
	}
	return n
}

// Table creates a table container.
func Table() *Node { return NewNode(KindTable) }

// TableHead creates a table header section.
func TableHead() *Node { return NewNode(KindTableHead) }

// TableBody creates a table body section.
func TableBody() *Node { return NewNode(KindTableBody) }

// TableFoot creates a table footer section.
func TableFoot() *Node { return NewNode(KindTableFoot) }

// TableRow creates a table row.
func TableRow() *Node { return NewNode(KindTableRow) }

// TableCell creates a table cell.
func TableCell() *Node { return NewNode(KindTableCell) }

// TableHeaderCell creates a table header cell.
func TableHeaderCell() *Node { return NewNode(KindTableHeaderCell) }

// NewHeading creates a heading node. Levels outside 1..6 are a
// ValidationError.
func NewHeading(text string, level int) (*Node, error) {
	if level < 1 || level > 6 {
		return nil, &ValidationError{Field: "heading level", Input: level, Reason: "must be between 1 and 6"}
	}
	return NewNode(KindHeading).Set("text", text).Set("level", level), nil
}

// Paragraph creates a paragraph node.
func Paragraph(text string) *Node {
	return NewNode(KindParagraph).Set("text_content", text)
}

// Blockquote creates a blockquote node.
func Blockquote(text string) *Node {
	return NewNode(KindBlockquote).Set("text_content", text)
}

// CodeBlock creates a code block. The language is seeded only when
// non-empty.
func CodeBlock(code, language string) *Node {
	n := NewNode(KindCodeBlock).Set("code", code)
	if language != "" {
		n.Set("language", language)
	}
	return n
}

// HorizontalRule creates a thematic break.
func HorizontalRule() *Node { return NewNode(KindHorizontalRule) }

// List creates an ordered or unordered list starting at start.
func List(ordered bool, start int) *Node {
	return NewNode(KindList).Set("ordered", ordered).Set("start", start)
}

// ListItem creates a list item. Empty text is not seeded so items can hold
// child nodes instead.
func ListItem(text string) *Node {
	n := NewNode(KindListItem)
	if text != "" {
		n.Set("text_content", text)
	}
	return n
}

// Link creates a hyperlink node.
func Link(text, url string) *Node {
	return NewNode(KindLink).Set("text_content", text).Set("url", url)
}

// Span creates an inline span container.
func Span() *Node { return NewNode(KindSpan) }

// Strong creates bold text. Empty text is not seeded.
func Strong(text string) *Node {
	n := NewNode(KindStrong)
	if text != "" {
		n.Set("text_content", text)
	}
	return n
}

// Em creates emphasized text. Empty text is not seeded.
func Em(text string) *Node {
	n := NewNode(KindEm)
	if text != "" {
		n.Set("text_content", text)
	}
	return n
}

// CodeInline creates inline code.
func CodeInline(text string) *Node {
	return NewNode(KindCodeInline).Set("text_content", text)
}

// Small creates small text. Empty text is not seeded.
func Small(text string) *Node {
	n := NewNode(KindSmall)
	if text != "" {
		n.Set("text_content", text)
	}
	return n
}

// Mark creates highlighted text. Empty text is not seeded.
func Mark(text string) *Node {
	n := NewNode(KindMark)
	if text != "" {
		n.Set("text_content", text)
	}
	return n
}

// Custom creates a user-defined component node.
func Custom(name string) *Node {
	return NewNode(KindCustom).Set("component_name", name)
}

// StaticBlock creates a compile-time static block pseudo-node.
func StaticBlock() *Node { return NewNode(KindStaticBlock) }

// ForLoop creates a compile-time loop template pseudo-node.
func ForLoop() *Node { return NewNode(KindForLoop) }

// ForEach creates a runtime list-rendering pseudo-node. Empty items and
// itemName are not seeded.
func ForEach(items, itemName string) *Node {
	n := NewNode(KindForEach)
	if items != "" {
		n.Set("items", items)
	}
	if itemName != "" {
		n.Set("item_name", itemName)
	}
	return n
}

// VarDecl creates a variable declaration pseudo-node.
func VarDecl() *Node { return NewNode(KindVarDecl) }

// Placeholder creates a template placeholder node.
func Placeholder(name string) *Node {
	return NewNode(KindPlaceholder).Set("name", name)
}

// Flowchart creates a flowchart container.
func Flowchart() *Node { return NewNode(KindFlowchart) }

// FlowchartNode creates a flowchart node with the given diagram id and
// label. The id here is a diagram-local name, not the tree node ID.
func FlowchartNode(id, label string) *Node {
	return NewNode(KindFlowchartNode).Set("id", id).Set("label", label)
}

// FlowchartEdge creates a connection between two flowchart nodes. The label
// is seeded only when non-empty.
func FlowchartEdge(from, to, label string) *Node {
	n := NewNode(KindFlowchartEdge).Set("from", from).Set("to", to)
	if label != "" {
		n.Set("label", label)
	}
	return n
}

// FlowchartSubgraph creates a grouped-node subgraph.
func FlowchartSubgraph(id string) *Node {
	return NewNode(KindFlowchartSubgraph).Set("id", id)
}

// FlowchartLabel creates a text label for flowchart nodes and edges.
func FlowchartLabel(text string) *Node {
	return NewNode(KindFlowchartLabel).Set("text", text)
}
