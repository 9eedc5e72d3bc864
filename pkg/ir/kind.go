package ir

import "strings"

// NodeKind is the node type discriminator.
//
// The numeric values are part of the IR contract and match the canonical
// component enumeration; new kinds are only ever appended.
type NodeKind uint8

const (
	// Basic UI kinds
	KindContainer NodeKind = iota
	KindText
	KindButton
	KindInput
	KindCheckbox
	KindDropdown
	KindTextarea

	// Layout kinds
	KindRow
	KindColumn
	KindCenter

	// Display kinds
	KindImage
	KindCanvas
	KindNativeCanvas
	KindMarkdown
	KindSprite

	// Tab kinds
	KindTabGroup
	KindTabBar
	KindTab
	KindTabContent
	KindTabPanel

	// Modal/overlay
	KindModal

	// Table kinds
	KindTable
	KindTableHead
	KindTableBody
	KindTableFoot
	KindTableRow
	KindTableCell
	KindTableHeaderCell

	// Markdown document kinds
	KindHeading
	KindParagraph
	KindBlockquote
	KindCodeBlock
	KindHorizontalRule
	KindList
	KindListItem
	KindLink

	// Inline markdown kinds
	KindSpan
	KindStrong
	KindEm
	KindCodeInline
	KindSmall
	KindMark

	// Custom and template kinds
	KindCustom
	KindStaticBlock
	KindForLoop
	KindForEach
	KindVarDecl
	KindPlaceholder

	// Flowchart kinds
	KindFlowchart
	KindFlowchartNode
	KindFlowchartEdge
	KindFlowchartSubgraph
	KindFlowchartLabel

	kindCount // must be last
)

// kindNames holds the canonical PascalCase wire name for each kind,
// indexed by the kind value.
var kindNames = [kindCount]string{
	KindContainer:         "Container",
	KindText:              "Text",
	KindButton:            "Button",
	KindInput:             "Input",
	KindCheckbox:          "Checkbox",
	KindDropdown:          "Dropdown",
	KindTextarea:          "Textarea",
	KindRow:               "Row",
	KindColumn:            "Column",
	KindCenter:            "Center",
	KindImage:             "Image",
	KindCanvas:            "Canvas",
	KindNativeCanvas:      "NativeCanvas",
	KindMarkdown:          "Markdown",
	KindSprite:            "Sprite",
	KindTabGroup:          "TabGroup",
	KindTabBar:            "TabBar",
	KindTab:               "Tab",
	KindTabContent:        "TabContent",
	KindTabPanel:          "TabPanel",
	KindModal:             "Modal",
	KindTable:             "Table",
	KindTableHead:         "TableHead",
	KindTableBody:         "TableBody",
	KindTableFoot:         "TableFoot",
	KindTableRow:          "TableRow",
	KindTableCell:         "TableCell",
	KindTableHeaderCell:   "TableHeaderCell",
	KindHeading:           "Heading",
	KindParagraph:         "Paragraph",
	KindBlockquote:        "Blockquote",
	KindCodeBlock:         "CodeBlock",
	KindHorizontalRule:    "HorizontalRule",
	KindList:              "List",
	KindListItem:          "ListItem",
	KindLink:              "Link",
	KindSpan:              "Span",
	KindStrong:            "Strong",
	KindEm:                "Em",
	KindCodeInline:        "CodeInline",
	KindSmall:             "Small",
	KindMark:              "Mark",
	KindCustom:            "Custom",
	KindStaticBlock:       "StaticBlock",
	KindForLoop:           "ForLoop",
	KindForEach:           "ForEach",
	KindVarDecl:           "VarDecl",
	KindPlaceholder:       "Placeholder",
	KindFlowchart:         "Flowchart",
	KindFlowchartNode:     "FlowchartNode",
	KindFlowchartEdge:     "FlowchartEdge",
	KindFlowchartSubgraph: "FlowchartSubgraph",
	KindFlowchartLabel:    "FlowchartLabel",
}

// Lookup tables built once at init. wireToKind is keyed by the exact
// PascalCase name; looseToKind is keyed by the lowercased name with
// underscores stripped, so loose lookups never mutate strings at runtime
// beyond normalizing the query.
var (
	wireToKind  = make(map[string]NodeKind, kindCount)
	looseToKind = make(map[string]NodeKind, kindCount)
)

func init() {
	for k, name := range kindNames {
		wireToKind[name] = NodeKind(k)
		looseToKind[strings.ToLower(name)] = NodeKind(k)
	}
}

// String returns the canonical PascalCase wire name of the kind.
func (k NodeKind) String() string {
	if k >= kindCount {
		return "Container"
	}
	return kindNames[k]
}

// Valid reports whether k is a known kind.
func (k NodeKind) Valid() bool {
	return k < kindCount
}

// KindFromWireName converts an exact PascalCase wire name to a NodeKind.
// Unknown names fall back to KindContainer so that documents written by a
// newer producer still decode.
func KindFromWireName(name string) NodeKind {
	if k, ok := wireToKind[name]; ok {
		return k
	}
	return KindContainer
}

// KindFromLooseName converts a case- and underscore-insensitive name to a
// NodeKind ("tab_group", "TabGroup" and "TABGROUP" all resolve the same).
// Unknown names fall back to KindContainer.
func KindFromLooseName(name string) NodeKind {
	key := strings.ToLower(strings.ReplaceAll(name, "_", ""))
	if k, ok := looseToKind[key]; ok {
		return k
	}
	return KindContainer
}
