// Package codegen regenerates tree-construction source from a component
// tree. The produced Go source uses the el DSL; executing it rebuilds a
// tree structurally equal to the input (kinds, attributes, nesting).
// Formatting fidelity with whatever originally produced the tree is not a
// goal.
package codegen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kryon-dev/kir/pkg/ir"
)

// Config controls the shape of the generated file.
type Config struct {
	// PackageName for the generated file. Defaults to "main".
	PackageName string

	// FuncName of the generated constructor function. Defaults to
	// "BuildTree".
	FuncName string

	// ModulePath is the import path prefix of the DSL packages. Defaults
	// to this module.
	ModulePath string
}

func (c Config) withDefaults() Config {
	if c.PackageName == "" {
		c.PackageName = "main"
	}
	if c.FuncName == "" {
		c.FuncName = "BuildTree"
	}
	if c.ModulePath == "" {
		c.ModulePath = "github.com/kryon-dev/kir"
	}
	return c
}

// Generate renders Go source that reconstructs the given tree using
// default configuration.
func Generate(root *ir.Node) string {
	return GenerateWithConfig(root, Config{})
}

// GenerateWithConfig renders Go source for the tree.
//
// Each node becomes one constructor statement followed by property, style,
// layout and event statements, then one AddChild statement per child after
// that child's own block. Variable names derive deterministically from tree
// position: the root is "app", its i-th child "appChild<i>", and so on.
func GenerateWithConfig(root *ir.Node, cfg Config) string {
	cfg = cfg.withDefaults()

	g := &generator{}
	g.linef("package %s", cfg.PackageName)
	g.line("")
	g.line("import (")
	g.linef("\t%q", cfg.ModulePath+"/el")
	g.linef("\t%q", cfg.ModulePath+"/pkg/ir")
	g.line(")")
	g.line("")
	g.linef("// %s reconstructs the component tree.", cfg.FuncName)
	g.linef("func %s() *ir.Node {", cfg.FuncName)
	g.emitNode(root, "app")
	g.line("\treturn app")
	g.line("}")
	return g.b.String()
}

type generator struct {
	b strings.Builder
}

func (g *generator) line(s string) {
	g.b.WriteString(s)
	g.b.WriteByte('\n')
}

func (g *generator) linef(format string, args ...any) {
	fmt.Fprintf(&g.b, format, args...)
	g.b.WriteByte('\n')
}

// stmt writes one indented statement inside the generated function body.
func (g *generator) stmt(format string, args ...any) {
	g.b.WriteByte('\t')
	fmt.Fprintf(&g.b, format, args...)
	g.b.WriteByte('\n')
}

func (g *generator) emitNode(n *ir.Node, name string) {
	ctor, consumed := constructorCall(n)
	g.stmt("%s := %s", name, ctor)

	// Remaining properties, in sorted order for deterministic output.
	keys := make([]string, 0, len(n.Props))
	for key := range n.Props {
		if !consumed[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		g.stmt("%s.Set(%q, %s)", name, key, valueExpr(n.Props[key]))
	}

	if n.Style != nil {
		if expr := styleExpr(n.Style); expr != "" {
			g.stmt("%s.SetStyle(%s)", name, expr)
		}
	}
	if n.Layout != nil {
		if expr := layoutExpr(n.Layout); expr != "" {
			g.stmt("%s.SetLayout(%s)", name, expr)
		}
	}
	for _, ev := range n.Events {
		g.stmt("%s.On(%q, %q)", name, ev.Type, ev.Handler)
	}

	for i, child := range n.Children {
		childName := fmt.Sprintf("%sChild%d", name, i)
		g.emitNode(child, childName)
		g.stmt("%s.AddChild(%s)", name, childName)
	}
}

// constructorCall renders the el constructor for the node and reports which
// property keys the constructor consumes.
func constructorCall(n *ir.Node) (string, map[string]bool) {
	str := func(key string) string { s, _ := n.Props[key].(string); return s }
	used := func(keys ...string) map[string]bool {
		m := make(map[string]bool, len(keys))
		for _, k := range keys {
			m[k] = true
		}
		return m
	}

	switch n.Kind {
	case ir.KindText:
		return fmt.Sprintf("el.Text(%q)", str("text_content")), used("text_content")
	case ir.KindButton:
		return fmt.Sprintf("el.Button(%q)", str("title")), used("title")
	case ir.KindInput:
		return fmt.Sprintf("el.Input(%q, %q)", str("value"), str("placeholder")), used("value", "placeholder")
	case ir.KindTextarea:
		return fmt.Sprintf("el.Textarea(%q, %q)", str("value"), str("placeholder")), used("value", "placeholder")
	case ir.KindCheckbox:
		checked, _ := n.Props["checked"].(bool)
		return fmt.Sprintf("el.Checkbox(%v, %q)", checked, str("label")), used("checked", "label")
	case ir.KindDropdown:
		if options, ok := n.Props["options"].([]string); ok {
			if idx, ok := intProp(n, "selected_index"); ok {
				return fmt.Sprintf("el.Dropdown(%s, %d)", valueExpr(options), idx), used("options", "selected_index")
			}
		}
	case ir.KindRow:
		return "el.Row()", nil
	case ir.KindColumn:
		return "el.Column()", nil
	case ir.KindCenter:
		return "el.Center()", nil
	case ir.KindImage:
		return fmt.Sprintf("el.Image(%q)", str("src")), used("src")
	case ir.KindSprite:
		return fmt.Sprintf("el.Sprite(%q)", str("src")), used("src")
	case ir.KindCanvas, ir.KindNativeCanvas:
		width, wok := floatProp(n, "width")
		height, hok := floatProp(n, "height")
		if wok && hok {
			name := "el.Canvas"
			if n.Kind == ir.KindNativeCanvas {
				name = "el.NativeCanvas"
			}
			return fmt.Sprintf("%s(%s, %s)", name, floatArg(width), floatArg(height)), used("width", "height")
		}
	case ir.KindMarkdown:
		return fmt.Sprintf("el.Markdown(%s)", valueExpr(str("content"))), used("content")
	case ir.KindTabGroup:
		if idx, ok := intProp(n, "selected_index"); ok {
			return fmt.Sprintf("el.TabGroup(%d)", idx), used("selected_index")
		}
	case ir.KindTab:
		return fmt.Sprintf("el.Tab(%q)", str("title")), used("title")
	case ir.KindTabPanel:
		return fmt.Sprintf("el.TabPanel(%q)", str("title")), used("title")
	case ir.KindModal:
		isOpen, _ := n.Props["is_open"].(bool)
		return fmt.Sprintf("el.Modal(%v, %q)", isOpen, str("title")), used("is_open", "title")
	case ir.KindHeading:
		if level, ok := intProp(n, "level"); ok {
			return fmt.Sprintf("el.Heading(%q, %d)", str("text"), level), used("text", "level")
		}
	case ir.KindParagraph:
		return fmt.Sprintf("el.Paragraph(%s)", valueExpr(str("text_content"))), used("text_content")
	case ir.KindBlockquote:
		return fmt.Sprintf("el.Blockquote(%s)", valueExpr(str("text_content"))), used("text_content")
	case ir.KindCodeBlock:
		return fmt.Sprintf("el.CodeBlock(%s, %q)", valueExpr(str("code")), str("language")), used("code", "language")
	case ir.KindList:
		ordered, _ := n.Props["ordered"].(bool)
		if start, ok := intProp(n, "start"); ok {
			return fmt.Sprintf("el.List(%v, %d)", ordered, start), used("ordered", "start")
		}
	case ir.KindListItem:
		return fmt.Sprintf("el.ListItem(%q)", str("text_content")), used("text_content")
	case ir.KindLink:
		return fmt.Sprintf("el.Link(%q, %q)", str("text_content"), str("url")), used("text_content", "url")
	case ir.KindStrong:
		return fmt.Sprintf("el.Strong(%q)", str("text_content")), used("text_content")
	case ir.KindEm:
		return fmt.Sprintf("el.Em(%q)", str("text_content")), used("text_content")
	case ir.KindCodeInline:
		return fmt.Sprintf("el.CodeInline(%q)", str("text_content")), used("text_content")
	case ir.KindSmall:
		return fmt.Sprintf("el.Small(%q)", str("text_content")), used("text_content")
	case ir.KindMark:
		return fmt.Sprintf("el.Mark(%q)", str("text_content")), used("text_content")
	case ir.KindCustom:
		return fmt.Sprintf("el.Custom(%q)", str("component_name")), used("component_name")
	case ir.KindForEach:
		return fmt.Sprintf("el.ForEach(%q, %q)", str("items"), str("item_name")), used("items", "item_name")
	case ir.KindPlaceholder:
		return fmt.Sprintf("el.Placeholder(%q)", str("name")), used("name")
	case ir.KindFlowchartNode:
		return fmt.Sprintf("el.FlowchartNode(%q, %q)", str("id"), str("label")), used("id", "label")
	case ir.KindFlowchartEdge:
		return fmt.Sprintf("el.FlowchartEdge(%q, %q, %q)", str("from"), str("to"), str("label")), used("from", "to", "label")
	case ir.KindFlowchartSubgraph:
		return fmt.Sprintf("el.FlowchartSubgraph(%q)", str("id")), used("id")
	case ir.KindFlowchartLabel:
		return fmt.Sprintf("el.FlowchartLabel(%q)", str("text")), used("text")
	case ir.KindContainer:
		return "el.Container()", nil
	case ir.KindTabBar:
		return "el.TabBar()", nil
	case ir.KindTabContent:
		return "el.TabContent()", nil
	case ir.KindTable:
		return "el.Table()", nil
	case ir.KindTableHead:
		return "el.TableHead()", nil
	case ir.KindTableBody:
		return "el.TableBody()", nil
	case ir.KindTableFoot:
		return "el.TableFoot()", nil
	case ir.KindTableRow:
		return "el.TableRow()", nil
	case ir.KindTableCell:
		return "el.TableCell()", nil
	case ir.KindTableHeaderCell:
		return "el.TableHeaderCell()", nil
	case ir.KindHorizontalRule:
		return "el.HorizontalRule()", nil
	case ir.KindSpan:
		return "el.Span()", nil
	case ir.KindStaticBlock:
		return "el.StaticBlock()", nil
	case ir.KindForLoop:
		return "el.ForLoop()", nil
	case ir.KindVarDecl:
		return "el.VarDecl()", nil
	case ir.KindFlowchart:
		return "el.Flowchart()", nil
	}

	// A constructor argument had an unexpected type; build the node
	// generically and let the Set statements carry every property.
	return fmt.Sprintf("el.NewNode(ir.Kind%s)", n.Kind.String()), nil
}

func intProp(n *ir.Node, key string) (int, bool) {
	switch v := n.Props[key].(type) {
	case int:
		return v, true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}

func floatProp(n *ir.Node, key string) (float64, bool) {
	switch v := n.Props[key].(type) {
	case int:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// floatArg renders a float constructor argument; whole values print as
// integer literals (untyped constants convert).
func floatArg(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// floatLit renders a float64 literal, keeping a decimal point so type
// inference lands on float64.
func floatLit(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// valueExpr renders a property value as a Go expression.
func valueExpr(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case string:
		return stringLit(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return floatLit(v)
	case []string:
		parts := make([]string, len(v))
		for i, s := range v {
			parts[i] = stringLit(s)
		}
		return "[]string{" + strings.Join(parts, ", ") + "}"
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = valueExpr(item)
		}
		return "[]any{" + strings.Join(parts, ", ") + "}"
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, key := range keys {
			parts[i] = stringLit(key) + ": " + valueExpr(v[key])
		}
		return "map[string]any{" + strings.Join(parts, ", ") + "}"
	case ir.Dimension:
		return dimExpr(v)
	case ir.Color:
		return colorExpr(v)
	default:
		return stringLit(fmt.Sprintf("%v", v))
	}
}

// stringLit prefers a raw string literal for multi-line text.
func stringLit(s string) string {
	if strings.Contains(s, "\n") && !strings.Contains(s, "`") && !strings.Contains(s, "\r") {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}

func dimExpr(d ir.Dimension) string {
	switch d.Unit {
	case ir.UnitAuto:
		return "ir.Auto()"
	case ir.UnitPercent:
		return fmt.Sprintf("ir.Pct(%s)", floatArg(d.Value))
	case ir.UnitOpaque:
		return fmt.Sprintf("ir.Opaque(%q)", d.Raw)
	default:
		return fmt.Sprintf("ir.Px(%s)", floatArg(d.Value))
	}
}

func colorExpr(c ir.Color) string {
	if c.A == 1.0 {
		return fmt.Sprintf("ir.RGB(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("ir.RGBA(%d, %d, %d, %s)", c.R, c.G, c.B, floatLit(c.A))
}

// styleExpr renders an &ir.Style literal listing only present fields, in
// declaration order.
func styleExpr(s *ir.Style) string {
	var fields []string
	add := func(name, expr string) {
		fields = append(fields, fmt.Sprintf("%s: %s", name, expr))
	}
	dim := func(name string, d *ir.Dimension) {
		if d != nil {
			add(name, "ir.Ptr("+dimExpr(*d)+")")
		}
	}
	color := func(name string, c *ir.Color) {
		if c != nil {
			add(name, "ir.Ptr("+colorExpr(*c)+")")
		}
	}
	num := func(name string, v *float64) {
		if v != nil {
			add(name, "ir.Ptr("+floatLit(*v)+")")
		}
	}
	str := func(name string, v *string) {
		if v != nil {
			add(name, "ir.Ptr("+stringLit(*v)+")")
		}
	}

	dim("Width", s.Width)
	dim("Height", s.Height)
	dim("MinWidth", s.MinWidth)
	dim("MaxWidth", s.MaxWidth)
	dim("MinHeight", s.MinHeight)
	dim("MaxHeight", s.MaxHeight)
	color("BackgroundColor", s.BackgroundColor)
	color("Color", s.Color)
	color("BorderColor", s.BorderColor)
	num("BorderWidth", s.BorderWidth)
	num("BorderRadius", s.BorderRadius)
	num("Margin", s.Margin)
	num("MarginTop", s.MarginTop)
	num("MarginRight", s.MarginRight)
	num("MarginBottom", s.MarginBottom)
	num("MarginLeft", s.MarginLeft)
	num("Padding", s.Padding)
	num("PaddingTop", s.PaddingTop)
	num("PaddingRight", s.PaddingRight)
	num("PaddingBottom", s.PaddingBottom)
	num("PaddingLeft", s.PaddingLeft)
	num("FontSize", s.FontSize)
	str("FontFamily", s.FontFamily)
	str("FontWeight", s.FontWeight)
	str("FontStyle", s.FontStyle)
	num("LineHeight", s.LineHeight)
	str("TextAlign", s.TextAlign)
	if s.Visible != nil {
		add("Visible", fmt.Sprintf("ir.Ptr(%v)", *s.Visible))
	}
	num("Opacity", s.Opacity)
	str("Overflow", s.Overflow)
	num("FlexGrow", s.FlexGrow)
	num("FlexShrink", s.FlexShrink)
	dim("FlexBasis", s.FlexBasis)
	str("Position", s.Position)
	num("X", s.X)
	num("Y", s.Y)
	if len(s.Extra) > 0 {
		add("Extra", valueExpr(s.Extra))
	}

	if len(fields) == 0 {
		return ""
	}
	return "&ir.Style{" + strings.Join(fields, ", ") + "}"
}

// layoutExpr renders an &ir.Layout literal listing only present fields.
func layoutExpr(l *ir.Layout) string {
	var fields []string
	add := func(name, expr string) {
		fields = append(fields, fmt.Sprintf("%s: %s", name, expr))
	}
	num := func(name string, v *float64) {
		if v != nil {
			add(name, "ir.Ptr("+floatLit(*v)+")")
		}
	}
	str := func(name string, v *string) {
		if v != nil {
			add(name, "ir.Ptr("+stringLit(*v)+")")
		}
	}

	str("FlexDirection", l.FlexDirection)
	str("JustifyContent", l.JustifyContent)
	str("AlignItems", l.AlignItems)
	str("AlignContent", l.AlignContent)
	num("Gap", l.Gap)
	num("RowGap", l.RowGap)
	num("ColumnGap", l.ColumnGap)
	str("FlexWrap", l.FlexWrap)
	num("Top", l.Top)
	num("Right", l.Right)
	num("Bottom", l.Bottom)
	num("Left", l.Left)
	if len(l.Extra) > 0 {
		add("Extra", valueExpr(l.Extra))
	}

	if len(fields) == 0 {
		return ""
	}
	return "&ir.Layout{" + strings.Join(fields, ", ") + "}"
}
