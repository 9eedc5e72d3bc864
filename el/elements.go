// This file re-exports ir constructors for the el package.
package el

import "github.com/kryon-dev/kir/pkg/ir"

// Node is the component tree node type.
type Node = ir.Node

// NewNode creates a bare node of the given kind.
func NewNode(kind ir.NodeKind) *Node {
	return ir.NewNode(kind)
}

func Container() *Node {
	return ir.Container()
}
func Text(content string) *Node {
	return ir.Text(content)
}
func Button(title string) *Node {
	return ir.Button(title)
}
func Input(value, placeholder string) *Node {
	return ir.Input(value, placeholder)
}
func Checkbox(checked bool, label string) *Node {
	return ir.Checkbox(checked, label)
}
func Dropdown(options []string, selectedIndex int) *Node {
	return ir.Dropdown(options, selectedIndex)
}
func Textarea(value, placeholder string) *Node {
	return ir.Textarea(value, placeholder)
}
func Row() *Node {
	return ir.Row()
}
func Column() *Node {
	return ir.Column()
}
func Center() *Node {
	return ir.Center()
}
func Image(src string) *Node {
	return ir.Image(src)
}
func Canvas(width, height float64) *Node {
	return ir.Canvas(width, height)
}
func NativeCanvas(width, height float64) *Node {
	return ir.NativeCanvas(width, height)
}
func Markdown(content string) *Node {
	return ir.Markdown(content)
}
func Sprite(src string) *Node {
	return ir.Sprite(src)
}
func TabGroup(selectedIndex int) *Node {
	return ir.TabGroup(selectedIndex)
}
func TabBar() *Node {
	return ir.TabBar()
}
func Tab(title string) *Node {
	return ir.Tab(title)
}
func TabContent() *Node {
	return ir.TabContent()
}
func TabPanel(title string) *Node {
	return ir.TabPanel(title)
}
func Modal(isOpen bool, title string) *Node {
	return ir.Modal(isOpen, title)
}
func Table() *Node {
	return ir.Table()
}
func TableHead() *Node {
	return ir.TableHead()
}
func TableBody() *Node {
	return ir.TableBody()
}
func TableFoot() *Node {
	return ir.TableFoot()
}
func TableRow() *Node {
	return ir.TableRow()
}
func TableCell() *Node {
	return ir.TableCell()
}
func TableHeaderCell() *Node {
	return ir.TableHeaderCell()
}

// Heading panics when level is outside 1..6.
func Heading(text string, level int) *Node {
	n, err := ir.NewHeading(text, level)
	if err != nil {
		panic(err)
	}
	return n
}

func Paragraph(text string) *Node {
	return ir.Paragraph(text)
}
func Blockquote(text string) *Node {
	return ir.Blockquote(text)
}
func CodeBlock(code, language string) *Node {
	return ir.CodeBlock(code, language)
}
func HorizontalRule() *Node {
	return ir.HorizontalRule()
}
func List(ordered bool, start int) *Node {
	return ir.List(ordered, start)
}
func ListItem(text string) *Node {
	return ir.ListItem(text)
}
func Link(text, url string) *Node {
	return ir.Link(text, url)
}
func Span() *Node {
	return ir.Span()
}
func Strong(text string) *Node {
	return ir.Strong(text)
}
func Em(text string) *Node {
	return ir.Em(text)
}
func CodeInline(text string) *Node {
	return ir.CodeInline(text)
}
func Small(text string) *Node {
	return ir.Small(text)
}
func Mark(text string) *Node {
	return ir.Mark(text)
}
func Custom(name string) *Node {
	return ir.Custom(name)
}
func StaticBlock() *Node {
	return ir.StaticBlock()
}
func ForLoop() *Node {
	return ir.ForLoop()
}
func ForEach(items, itemName string) *Node {
	return ir.ForEach(items, itemName)
}
func VarDecl() *Node {
	return ir.VarDecl()
}
func Placeholder(name string) *Node {
	return ir.Placeholder(name)
}
func Flowchart() *Node {
	return ir.Flowchart()
}
func FlowchartNode(id, label string) *Node {
	return ir.FlowchartNode(id, label)
}
func FlowchartEdge(from, to, label string) *Node {
	return ir.FlowchartEdge(from, to, label)
}
func FlowchartSubgraph(id string) *Node {
	return ir.FlowchartSubgraph(id)
}
func FlowchartLabel(text string) *Node {
	return ir.FlowchartLabel(text)
}
