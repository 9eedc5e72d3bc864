package ir

// Node is one element of the component tree.
//
// A Node exclusively owns its children, style and layout; trees are pure
// hierarchies with no cross-tree aliasing. Nodes are built either through
// the per-kind constructors (see elements.go and the el package) or by the
// KIR decoder, and are mutated only through the tree-building methods below
// before being encoded.
type Node struct {
	Kind     NodeKind
	ID       uint32 // 0 means not yet assigned; the encoder assigns from 1
	Props    map[string]any
	Style    *Style
	Layout   *Layout
	Children []*Node
	Events   []Event
}

// Event binds a named event type to a handler reference.
type Event struct {
	Type    string `json:"type"`
	Handler string `json:"handler"`
}

// NewNode creates a bare node of the given kind.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind, Props: make(map[string]any)}
}

// AddChild appends a child and returns the receiver for chaining.
// Nil children are ignored so call sites can pass conditional results.
func (n *Node) AddChild(child *Node) *Node {
	if child != nil {
		n.Children = append(n.Children, child)
	}
	return n
}

// AddChildren appends children in order and returns the receiver.
func (n *Node) AddChildren(children ...*Node) *Node {
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// On appends an event binding and returns the receiver.
func (n *Node) On(eventType, handler string) *Node {
	n.Events = append(n.Events, Event{Type: eventType, Handler: handler})
	return n
}

// Set stores a property under its internal (snake_case) key and returns the
// receiver.
func (n *Node) Set(key string, value any) *Node {
	if n.Props == nil {
		n.Props = make(map[string]any)
	}
	n.Props[key] = value
	return n
}

// Get returns the property stored under the internal key.
func (n *Node) Get(key string) (any, bool) {
	v, ok := n.Props[key]
	return v, ok
}

// SetID assigns an explicit node ID. The encoder never renumbers explicit
// IDs.
func (n *Node) SetID(id uint32) *Node {
	n.ID = id
	return n
}

// SetStyle attaches a style record and returns the receiver.
func (n *Node) SetStyle(s *Style) *Node {
	n.Style = s
	return n
}

// SetLayout attaches a layout record and returns the receiver.
func (n *Node) SetLayout(l *Layout) *Node {
	n.Layout = l
	return n
}

// Walk visits n and every descendant in preorder. It stops early if fn
// returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Count returns the number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) bool {
		total++
		return true
	})
	return total
}

// FindByID returns the first node in preorder with the given ID, or nil.
func (n *Node) FindByID(id uint32) *Node {
	var found *Node
	n.Walk(func(node *Node) bool {
		if node.ID == id {
			found = node
			return false
		}
		return true
	})
	return found
}
