package ir

import "testing"

func TestAddChild(t *testing.T) {
	parent := Container().
		AddChild(Text("a")).
		AddChild(nil).
		AddChild(Text("b"))

	if len(parent.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2 (nil children are skipped)", len(parent.Children))
	}
	if got, _ := parent.Children[0].Get("text_content"); got != "a" {
		t.Errorf("first child text = %v", got)
	}
	if got, _ := parent.Children[1].Get("text_content"); got != "b" {
		t.Errorf("second child text = %v", got)
	}
}

func TestAddChildrenPreservesOrder(t *testing.T) {
	parent := Row().AddChildren(Text("1"), nil, Text("2"), Text("3"))

	want := []string{"1", "2", "3"}
	if len(parent.Children) != len(want) {
		t.Fatalf("len(Children) = %d, want %d", len(parent.Children), len(want))
	}
	for i, w := range want {
		if got, _ := parent.Children[i].Get("text_content"); got != w {
			t.Errorf("Children[%d] text = %v, want %q", i, got, w)
		}
	}
}

func TestOnAppendsInOrder(t *testing.T) {
	n := Button("ok").
		On("click", "handleClick").
		On("hover", "handleHover")

	if len(n.Events) != 2 {
		t.Fatalf("len(Events) = %d, want 2", len(n.Events))
	}
	if n.Events[0] != (Event{Type: "click", Handler: "handleClick"}) {
		t.Errorf("Events[0] = %+v", n.Events[0])
	}
	if n.Events[1] != (Event{Type: "hover", Handler: "handleHover"}) {
		t.Errorf("Events[1] = %+v", n.Events[1])
	}
}

func TestChainingReturnsReceiver(t *testing.T) {
	n := Container()
	if n.AddChild(Text("x")) != n {
		t.Error("AddChild should return the receiver")
	}
	if n.Set("k", "v") != n {
		t.Error("Set should return the receiver")
	}
	if n.On("click", "h") != n {
		t.Error("On should return the receiver")
	}
	if n.SetID(7) != n {
		t.Error("SetID should return the receiver")
	}
	if n.ID != 7 {
		t.Errorf("ID = %d, want 7", n.ID)
	}
}

func TestSetGet(t *testing.T) {
	n := Container().Set("custom_data", map[string]any{"k": 1})

	if _, ok := n.Get("custom_data"); !ok {
		t.Error("Get should find custom_data")
	}
	if _, ok := n.Get("missing"); ok {
		t.Error("Get should not find missing keys")
	}

	var zero Node
	zero.Set("a", 1) // must not panic on a zero-value node
	if v, _ := zero.Get("a"); v != 1 {
		t.Errorf("Get after Set on zero node = %v", v)
	}
}

func TestWalkPreorder(t *testing.T) {
	tree := Column().AddChildren(
		Row().AddChildren(Text("a"), Text("b")),
		Button("c"),
	)

	var kinds []NodeKind
	tree.Walk(func(n *Node) bool {
		kinds = append(kinds, n.Kind)
		return true
	})

	want := []NodeKind{KindColumn, KindRow, KindText, KindText, KindButton}
	if len(kinds) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("visit %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestWalkEarlyStop(t *testing.T) {
	tree := Column().AddChildren(Text("a"), Text("b"), Text("c"))

	visited := 0
	tree.Walk(func(n *Node) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Errorf("visited = %d, want 2", visited)
	}
}

func TestCount(t *testing.T) {
	tree := Column().AddChildren(
		Row().AddChildren(Text("a"), Text("b")),
		Button("c"),
	)
	if got := tree.Count(); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
}

func TestFindByID(t *testing.T) {
	inner := Text("target").SetID(42)
	tree := Column().AddChildren(Row().AddChild(inner), Button("x"))

	if got := tree.FindByID(42); got != inner {
		t.Errorf("FindByID(42) = %v, want the tagged node", got)
	}
	if got := tree.FindByID(99); got != nil {
		t.Errorf("FindByID(99) = %v, want nil", got)
	}
}
