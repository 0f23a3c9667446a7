package sxml

import (
	"testing"
)

func TestNode_Constructors(t *testing.T) {
	el := Element("item", Attr{"id", "7"})
	if el.Kind() != KindElement {
		t.Errorf("Kind() = %v, want %v", el.Kind(), KindElement)
	}
	if el.Tag() != "item" {
		t.Errorf("Tag() = %q, want %q", el.Tag(), "item")
	}
	if v, ok := el.Attr("id"); !ok || v != "7" {
		t.Errorf(`Attr("id") = %q, %v, want "7", true`, v, ok)
	}

	txt := Text("hello")
	if txt.Kind() != KindText {
		t.Errorf("Kind() = %v, want %v", txt.Kind(), KindText)
	}
	if txt.Text() != "hello" {
		t.Errorf("Text() = %q, want %q", txt.Text(), "hello")
	}
	if txt.Tag() != "" {
		t.Errorf("text node Tag() = %q, want empty", txt.Tag())
	}
}

func TestNode_SetAttrLastWriteWins(t *testing.T) {
	n := Element("a")
	n.SetAttr("x", "1")
	n.SetAttr("y", "2")
	n.SetAttr("x", "3")

	attrs := n.Attrs()
	if len(attrs) != 2 {
		t.Fatalf("got %d attrs, want 2", len(attrs))
	}
	// Overwriting keeps the slot where the key first appeared.
	if attrs[0] != (Attr{"x", "3"}) {
		t.Errorf("attrs[0] = %v, want {x 3}", attrs[0])
	}
	if attrs[1] != (Attr{"y", "2"}) {
		t.Errorf("attrs[1] = %v, want {y 2}", attrs[1])
	}
}

func TestNode_DuplicateKeysInConstructor(t *testing.T) {
	n := Element("a", Attr{"x", "1"}, Attr{"x", "2"})
	if len(n.Attrs()) != 1 {
		t.Fatalf("got %d attrs, want 1", len(n.Attrs()))
	}
	if v, _ := n.Attr("x"); v != "2" {
		t.Errorf(`Attr("x") = %q, want "2"`, v)
	}
}

func TestNode_AppendAndAppendText(t *testing.T) {
	root := Element("root")
	root.Append(Element("first"), Element("second"))
	root.AppendText("tail")

	kids := root.Children()
	if len(kids) != 3 {
		t.Fatalf("got %d children, want 3", len(kids))
	}
	if kids[0].Tag() != "first" || kids[1].Tag() != "second" {
		t.Errorf("children out of order: %v, %v", kids[0], kids[1])
	}
	if kids[2].Kind() != KindText || kids[2].Text() != "tail" {
		t.Errorf("third child = %v, want text(tail)", kids[2])
	}
}

func TestNode_Walk(t *testing.T) {
	//      a
	//     / \
	//    b   c
	//    |
	//   txt
	b := Element("b")
	b.AppendText("txt")
	a := Element("a")
	a.Append(b, Element("c"))

	type visit struct {
		phase string
		label string
		depth int
	}
	var got []visit
	label := func(n *Node) string {
		if n.Kind() == KindText {
			return n.Text()
		}
		return n.Tag()
	}
	a.Walk(
		func(n *Node, depth int) { got = append(got, visit{"enter", label(n), depth}) },
		func(n *Node, depth int) { got = append(got, visit{"exit", label(n), depth}) },
	)

	want := []visit{
		{"enter", "a", 0},
		{"enter", "b", 1},
		{"enter", "txt", 2},
		{"exit", "txt", 2},
		{"exit", "b", 1},
		{"enter", "c", 1},
		{"exit", "c", 1},
		{"exit", "a", 0},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d visits, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visit %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNode_WalkNilCallbacks(t *testing.T) {
	a := Element("a")
	a.Append(Element("b"))

	count := 0
	a.Walk(nil, func(n *Node, depth int) { count++ })
	if count != 2 {
		t.Errorf("exit fired %d times, want 2", count)
	}
	a.Walk(nil, nil) // must not panic
}

func TestNode_InnerText(t *testing.T) {
	root := Element("p")
	root.AppendText("one ")
	child := Element("em")
	child.AppendText("nested")
	root.Append(child)
	root.AppendText("two")

	// Direct text children only; nested element text is excluded.
	if got := root.InnerText(); got != "one two" {
		t.Errorf("InnerText() = %q, want %q", got, "one two")
	}
}

func TestNode_Child(t *testing.T) {
	root := Element("root")
	root.AppendText("noise")
	root.Append(Element("x", Attr{"n", "1"}), Element("y"), Element("x", Attr{"n", "2"}))

	x := root.Child("x")
	if x == nil {
		t.Fatal(`Child("x") = nil, want first <x>`)
	}
	if v, _ := x.Attr("n"); v != "1" {
		t.Errorf(`Child("x") returned n=%q, want the first match (n="1")`, v)
	}
	if root.Child("missing") != nil {
		t.Errorf(`Child("missing") != nil`)
	}
}

func TestNode_Equal(t *testing.T) {
	mk := func() *Node {
		a := Element("a", Attr{"x", "1"})
		b := Element("b")
		b.AppendText("hi")
		a.Append(b)
		return a
	}

	if !mk().Equal(mk()) {
		t.Error("identical trees compare unequal")
	}

	tests := []struct {
		name   string
		mutate func(n *Node)
	}{
		{"different tag", func(n *Node) { n.tag = "z" }},
		{"different attr value", func(n *Node) { n.SetAttr("x", "9") }},
		{"extra attr", func(n *Node) { n.SetAttr("y", "2") }},
		{"extra child", func(n *Node) { n.Append(Element("c")) }},
		{"different text", func(n *Node) { n.children[0].children[0].text = "bye" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := mk()
			tt.mutate(other)
			if mk().Equal(other) {
				t.Error("trees compare equal after mutation")
			}
		})
	}
}

func TestNode_NilSafety(t *testing.T) {
	var n *Node
	if n.Tag() != "" || n.Text() != "" || n.InnerText() != "" {
		t.Error("nil node accessors returned non-empty strings")
	}
	if n.Children() != nil || n.Attrs() != nil || n.Child("x") != nil {
		t.Error("nil node accessors returned non-nil slices/nodes")
	}
	if _, ok := n.Attr("x"); ok {
		t.Error("nil node Attr() reported presence")
	}
	n.Walk(func(*Node, int) { t.Error("walk visited a nil node") }, nil)
	if !n.Equal(nil) || n.Equal(Element("a")) {
		t.Error("nil node equality misbehaved")
	}
}
