package panel

import (
	"errors"
	"testing"
)

func sampleTree() *Element {
	return New("section", WithID("screen-commutes"), WithChildren(
		New("h1", WithClass("title"), WithText("Commutes")),
		New("list", WithID("commutes"), WithChildren(
			New("row", WithClass("commute"), WithAttr("data-name", ""), WithText("home")),
			New("row", WithClass("commute", "active"), WithText("work")),
		)),
		New("button", WithClass("commute-add"), WithText("Add commute")),
	))
}

func TestQueryIsScopedToSubtree(t *testing.T) {
	doc := NewDocument()
	left := sampleTree()
	right := New("section", WithID("screen-routes"), WithChildren(
		New("button", WithClass("route-add"), WithText("Add route")),
	))
	doc.Add(left, right)

	if el := left.Query(".route-add"); el != nil {
		t.Fatalf("expected query to stay inside its subtree, found %q", el.Text)
	}
	if el := right.Query(".route-add"); el == nil || el.Text != "Add route" {
		t.Fatalf("expected route-add button, got %#v", el)
	}
	if el := left.Query("#screen-commutes"); el != nil {
		t.Fatalf("expected query to exclude the root itself")
	}
}

func TestQuerySelectors(t *testing.T) {
	root := sampleTree()
	if el := root.Query("#commutes"); el == nil || el.Tag != "list" {
		t.Fatalf("expected #commutes list, got %#v", el)
	}
	if el := root.Query(".commute.active"); el == nil || el.Text != "work" {
		t.Fatalf("expected compound class match, got %#v", el)
	}
	if el := root.Query("[data-name]"); el == nil || el.Text != "home" {
		t.Fatalf("expected attribute match, got %#v", el)
	}
	if el := root.Query("row[data-name=missing]"); el != nil {
		t.Fatalf("expected no match for attribute value")
	}
	if got := len(root.QueryAll("row")); got != 2 {
		t.Fatalf("expected 2 rows, got %d", got)
	}
	if el := root.Query("list row"); el != nil {
		t.Fatalf("expected combinators to be rejected")
	}
}

func TestAttributeValuesMayHoldCombinatorCharacters(t *testing.T) {
	root := New("section", WithChildren(
		New("button", WithClass("add"), WithAttr(KeyAttr, "ctrl+n"), WithText("Add")),
		New("row", WithAttr("data-name", "the bus"), WithText("bus")),
	))
	if el := root.Query("[data-key=ctrl+n]"); el == nil || el.Text != "Add" {
		t.Fatalf("expected match on a value containing '+', got %#v", el)
	}
	if el := root.Query(`button.add[data-key="ctrl+n"]`); el == nil {
		t.Fatalf("expected compound match with quoted value")
	}
	if el := root.Query("[data-name=the bus]"); el == nil || el.Text != "bus" {
		t.Fatalf("expected match on a value containing a space, got %#v", el)
	}
}

func TestParseSelectorErrors(t *testing.T) {
	for _, bad := range []string{"", "#", ".", "[", "[]", "a b", "a>b", "row+row", ".a ~ .b"} {
		if _, err := ParseSelector(bad); !errors.Is(err, ErrInvalidSelector) {
			t.Fatalf("expected ErrInvalidSelector for %q, got %v", bad, err)
		}
	}
}

func TestByIDFindsNestedElements(t *testing.T) {
	doc := NewDocument()
	doc.Add(sampleTree())
	if el, ok := doc.ByID("screen-commutes"); !ok || el.Tag != "section" {
		t.Fatalf("expected root lookup, got %#v %v", el, ok)
	}
	if el, ok := doc.ByID("commutes"); !ok || el.Tag != "list" {
		t.Fatalf("expected nested lookup, got %#v %v", el, ok)
	}
	if _, ok := doc.ByID("screen-missing"); ok {
		t.Fatalf("expected missing id to report false")
	}
}

func TestAppendReparentsAndClearDetaches(t *testing.T) {
	a := New("list")
	b := New("list")
	row := New("row", WithText("x"))
	a.Append(row)
	b.Append(row)
	if len(a.Children) != 0 || len(b.Children) != 1 || row.Parent() != b {
		t.Fatalf("expected row moved to b")
	}
	b.Clear()
	if row.Parent() != nil || len(b.Children) != 0 {
		t.Fatalf("expected clear to detach children")
	}
}

func TestLabelJoinsVisibleChildren(t *testing.T) {
	row := New("row", WithChildren(
		New("cell", WithText("Bus")),
		New("cell", WithText("12:00")),
		New("cell", WithText("secret")),
	))
	row.Children[2].Hidden = true
	if got := row.Label(); got != "Bus 12:00" {
		t.Fatalf("expected joined label, got %q", got)
	}
}

func TestFillPopulatesCloneOfTemplate(t *testing.T) {
	doc := NewDocument()
	proto := New("row", WithClass("route"), WithChildren(
		New("cell", WithAttr("data-name", "")),
		New("cell", WithAttr("data-median-time", "")),
	))
	doc.DefineTemplate("route", proto)

	el, err := doc.Fill("route", map[string]any{
		"name":       "Bus",
		"medianTime": "12:00",
		"$name":      map[string]string{"title": "bus route"},
	})
	if err != nil {
		t.Fatalf("fill failed: %v", err)
	}
	if el == proto {
		t.Fatalf("expected a clone, got the prototype")
	}
	if got := el.Query("[data-name]").Text; got != "Bus" {
		t.Fatalf("expected name text, got %q", got)
	}
	if got := el.Query("[data-median-time]").Text; got != "12:00" {
		t.Fatalf("expected median text, got %q", got)
	}
	if v, _ := el.Query("[data-name]").Attr("title"); v != "bus route" {
		t.Fatalf("expected attribute set, got %q", v)
	}
	if proto.Children[0].Text != "" {
		t.Fatalf("expected prototype untouched")
	}
}

func TestFillMatchesRootAndAppendsElements(t *testing.T) {
	doc := NewDocument()
	doc.DefineTemplate("list", New("list", WithAttr("data-items", "")))
	rows := []*Element{New("row", WithText("a")), New("row", WithText("b"))}
	el, err := doc.Fill("list", map[string]any{"items": rows})
	if err != nil {
		t.Fatalf("fill failed: %v", err)
	}
	if len(el.Children) != 2 || el.Children[1].Text != "b" {
		t.Fatalf("expected rows appended to root slot, got %#v", el.Children)
	}
}

func TestFillErrors(t *testing.T) {
	doc := NewDocument()
	doc.DefineTemplate("row", New("row", WithAttr("data-name", "")))
	if _, err := doc.Fill("missing", nil); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
	if _, err := doc.Fill("row", map[string]any{"time": "1"}); !errors.Is(err, ErrSlotNotFound) {
		t.Fatalf("expected ErrSlotNotFound, got %v", err)
	}
	if _, err := doc.Fill("row", map[string]any{"name": struct{}{}}); !errors.Is(err, ErrUnsupportedContent) {
		t.Fatalf("expected ErrUnsupportedContent, got %v", err)
	}
}

func TestDataAttr(t *testing.T) {
	if got := DataAttr("medianTime"); got != "data-median-time" {
		t.Fatalf("unexpected data attribute %q", got)
	}
	if got := DataAttr("name"); got != "data-name" {
		t.Fatalf("unexpected data attribute %q", got)
	}
}
