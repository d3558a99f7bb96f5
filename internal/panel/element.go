package panel

import "strings"

// Element is a node in a panel tree. Screen containers, list rows, buttons and
// text cells are all elements; the ui package decides how each one renders.
type Element struct {
	ID       string
	Tag      string
	Classes  []string
	Attrs    map[string]string
	Text     string
	Hidden   bool
	Children []*Element
	// Action runs when the element is activated (enter on a selectable row).
	Action func() error

	parent *Element
}

// KeyAttr names the attribute binding a shortcut key to an element.
const KeyAttr = "data-key"

// Option configures an Element built by New.
type Option func(*Element)

// New constructs an element with the given tag.
func New(tag string, opts ...Option) *Element {
	e := &Element{Tag: tag, Attrs: map[string]string{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func WithID(id string) Option {
	return func(e *Element) { e.ID = id }
}

func WithClass(classes ...string) Option {
	return func(e *Element) { e.Classes = append(e.Classes, classes...) }
}

func WithAttr(name, value string) Option {
	return func(e *Element) { e.Attrs[name] = value }
}

func WithText(text string) Option {
	return func(e *Element) { e.Text = text }
}

func WithChildren(children ...*Element) Option {
	return func(e *Element) { e.Append(children...) }
}

// Parent returns the element this one is attached to, or nil.
func (e *Element) Parent() *Element {
	return e.parent
}

// Append attaches children in order, detaching them from any previous parent.
func (e *Element) Append(children ...*Element) {
	for _, child := range children {
		if child == nil {
			continue
		}
		if child.parent != nil {
			child.parent.remove(child)
		}
		child.parent = e
		e.Children = append(e.Children, child)
	}
}

// Clear removes all children.
func (e *Element) Clear() {
	for _, child := range e.Children {
		child.parent = nil
	}
	e.Children = nil
}

func (e *Element) remove(child *Element) {
	for i, c := range e.Children {
		if c == child {
			e.Children = append(e.Children[:i], e.Children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

func (e *Element) SetText(text string) {
	e.Text = text
}

func (e *Element) SetAttr(name, value string) {
	if e.Attrs == nil {
		e.Attrs = map[string]string{}
	}
	e.Attrs[name] = value
}

// Attr returns the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	if e.Attrs == nil {
		return "", false
	}
	v, ok := e.Attrs[name]
	return v, ok
}

// HasClass reports whether class is present on the element.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Selectable reports whether the element can be activated.
func (e *Element) Selectable() bool {
	return e.Action != nil && !e.Hidden
}

// Label is the element text, or the space-joined labels of its visible
// children when the element has no text of its own.
func (e *Element) Label() string {
	if e.Text != "" {
		return e.Text
	}
	parts := make([]string, 0, len(e.Children))
	for _, child := range e.Children {
		if child.Hidden {
			continue
		}
		if label := child.Label(); label != "" {
			parts = append(parts, label)
		}
	}
	return strings.Join(parts, " ")
}

// Clone deep-copies the element and its subtree. The copy is detached.
func (e *Element) Clone() *Element {
	dup := &Element{
		ID:      e.ID,
		Tag:     e.Tag,
		Classes: append([]string(nil), e.Classes...),
		Attrs:   make(map[string]string, len(e.Attrs)),
		Text:    e.Text,
		Hidden:  e.Hidden,
		Action:  e.Action,
	}
	for k, v := range e.Attrs {
		dup.Attrs[k] = v
	}
	for _, child := range e.Children {
		dup.Append(child.Clone())
	}
	return dup
}

// Walk visits descendants depth-first in document order. Returning false from
// fn skips that element's subtree.
func (e *Element) Walk(fn func(*Element) bool) {
	for _, child := range e.Children {
		if fn(child) {
			child.Walk(fn)
		}
	}
}

// Query returns the first descendant matching selector, or nil. Invalid
// selectors match nothing.
func (e *Element) Query(selector string) *Element {
	sel, err := ParseSelector(selector)
	if err != nil {
		return nil
	}
	var found *Element
	e.Walk(func(el *Element) bool {
		if found != nil {
			return false
		}
		if sel.Match(el) {
			found = el
			return false
		}
		return true
	})
	return found
}

// QueryAll returns every descendant matching selector in document order.
func (e *Element) QueryAll(selector string) []*Element {
	sel, err := ParseSelector(selector)
	if err != nil {
		return nil
	}
	var found []*Element
	e.Walk(func(el *Element) bool {
		if sel.Match(el) {
			found = append(found, el)
		}
		return true
	})
	return found
}
