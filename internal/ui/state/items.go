package state

import "github.com/atomicstack/time-travel/internal/panel"

// Item is one selectable element of the active screen.
type Item struct {
	ID      string
	Label   string
	Element *panel.Element
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
