package panel

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"
)

var (
	ErrTemplateNotFound   = errors.New("template not found")
	ErrSlotNotFound       = errors.New("template slot not found")
	ErrUnsupportedContent = errors.New("unsupported template content")
)

// Document owns the top-level panel trees and the named templates used to
// stamp out repeated fragments such as list rows.
type Document struct {
	roots     []*Element
	templates map[string]*Element
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{templates: make(map[string]*Element)}
}

// Add attaches root trees to the document.
func (d *Document) Add(roots ...*Element) {
	for _, root := range roots {
		if root != nil {
			d.roots = append(d.roots, root)
		}
	}
}

// ByID finds an element by id anywhere in the document.
func (d *Document) ByID(id string) (*Element, bool) {
	if id == "" {
		return nil, false
	}
	for _, root := range d.roots {
		if root.ID == id {
			return root, true
		}
		if el := root.Query("#" + id); el != nil {
			return el, true
		}
	}
	return nil, false
}

// DefineTemplate registers proto under name. Fill always works on a clone, so
// proto itself is never attached anywhere.
func (d *Document) DefineTemplate(name string, proto *Element) {
	d.templates[name] = proto
}

// Fill clones the named template and populates it from data.
//
// Each key addresses the first element (the template root included) carrying
// the attribute "data-" + kebab(key). Plain keys set content: strings and
// numbers become the element text, *Element and []*Element values are
// appended. Keys prefixed with "$" set attributes from a map[string]string.
func (d *Document) Fill(name string, data map[string]any) (*Element, error) {
	proto, ok := d.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	el := proto.Clone()
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		attrs := strings.HasPrefix(key, "$")
		slotAttr := DataAttr(strings.TrimPrefix(key, "$"))
		slot := findSlot(el, slotAttr)
		if slot == nil {
			return nil, fmt.Errorf("%w: %s in template %s", ErrSlotNotFound, slotAttr, name)
		}
		if attrs {
			values, ok := data[key].(map[string]string)
			if !ok {
				return nil, fmt.Errorf("%w: %s expects map[string]string, got %T", ErrUnsupportedContent, key, data[key])
			}
			for attrName, value := range values {
				slot.SetAttr(attrName, value)
			}
			continue
		}
		if err := fillContent(slot, data[key]); err != nil {
			return nil, fmt.Errorf("%s in template %s: %w", key, name, err)
		}
	}
	return el, nil
}

// DataAttr converts a camelCase key into its data attribute name:
// "medianTime" becomes "data-median-time".
func DataAttr(key string) string {
	return "data-" + strcase.ToKebab(key)
}

func findSlot(root *Element, attr string) *Element {
	if _, ok := root.Attr(attr); ok {
		return root
	}
	return root.Query("[" + attr + "]")
}

func fillContent(slot *Element, value any) error {
	switch v := value.(type) {
	case string:
		slot.SetText(v)
	case int, int64, float64:
		slot.SetText(fmt.Sprint(v))
	case *Element:
		slot.Append(v)
	case []*Element:
		slot.Append(v...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedContent, value)
	}
	return nil
}
