package panel

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSelector reports a selector the parser does not understand.
var ErrInvalidSelector = errors.New("invalid selector")

// Selector is a compound simple selector: an optional tag followed by any
// number of #id, .class and [attr] / [attr=value] parts. Combinators are not
// supported.
type Selector struct {
	tag     string
	id      string
	classes []string
	attrs   []attrMatch
}

type attrMatch struct {
	name     string
	value    string
	hasValue bool
}

// ParseSelector parses s into a Selector.
func ParseSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Selector{}, fmt.Errorf("%w: %q", ErrInvalidSelector, s)
	}
	var sel Selector
	i := 0
	readName := func() string {
		start := i
		// combinators end a name and are then rejected below; inside
		// [...] they are part of the value
		for i < len(s) && !strings.ContainsRune("#.[ >+~", rune(s[i])) {
			i++
		}
		return s[start:i]
	}
	if s[0] != '#' && s[0] != '.' && s[0] != '[' {
		sel.tag = readName()
	}
	for i < len(s) {
		switch s[i] {
		case '#':
			i++
			name := readName()
			if name == "" {
				return Selector{}, fmt.Errorf("%w: empty id in %q", ErrInvalidSelector, s)
			}
			sel.id = name
		case '.':
			i++
			name := readName()
			if name == "" {
				return Selector{}, fmt.Errorf("%w: empty class in %q", ErrInvalidSelector, s)
			}
			sel.classes = append(sel.classes, name)
		case '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return Selector{}, fmt.Errorf("%w: unterminated attribute in %q", ErrInvalidSelector, s)
			}
			body := s[i+1 : i+end]
			i += end + 1
			m := attrMatch{name: body}
			if eq := strings.IndexByte(body, '='); eq >= 0 {
				m.name = body[:eq]
				m.value = strings.Trim(body[eq+1:], `"'`)
				m.hasValue = true
			}
			if m.name == "" {
				return Selector{}, fmt.Errorf("%w: empty attribute in %q", ErrInvalidSelector, s)
			}
			sel.attrs = append(sel.attrs, m)
		default:
			return Selector{}, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidSelector, s[i], s)
		}
	}
	return sel, nil
}

// Match reports whether el satisfies every part of the selector.
func (sel Selector) Match(el *Element) bool {
	if el == nil {
		return false
	}
	if sel.tag != "" && el.Tag != sel.tag {
		return false
	}
	if sel.id != "" && el.ID != sel.id {
		return false
	}
	for _, class := range sel.classes {
		if !el.HasClass(class) {
			return false
		}
	}
	for _, m := range sel.attrs {
		v, ok := el.Attr(m.name)
		if !ok {
			return false
		}
		if m.hasValue && v != m.value {
			return false
		}
	}
	return true
}
