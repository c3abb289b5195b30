// Package xmlutil provides a small document-tree view over encoding/xml
// with relative and descendant tag lookup, plus typed field extraction.
package xmlutil

import (
	"encoding/xml"
	"strings"
)

// Element is one node of a parsed XML document. Children preserve
// document order.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Content  string     `xml:",chardata"`
	Children []Element  `xml:",any"`
}

// Parse decodes a whole XML document into an Element tree.
func Parse(data []byte) (*Element, error) {
	var root Element
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return &root, nil
}

// Attr returns the value of a root-level attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Text returns the trimmed character data of the element.
func (e *Element) Text() string {
	return strings.TrimSpace(e.Content)
}

// Find locates the first element matching path. A path is a slash-separated
// chain of child tags relative to e; the prefix ".//" searches descendants
// at any depth, first match in document order wins.
func (e *Element) Find(path string) *Element {
	if rest, ok := strings.CutPrefix(path, ".//"); ok {
		return e.findDescendant(strings.Split(rest, "/"))
	}
	return e.findRelative(strings.Split(path, "/"))
}

// FindAll returns the direct children with the given tag, in document order.
func (e *Element) FindAll(name string) []*Element {
	var out []*Element
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			out = append(out, &e.Children[i])
		}
	}
	return out
}

func (e *Element) findRelative(segments []string) *Element {
	current := e
	for _, seg := range segments {
		var next *Element
		for i := range current.Children {
			if current.Children[i].XMLName.Local == seg {
				next = &current.Children[i]
				break
			}
		}
		if next == nil {
			return nil
		}
		current = next
	}
	return current
}

func (e *Element) findDescendant(segments []string) *Element {
	for i := range e.Children {
		child := &e.Children[i]
		if child.XMLName.Local == segments[0] {
			if len(segments) == 1 {
				return child
			}
			if m := child.findRelative(segments[1:]); m != nil {
				return m
			}
		}
		if m := child.findDescendant(segments); m != nil {
			return m
		}
	}
	return nil
}
