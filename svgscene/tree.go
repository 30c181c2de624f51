package svgscene

import (
	"encoding/xml"
	"errors"
	"io"

	"golang.org/x/net/html/charset"
)

// Node is the generic labeled tree the builder works on:
// a tag name, string attributes and ordered children.
// Attributes are keyed by their local name, so that
// `xlink:href` and `href` are equivalent.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Children []*Node
}

// Attr returns the attribute `name`, or "" if absent.
func (n *Node) Attr(name string) string { return n.Attrs[name] }

// decodeTree reads the whole markup stream into a tree,
// decoding non UTF-8 charsets declared in the prolog.
func decodeTree(stream io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	var (
		root  *Node
		stack []*Node
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			n := &Node{Tag: se.Name.Local, Attrs: make(map[string]string, len(se.Attr))}
			for _, attr := range se.Attr {
				n.Attrs[attr.Name.Local] = attr.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("invalid svg document: multiple root elements")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, ErrEmptyDocument
	}
	return root, nil
}
