package pp

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// EncodeHTML renders s as an HTML fragment: a table for mappings, an ordered
// list for sequences and an unordered list for collections. Text content is
// escaped by the HTML serializer.
func EncodeHTML(s Shape) (string, error) {
	var root *html.Node
	switch v := s.(type) {
	case Mapping:
		root = element(atom.Table,
			element(atom.Thead, cellRow(atom.Th, v.Keys())),
			element(atom.Tbody, cellRow(atom.Td, v.Values())),
		)
	case Sequence:
		root = listElement(atom.Ol, v.Items)
	case Collection:
		root = listElement(atom.Ul, v.Items)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedShape, s)
	}
	var sb strings.Builder
	if err := html.Render(&sb, root); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func element(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func textElement(a atom.Atom, content string) *html.Node {
	return element(a, &html.Node{Type: html.TextNode, Data: content})
}

func cellRow(cell atom.Atom, cells []string) *html.Node {
	tr := element(atom.Tr)
	for _, c := range cells {
		tr.AppendChild(textElement(cell, c))
	}
	return tr
}

func listElement(a atom.Atom, items []string) *html.Node {
	list := element(a)
	for _, item := range items {
		list.AppendChild(textElement(atom.Li, item))
	}
	return list
}
