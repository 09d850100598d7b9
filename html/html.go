/*
Package html connects AVL trees of text to HTML.

Text trees may be created from the textual content of HTML documents, and
trees of any element type may be rendered as nested HTML lists.

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package html

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/avl"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrIllegalArguments is flagged whenever function parameters are invalid.
var ErrIllegalArguments = errors.New("html: illegal arguments")

// InnerText creates a tree of strings for the textual content of an HTML element
// and all its descendents. Every text node is trimmed of surrounding white space
// and inserted as a tree element, empty ones are skipped. Text within <script>
// and <style> elements is ignored.
//
// Duplicate texts are stored only once.
func InnerText(n *html.Node) (*avl.Tree[string], error) {
	if n == nil {
		return nil, ErrIllegalArguments
	}
	tree := avl.NewOrdered[string]()
	collectText(n, tree)
	return tree, nil
}

func collectText(n *html.Node, tree *avl.Tree[string]) {
	if n.Type == html.ElementNode {
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
	} else if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			tree.Insert(text)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, tree)
	}
}

// TextFromHTML creates a tree of strings from the textual content of an HTML
// fragment. It does not interpret layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (*avl.Tree[string], error) {
	if input == nil {
		return nil, ErrIllegalArguments
	}
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	tree := avl.NewOrdered[string]()
	for _, n := range nodes {
		collectText(n, tree)
	}
	return tree, nil
}

// Render writes the structure of a tree as a nested HTML list to w.
//
// Every node is represented by a <li> element, carrying the node's height and
// balance factor as data attributes. Children of inner nodes are contained in
// a nested <ul>, left child first. Absent children are rendered as empty
// list items of class "empty".
func Render[E any](tree *avl.Tree[E], w io.Writer) error {
	if tree == nil || w == nil {
		return ErrIllegalArguments
	}
	ul := element(atom.Ul, html.Attribute{Key: "class", Val: "avl-tree"})
	if root := tree.Root(); root != nil {
		ul.AppendChild(renderNode(root))
	}
	return html.Render(w, ul)
}

func renderNode[E any](n *avl.Node[E]) *html.Node {
	li := element(atom.Li,
		html.Attribute{Key: "data-height", Val: strconv.Itoa(n.Height())},
		html.Attribute{Key: "data-balance", Val: strconv.Itoa(n.Balance())},
	)
	li.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprint(n.Value())})
	if n.IsLeaf() {
		return li
	}
	ul := element(atom.Ul)
	for _, child := range [...]*avl.Node[E]{n.Left(), n.Right()} {
		if child == nil {
			ul.AppendChild(element(atom.Li, html.Attribute{Key: "class", Val: "empty"}))
			continue
		}
		ul.AppendChild(renderNode(child))
	}
	li.AppendChild(ul)
	return li
}

func element(a atom.Atom, attr ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attr,
	}
}
