// Package markup parses HTML text into a small, ordered node forest. Attribute
// order and class token order are kept exactly as they appear in the source.
package markup

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Kind identifies the type of a Node.
type Kind int

const (
	KindElement Kind = iota
	KindText
	KindComment
	KindDoctype
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindComment:
		return "comment"
	case KindDoctype:
		return "doctype"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Attribute is one source attribute. Namespaced attributes such as
// xlink:href keep their prefix in Name.
type Attribute struct {
	Name  string
	Value string
}

// Node is one parsed node. Tag, Attributes and Children are only set for
// elements; Text holds the raw text of text and comment nodes and the name of
// a doctype.
type Node struct {
	Kind       Kind
	Tag        string
	Attributes []Attribute
	Text       string
	Children   []*Node
}

var documentPrefix = regexp.MustCompile(`(?i)^\s*(<!--.*?-->\s*)*<(!doctype|html|head|body)[\s>]`)

// IsDocument reports whether src looks like a full HTML document rather than
// a fragment.
func IsDocument(src string) bool {
	return documentPrefix.MatchString(src)
}

// Parse parses src. Full documents keep their doctype and html element;
// fragments are parsed in a body context so no html, head or body wrappers
// are synthesised.
func Parse(src string) ([]*Node, error) {
	var roots []*html.Node

	if IsDocument(src) {
		doc, err := html.Parse(strings.NewReader(src))
		if err != nil {
			return nil, fmt.Errorf("parse document: %w", err)
		}
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			roots = append(roots, c)
		}
	} else {
		body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
		nodes, err := html.ParseFragment(strings.NewReader(src), body)
		if err != nil {
			return nil, fmt.Errorf("parse fragment: %w", err)
		}
		roots = nodes
	}

	return convertForest(roots), nil
}

type frame struct {
	src *html.Node
	dst *Node
}

// convertForest copies the html.Node trees with an explicit stack so deeply
// nested input cannot exhaust the goroutine stack here.
func convertForest(roots []*html.Node) []*Node {
	var out []*Node
	var stack []frame

	for _, root := range roots {
		node := convertNode(root)
		if node == nil {
			continue
		}
		out = append(out, node)
		stack = append(stack, frame{src: root, dst: node})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for c := top.src.FirstChild; c != nil; c = c.NextSibling {
			child := convertNode(c)
			if child == nil {
				continue
			}
			top.dst.Children = append(top.dst.Children, child)
			if child.Kind == KindElement {
				stack = append(stack, frame{src: c, dst: child})
			}
		}
	}

	return out
}

func convertNode(n *html.Node) *Node {
	switch n.Type {
	case html.ElementNode:
		node := &Node{Kind: KindElement, Tag: n.Data}
		if len(n.Attr) > 0 {
			node.Attributes = make([]Attribute, 0, len(n.Attr))
		}
		for _, attr := range n.Attr {
			name := attr.Key
			if attr.Namespace != "" {
				name = attr.Namespace + ":" + attr.Key
			}
			node.Attributes = append(node.Attributes, Attribute{Name: name, Value: attr.Val})
		}
		return node
	case html.TextNode:
		return &Node{Kind: KindText, Text: n.Data}
	case html.CommentNode:
		return &Node{Kind: KindComment, Text: n.Data}
	case html.DoctypeNode:
		return &Node{Kind: KindDoctype, Text: n.Data}
	default:
		return nil
	}
}

// Attr returns the value of the first attribute called name.
func (n *Node) Attr(name string) (string, bool) {
	for _, attr := range n.Attributes {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}
