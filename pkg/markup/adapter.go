package markup

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"slate/pkg/style"
)

// FromHTML parses markup with golang.org/x/net/html and converts it into an
// Element tree with computed styles attached. Tokenizing and tree repair are
// entirely the parser's job; this adapter only maps node shapes and folds
// text nodes into their parent's Text, matching the element model the layout
// engine consumes.
func FromHTML(r io.Reader) (*Element, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	htmlNode := findElement(doc, "html")
	if htmlNode == nil {
		return nil, fmt.Errorf("parse markup: no html element")
	}
	root := convert(htmlNode)
	return root, nil
}

// ParseHTML is FromHTML over an in-memory document.
func ParseHTML(src string) (*Element, error) {
	return FromHTML(strings.NewReader(src))
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func convert(n *html.Node) *Element {
	el := NewElement(n.Data)
	for _, attr := range n.Attr {
		el.Attributes[attr.Key] = attr.Val
	}

	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			switch c.Data {
			case "script", "style", "head":
				// not part of the layout tree
				continue
			}
			el.AppendChild(convert(c))
		case html.TextNode:
			trimmed := strings.TrimSpace(c.Data)
			if trimmed != "" {
				if text.Len() > 0 {
					text.WriteString(" ")
				}
				text.WriteString(trimmed)
			}
		}
	}
	el.Text = text.String()

	decls := map[string]string(nil)
	if inline, ok := el.Attributes["style"]; ok {
		decls = style.ParseDeclarations(inline)
	}
	el.ComputedStyle = style.Compute(el.Tag, decls)
	return el
}
