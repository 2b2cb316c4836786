package redbus

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

type selectionNode struct {
	sel *goquery.Selection
}

// NewDocument parses html into a queryable Node.
func NewDocument(html string) (Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return selectionNode{sel: doc.Selection}, nil
}

func (n selectionNode) Find(selector string) ([]Node, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("selector %q: %w", selector, err)
	}

	found := n.sel.FindMatcher(matcher)
	nodes := make([]Node, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, selectionNode{sel: s})
	})
	return nodes, nil
}

func (n selectionNode) Text() string {
	return strings.Join(strings.Fields(n.sel.Text()), " ")
}
