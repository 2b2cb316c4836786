package redbus

import "context"

// Browser is the page-automation capability the scraper depends on.
type Browser interface {
	// Navigate loads url in the current tab.
	Navigate(ctx context.Context, url string) error
	// Evaluate runs script in the page and decodes its result into res.
	// res may be nil when the result is not needed.
	Evaluate(ctx context.Context, script string, res any) error
	// Document returns a queryable snapshot of the current page.
	Document(ctx context.Context) (Node, error)
}

// Node is one element of a document tree, or the document itself.
type Node interface {
	// Find returns the descendants matching a CSS selector, in document order.
	Find(selector string) ([]Node, error)
	// Text returns the element's text with whitespace trimmed and collapsed.
	Text() string
}
