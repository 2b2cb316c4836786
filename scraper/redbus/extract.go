package redbus

import (
	"errors"
	"strings"
)

var errNoMatch = errors.New("no element matched")

// Locator reads one field out of a listing item. Implementations may fail or
// panic; FirstText treats both as "try the next locator".
type Locator func(Node) (string, error)

// CSS returns a Locator reading the text of the first element matching selector.
func CSS(selector string) Locator {
	return func(n Node) (string, error) {
		found, err := n.Find(selector)
		if err != nil {
			return "", err
		}
		if len(found) == 0 {
			return "", errNoMatch
		}
		return found[0].Text(), nil
	}
}

// CSSChain builds one CSS Locator per selector, keeping their order.
func CSSChain(selectors ...string) []Locator {
	chain := make([]Locator, len(selectors))
	for i, sel := range selectors {
		chain[i] = CSS(sel)
	}
	return chain
}

// FirstText returns the first non-blank trimmed text produced by locators, in
// order, or "" when every locator fails or yields blank text.
func FirstText(n Node, locators ...Locator) string {
	for _, loc := range locators {
		if text := tryLocator(n, loc); text != "" {
			return text
		}
	}
	return ""
}

func tryLocator(n Node, loc Locator) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	s, err := loc(n)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// findItems returns the matches of the first selector that yields any element.
// It fails only when every selector errors.
func findItems(doc Node, selectors []string) ([]Node, error) {
	var errs []error
	for _, sel := range selectors {
		items, err := doc.Find(sel)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if len(items) > 0 {
			return items, nil
		}
	}
	if len(errs) == len(selectors) && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return nil, nil
}
