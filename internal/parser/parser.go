package parser

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"patterns/pkg/product"
)

// ErrMalformedItem is wrapped by every catalog item that cannot be parsed.
var ErrMalformedItem = errors.New("malformed catalog item")

// DefaultCatalog is the catalog used when no catalog file is configured.
func DefaultCatalog() []product.Product {
	return []product.Product{
		{Name: "Laptop", Price: 999.99, Popularity: 120},
		{Name: "Headphones", Price: 149.50, Popularity: 310},
		{Name: "Mouse", Price: 19.90, Popularity: 480},
		{Name: "Monitor", Price: 229.00, Popularity: 95},
		{Name: "Keyboard", Price: 49.00, Popularity: 310},
	}
}

// ParseCatalogFile reads a markdown catalog from filename.
func ParseCatalogFile(filename string) ([]product.Product, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", filename, err)
	}
	products, err := ParseCatalog(content)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", filename, err)
	}
	return products, nil
}

// Item is a product together with where it was found in the source.
type Item struct {
	product.Product
	Offset int // byte offset of the item text in the source
	Lines  int // number of source lines the item text spans
}

// ParseCatalog extracts products from the bullet list items of a markdown
// document. An item reads "Name words $12.50 ★40"; the popularity marker
// may also be written as *40 and is optional. Headings, paragraphs and other
// blocks are ignored. Nested list items are parsed as products of their own.
func ParseCatalog(source []byte) ([]product.Product, error) {
	items, err := ParseCatalogItems(source)
	if err != nil {
		return nil, err
	}
	products := make([]product.Product, len(items))
	for i, it := range items {
		products[i] = it.Product
	}
	return products, nil
}

// ParseCatalogItems is ParseCatalog with source positions, in document order.
func ParseCatalogItems(source []byte) ([]Item, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var items []Item
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != ast.KindListItem {
			return ast.WalkContinue, nil
		}
		line, offset, lines := itemText(n, source)
		if line == "" {
			return ast.WalkContinue, nil
		}
		p, err := ParseItem(line)
		if err != nil {
			return ast.WalkStop, err
		}
		items = append(items, Item{Product: p, Offset: offset, Lines: lines})
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// itemText joins the raw source lines of the list item's own text block,
// skipping nested lists. It also returns the offset of the first line and
// the number of lines joined.
func itemText(item ast.Node, source []byte) (string, int, int) {
	var parts []string
	offset := -1
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Kind() != ast.KindTextBlock && c.Kind() != ast.KindParagraph {
			continue
		}
		lines := c.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			if offset < 0 {
				offset = seg.Start
			}
			parts = append(parts, strings.TrimSpace(string(seg.Value(source))))
		}
	}
	return strings.TrimSpace(strings.Join(parts, " ")), offset, len(parts)
}

// ParseItem parses a single catalog line without the leading list marker.
func ParseItem(line string) (product.Product, error) {
	var (
		p           product.Product
		name        []string
		havePrice   bool
		havePopular bool
	)

	for _, field := range strings.Fields(line) {
		switch {
		case strings.HasPrefix(field, "$"):
			if havePrice {
				return p, fmt.Errorf("%w %q: more than one price", ErrMalformedItem, line)
			}
			price, err := strconv.ParseFloat(strings.TrimPrefix(field, "$"), 64)
			if err != nil || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
				return p, fmt.Errorf("%w %q: invalid price %s", ErrMalformedItem, line, field)
			}
			p.Price = price
			havePrice = true
		case strings.HasPrefix(field, "★") || strings.HasPrefix(field, "*"):
			if havePopular {
				return p, fmt.Errorf("%w %q: more than one popularity", ErrMalformedItem, line)
			}
			raw := strings.TrimPrefix(strings.TrimPrefix(field, "★"), "*")
			pop, err := strconv.Atoi(raw)
			if err != nil {
				return p, fmt.Errorf("%w %q: invalid popularity %s", ErrMalformedItem, line, field)
			}
			p.Popularity = pop
			havePopular = true
		default:
			name = append(name, field)
		}
	}

	if !havePrice {
		return p, fmt.Errorf("%w %q: missing $price", ErrMalformedItem, line)
	}
	if len(name) == 0 {
		return p, fmt.Errorf("%w %q: missing name", ErrMalformedItem, line)
	}
	p.Name = strings.Join(name, " ")
	return p, nil
}
