package core

import (
	"fmt"
	"os"

	"patterns/internal/log"
	"patterns/internal/parser"
	"patterns/internal/rewrite"
	"patterns/internal/sorting"
	"patterns/pkg/product"
)

// SortCatalogFile reorders the product items of a markdown catalog in place
// using strategy. Items keep their slots in the document, so headings and
// prose between them stay where they are; each slot receives the next product
// in sorted order, written in canonical "- Name $price ★popularity" form.
// Items spanning several lines cannot be rewritten and are rejected.
func SortCatalogFile(path string, strategy sorting.Strategy) ([]product.Product, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	items, err := parser.ParseCatalogItems(content)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	products := make([]product.Product, len(items))
	offsets := make([]int, len(items))
	for i, it := range items {
		if it.Lines > 1 {
			return nil, fmt.Errorf("catalog %s: item %q spans %d lines", path, it.Name, it.Lines)
		}
		products[i] = it.Product
		offsets[i] = it.Offset
	}

	sorted, err := sorting.NewSorter(strategy).SortProducts(products)
	if err != nil {
		return nil, err
	}
	lines := make([]string, len(sorted))
	for i, p := range sorted {
		lines[i] = p.String()
		log.Debug(log.CatCatalog, "item placed", "slot", i, "id", p.Hash(), "name", p.Name)
	}

	out, err := rewrite.ReplaceAtOffsets(content, offsets, lines)
	if err != nil {
		return nil, fmt.Errorf("rewriting catalog %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return nil, fmt.Errorf("failed to write catalog %s: %w", path, err)
	}
	log.Info(log.CatCatalog, "catalog sorted", "file", path, "strategy", strategy.Name(), "products", len(sorted))
	return sorted, nil
}
