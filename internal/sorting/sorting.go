// Package sorting orders product lists with a swappable strategy.
package sorting

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"patterns/internal/log"
	"patterns/pkg/product"
)

var (
	// ErrNoStrategy is returned by SortProducts when no strategy is set.
	ErrNoStrategy = errors.New("no sorting strategy set")
	// ErrUnknownStrategy is returned by ByName for an unrecognised name.
	ErrUnknownStrategy = errors.New("unknown sorting strategy")
)

// Strategy sorts products in place.
type Strategy interface {
	Sort(products []product.Product)
	Name() string
}

// ByPrice orders by ascending price, then name.
type ByPrice struct{}

func (ByPrice) Name() string { return "price" }

func (ByPrice) Sort(products []product.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		if products[i].Price != products[j].Price {
			return products[i].Price < products[j].Price
		}
		return products[i].Name < products[j].Name
	})
}

// ByPopularity orders by descending popularity, then name.
type ByPopularity struct{}

func (ByPopularity) Name() string { return "popularity" }

func (ByPopularity) Sort(products []product.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		if products[i].Popularity != products[j].Popularity {
			return products[i].Popularity > products[j].Popularity
		}
		return products[i].Name < products[j].Name
	})
}

// Strategies lists the built-in strategies by name.
func Strategies() []Strategy {
	return []Strategy{ByPrice{}, ByPopularity{}}
}

// ByName returns the built-in strategy called name.
func ByName(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if strings.EqualFold(s.Name(), strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Sorter applies its current strategy to product lists.
type Sorter struct {
	strategy Strategy
}

// NewSorter returns a sorter using s.
func NewSorter(s Strategy) *Sorter {
	return &Sorter{strategy: s}
}

// SetStrategy swaps the strategy used by later SortProducts calls.
func (s *Sorter) SetStrategy(strategy Strategy) {
	s.strategy = strategy
	if strategy != nil {
		log.Debug(log.CatSorting, "strategy set", "name", strategy.Name())
	}
}

// Strategy returns the current strategy, or nil.
func (s *Sorter) Strategy() Strategy { return s.strategy }

// SortProducts returns a sorted copy of products. The input is not modified.
func (s *Sorter) SortProducts(products []product.Product) ([]product.Product, error) {
	if s.strategy == nil {
		return nil, ErrNoStrategy
	}
	sorted := slices.Clone(products)
	s.strategy.Sort(sorted)
	log.Debug(log.CatSorting, "sorted", "strategy", s.strategy.Name(), "count", len(sorted))
	return sorted, nil
}
