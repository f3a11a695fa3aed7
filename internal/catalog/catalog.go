// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// Errors returned when building a catalog.
var (
	ErrDuplicateID   = errors.New("duplicate item id")
	ErrInvalidID     = errors.New("item id must be positive")
	ErrEmptyTitle    = errors.New("item title is empty")
	ErrInvalidVector = errors.New("item vector is invalid")
)

// Catalog is an immutable, ordered set of movies.
// It implements recommend.CatalogProvider and is safe for concurrent use.
type Catalog struct {
	items  []recommend.CatalogItem
	index  map[int]int
	source string
}

// New builds a catalog from items, preserving their order.
// The items are copied; later changes to the argument do not affect the catalog.
func New(items []recommend.CatalogItem) (*Catalog, error) {
	return newCatalog(items, "memory")
}

func newCatalog(items []recommend.CatalogItem, source string) (*Catalog, error) {
	c := &Catalog{
		items:  make([]recommend.CatalogItem, len(items)),
		index:  make(map[int]int, len(items)),
		source: source,
	}

	for i := range items {
		item := items[i]

		if err := checkItem(&item); err != nil {
			return nil, fmt.Errorf("item %d (%q): %w", i, item.Title, err)
		}
		if prev, dup := c.index[item.ID]; dup {
			return nil, fmt.Errorf("item %d (%q): %w: %d already used by %q",
				i, item.Title, ErrDuplicateID, item.ID, c.items[prev].Title)
		}

		item.Genres = append([]string(nil), item.Genres...)
		c.items[i] = item
		c.index[item.ID] = i
	}

	return c, nil
}

// checkItem enforces the invariants every catalog item must satisfy.
func checkItem(item *recommend.CatalogItem) error {
	if item.ID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, item.ID)
	}
	if strings.TrimSpace(item.Title) == "" {
		return ErrEmptyTitle
	}
	if err := item.Vector.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidVector, err)
	}
	return nil
}

// Items returns every item in catalog order.
// The returned slice is a copy; genre slices are shared and must not be modified.
func (c *Catalog) Items() []recommend.CatalogItem {
	out := make([]recommend.CatalogItem, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the item with the given ID.
func (c *Catalog) Get(id int) (recommend.CatalogItem, bool) {
	i, ok := c.index[id]
	if !ok {
		return recommend.CatalogItem{}, false
	}
	return c.items[i], true
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Source describes where the catalog was loaded from.
func (c *Catalog) Source() string {
	return c.source
}

// Genres returns the distinct genre labels in the catalog, sorted.
func (c *Catalog) Genres() []string {
	seen := make(map[string]struct{})
	for i := range c.items {
		for _, g := range c.items[i].Genres {
			seen[g] = struct{}{}
		}
	}

	genres := make([]string, 0, len(seen))
	for g := range seen {
		genres = append(genres, g)
	}
	sort.Strings(genres)
	return genres
}
