// Package model defines domain types used by the service.
package model

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidCatalog is returned when a catalog payload does not match the
// expected schema.
var ErrInvalidCatalog = errors.New("invalid catalog payload")

// Product represents one catalog entry as served by the remote endpoint.
// Price is nullable so a missing or null price fails Validate instead of
// reading as zero.
type Product struct {
	ID        int             `json:"id"`
	Title     string          `json:"title"`
	Category  string          `json:"category"`
	Price     decimal.NullDecimal `json:"price"`
	Thumbnail string          `json:"thumbnail"`
}

// Catalog is the envelope returned by the catalog endpoint.
//
// Products is a pointer so a missing field can be told apart from an empty
// list.
type Catalog struct {
	Products *[]Product `json:"products"`
	Total    int        `json:"total"`
	Skip     int        `json:"skip"`
	Limit    int        `json:"limit"`
}

// Validate checks a single product against the schema.
func (p Product) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("%w: id must be > 0, got %d", ErrInvalidCatalog, p.ID)
	}
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: product %d: title is required", ErrInvalidCatalog, p.ID)
	}
	if strings.TrimSpace(p.Category) == "" {
		return fmt.Errorf("%w: product %d: category is required", ErrInvalidCatalog, p.ID)
	}
	if !p.Price.Valid {
		return fmt.Errorf("%w: product %d: price is required", ErrInvalidCatalog, p.ID)
	}
	if p.Price.Decimal.IsNegative() {
		return fmt.Errorf("%w: product %d: price must be >= 0", ErrInvalidCatalog, p.ID)
	}
	u, err := url.Parse(p.Thumbnail)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: product %d: thumbnail must be an absolute http(s) url", ErrInvalidCatalog, p.ID)
	}
	return nil
}

// Window returns at most limit products in endpoint order after validating
// them. Entries beyond the window are not inspected.
func (c Catalog) Window(limit int) ([]Product, error) {
	if c.Products == nil {
		return nil, fmt.Errorf("%w: products field is missing", ErrInvalidCatalog)
	}
	all := *c.Products
	if limit >= 0 && len(all) > limit {
		all = all[:limit]
	}
	seen := make(map[int]struct{}, len(all))
	out := make([]Product, 0, len(all))
	for _, p := range all {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate product id %d", ErrInvalidCatalog, p.ID)
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}
