package catalog

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Filter narrows a product listing. Zero values disable the matching
// condition; set conditions compose with AND.
type Filter struct {
	Category string
	Trending *bool
}

func (f Filter) Match(p Product) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Trending != nil && p.Trending != *f.Trending {
		return false
	}
	return true
}

// Store is a read-only view of the product catalog.
type Store interface {
	Ping(ctx context.Context) error
	List(ctx context.Context, f Filter) ([]Product, error)
	Get(ctx context.Context, id int) (Product, error)
	Categories(ctx context.Context) ([]string, error)
}
