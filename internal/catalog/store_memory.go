package catalog

import (
	"context"

	"github.com/go-faster/errors"
)

// MemStore serves a product table fixed at construction. It is never
// written after NewMemStore returns, so reads need no locking.
type MemStore struct {
	products   []Product
	byID       map[int]int
	categories []string
}

func NewMemStore() *MemStore {
	s, err := newMemStore(Seed())
	if err != nil {
		panic(err)
	}
	return s
}

func NewStore() Store {
	return NewMemStore()
}

func newMemStore(products []Product) (*MemStore, error) {
	s := &MemStore{
		products: make([]Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
	}

	seen := make(map[string]struct{})
	for _, p := range products {
		if _, dup := s.byID[p.ID]; dup {
			return nil, errors.Errorf("duplicate product id %d", p.ID)
		}
		s.byID[p.ID] = len(s.products)
		s.products = append(s.products, p.clone())

		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			s.categories = append(s.categories, p.Category)
		}
	}
	return s, nil
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) List(ctx context.Context, f Filter) ([]Product, error) {
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if f.Match(p) {
			out = append(out, p.clone())
		}
	}
	return out, nil
}

func (s *MemStore) Get(ctx context.Context, id int) (Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return s.products[i].clone(), nil
}

// Categories returns the distinct categories in order of first appearance.
func (s *MemStore) Categories(ctx context.Context) ([]string, error) {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out, nil
}
