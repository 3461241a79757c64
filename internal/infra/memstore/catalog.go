package memstore

import (
	"context"

	"octo-mock/internal/domain/product"
	"octo-mock/internal/pkg/errs"
)

// Catalog is the read-only product lookup. Products are seeded once at
// startup and never mutated afterwards, so reads need no locking.
type Catalog struct {
	byID  map[string]*product.Product
	order []string
}

func NewCatalog(products ...*product.Product) *Catalog {
	c := &Catalog{byID: make(map[string]*product.Product, len(products))}
	for _, p := range products {
		c.byID[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	return c
}

func (c *Catalog) FindByID(_ context.Context, id string) (*product.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, errs.Mark(errs.Newf("product %q", id), errs.ErrProductNotFound)
	}
	return p, nil
}

func (c *Catalog) All(_ context.Context) []*product.Product {
	out := make([]*product.Product, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}
