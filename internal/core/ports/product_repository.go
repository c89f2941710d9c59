package ports

import (
	"context"

	"github.com/app2/products-catalog/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	// Create persists a new product. A duplicate name yields
	// domain.ErrProductExists.
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByName(ctx context.Context, name string) (*domain.Product, error)
	// FindAll returns every product, sorted by name.
	FindAll(ctx context.Context) ([]domain.Product, error)
}

// CartRepository defines persistence operations for the purchase ledger.
type CartRepository interface {
	Create(ctx context.Context, entry *domain.CartEntry) error
	// FindAll returns every cart entry. Full scan by design — the ledger is
	// bounded by expected data volume.
	FindAll(ctx context.Context) ([]domain.CartEntry, error)
}
