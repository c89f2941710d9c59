package ports

import (
	"context"

	"github.com/app2/products-catalog/internal/core/domain"
)

// CreateProductInput carries the data for a new catalog product.
type CreateProductInput struct {
	Name     string
	ImageURL string
	Price    float64
}

// AddToCartInput carries one cart-add request. Login identifies the owning
// account; the entry itself stores the resolved account id.
type AddToCartInput struct {
	Login      string
	QtdItens   int
	TotalValue float64
}

// CatalogService defines use-case operations for the product catalog and
// the purchase ledger.
type CatalogService interface {
	AddProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	AddToCart(ctx context.Context, input AddToCartInput) error
	// Summarize rolls up all cart entries per account, joined to the
	// account login, sorted by login.
	Summarize(ctx context.Context) ([]domain.PurchaseSummary, error)
}
