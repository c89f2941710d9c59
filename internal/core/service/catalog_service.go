package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/app2/products-catalog/internal/core/domain"
	"github.com/app2/products-catalog/internal/core/ports"
)

// CatalogCache abstracts the read-through cache for the product listing
// (Redis). A nil cache disables caching entirely.
type CatalogCache interface {
	Get(ctx context.Context) ([]domain.Product, error)
	Set(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

// ErrCacheMiss is returned by CatalogCache.Get when no listing is cached.
var ErrCacheMiss = errors.New("catalog cache miss")

type catalogService struct {
	products ports.ProductRepository
	carts    ports.CartRepository
	users    ports.UserRepository
	cache    CatalogCache
	log      zerolog.Logger
}

// NewCatalogService returns a CatalogService implementation.
func NewCatalogService(
	products ports.ProductRepository,
	carts ports.CartRepository,
	users ports.UserRepository,
	cache CatalogCache,
	log zerolog.Logger,
) ports.CatalogService {
	return &catalogService{
		products: products,
		carts:    carts,
		users:    users,
		cache:    cache,
		log:      log,
	}
}

// AddProduct creates a catalog product. The name must be unique.
func (s *catalogService) AddProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if input.Name == "" || input.Price <= 0 {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.products.FindByName(ctx, input.Name); err == nil {
		return nil, domain.ErrProductExists
	}

	product, err := s.products.Create(ctx, &domain.Product{
		Name:     input.Name,
		ImageURL: input.ImageURL,
		Price:    input.Price,
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warn().Err(err).Msg("catalog cache invalidation failed")
		}
	}

	s.log.Info().Str("name", product.Name).Msg("product created")
	return product, nil
}

// ListProducts returns the full catalog, served from cache when warm.
func (s *catalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			s.log.Warn().Err(err).Msg("catalog cache read failed, falling back to store")
		}
	}

	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, products); err != nil {
			s.log.Warn().Err(err).Msg("catalog cache write failed")
		}
	}
	return products, nil
}

// AddToCart appends one entry to the purchase ledger for the account
// identified by login.
func (s *catalogService) AddToCart(ctx context.Context, input ports.AddToCartInput) error {
	if input.QtdItens < 0 || input.TotalValue < 0 {
		return domain.ErrInvalidInput
	}

	user, err := s.users.FindByLogin(ctx, input.Login)
	if err != nil {
		return err
	}

	entry := &domain.CartEntry{
		UserID:     user.ID,
		QtdItens:   input.QtdItens,
		TotalValue: input.TotalValue,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.carts.Create(ctx, entry); err != nil {
		return err
	}

	s.log.Info().Str("login", input.Login).Int("qtd_itens", input.QtdItens).Msg("cart entry added")
	return nil
}

// Summarize groups all cart entries by owning account, sums quantity and
// value per group, and joins each group to the account login. Results are
// sorted by login so the output is reproducible.
func (s *catalogService) Summarize(ctx context.Context) ([]domain.PurchaseSummary, error) {
	entries, err := s.carts.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string]*domain.PurchaseSummary)
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		sum, ok := grouped[e.UserID]
		if !ok {
			sum = &domain.PurchaseSummary{UserID: e.UserID}
			grouped[e.UserID] = sum
			ids = append(ids, e.UserID)
		}
		sum.TotalItems += e.QtdItens
		sum.TotalValue += e.TotalValue
	}

	logins, err := s.users.FindLoginsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.PurchaseSummary, 0, len(grouped))
	for id, sum := range grouped {
		sum.Login = logins[id]
		summaries = append(summaries, *sum)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Login < summaries[j].Login
	})
	return summaries, nil
}
