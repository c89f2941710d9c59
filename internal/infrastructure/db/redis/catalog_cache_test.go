package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/app2/products-catalog/internal/core/domain"
	"github.com/app2/products-catalog/internal/core/service"
)

func newTestCache(t *testing.T, ttl time.Duration) (*CatalogCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCatalogCache(client, ttl), mr
}

func TestCatalogCache_GetMiss(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)

	if _, err := cache.Get(context.Background()); !errors.Is(err, service.ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}
}

func TestCatalogCache_SetGetRoundtrip(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)

	products := []domain.Product{
		{ID: "product-1", Name: "Keyboard", Price: 49.90},
		{ID: "product-2", Name: "Mouse", ImageURL: "https://img.example/mouse.png", Price: 29.90},
	}
	if err := cache.Set(context.Background(), products); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := cache.Get(context.Background())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 products, got %d", len(got))
	}
	if got[0].ID != "product-1" || got[1].ImageURL != "https://img.example/mouse.png" {
		t.Fatalf("cached listing corrupted: %+v", got)
	}
}

func TestCatalogCache_Invalidate(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)

	if err := cache.Set(context.Background(), []domain.Product{{ID: "product-1", Name: "Keyboard", Price: 49.90}}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := cache.Invalidate(context.Background()); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}
	if _, err := cache.Get(context.Background()); !errors.Is(err, service.ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss after invalidate, got %v", err)
	}
}

func TestCatalogCache_EntryExpires(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)

	if err := cache.Set(context.Background(), []domain.Product{{ID: "product-1", Name: "Keyboard", Price: 49.90}}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := cache.Get(context.Background()); !errors.Is(err, service.ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss after TTL, got %v", err)
	}
}
