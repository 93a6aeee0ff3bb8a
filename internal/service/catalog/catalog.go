package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/vmaksimov/storefront/internal/transport"
)

const (
	PageSize = 10
	cacheTTL = 10 * time.Minute
	cacheCap = 256
)

type Repo interface {
	ListProducts(ctx context.Context, f transport.ProductFilter, offset, limit int) (int64, []transport.ProductListing, error)
	ListCategories(ctx context.Context) ([]transport.CategoryListing, error)
}

type Page struct {
	Data []transport.ProductListing `json:"data"`
	Meta Meta                       `json:"meta"`
}

type Meta struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

type Service struct {
	Repo  Repo
	cache *expirable.LRU[string, *Page]
}

func NewService(repo Repo) *Service {
	return NewServiceTTL(repo, cacheTTL)
}

func NewServiceTTL(repo Repo, ttl time.Duration) *Service {
	return &Service{
		Repo:  repo,
		cache: expirable.NewLRU[string, *Page](cacheCap, nil, ttl),
	}
}

// ListProducts memoizes each exact filter combination for the cache
// window. The cache serves catalog browsing only; cart stock checks
// always read the live rows.
func (s *Service) ListProducts(ctx context.Context, f transport.ProductFilter) (*Page, error) {
	if f.Page < 1 {
		f.Page = 1
	}

	key := cacheKey(f)
	if page, ok := s.cache.Get(key); ok {
		return page, nil
	}

	offset := (f.Page - 1) * PageSize

	total, items, err := s.Repo.ListProducts(ctx, f, offset, PageSize)
	if err != nil {
		return nil, err
	}

	page := &Page{
		Data: items,
		Meta: Meta{
			Page:       f.Page,
			Size:       PageSize,
			Total:      total,
			TotalPages: (total + PageSize - 1) / PageSize,
			HasPrev:    f.Page > 1,
			HasNext:    int64(offset+PageSize) < total,
		},
	}

	s.cache.Add(key, page)
	return page, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]transport.CategoryListing, error) {
	return s.Repo.ListCategories(ctx)
}

func cacheKey(f transport.ProductFilter) string {
	min, max := "", ""
	if f.MinPrice != nil {
		min = fmt.Sprintf("%g", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		max = fmt.Sprintf("%g", *f.MaxPrice)
	}
	return fmt.Sprintf("products|s=%s|min=%s|max=%s|c=%s|p=%d", f.Search, min, max, f.Category, f.Page)
}
