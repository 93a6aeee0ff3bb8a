package cart

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vmaksimov/storefront/internal/models"
	"github.com/vmaksimov/storefront/internal/transport"
)

var (
	ErrValidation        = errors.New("validation")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("not enough stock")
)

// Store is the cart_items access the service needs. Implementations
// must scope reads and deletes to the owning user.
type Store interface {
	ListItems(ctx context.Context, userID uint) ([]models.CartItem, error)
	GetItem(ctx context.Context, userID, itemID uint) (*models.CartItem, error)
	// SetItem upserts the row to exactly quantity; zero removes it.
	SetItem(ctx context.Context, userID, productID, quantity uint) (*models.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, itemID, quantity uint) (*models.CartItem, error)
	DeleteItem(ctx context.Context, userID, itemID uint) error
	DeleteAll(ctx context.Context, userID uint) error
}

// ProductReader supplies live catalog snapshots. Stock read here is a
// soft ceiling: the cart validates against it but never decrements it.
type ProductReader interface {
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	ProductsByID(ctx context.Context, ids []uint) (map[uint]models.Product, error)
}

type Service struct {
	Store    Store
	Products ProductReader
}

// AddOrSetItem upserts the (user, product) row to the requested
// quantity, clamped to the product's current stock. Requests over
// stock are clamped, not rejected, and a repeated add replaces the
// stored quantity instead of incrementing it. A sold-out product
// clamps to zero: the add still succeeds but no line is kept.
// UpdateItemQuantity rejects over-stock requests outright; the
// asymmetry is the documented contract of the two endpoints.
func (s *Service) AddOrSetItem(ctx context.Context, userID, productID, quantity uint) (*models.CartItem, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product_id required: %w", ErrValidation)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}

	product, err := s.Products.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", productID, ErrNotFound)
		}
		return nil, err
	}

	if quantity > product.Stock {
		quantity = product.Stock
	}

	return s.Store.SetItem(ctx, userID, productID, quantity)
}

// ListItems returns the user's cart rows enriched with live product
// data. A dangling product reference degrades to zero values rather
// than failing the listing.
func (s *Service) ListItems(ctx context.Context, userID uint) ([]transport.CartItemView, error) {
	items, err := s.Store.ListItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.Products.ProductsByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]transport.CartItemView, 0, len(items))
	for _, it := range items {
		view := transport.CartItemView{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		}
		if p, ok := products[it.ProductID]; ok {
			view.Name = p.Name
			view.Cover = p.Cover
			view.Price = p.Price
			view.Stock = p.Stock
		}
		views = append(views, view)
	}
	return views, nil
}

// UpdateItemQuantity is the strict-check mutation: an over-stock
// quantity fails with ErrInsufficientStock and the stored value stays
// unchanged. A row owned by another user reports ErrNotFound, never
// that the row exists.
func (s *Service) UpdateItemQuantity(ctx context.Context, userID, itemID, quantity uint) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}

	item, err := s.Store.GetItem(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item %d: %w", itemID, ErrNotFound)
		}
		return nil, err
	}

	product, err := s.Products.GetProduct(ctx, item.ProductID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var stock uint
	if product != nil {
		stock = product.Stock
	}
	if quantity > stock {
		return nil, fmt.Errorf("requested %d of product %d: %w", quantity, item.ProductID, ErrInsufficientStock)
	}

	return s.Store.UpdateQuantity(ctx, userID, itemID, quantity)
}

// RemoveItem is idempotent: removing a missing or already-removed row
// succeeds.
func (s *Service) RemoveItem(ctx context.Context, userID, itemID uint) error {
	if itemID == 0 {
		return fmt.Errorf("id required: %w", ErrValidation)
	}
	return s.Store.DeleteItem(ctx, userID, itemID)
}

// ClearCart drops every row the user owns.
func (s *Service) ClearCart(ctx context.Context, userID uint) error {
	return s.Store.DeleteAll(ctx, userID)
}
