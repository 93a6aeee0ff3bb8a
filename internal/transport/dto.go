package transport

import "time"

type AddToCartRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  uint `json:"quantity"`
}

type UpdateCartRequest struct {
	ID       uint `json:"id"`
	Quantity uint `json:"quantity"`
}

type RemoveCartRequest struct {
	ID uint `json:"id"`
}

// CartItemView is a cart row enriched with a live product snapshot.
// The product fields fall back to zero values when the product has
// been deleted from the catalog.
type CartItemView struct {
	ID        uint    `json:"id"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Cover     string  `json:"cover,omitempty"`
	Price     float64 `json:"price"`
	Quantity  uint    `json:"quantity"`
	Stock     uint    `json:"stock"`
}

type ProductFilter struct {
	Search   string
	MinPrice *float64
	MaxPrice *float64
	Category string
	Page     int
}

type ProductListing struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Cover       string    `json:"cover"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       uint      `json:"stock"`
	CategoryID  uint      `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	Category    string    `json:"category"`
}

type CategoryListing struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Cover        string `json:"cover"`
	ProductCount int64  `json:"product_count"`
}
