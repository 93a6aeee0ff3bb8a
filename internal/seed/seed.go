package seed

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/vmaksimov/storefront/internal/models"
)

type productFixture struct {
	Name        string
	Cover       string
	Description string
	Price       float64
	Category    string
	Stock       uint
}

var products = []productFixture{
	{
		Name:        "Wireless Headphones",
		Cover:       "https://images.unsplash.com/photo-1511367461989-f85a21fda167?fit=crop&w=600&q=80",
		Description: "High-quality wireless headphones with noise cancellation.",
		Price:       99.99,
		Category:    "Electronics",
		Stock:       10,
	},
	{
		Name:        "Smart Watch",
		Cover:       "https://images.unsplash.com/photo-1516574187841-cb9cc2ca948b?fit=crop&w=600&q=80",
		Description: "Feature-rich smartwatch with health monitoring.",
		Price:       199.99,
		Category:    "Electronics",
		Stock:       8,
	},
	{
		Name:        "Laptop Backpack",
		Cover:       "https://images.unsplash.com/photo-1519125323398-675f0ddb6308?fit=crop&w=600&q=80",
		Description: "Durable laptop backpack with multiple compartments.",
		Price:       49.99,
		Category:    "Fashion",
		Stock:       15,
	},
	{
		Name:        "Bluetooth Speaker",
		Cover:       "https://images.unsplash.com/photo-1465101046530-73398c7f28ca?fit=crop&w=600&q=80",
		Description: "Portable Bluetooth speaker with excellent sound quality.",
		Price:       79.99,
		Category:    "Electronics",
		Stock:       12,
	},
	{
		Name:        "Gaming Mouse",
		Cover:       "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?fit=crop&w=600&q=80",
		Description: "High-precision gaming mouse with RGB lighting.",
		Price:       59.99,
		Category:    "Electronics",
		Stock:       20,
	},
	{
		Name:        "Phone Case",
		Cover:       "https://images.unsplash.com/photo-1512499617640-c2f999098c67?fit=crop&w=600&q=80",
		Description: "Protective phone case with elegant design.",
		Price:       19.99,
		Category:    "Fashion",
		Stock:       30,
	},
	{
		Name:        "Garden Tools Set",
		Cover:       "https://images.unsplash.com/photo-1506744038136-46273834b3fb?fit=crop&w=600&q=80",
		Description: "Complete set of garden tools for home use.",
		Price:       39.99,
		Category:    "Home & Garden",
		Stock:       7,
	},
	{
		Name:        "Yoga Mat",
		Cover:       "https://images.unsplash.com/photo-1519864600265-abb23847ef2c?fit=crop&w=600&q=80",
		Description: "Comfortable and non-slip yoga mat.",
		Price:       29.99,
		Category:    "Sports",
		Stock:       18,
	},
}

// Run inserts the demo catalog. Existing products are matched by slug
// so reruns do not duplicate rows.
func Run(ctx context.Context, db *gorm.DB) error {
	for _, f := range products {
		var category models.Category
		if err := db.WithContext(ctx).
			Where(models.Category{Name: f.Category}).
			FirstOrCreate(&category).Error; err != nil {
			return fmt.Errorf("seed category %q: %w", f.Category, err)
		}

		product := models.Product{
			Name:        f.Name,
			Slug:        Slugify(f.Name),
			Cover:       f.Cover,
			Description: f.Description,
			Price:       f.Price,
			Stock:       f.Stock,
			CategoryID:  category.ID,
		}
		if err := db.WithContext(ctx).
			Where(models.Product{Slug: product.Slug}).
			FirstOrCreate(&product).Error; err != nil {
			return fmt.Errorf("seed product %q: %w", f.Name, err)
		}
	}
	return nil
}

func Slugify(name string) string {
	s := strings.ToLower(name)
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
