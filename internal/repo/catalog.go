package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/vmaksimov/storefront/internal/models"
	"github.com/vmaksimov/storefront/internal/transport"
)

func (r *GormRepo) applyProductFilter(q *gorm.DB, f transport.ProductFilter) *gorm.DB {
	q = q.Joins("LEFT JOIN categories ON categories.id = products.category_id")
	if f.Search != "" {
		q = q.Where("products.name LIKE ?", "%"+f.Search+"%")
	}
	if f.MinPrice != nil {
		q = q.Where("products.price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("products.price <= ?", *f.MaxPrice)
	}
	if f.Category != "" {
		q = q.Where("categories.name LIKE ?", "%"+f.Category+"%")
	}
	return q
}

func (r *GormRepo) ListProducts(ctx context.Context, f transport.ProductFilter, offset, limit int) (int64, []transport.ProductListing, error) {
	var total int64
	if err := r.applyProductFilter(r.DB.WithContext(ctx).Model(&models.Product{}), f).
		Count(&total).Error; err != nil {
		return 0, nil, err
	}

	rows := make([]transport.ProductListing, 0, limit)
	if err := r.applyProductFilter(r.DB.WithContext(ctx).Model(&models.Product{}), f).
		Select("products.*, categories.name AS category").
		Order("products.created_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return 0, nil, err
	}

	return total, rows, nil
}

func (r *GormRepo) ListCategories(ctx context.Context) ([]transport.CategoryListing, error) {
	var rows []transport.CategoryListing
	if err := r.DB.WithContext(ctx).Model(&models.Category{}).
		Select("categories.*, COUNT(products.id) AS product_count").
		Joins("LEFT JOIN products ON products.category_id = categories.id").
		Group("categories.id").
		Order("categories.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
