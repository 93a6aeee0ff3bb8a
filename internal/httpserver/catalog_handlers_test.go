package httpserver_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vmaksimov/storefront/internal/models"
)

func seedCatalog(t *testing.T, env *testEnv) {
	t.Helper()
	electronics := models.Category{Name: "Electronics"}
	fashion := models.Category{Name: "Fashion"}
	require.NoError(t, env.DB.Create(&electronics).Error)
	require.NoError(t, env.DB.Create(&fashion).Error)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	products := []models.Product{
		{Name: "Wireless Headphones", Description: "d", Price: 99.99, Stock: 10, CategoryID: electronics.ID, CreatedAt: base},
		{Name: "Smart Watch", Description: "d", Price: 199.99, Stock: 8, CategoryID: electronics.ID, CreatedAt: base.Add(time.Hour)},
		{Name: "Phone Case", Description: "d", Price: 19.99, Stock: 30, CategoryID: fashion.ID, CreatedAt: base.Add(2 * time.Hour)},
	}
	for i := range products {
		require.NoError(t, env.DB.Create(&products[i]).Error)
	}
}

func TestGetProductsPublic(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	rec := env.doJSON(http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	data := resp["data"].([]any)
	require.Len(t, data, 3)
	first := data[0].(map[string]any)
	require.Equal(t, "Phone Case", first["name"])
	require.Equal(t, "Fashion", first["category"])

	meta := resp["meta"].(map[string]any)
	require.Equal(t, float64(3), meta["total"])
	require.Equal(t, float64(10), meta["size"])
}

func TestGetProductsFiltered(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	rec := env.doJSON(http.MethodGet, "/products?search=Watch", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody(t, rec)["data"].([]any), 1)

	rec = env.doJSON(http.MethodGet, "/products?min_price=50&max_price=100", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].([]any)
	require.Len(t, data, 1)
	require.Equal(t, "Wireless Headphones", data[0].(map[string]any)["name"])

	rec = env.doJSON(http.MethodGet, "/products?category=Electronics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody(t, rec)["data"].([]any), 2)
}

func TestGetCategoriesWithCounts(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	rec := env.doJSON(http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	require.Equal(t, "success", resp["message"])
	data := resp["data"].([]any)
	require.Len(t, data, 2)
	first := data[0].(map[string]any)
	require.Equal(t, "Electronics", first["name"])
	require.Equal(t, float64(2), first["product_count"])
}
