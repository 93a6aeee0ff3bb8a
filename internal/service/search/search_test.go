package search_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/stretchr/testify/require"

	"github.com/vmaksimov/storefront/internal/service/search"
)

const searchResponse = `{
  "hits": {
    "total": {"value": 2, "relation": "eq"},
    "hits": [
      {"_index": "products", "_id": "1", "_score": 1.2,
       "_source": {"id": 1, "name": "headphones", "slug": "headphones", "description": "wireless", "price": 99.99, "stock": 5, "category_id": 1}},
      {"_index": "products", "_id": "2", "_score": 0.8,
       "_source": {"id": 2, "name": "headphone stand", "slug": "headphone-stand", "description": "aluminium", "price": 19.99, "stock": 12, "category_id": 1}}
    ]
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *elasticsearch.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return es
}

func TestSearchDecodesHits(t *testing.T) {
	es := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchResponse))
	})

	total, products, err := search.Search(context.Background(), es, "products", "headphones", 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, products, 2)

	require.Equal(t, uint(1), products[0].ID)
	require.Equal(t, "headphones", products[0].Name)
	require.Equal(t, 99.99, products[0].Price)
	require.Equal(t, uint(5), products[0].Stock)

	require.Equal(t, "headphone stand", products[1].Name)
	require.Equal(t, uint(12), products[1].Stock)
}

func TestSearchErrorStatus(t *testing.T) {
	es := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"parsing_exception"}}`))
	})

	_, _, err := search.Search(context.Background(), es, "products", "headphones", 0, 10)
	require.Error(t, err)
}
