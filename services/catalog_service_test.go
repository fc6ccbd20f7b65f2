package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"bakery-shop/models"
	"bakery-shop/repositories"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type prefixImages struct{}

func (prefixImages) Resolve(ref string) string {
	return "https://cdn.test/" + ref
}

// failingCatalog fails every read after the first n product list calls.
type failingCatalog struct {
	*repositories.MemoryCatalog
	calls int
	limit int
}

func (f *failingCatalog) ListProducts(ctx context.Context, q models.ProductQuery) ([]models.Product, error) {
	f.calls++
	if f.calls > f.limit {
		return nil, errors.New("database down")
	}
	return f.MemoryCatalog.ListProducts(ctx, q)
}

func newRedisCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCache(client, time.Minute), mr
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestListProductsFilterAndSort(t *testing.T) {
	svc := NewCatalogService(repositories.SeededMemoryCatalog(), nil, nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		query models.ProductQuery
		want  []string
	}{
		{
			name:  "every token must match",
			query: models.ProductQuery{Contains: "mini-palmiers", Sort: "name", Direction: "asc"},
			want:  []string{"Mini Palmiers"},
		},
		{
			name:  "single token",
			query: models.ProductQuery{Contains: "mini", Sort: "name", Direction: "asc"},
			want:  []string{"Mini Fruit Tarts", "Mini Palmiers"},
		},
		{
			name:  "price descending",
			query: models.ProductQuery{Contains: "cake", Sort: "price", Direction: "desc"},
			want:  []string{"Celebration Cake", "Cheesecake"},
		},
		{
			name:  "no match",
			query: models.ProductQuery{Contains: "baguette", Sort: "name", Direction: "asc"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := svc.ListProducts(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(products))
		})
	}
}

func TestListProductsRendersPlaceholders(t *testing.T) {
	svc := NewCatalogService(repositories.SeededMemoryCatalog(), nil, prefixImages{})

	products, err := svc.ListProducts(context.Background(), models.ProductQuery{Contains: "cheesecake", Sort: "name", Direction: "asc"})
	require.NoError(t, err)
	require.Len(t, products, 1)

	assert.NotContains(t, products[0].Description, "{{")
	assert.Contains(t, products[0].Description, "classic cheesecake")
	assert.Equal(t, "https://cdn.test/images/cheesecake.jpg", products[0].Image)
}

func TestListProductsServedFromCache(t *testing.T) {
	cache, mr := newRedisCache(t)
	repo := &failingCatalog{MemoryCatalog: repositories.SeededMemoryCatalog(), limit: 1}
	svc := NewCatalogService(repo, cache, nil)
	ctx := context.Background()
	q := models.ProductQuery{Contains: "mini", Sort: "price", Direction: "asc"}

	first, err := svc.ListProducts(ctx, q)
	require.NoError(t, err)
	assert.True(t, mr.Exists("products:mini:price:asc"))

	second, err := svc.ListProducts(ctx, q)
	require.NoError(t, err, "second call must not reach the repository")
	assert.Equal(t, names(first), names(second))
	assert.True(t, first[0].Price.Equal(second[0].Price))

	mr.FlushAll()
	_, err = svc.ListProducts(ctx, q)
	assert.Error(t, err)
}

func TestGetProduct(t *testing.T) {
	svc := NewCatalogService(repositories.SeededMemoryCatalog(), nil, nil)
	ctx := context.Background()

	p, err := svc.GetProduct(ctx, "mini-palmiers")
	require.NoError(t, err)
	assert.Equal(t, "Mini Palmiers", p.Name)
	assert.Equal(t, "9.75", p.Price.StringFixed(2))

	_, err = svc.GetProduct(ctx, "baguette")
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestGetProductFlavors(t *testing.T) {
	svc := NewCatalogService(repositories.SeededMemoryCatalog(), nil, nil)
	ctx := context.Background()

	flavors, err := svc.GetProductFlavors(ctx, "cheesecake")
	require.NoError(t, err)
	assert.Equal(t, []string{"Classic", "Caramel", "Raspberry"}, flavors)

	flavors, err = svc.GetProductFlavors(ctx, "mini-palmiers")
	require.NoError(t, err)
	assert.NotNil(t, flavors)
	assert.Empty(t, flavors)

	_, err = svc.GetProductFlavors(ctx, "baguette")
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestGetCustomDescription(t *testing.T) {
	svc := NewCatalogService(repositories.SeededMemoryCatalog(), nil, nil)
	ctx := context.Background()

	got, err := svc.GetCustomDescription(ctx, "cheesecake", "Caramel", "Bow")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "Our signature Caramel cheesecake"))
	assert.Contains(t, got, "Bow topper")

	got, err = svc.GetCustomDescription(ctx, "mini-palmiers", "Plain", "Ribbon")
	require.NoError(t, err)
	assert.Equal(t, "Crisp caramelized Plain puff pastry hearts rolled in sugar and baked Ribbon golden.", got)

	_, err = svc.GetCustomDescription(ctx, "baguette", "Plain", "Ribbon")
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestFeaturedAndLookups(t *testing.T) {
	catalog := repositories.SeededMemoryCatalog()
	catalog.Boxes = []string{"bow", "gift-wrap"}
	cache, mr := newRedisCache(t)
	svc := NewCatalogService(catalog, cache, nil)
	ctx := context.Background()

	featured, err := svc.Featured(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cheesecake", "French Macarons", "Chocolate Croissant"}, featured)
	assert.True(t, mr.Exists("featured"))

	boxes, err := svc.BoxDecorations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bow", "Gift Wrap"}, boxes)

	macarons, err := svc.MacaronFlavors(ctx)
	require.NoError(t, err)
	assert.Len(t, macarons, 4)

	faq, err := svc.FAQ(ctx)
	require.NoError(t, err)
	require.Len(t, faq, 3)
	assert.Equal(t, "Do you deliver?", faq[0].Question)
	assert.True(t, mr.Exists("faq"))
}

func TestNilCacheIsNoop(t *testing.T) {
	var cache *Cache
	var dest []string
	assert.False(t, cache.Get(context.Background(), "featured", &dest))
	cache.Set(context.Background(), "featured", []string{"x"})

	empty := NewCache(nil, time.Minute)
	assert.False(t, empty.Get(context.Background(), "featured", &dest))
}
