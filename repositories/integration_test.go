//go:build integration
// +build integration

package repositories_test

import (
	"context"
	"testing"
	"time"

	"bakery-shop/config"
	"bakery-shop/models"
	"bakery-shop/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB starts Postgres, applies the embedded migrations and returns a pool.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("bakery"),
		postgres.WithUsername("bakery"),
		postgres.WithPassword("bakery"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, config.RunMigrations(connStr))
	// Applying twice must be a no-op.
	require.NoError(t, config.RunMigrations(connStr))

	pool, err := config.ConnectDB(&config.Config{DatabaseURL: connStr, DBMaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestPostgresCatalog(t *testing.T) {
	pool := setupTestDB(t)
	repo := repositories.NewCatalogRepository(pool)
	ctx := context.Background()

	t.Run("filter by every token", func(t *testing.T) {
		products, err := repo.ListProducts(ctx, models.ProductQuery{Contains: "mini-palmiers", Sort: "name", Direction: "asc"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Mini Palmiers", products[0].Name)
		assert.Equal(t, "9.75", products[0].Price.StringFixed(2))
	})

	t.Run("sort by price descending", func(t *testing.T) {
		products, err := repo.ListProducts(ctx, models.ProductQuery{Sort: "price", Direction: "desc"})
		require.NoError(t, err)
		require.NotEmpty(t, products)
		for i := 1; i < len(products); i++ {
			assert.True(t, products[i-1].Price.GreaterThanOrEqual(products[i].Price))
		}
	})

	t.Run("get product case insensitive", func(t *testing.T) {
		p, err := repo.GetProduct(ctx, "Cheesecake")
		require.NoError(t, err)
		assert.Equal(t, "cheesecake", p.Slug)

		_, err = repo.GetProduct(ctx, "baguette")
		assert.ErrorIs(t, err, models.ErrProductNotFound)
	})

	t.Run("flavors", func(t *testing.T) {
		flavors, err := repo.GetProductFlavors(ctx, "cheesecake")
		require.NoError(t, err)
		assert.Equal(t, []string{"Classic", "Caramel", "Raspberry"}, flavors)

		flavors, err = repo.GetProductFlavors(ctx, "mini-palmiers")
		require.NoError(t, err)
		assert.Empty(t, flavors)

		_, err = repo.GetProductFlavors(ctx, "baguette")
		assert.ErrorIs(t, err, models.ErrProductNotFound)
	})

	t.Run("lookups", func(t *testing.T) {
		featured, err := repo.FeaturedNames(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Cheesecake", "French Macarons", "Chocolate Croissant"}, featured)

		boxes, err := repo.BoxDecorations(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Bow", "Ribbon", "Floral", "Plain"}, boxes)

		macarons, err := repo.MacaronFlavors(ctx)
		require.NoError(t, err)
		assert.Len(t, macarons, 4)

		faq, err := repo.FAQ(ctx)
		require.NoError(t, err)
		assert.Len(t, faq, 3)
	})
}

func TestPostgresFeedback(t *testing.T) {
	pool := setupTestDB(t)
	repo := repositories.NewFeedbackRepository(pool)
	ctx := context.Background()

	first := &models.FeedbackSubmission{Email: "ana@example.com", Name: "Ana", Message: "Hello"}
	require.NoError(t, repo.Create(ctx, first))
	assert.False(t, first.CreatedAt.IsZero())

	err := repo.Create(ctx, &models.FeedbackSubmission{Email: "ana@example.com", Name: "Ana", Message: "Again"})
	assert.ErrorIs(t, err, models.ErrDuplicateFeedback)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Hello", list[0].Message)
}
