package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bakery-shop/config"
	"bakery-shop/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type CatalogRepository interface {
	ListProducts(ctx context.Context, q models.ProductQuery) ([]models.Product, error)
	GetProduct(ctx context.Context, slug string) (*models.Product, error)
	GetProductFlavors(ctx context.Context, slug string) ([]string, error)
	FeaturedNames(ctx context.Context) ([]string, error)
	MacaronFlavors(ctx context.Context) ([]models.MacaronFlavor, error)
	BoxDecorations(ctx context.Context) ([]string, error)
	FAQ(ctx context.Context) ([]models.FAQEntry, error)
}

var sortColumns = map[string]string{
	"name":  "name",
	"price": "price",
}

var sortDirections = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

const productColumns = `slug, name, price::text, description, image`

type PostgresCatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

// BuildProductQuery renders the filter/sort query for q. Sort and direction
// are looked up in whitelists, so unknown values fall back to name/asc.
func BuildProductQuery(q models.ProductQuery) (string, []interface{}) {
	query := "SELECT " + productColumns + " FROM products"
	args := []interface{}{}
	conditions := []string{}

	for i, token := range q.Tokens() {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", i+1))
		args = append(args, "%"+escapeLike(token)+"%")
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	column, ok := sortColumns[q.Sort]
	if !ok {
		column = "name"
	}
	direction, ok := sortDirections[q.Direction]
	if !ok {
		direction = "ASC"
	}

	query += fmt.Sprintf(" ORDER BY %s %s", column, direction)
	if column != "name" {
		query += ", name ASC"
	}
	return query, args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	var price string
	if err := row.Scan(&p.Slug, &p.Name, &price, &p.Description, &p.Image); err != nil {
		return p, err
	}
	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return p, fmt.Errorf("parse price of %s: %w", p.Slug, err)
	}
	p.Price = parsed
	return p, nil
}

func (r *PostgresCatalogRepository) ListProducts(ctx context.Context, q models.ProductQuery) ([]models.Product, error) {
	query, args := BuildProductQuery(q)

	products := []models.Product{}
	err := config.WithConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			p, err := scanProduct(rows)
			if err != nil {
				return err
			}
			products = append(products, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *PostgresCatalogRepository) GetProduct(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := config.WithConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		var err error
		product, err = scanProduct(conn.QueryRow(ctx,
			"SELECT "+productColumns+" FROM products WHERE slug = LOWER($1)", slug))
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product %q: %w", slug, err)
	}
	return &product, nil
}

func (r *PostgresCatalogRepository) GetProductFlavors(ctx context.Context, slug string) ([]string, error) {
	flavors := []string{}
	err := config.WithConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		var exists bool
		if err := conn.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM products WHERE slug = LOWER($1))", slug).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return models.ErrProductNotFound
		}

		rows, err := conn.Query(ctx,
			"SELECT flavor FROM product_flavors WHERE product_slug = LOWER($1) ORDER BY position, flavor", slug)
		if err != nil {
			return err
		}
		flavors, err = pgx.CollectRows(rows, pgx.RowTo[string])
		return err
	})
	if errors.Is(err, models.ErrProductNotFound) {
		return nil, models.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get flavors of %q: %w", slug, err)
	}
	return flavors, nil
}

func (r *PostgresCatalogRepository) FeaturedNames(ctx context.Context) ([]string, error) {
	return r.collectStrings(ctx, "featured names",
		"SELECT name FROM products WHERE featured_rank IS NOT NULL ORDER BY featured_rank")
}

func (r *PostgresCatalogRepository) BoxDecorations(ctx context.Context) ([]string, error) {
	return r.collectStrings(ctx, "box decorations",
		"SELECT style FROM box_decorations ORDER BY position, style")
}

func (r *PostgresCatalogRepository) collectStrings(ctx context.Context, what, query string) ([]string, error) {
	values := []string{}
	err := config.WithConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query)
		if err != nil {
			return err
		}
		values, err = pgx.CollectRows(rows, pgx.RowTo[string])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", what, err)
	}
	return values, nil
}

func (r *PostgresCatalogRepository) MacaronFlavors(ctx context.Context) ([]models.MacaronFlavor, error) {
	flavors := []models.MacaronFlavor{}
	err := config.WithConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, "SELECT name, description, image FROM macaron_flavors ORDER BY name")
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var f models.MacaronFlavor
			if err := rows.Scan(&f.Name, &f.Description, &f.Image); err != nil {
				return err
			}
			flavors = append(flavors, f)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list macaron flavors: %w", err)
	}
	return flavors, nil
}

func (r *PostgresCatalogRepository) FAQ(ctx context.Context) ([]models.FAQEntry, error) {
	entries := []models.FAQEntry{}
	err := config.WithConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, "SELECT id, question, answer FROM faq ORDER BY id")
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var e models.FAQEntry
			if err := rows.Scan(&e.ID, &e.Question, &e.Answer); err != nil {
				return err
			}
			entries = append(entries, e)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list faq: %w", err)
	}
	return entries, nil
}
