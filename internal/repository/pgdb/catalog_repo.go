package pgdb

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

// CatalogRepo читает витрину каталога из PostgreSQL.
// Порядок строк задается колонкой position: это и есть порядок "featured".
type CatalogRepo struct {
	pool *pgxpool.Pool
}

func NewCatalogRepo(pool *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{pool: pool}
}

// ListProducts возвращает все товары витрины в порядке position.
// Цены читаются текстом, чтобы не терять точность на float64.
func (c *CatalogRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT
			id, name, description, category_slug,
			price::text, original_price::text,
			rating, reviews, images, in_stock, badge, features
		FROM products
		ORDER BY position;
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		var price, originalPrice string

		if err := rows.Scan(
			&product.ID, &product.Name, &product.Description, &product.Category,
			&price, &originalPrice,
			&product.Rating, &product.Reviews, &product.Images,
			&product.InStock, &product.Badge, &product.Features,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		if product.Price, err = decimal.NewFromString(price); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		if product.OriginalPrice, err = decimal.NewFromString(originalPrice); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, product)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// ListCategories возвращает категории витрины в порядке position.
func (c *CatalogRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT slug, name, icon
		FROM categories
		ORDER BY position;
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Category, 0)
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Icon); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, category)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
