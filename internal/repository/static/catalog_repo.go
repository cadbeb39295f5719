package static

import (
	"context"
	"embed"
	"encoding/json"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

//go:embed data/catalog.json
var catalogFS embed.FS

// CatalogRepo отдает витрину из встроенного JSON-файла. Источник для
// локальной разработки и демо-стендов, где PostgreSQL не поднимается.
type CatalogRepo struct {
	products   []domain.Product
	categories []domain.Category
}

type catalogFile struct {
	Categories []domain.Category `json:"categories"`
	Products   []domain.Product  `json:"products"`
}

// NewCatalogRepo разбирает встроенный каталог. Битый файл — ошибка сборки
// репозитория, а не отложенная ошибка чтения.
func NewCatalogRepo() (*CatalogRepo, error) {
	const op = "static.NewCatalogRepo"

	data, err := catalogFS.ReadFile("data/catalog.json")
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &CatalogRepo{
		products:   file.Products,
		categories: file.Categories,
	}, nil
}

func (c *CatalogRepo) ListProducts(_ context.Context) ([]domain.Product, error) {
	return c.products, nil
}

func (c *CatalogRepo) ListCategories(_ context.Context) ([]domain.Category, error) {
	return c.categories, nil
}
