package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

// Лимит подборки похожих товаров на карточке товара.
const relatedProductsLimit = 4

// CatalogUseCase реализует витрину каталога: загрузка при старте и чистые
// запросы фильтрации/сортировки поверх неизменяемого снимка.
type CatalogUseCase struct {
	catalogRepo CatalogRepository
	imagesInfra ImagesInfra // nil, если резолвинг изображений выключен
	logger      logger.Logger

	// Заполняются один раз в Load до старта сервера, далее только чтение.
	products   []domain.Product
	byID       map[int64]domain.Product
	categories []domain.Category
}

func NewCatalogUC(catalogRepo CatalogRepository, imagesInfra ImagesInfra, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo: catalogRepo,
		imagesInfra: imagesInfra,
		logger:      logger,
	}
}

// Load загружает каталог из источника и резолвит s3://-ссылки изображений.
// Вызывается один раз при старте приложения; после этого каталог
// неизменяем на все время жизни процесса.
func (c *CatalogUseCase) Load(ctx context.Context) error {
	const op = "CatalogUseCase.Load"

	products, err := c.catalogRepo.ListProducts(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	categories, err := c.catalogRepo.ListCategories(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	c.resolveImages(ctx, products)

	byID := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	c.products = products
	c.byID = byID
	c.categories = categories

	c.logger.Infof("catalog loaded: %d products, %d categories", len(products), len(categories))
	return nil
}

// Query применяет критерии к каталогу. Вход не мутируется, результат
// детерминирован для одних и тех же критериев.
func (c *CatalogUseCase) Query(_ context.Context, req *QueryProductsReq) (*QueryProductsRes, error) {
	return NewQueryProductsRes(domain.QueryProducts(c.products, req.Criteria)), nil
}

// GetProduct возвращает карточку товара с похожими товарами той же категории.
func (c *CatalogUseCase) GetProduct(_ context.Context, productID int64) (*ProductDetailsRes, error) {
	const op = "CatalogUseCase.GetProduct"

	product, ok := c.byID[productID]
	if !ok {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	related := domain.RelatedProducts(c.products, &product, relatedProductsLimit)

	return NewProductDetailsRes(product, related), nil
}

func (c *CatalogUseCase) ListCategories(_ context.Context) ([]domain.Category, error) {
	return c.categories, nil
}

// ProductByID реализует ProductCatalog для корзины и заказов.
func (c *CatalogUseCase) ProductByID(productID int64) (domain.Product, bool) {
	product, ok := c.byID[productID]
	return product, ok
}

// resolveImages заменяет ключи вида s3://<object-key> на presigned-ссылки.
// Ошибка резолвинга не фатальна: ссылка остается как есть и логируется.
func (c *CatalogUseCase) resolveImages(ctx context.Context, products []domain.Product) {
	const s3Prefix = "s3://"

	for i := range products {
		for j, image := range products[i].Images {
			if !strings.HasPrefix(image, s3Prefix) {
				continue
			}

			if c.imagesInfra == nil {
				c.logger.Warnf("image resolver disabled, keeping raw key: %s", image)
				continue
			}

			url, err := c.imagesInfra.ResolveURL(ctx, strings.TrimPrefix(image, s3Prefix))
			if err != nil {
				c.logger.Warnf("failed to resolve image %s: %v", image, err)
				continue
			}

			products[i].Images[j] = url
		}
	}
}
