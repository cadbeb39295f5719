package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

type productsResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

type productDetailsResponse struct {
	Product domain.Product   `json:"product"`
	Related []domain.Product `json:"related"`
}

// queryProducts
//
//	@Summary		Запрос витрины каталога
//	@Description	Фильтрация и сортировка товаров; все параметры опциональны
//	@Tags			catalog
//	@Produce		json
//	@Param			category	query		string	false	"Категория из маршрута, точное совпадение"
//	@Param			search		query		string	false	"Подстрока в названии или описании"
//	@Param			categories	query		string	false	"Фасет категорий через запятую"
//	@Param			price_min	query		string	false	"Нижняя граница цены, включительно"
//	@Param			price_max	query		string	false	"Верхняя граница цены, включительно"
//	@Param			min_rating	query		number	false	"Минимальный рейтинг"
//	@Param			in_stock	query		bool	false	"Только товары в наличии"
//	@Param			sort		query		string	false	"featured | price-asc | price-desc | rating-desc | name-asc"
//	@Success		200			{object}	productsResponse
//	@Failure		400			{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/products [get]
func (c *CatalogHandler) queryProducts(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseFilterCriteria(r)
	if err != nil {
		c.logger.Warnf("%d invalid catalog query: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	res, err := c.catalogUsecase.Query(r.Context(), usecase.NewQueryProductsReq(criteria))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, productsResponse{
		Products: res.Products,
		Total:    res.Total,
	})
}

// getProduct
//
//	@Summary		Карточка товара
//	@Description	Товар и подборка похожих товаров той же категории
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path		int	true	"ID товара"
//	@Success		200	{object}	productDetailsResponse
//	@Failure		400	{object}	ErrorResponse	"Некорректный ID"
//	@Failure		404	{object}	ErrorResponse	"Товар не найден"
//	@Router			/products/{id} [get]
func (c *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.catalogUsecase.GetProduct(r.Context(), id)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, productDetailsResponse{
		Product: res.Product,
		Related: res.Related,
	})
}

// listCategories
//
//	@Summary	Список категорий витрины
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	domain.Category
//	@Router		/categories [get]
func (c *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, categories)
}
