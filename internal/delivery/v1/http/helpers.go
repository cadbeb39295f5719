package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Заголовок, привязывающий корзину и заказы к сессии покупателя.
const sessionHeader = "X-Session-ID"

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrOrderNotFound):
		return http.StatusNotFound, e.ErrOrderNotFound.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrInvalidProductID):
		return http.StatusBadRequest, e.ErrInvalidProductID.Error()
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrInvalidRating):
		return http.StatusBadRequest, e.ErrInvalidRating.Error()
	case errors.Is(err, e.ErrEmptyCart):
		return http.StatusBadRequest, e.ErrEmptyCart.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sessionID возвращает идентификатор сессии из заголовка. Для новой сессии
// генерируется uuid; в обоих случаях идентификатор эхом уходит в ответ,
// чтобы клиент закрепил его за собой.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	id := strings.TrimSpace(r.Header.Get(sessionHeader))
	if id == "" {
		id = uuid.NewString()
	}

	w.Header().Set(sessionHeader, id)
	return id
}

// parseID читает идентификатор товара из URL-параметра.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, e.ErrInvalidProductID
	}

	return id, nil
}

// parseFilterCriteria собирает критерии запроса каталога из query-параметров.
// Отсутствующий параметр выключает соответствующий предикат.
func parseFilterCriteria(r *http.Request) (domain.FilterCriteria, error) {
	q := r.URL.Query()

	criteria := domain.FilterCriteria{
		RouteCategory: q.Get("category"),
		SearchText:    q.Get("search"),
		Sort:          domain.ParseSortKey(q.Get("sort")),
	}

	if raw := q.Get("categories"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				criteria.SelectedCategories = append(criteria.SelectedCategories, id)
			}
		}
	}

	var err error
	if criteria.PriceMin, err = parsePriceParam(q.Get("price_min")); err != nil {
		return criteria, err
	}
	if criteria.PriceMax, err = parsePriceParam(q.Get("price_max")); err != nil {
		return criteria, err
	}

	if raw := q.Get("min_rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil || rating < 0 || rating > 5 {
			return criteria, e.ErrInvalidRating
		}
		criteria.MinRating = rating
	}

	if raw := q.Get("in_stock"); raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err != nil {
			return criteria, e.ErrStatusBadRequest
		}
		criteria.InStockOnly = inStock
	}

	return criteria, nil
}

// parsePriceParam разбирает границу ценового диапазона; пустая строка
// означает отсутствие границы.
func parsePriceParam(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return nil, e.ErrInvalidPrice
	}

	return &d, nil
}
