package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SortKey задает порядок сортировки результата запроса к каталогу.
type SortKey string

const (
	SortFeatured   SortKey = "featured"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRatingDesc SortKey = "rating-desc"
	SortNameAsc    SortKey = "name-asc"
)

// ParseSortKey возвращает ключ сортировки по строковому значению.
// Неизвестное значение откатывается к SortFeatured, а не к ошибке.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc, SortRatingDesc, SortNameAsc:
		return SortKey(s)
	default:
		return SortFeatured
	}
}

// FilterCriteria — критерии одного запроса к каталогу. Значение собирается
// заново на каждый запрос и после него не переиспользуется.
type FilterCriteria struct {
	RouteCategory      string   // Контекстный фильтр из маршрута, точное совпадение
	SearchText         string   // Подстрока в name или description без учета регистра
	SelectedCategories []string // Multi-select фасет, OR внутри набора
	PriceMin           *decimal.Decimal
	PriceMax           *decimal.Decimal
	MinRating          float64 // 0 отключает фильтр
	InStockOnly        bool
	Sort               SortKey
}

// matches проверяет товар на конъюнкцию всех активных предикатов.
func (c *FilterCriteria) matches(p *Product) bool {
	if c.RouteCategory != "" && p.Category != c.RouteCategory {
		return false
	}

	if q := strings.ToLower(strings.TrimSpace(c.SearchText)); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}

	if len(c.SelectedCategories) > 0 {
		found := false
		for _, id := range c.SelectedCategories {
			if p.Category == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	// Диапазон цен инклюзивный; min > max не дает ни одного совпадения.
	if c.PriceMin != nil && p.Price.LessThan(*c.PriceMin) {
		return false
	}
	if c.PriceMax != nil && p.Price.GreaterThan(*c.PriceMax) {
		return false
	}

	if c.MinRating > 0 && p.Rating < c.MinRating {
		return false
	}

	if c.InStockOnly && !p.InStock {
		return false
	}

	return true
}
