package domain

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// QueryProducts применяет фильтры и сортировку к каталогу и возвращает новый
// срез. Чистая детерминированная функция: входной каталог не изменяется,
// результаты прошлых вызовов не кэшируются. Пустой каталог дает пустой
// результат, отсутствие активных критериев — каталог в исходном порядке.
func QueryProducts(catalog []Product, criteria FilterCriteria) []Product {
	result := make([]Product, 0, len(catalog))
	for i := range catalog {
		if criteria.matches(&catalog[i]) {
			result = append(result, catalog[i])
		}
	}

	sortProducts(result, criteria.Sort)

	return result
}

// sortProducts сортирует срез на месте стабильно: товары с равным ключом
// сохраняют исходный порядок каталога. Featured-порядок — это и есть
// исходный порядок, перестановка не выполняется.
func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNameAsc:
		cl := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return cl.CompareString(products[i].Name, products[j].Name) < 0
		})
	}
}

// RelatedProducts возвращает до limit товаров той же категории в
// featured-порядке, исключая сам товар.
func RelatedProducts(catalog []Product, product *Product, limit int) []Product {
	related := make([]Product, 0, limit)
	for i := range catalog {
		if catalog[i].Category != product.Category || catalog[i].ID == product.ID {
			continue
		}

		related = append(related, catalog[i])
		if len(related) == limit {
			break
		}
	}

	return related
}
