package domain

import "github.com/shopspring/decimal"

// Product описывает товар каталога. Каталог загружается один раз при старте
// и далее доступен только для чтения; единственным ключом идентичности
// товара во всей системе является ID.
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"` // Ключ категории (electronics, clothing, ...)
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Rating        float64         `json:"rating"`
	Reviews       int             `json:"reviews"`
	Images        []string        `json:"images"`
	InStock       bool            `json:"in_stock"`
	Badge         *string         `json:"badge,omitempty"`
	Features      []string        `json:"features"`
}
