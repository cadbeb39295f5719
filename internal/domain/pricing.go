package domain

import "github.com/shopspring/decimal"

// CartSummary — производные итоги корзины. Никогда не хранится: значения
// пересчитываются на каждое чтение.
type CartSummary struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// PricingRules — фиксированные правила ценообразования корзины.
type PricingRules struct {
	TaxRate          decimal.Decimal
	FreeShippingOver decimal.Decimal
	ShippingFlatRate decimal.Decimal
}

func NewPricingRules(taxRate, freeShippingOver, shippingFlatRate decimal.Decimal) PricingRules {
	return PricingRules{
		TaxRate:          taxRate,
		FreeShippingOver: freeShippingOver,
		ShippingFlatRate: shippingFlatRate,
	}
}

// DefaultPricingRules — правила исходного магазина: налог 8%, бесплатная
// доставка строго выше 50, иначе фиксированные 9.99.
func DefaultPricingRules() PricingRules {
	return NewPricingRules(
		decimal.RequireFromString("0.08"),
		decimal.NewFromInt(50),
		decimal.RequireFromString("9.99"),
	)
}

// Summarize вычисляет итоги корзины как чистую функцию строк и цен товаров.
// priceOf соединяет строку с ценой по ProductID; строки без цены (осиротевшие
// ссылки) пропускаются. Пустая корзина дает нулевые итоги целиком — правило
// порога доставки к ней не применяется. Налог не округляется до включения
// в итог: округление — забота слоя отображения.
func (r PricingRules) Summarize(lines []CartLine, priceOf func(productID int64) (decimal.Decimal, bool)) CartSummary {
	if len(lines) == 0 {
		return CartSummary{
			Subtotal: decimal.Zero,
			Shipping: decimal.Zero,
			Tax:      decimal.Zero,
			Total:    decimal.Zero,
		}
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		price, ok := priceOf(line.ProductID)
		if !ok {
			continue
		}

		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	// Строго больше порога: ровно 50.00 бесплатную доставку не дает.
	shipping := r.ShippingFlatRate
	if subtotal.GreaterThan(r.FreeShippingOver) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(r.TaxRate)

	return CartSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}
