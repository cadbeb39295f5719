package converter

// CartLineRedisModel представляет строку корзины в Redis-снимке сессии.
type CartLineRedisModel struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}
