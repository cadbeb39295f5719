package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus — статус жизненного цикла заказа.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderItem — снимок строки корзины на момент оформления заказа.
// Название и цена копируются, чтобы последующие изменения каталога
// не переписывали историю.
type OrderItem struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image"`
}

// Order описывает оформленный заказ.
type Order struct {
	ID        int64           `json:"-"`
	Number    string          `json:"number"`
	SessionID string          `json:"-"`
	Status    OrderStatus     `json:"status"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	Items     []OrderItem     `json:"items"`
}

// NewOrder создает заказ из итогов корзины со статусом processing.
func NewOrder(sessionID string, summary CartSummary, items []OrderItem) *Order {
	return &Order{
		SessionID: sessionID,
		Status:    OrderStatusProcessing,
		Subtotal:  summary.Subtotal,
		Shipping:  summary.Shipping,
		Tax:       summary.Tax,
		Total:     summary.Total,
		CreatedAt: time.Now(),
		Items:     items,
	}
}
