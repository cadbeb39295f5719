package usecase

import (
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// CATALOG USECASE

// QueryProductsReq — запрос к каталогу с собранными критериями фильтрации.
type QueryProductsReq struct {
	Criteria domain.FilterCriteria
}

// QueryProductsRes — отфильтрованное и отсортированное представление каталога.
type QueryProductsRes struct {
	Products []domain.Product
	Total    int
}

// ProductDetailsRes — карточка товара с подборкой похожих товаров.
type ProductDetailsRes struct {
	Product domain.Product
	Related []domain.Product
}

// CART USECASE

// CartItemView — строка корзины, соединенная с товаром каталога для показа.
type CartItemView struct {
	Product   domain.Product  `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartRes — снимок корзины сессии с пересчитанными итогами.
type CartRes struct {
	SessionID string             `json:"session_id"`
	Items     []CartItemView     `json:"items"`
	ItemCount int                `json:"item_count"`
	Summary   domain.CartSummary `json:"summary"`
}

// ORDER USECASE

type CheckoutRes struct {
	Order   *domain.Order
	EventID string
}

type ListOrdersRes struct {
	Orders []domain.Order
}

// OrderPlacedEvent — полезная нагрузка события оформления заказа для Kafka.
type OrderPlacedEvent struct {
	EventID     string `json:"event_id"`
	OrderNumber string `json:"order_number"`
	SessionID   string `json:"session_id"`
	Total       string `json:"total"`
	ItemCount   int    `json:"item_count"`
	CreatedAt   int64  `json:"created_at"`
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	OrderPlaced OutboxEventType = "order_placed"
)

// OutboxEvent — запись транзакционного outbox: создается в одной транзакции
// с заказом и публикуется в Kafka фоновым worker'ом.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

// MAPPERS

func NewQueryProductsReq(criteria domain.FilterCriteria) *QueryProductsReq {
	return &QueryProductsReq{Criteria: criteria}
}

func NewQueryProductsRes(products []domain.Product) *QueryProductsRes {
	return &QueryProductsRes{
		Products: products,
		Total:    len(products),
	}
}

func NewProductDetailsRes(product domain.Product, related []domain.Product) *ProductDetailsRes {
	return &ProductDetailsRes{
		Product: product,
		Related: related,
	}
}

func NewCartRes(sessionID string, items []CartItemView, itemCount int, summary domain.CartSummary) *CartRes {
	return &CartRes{
		SessionID: sessionID,
		Items:     items,
		ItemCount: itemCount,
		Summary:   summary,
	}
}

func NewCheckoutRes(order *domain.Order, eventID string) *CheckoutRes {
	return &CheckoutRes{
		Order:   order,
		EventID: eventID,
	}
}

func NewListOrdersRes(orders []domain.Order) *ListOrdersRes {
	return &ListOrdersRes{Orders: orders}
}

func NewOrderPlacedEvent(eventID string, order *domain.Order) *OrderPlacedEvent {
	itemCount := 0
	for _, item := range order.Items {
		itemCount += item.Quantity
	}

	return &OrderPlacedEvent{
		EventID:     eventID,
		OrderNumber: order.Number,
		SessionID:   order.SessionID,
		Total:       order.Total.String(),
		ItemCount:   itemCount,
		CreatedAt:   order.CreatedAt.UnixNano(),
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	}
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}
