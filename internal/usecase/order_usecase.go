package usecase

import (
	"context"
	"encoding/json"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderUseCase оформляет заказы из корзины и отдает историю заказов сессии.
// Платежи и резервирование остатков не выполняются: заказ только
// фиксируется, событие уходит через транзакционный outbox.
type OrderUseCase struct {
	cartUC     CartUC
	orderRepo  OrderRepository
	outboxRepo OutboxRepository
	dbPool     transaction.Transactional
	logger     logger.Logger
}

func NewOrderUC(
	cartUC CartUC,
	orderRepo OrderRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		cartUC:     cartUC,
		orderRepo:  orderRepo,
		outboxRepo: outboxRepo,
		dbPool:     dbPool,
		logger:     logger,
	}
}

// Checkout превращает непустую корзину сессии в заказ: снимок строк и итогов,
// запись заказа и outbox-события в одной транзакции, очистка корзины.
func (o *OrderUseCase) Checkout(ctx context.Context, sessionID string) (*CheckoutRes, error) {
	const op = "OrderUseCase.Checkout"

	cart, err := o.cartUC.GetCart(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(cart.Items) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	order := domain.NewOrder(sessionID, cart.Summary, orderItemsFromCart(cart.Items))

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	created, err := o.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	eventID := uuid.NewString()
	payload, err := json.Marshal(NewOrderPlacedEvent(eventID, created))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err = o.outboxRepo.Create(ctx, NewOutboxEvent(eventID, OrderPlaced, created.ID, payload)); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Заказ оформлен, корзина больше не нужна
	if _, err := o.cartUC.ClearCart(ctx, sessionID); err != nil {
		o.logger.Warnf("failed to clear cart after checkout %s: %v", created.Number, err)
	}

	o.logger.Infof("order %s placed, total: %s", created.Number, created.Total.String())

	return NewCheckoutRes(created, eventID), nil
}

// ListOrders возвращает заказы сессии, новые первыми.
func (o *OrderUseCase) ListOrders(ctx context.Context, sessionID string) (*ListOrdersRes, error) {
	const op = "OrderUseCase.ListOrders"

	orders, err := o.orderRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewListOrdersRes(orders), nil
}

// orderItemsFromCart фиксирует снимок строк корзины: имя и цена копируются,
// чтобы изменения каталога не переписывали историю заказов.
func orderItemsFromCart(items []CartItemView) []domain.OrderItem {
	result := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		image := ""
		if len(item.Product.Images) > 0 {
			image = item.Product.Images[0]
		}

		result = append(result, domain.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
			Image:     image,
		})
	}

	return result
}
