package usecase

import (
	"context"
	"sync"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// CartUseCase владеет корзинами сессий. Каждая сессия держит ровно один
// реестр в памяти; Redis — это сквозная запись для живучести между
// рестартами, а не источник истины.
type CartUseCase struct {
	catalog  ProductCatalog
	cartRepo CartRepository
	rules    domain.PricingRules
	logger   logger.Logger

	mu       sync.Mutex
	sessions map[string]*domain.Cart
}

func NewCartUC(catalog ProductCatalog, cartRepo CartRepository, rules domain.PricingRules, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		catalog:  catalog,
		cartRepo: cartRepo,
		rules:    rules,
		logger:   logger,
		sessions: make(map[string]*domain.Cart),
	}
}

func (c *CartUseCase) GetCart(ctx context.Context, sessionID string) (*CartRes, error) {
	return c.view(sessionID, c.ledger(ctx, sessionID)), nil
}

// AddItem добавляет товар в корзину сессии с merge-семантикой количества.
// Неизвестный товар — ошибка вызывающего, корзина не меняется.
func (c *CartUseCase) AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (*CartRes, error) {
	const op = "CartUseCase.AddItem"

	if _, ok := c.catalog.ProductByID(productID); !ok {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	cart := c.ledger(ctx, sessionID)
	cart.Add(productID, quantity)
	c.persist(ctx, sessionID, cart)

	return c.view(sessionID, cart), nil
}

// SetItemQuantity выставляет количество строки; значение <= 0 удаляет
// строку, отсутствующая строка — no-op.
func (c *CartUseCase) SetItemQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*CartRes, error) {
	cart := c.ledger(ctx, sessionID)
	cart.SetQuantity(productID, quantity)
	c.persist(ctx, sessionID, cart)

	return c.view(sessionID, cart), nil
}

func (c *CartUseCase) RemoveItem(ctx context.Context, sessionID string, productID int64) (*CartRes, error) {
	cart := c.ledger(ctx, sessionID)
	cart.Remove(productID)
	c.persist(ctx, sessionID, cart)

	return c.view(sessionID, cart), nil
}

func (c *CartUseCase) ClearCart(ctx context.Context, sessionID string) (*CartRes, error) {
	cart := c.ledger(ctx, sessionID)
	cart.Clear()

	if err := c.cartRepo.Delete(ctx, sessionID); err != nil {
		c.logger.Warnf("failed to delete cart %s from storage: %v", sessionID, err)
	}

	return c.view(sessionID, cart), nil
}

// ledger возвращает корзину сессии, при первом обращении восстанавливая
// ее из хранилища. Недоступность хранилища дает пустую корзину.
func (c *CartUseCase) ledger(ctx context.Context, sessionID string) *domain.Cart {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cart, ok := c.sessions[sessionID]; ok {
		return cart
	}

	lines, err := c.cartRepo.Load(ctx, sessionID)
	if err != nil {
		c.logger.Warnf("failed to load cart %s from storage: %v", sessionID, err)
		lines = nil
	}

	cart := domain.NewCartFromLines(lines)
	c.sessions[sessionID] = cart

	return cart
}

// persist записывает строки корзины в хранилище. Ошибка записи не роняет
// операцию: корзина в памяти остается корректной.
func (c *CartUseCase) persist(ctx context.Context, sessionID string, cart *domain.Cart) {
	if err := c.cartRepo.Save(ctx, sessionID, cart.Lines()); err != nil {
		c.logger.Warnf("failed to persist cart %s: %v", sessionID, err)
	}
}

// view собирает снимок корзины: строки соединяются с товарами по ID,
// итоги пересчитываются на каждое чтение и нигде не кэшируются.
func (c *CartUseCase) view(sessionID string, cart *domain.Cart) *CartRes {
	lines := cart.Lines()

	items := make([]CartItemView, 0, len(lines))
	for _, line := range lines {
		product, ok := c.catalog.ProductByID(line.ProductID)
		if !ok {
			// Осиротевшая строка: товар исчез из каталога
			continue
		}

		items = append(items, CartItemView{
			Product:   product,
			Quantity:  line.Quantity,
			LineTotal: product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}

	summary := c.rules.Summarize(lines, func(productID int64) (decimal.Decimal, bool) {
		product, ok := c.catalog.ProductByID(productID)
		return product.Price, ok
	})

	return NewCartRes(sessionID, items, cart.ItemCount(), summary)
}
