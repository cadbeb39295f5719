package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

type CatalogUC interface {
	Query(ctx context.Context, req *QueryProductsReq) (*QueryProductsRes, error)
	GetProduct(ctx context.Context, productID int64) (*ProductDetailsRes, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type CartUC interface {
	GetCart(ctx context.Context, sessionID string) (*CartRes, error)
	AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (*CartRes, error)
	SetItemQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*CartRes, error)
	RemoveItem(ctx context.Context, sessionID string, productID int64) (*CartRes, error)
	ClearCart(ctx context.Context, sessionID string) (*CartRes, error)
}

type OrderUC interface {
	Checkout(ctx context.Context, sessionID string) (*CheckoutRes, error)
	ListOrders(ctx context.Context, sessionID string) (*ListOrdersRes, error)
}

// ProductCatalog — порт каталога для корзины и заказов: соединение строк
// корзины с товарами выполняется только по идентичности (ID).
type ProductCatalog interface {
	ProductByID(productID int64) (domain.Product, bool)
}
