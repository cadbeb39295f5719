package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

type checkoutResponse struct {
	Order   *domain.Order `json:"order"`
	EventID string        `json:"event_id"`
}

type ordersResponse struct {
	Orders []domain.Order `json:"orders"`
}

// checkout
//
//	@Summary		Оформление заказа
//	@Description	Превращает непустую корзину сессии в заказ и очищает корзину
//	@Tags			orders
//	@Produce		json
//	@Param			X-Session-ID	header		string	false	"Идентификатор сессии"
//	@Success		201				{object}	checkoutResponse
//	@Failure		400				{object}	ErrorResponse	"Корзина пуста"
//	@Router			/orders [post]
func (o *OrderHandler) checkout(w http.ResponseWriter, r *http.Request) {
	res, err := o.orderUsecase.Checkout(r.Context(), sessionID(w, r))
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, checkoutResponse{
		Order:   res.Order,
		EventID: res.EventID,
	})
}

// listOrders
//
//	@Summary	История заказов сессии
//	@Tags		orders
//	@Produce	json
//	@Param		X-Session-ID	header		string	false	"Идентификатор сессии"
//	@Success	200				{object}	ordersResponse
//	@Router		/orders [get]
func (o *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	res, err := o.orderUsecase.ListOrders(r.Context(), sessionID(w, r))
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, ordersResponse{Orders: res.Orders})
}
