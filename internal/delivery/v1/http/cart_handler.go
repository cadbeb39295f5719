package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

type addItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// getCart
//
//	@Summary	Корзина текущей сессии
//	@Tags		cart
//	@Produce	json
//	@Param		X-Session-ID	header		string	false	"Идентификатор сессии"
//	@Success	200				{object}	usecase.CartRes
//	@Router		/cart [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	res, err := c.cartUsecase.GetCart(r.Context(), sessionID(w, r))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// addItem
//
//	@Summary		Добавление товара в корзину
//	@Description	Повторное добавление того же товара суммирует количество
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string			false	"Идентификатор сессии"
//	@Param			body			body		addItemRequest	true	"Товар и количество"
//	@Success		200				{object}	usecase.CartRes
//	@Failure		400				{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404				{object}	ErrorResponse	"Товар не найден"
//	@Router			/cart/items [post]
func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if req.ProductID <= 0 {
		WriteError(w, e.ErrInvalidProductID)
		return
	}
	if req.Quantity <= 0 {
		WriteError(w, e.ErrInvalidQuantity)
		return
	}

	res, err := c.cartUsecase.AddItem(r.Context(), sessionID(w, r), req.ProductID, req.Quantity)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// setItemQuantity
//
//	@Summary		Изменение количества строки корзины
//	@Description	Количество <= 0 удаляет строку
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string				false	"Идентификатор сессии"
//	@Param			id				path		int					true	"ID товара"
//	@Param			body			body		setQuantityRequest	true	"Новое количество"
//	@Success		200				{object}	usecase.CartRes
//	@Failure		400				{object}	ErrorResponse	"Некорректный ID"
//	@Router			/cart/items/{id} [put]
func (c *CartHandler) setItemQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := c.cartUsecase.SetItemQuantity(r.Context(), sessionID(w, r), id, req.Quantity)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// removeItem
//
//	@Summary	Удаление строки корзины
//	@Tags		cart
//	@Produce	json
//	@Param		X-Session-ID	header		string	false	"Идентификатор сессии"
//	@Param		id				path		int		true	"ID товара"
//	@Success	200				{object}	usecase.CartRes
//	@Failure	400				{object}	ErrorResponse	"Некорректный ID"
//	@Router		/cart/items/{id} [delete]
func (c *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.cartUsecase.RemoveItem(r.Context(), sessionID(w, r), id)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// clearCart
//
//	@Summary	Полная очистка корзины
//	@Tags		cart
//	@Produce	json
//	@Param		X-Session-ID	header		string	false	"Идентификатор сессии"
//	@Success	200				{object}	usecase.CartRes
//	@Router		/cart [delete]
func (c *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	res, err := c.cartUsecase.ClearCart(r.Context(), sessionID(w, r))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}
