package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"uniforms-pos/internal/models"
)

type createOrderRequest struct {
	Customer models.Customer   `json:"customer"`
	Items    []models.LineItem `json:"items"`
	Payment  models.Payment    `json:"payment"`
}

// PaymentMethod is required only when the order has none yet.
type topUpRequest struct {
	Amount        int64                `json:"amount"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
}

type totalPaidRequest struct {
	AmountPaid    int64                `json:"amount_paid"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
}

type fabricRequest struct {
	Meters float64 `json:"meters"`
}

// CreateOrder
// @Summary CreateOrder
// @Description Prices and finalizes an order in one request
// @ID create-order
// @Tags orders
// @Accept json
// @Produce json
// @Param input body createOrderRequest true "order"
// @Success 201 {object} models.Order
// @Failure 400,409,422 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders [post]
func (h *POSHandler) CreateOrder(c *gin.Context) {
	var in createOrderRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	order, err := h.svc.CreateOrder(c.Request.Context(), in.Customer, in.Items, in.Payment)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// SearchOrders
// @Summary SearchOrders
// @Description Finds orders by customer name or order id. Without q every order is listed.
// @ID search-orders
// @Tags orders
// @Produce json
// @Param q query string false "customer name or order id fragment"
// @Success 200 {object} getAllOrdersResponse
// @Failure 409 {object} errorResponse
// @Router /api/orders [get]
func (h *POSHandler) SearchOrders(c *gin.Context) {
	orders, err := h.svc.SearchOrders(c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, getAllOrdersResponse{Data: orders})
}

// GetOrder
// @Summary GetOrder
// @Description Returns one stored order with its rows
// @ID get-order
// @Tags orders
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} models.Order
// @Failure 404,409 {object} errorResponse
// @Router /api/orders/{id} [get]
func (h *POSHandler) GetOrder(c *gin.Context) {
	order, err := h.svc.GetOrder(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// TopUpPayment
// @Summary TopUpPayment
// @Description Adds a payment, filling row balances in row order. payment_method is required when the order has none yet.
// @ID top-up-payment
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Param input body topUpRequest true "amount"
// @Success 200 {object} models.Order
// @Failure 400,404,409,422 {object} errorResponse
// @Router /api/orders/{id}/payments [post]
func (h *POSHandler) TopUpPayment(c *gin.Context) {
	var in topUpRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	order, err := h.svc.TopUpPayment(c.Request.Context(), c.Param("id"), in.Amount, in.PaymentMethod)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// SetTotalPaid
// @Summary SetTotalPaid
// @Description Corrects the total paid so far and reallocates it from the first row. payment_method is required when the order has none yet.
// @ID set-total-paid
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Param input body totalPaidRequest true "amount paid"
// @Success 200 {object} models.Order
// @Failure 400,404,409,422 {object} errorResponse
// @Router /api/orders/{id}/payments [put]
func (h *POSHandler) SetTotalPaid(c *gin.Context) {
	var in totalPaidRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	order, err := h.svc.SetTotalPaid(c.Request.Context(), c.Param("id"), in.AmountPaid, in.PaymentMethod)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeliverFabric
// @Summary DeliverFabric
// @Description Records fabric brought in by the customer
// @ID deliver-fabric
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Param input body fabricRequest true "meters"
// @Success 200 {object} models.Order
// @Failure 400,404,409 {object} errorResponse
// @Router /api/orders/{id}/fabric [post]
func (h *POSHandler) DeliverFabric(c *gin.Context) {
	var in fabricRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	order, err := h.svc.DeliverFabric(c.Request.Context(), c.Param("id"), in.Meters)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
