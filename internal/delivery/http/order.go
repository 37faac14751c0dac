package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"uniforms-pos/internal/repository/cache"
	"uniforms-pos/internal/service"
)

// GetOrderById
// @Summary GetOrderById
// @Description Returns one mirrored order from the subscriber's cache
// @ID get-order-by-id
// @Tags mirror
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} models.Order
// @Failure 400,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/order/{id} [get]
func (h *Handler) GetOrderById(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "invalid id")
		return
	}

	order, err := h.svc.GetCachedOrder(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "not found")
			return
		}
		var eh cache.ErrorHandler
		if errors.As(err, &eh) {
			newErrorResponse(c, eh.StatusCode, err.Error())
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetDbOrderById
// @Summary GetDbOrderById
// @Description Returns one order read straight from the PostgreSQL mirror
// @ID get-db-order-by-id
// @Tags mirror
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} models.Order
// @Failure 400,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/order/db/{id} [get]
func (h *Handler) GetDbOrderById(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing id")
		return
	}

	order, err := h.svc.GetDbOrder(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "order not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetAllOrders
// @Summary GetAllOrders
// @Description Lists every mirrored order, oldest sale first
// @ID get-all-orders
// @Tags mirror
// @Produce json
// @Success 200 {object} getAllOrdersResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders [get]
func (h *Handler) GetAllOrders(c *gin.Context) {
	orders, err := h.svc.GetAllCachedOrders()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, getAllOrdersResponse{
		Data: orders,
	})
}

// GetReport
// @Summary GetReport
// @Description Sales summary over the mirrored orders
// @ID get-mirror-report
// @Tags mirror
// @Produce json
// @Success 200 {object} sales.Summary
// @Failure 500 {object} errorResponse
// @Router /api/report [get]
func (h *Handler) GetReport(c *gin.Context) {
	rep, err := h.svc.Report()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}
