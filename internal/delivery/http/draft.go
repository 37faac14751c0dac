package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"uniforms-pos/internal/models"
)

// CreateDraft
// @Summary CreateDraft
// @Description Opens a draft order for a customer. The school defaults to NCP.
// @ID create-draft
// @Tags drafts
// @Accept json
// @Produce json
// @Param input body models.Customer true "customer"
// @Success 201 {object} service.DraftView
// @Failure 400 {object} errorResponse
// @Router /api/drafts [post]
func (h *POSHandler) CreateDraft(c *gin.Context) {
	var in models.Customer
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	d, err := h.svc.CreateDraft(in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// GetDraft
// @Summary GetDraft
// @Description Returns a draft with its running totals
// @ID get-draft
// @Tags drafts
// @Produce json
// @Param id path string true "draft id"
// @Success 200 {object} service.DraftView
// @Failure 404 {object} errorResponse
// @Router /api/drafts/{id} [get]
func (h *POSHandler) GetDraft(c *gin.Context) {
	d, err := h.svc.GetDraft(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// PutLineItem
// @Summary PutLineItem
// @Description Prices a line item and stores it at index. An index past the end appends.
// @ID put-line-item
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "draft id"
// @Param index path int true "item index, 0-based"
// @Param input body models.LineItem true "line item"
// @Success 200 {object} service.DraftView
// @Failure 400,404 {object} errorResponse
// @Router /api/drafts/{id}/items/{index} [put]
func (h *POSHandler) PutLineItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid index")
		return
	}
	var in models.LineItem
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	d, err := h.svc.PutLineItem(c.Param("id"), index, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// DeleteDraft
// @Summary DeleteDraft
// @Description Discards a draft
// @ID delete-draft
// @Tags drafts
// @Param id path string true "draft id"
// @Success 204
// @Router /api/drafts/{id} [delete]
func (h *POSHandler) DeleteDraft(c *gin.Context) {
	h.svc.DeleteDraft(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// FinalizeDraft
// @Summary FinalizeDraft
// @Description Writes the draft to the sales store, allocating payment and fabric over its items
// @ID finalize-draft
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "draft id"
// @Param input body models.Payment true "payment at closing"
// @Success 201 {object} models.Order
// @Failure 400,404,409,422 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/drafts/{id}/finalize [post]
func (h *POSHandler) FinalizeDraft(c *gin.Context) {
	var in models.Payment
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	order, err := h.svc.FinalizeDraft(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}
