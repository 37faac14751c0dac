package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"uniforms-pos/internal/catalog"
	"uniforms-pos/internal/models"
)

// GetCatalog
// @Summary GetCatalog
// @Description Current price list
// @ID get-catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.Catalog
// @Router /api/catalog [get]
func (h *POSHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Catalog())
}

// UpdateCatalog
// @Summary UpdateCatalog
// @Description Replaces the price list. Stored orders keep the prices they were sold at.
// @ID update-catalog
// @Tags catalog
// @Accept json
// @Produce json
// @Param input body catalog.Catalog true "price list"
// @Success 200 {object} catalog.Catalog
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/catalog [put]
func (h *POSHandler) UpdateCatalog(c *gin.Context) {
	var in catalog.Catalog
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := h.svc.UpdateCatalog(in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// Quote
// @Summary Quote
// @Description Prices a line item without storing anything
// @ID quote
// @Tags catalog
// @Accept json
// @Produce json
// @Param input body models.LineItem true "line item"
// @Success 200 {object} models.LineItem
// @Failure 400 {object} errorResponse
// @Router /api/quote [post]
func (h *POSHandler) Quote(c *gin.Context) {
	var in models.LineItem
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	priced, err := h.svc.Quote(in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, priced)
}
