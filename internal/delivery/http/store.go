package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"uniforms-pos/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type restoreResponse struct {
	Orders int `json:"orders"`
}

type resetResponse struct {
	MovedTo string `json:"moved_to"`
}

// GetReport
// @Summary GetReport
// @Description Totals, collected and outstanding amounts, orders per status and pending fabric
// @ID get-report
// @Tags store
// @Produce json
// @Success 200 {object} sales.Summary
// @Failure 409 {object} errorResponse
// @Router /api/report [get]
func (h *POSHandler) GetReport(c *gin.Context) {
	rep, err := h.svc.Report()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// ExportBackup
// @Summary ExportBackup
// @Description Downloads the sales workbook
// @ID export-backup
// @Tags store
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 409,500 {object} errorResponse
// @Router /api/backup [get]
func (h *POSHandler) ExportBackup(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.svc.ExportStore(&buf); err != nil {
		writeError(c, err)
		return
	}
	name := service.BackupFilename(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// RestoreBackup
// @Summary RestoreBackup
// @Description Replaces the whole sales store with an exported workbook. The upload is parsed before anything is overwritten.
// @ID restore-backup
// @Tags store
// @Accept multipart/form-data
// @Produce json
// @Param confirm query bool true "must be true"
// @Param file formData file true "workbook"
// @Success 200 {object} restoreResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/backup [post]
func (h *POSHandler) RestoreBackup(c *gin.Context) {
	var body io.Reader = c.Request.Body
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			newErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		defer f.Close()
		body = f
	}

	n, err := h.svc.ImportStore(c.Request.Context(), body, c.Query("confirm") == "true")
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, restoreResponse{Orders: n})
}

// ResetStore
// @Summary ResetStore
// @Description Moves an unreadable sales workbook aside and starts an empty one
// @ID reset-store
// @Tags store
// @Produce json
// @Param confirm query bool true "must be true"
// @Success 200 {object} resetResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/store/reset [post]
func (h *POSHandler) ResetStore(c *gin.Context) {
	aside, err := h.svc.ResetStore(c.Query("confirm") == "true")
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resetResponse{MovedTo: aside})
}
