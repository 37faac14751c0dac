package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "uniforms-pos/docs"
	"uniforms-pos/internal/models"
	"uniforms-pos/internal/service"
)

// Handler serves the read-only reporting API of the subscriber.
type Handler struct {
	svc service.Mirror
}

func NewHandler(s service.Mirror) *Handler {
	return &Handler{svc: s}
}

// POSHandler serves the point-of-sale API.
type POSHandler struct {
	svc service.Sales
}

func NewPOSHandler(s service.Sales) *POSHandler {
	return &POSHandler{svc: s}
}

type getAllOrdersResponse struct {
	Data []models.Order `json:"data"`
}

// Swagger instances registered by the docs package.
const (
	mirrorDocs = "mirror"
	posDocs    = "pos"
)

func newRouter(docs string) *gin.Engine {
	router := gin.Default()

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, errorResponse{Message: "not found"})
			return
		}
		c.Redirect(http.StatusFound, "/swagger/index.html")
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(docs)))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, statusResponse{Status: "ok"})
	})

	return router
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := newRouter(mirrorDocs)

	api := router.Group("/api")
	{
		api.GET("/order/:id", h.GetOrderById)
		api.GET("/order/db/:id", h.GetDbOrderById)
		api.GET("/orders", h.GetAllOrders)
		api.GET("/report", h.GetReport)
	}

	return router
}

func (h *POSHandler) InitRoutes() *gin.Engine {
	router := newRouter(posDocs)

	api := router.Group("/api")
	{
		drafts := api.Group("/drafts")
		{
			drafts.POST("", h.CreateDraft)
			drafts.GET("/:id", h.GetDraft)
			drafts.PUT("/:id/items/:index", h.PutLineItem)
			drafts.DELETE("/:id", h.DeleteDraft)
			drafts.POST("/:id/finalize", h.FinalizeDraft)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", h.CreateOrder)
			orders.GET("", h.SearchOrders)
			orders.GET("/:id", h.GetOrder)
			orders.POST("/:id/payments", h.TopUpPayment)
			orders.PUT("/:id/payments", h.SetTotalPaid)
			orders.POST("/:id/fabric", h.DeliverFabric)
		}

		api.GET("/catalog", h.GetCatalog)
		api.PUT("/catalog", h.UpdateCatalog)
		api.POST("/quote", h.Quote)

		api.GET("/report", h.GetReport)
		api.GET("/backup", h.ExportBackup)
		api.POST("/backup", h.RestoreBackup)
		api.POST("/store/reset", h.ResetStore)
	}

	return router
}
