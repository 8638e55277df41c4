package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/costbook/backend/internal/service"
)

type PackingHandler struct {
	packing *service.PackingService
	reports *service.ReportService
}

func NewPackingHandler(packing *service.PackingService, reports *service.ReportService) *PackingHandler {
	return &PackingHandler{packing: packing, reports: reports}
}

func (h *PackingHandler) RegisterRoutes(router *gin.RouterGroup) {
	packing := router.Group("/packing")
	{
		packing.GET("", h.List)
		packing.GET("/:id", h.Get)
		packing.POST("", h.Create)
		packing.PUT("/:id", h.Update)
		packing.DELETE("/:id", h.Delete)
	}
}

type packingRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required,gt=0"`
}

func (h *PackingHandler) List(c *gin.Context) {
	items, err := h.packing.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"packing": items})
}

func (h *PackingHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.packing.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *PackingHandler) Create(c *gin.Context) {
	var req packingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.packing.Create(c.Request.Context(), service.PackingInput{Name: req.Name, Price: req.Price})
	if err != nil {
		writeError(c, err)
		return
	}
	h.reports.InvalidateDashboard(c.Request.Context())
	c.JSON(http.StatusCreated, item)
}

func (h *PackingHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req packingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.packing.Update(c.Request.Context(), id, service.PackingInput{Name: req.Name, Price: req.Price})
	if err != nil {
		writeError(c, err)
		return
	}
	h.reports.InvalidateDashboard(c.Request.Context())
	c.JSON(http.StatusOK, item)
}

func (h *PackingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.packing.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	h.reports.InvalidateDashboard(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "packing item deleted"})
}
