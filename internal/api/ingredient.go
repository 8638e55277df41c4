package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/costbook/backend/internal/service"
)

type IngredientHandler struct {
	ingredients *service.IngredientService
	reports     *service.ReportService
}

func NewIngredientHandler(ingredients *service.IngredientService, reports *service.ReportService) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients, reports: reports}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	ingredients := router.Group("/ingredients")
	{
		ingredients.GET("", h.List)
		ingredients.GET("/:id", h.Get)
		ingredients.POST("", h.Create)
		ingredients.PUT("/:id", h.Update)
		ingredients.DELETE("/:id", h.Delete)
	}
}

type ingredientRequest struct {
	Name        string  `json:"name" binding:"required"`
	CostPerUnit float64 `json:"cost_per_unit" binding:"required,gt=0"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitType    string  `json:"unit_type" binding:"required"`
	BoxCount    int     `json:"box_count" binding:"omitempty,gt=0"`
	VendorID    *uint   `json:"vendor_id"`
}

func (r ingredientRequest) toInput() service.IngredientInput {
	return service.IngredientInput{
		Name:        r.Name,
		CostPerUnit: r.CostPerUnit,
		Quantity:    r.Quantity,
		UnitType:    r.UnitType,
		BoxCount:    r.BoxCount,
		VendorID:    r.VendorID,
	}
}

func (h *IngredientHandler) List(c *gin.Context) {
	ingredients, err := h.ingredients.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}

func (h *IngredientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ingredient, err := h.ingredients.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

func (h *IngredientHandler) Create(c *gin.Context) {
	var req ingredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ingredient, err := h.ingredients.Create(c.Request.Context(), req.toInput())
	if err != nil {
		writeError(c, err)
		return
	}
	h.reports.InvalidateDashboard(c.Request.Context())
	c.JSON(http.StatusCreated, ingredient)
}

func (h *IngredientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ingredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ingredient, err := h.ingredients.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		writeError(c, err)
		return
	}
	h.reports.InvalidateDashboard(c.Request.Context())
	c.JSON(http.StatusOK, ingredient)
}

func (h *IngredientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.ingredients.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	h.reports.InvalidateDashboard(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "ingredient deleted"})
}
