package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/costbook/backend/internal/service"
)

// defaultScenarioMargins are priced when a scenario request names none.
var defaultScenarioMargins = []float64{20, 30, 40, 50}

type CalculationHandler struct {
	calculations *service.CalculationService
}

func NewCalculationHandler(calculations *service.CalculationService) *CalculationHandler {
	return &CalculationHandler{calculations: calculations}
}

func (h *CalculationHandler) RegisterRoutes(router *gin.RouterGroup) {
	calculations := router.Group("/calculations")
	{
		calculations.GET("/recipe/:id", h.Breakdown)
		calculations.POST("/pricing-scenarios", h.PricingScenarios)
		calculations.GET("/ingredient-usage", h.IngredientUsage)
		calculations.GET("/profitability-analysis", h.ProfitabilityAnalysis)
	}
}

type pricingScenariosRequest struct {
	RecipeID      uint      `json:"recipe_id" binding:"required"`
	ProfitMargins []float64 `json:"profit_margins"`
}

func (h *CalculationHandler) Breakdown(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	breakdown, err := h.calculations.Breakdown(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

func (h *CalculationHandler) PricingScenarios(c *gin.Context) {
	var req pricingScenariosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	margins := req.ProfitMargins
	if len(margins) == 0 {
		margins = defaultScenarioMargins
	}
	result, err := h.calculations.PricingScenarios(c.Request.Context(), req.RecipeID, margins)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CalculationHandler) IngredientUsage(c *gin.Context) {
	rows, err := h.calculations.IngredientUsage(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredient_usage": rows})
}

func (h *CalculationHandler) ProfitabilityAnalysis(c *gin.Context) {
	weeks, err := h.calculations.ProfitabilityAnalysis(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"weekly_analysis": weeks})
}
