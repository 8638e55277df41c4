package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/costbook/backend/internal/service"
)

type RecipeHandler struct {
	recipes *service.RecipeService
	reports *service.ReportService
}

func NewRecipeHandler(recipes *service.RecipeService, reports *service.ReportService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, reports: reports}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.List)
		recipes.GET("/:id", h.Get)
		recipes.POST("", h.Create)
		recipes.PUT("/:id", h.Update)
		recipes.DELETE("/:id", h.Delete)
		recipes.POST("/:id/duplicate", h.Duplicate)
	}
}

type recipeIngredientRequest struct {
	IngredientID uint    `json:"ingredient_id" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	Unit         string  `json:"unit" binding:"required"`
}

type recipePackagingRequest struct {
	PackagingID uint    `json:"packaging_id" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
}

type recipeRequest struct {
	Name                   string                    `json:"name" binding:"required"`
	Servings               int                       `json:"servings" binding:"required,gt=0"`
	Week                   *time.Time                `json:"week"`
	SellingPricePerServing float64                   `json:"selling_price_per_serving" binding:"omitempty,gte=0"`
	DesiredProfitMargin    float64                   `json:"desired_profit_margin" binding:"omitempty,gte=0"`
	Ingredients            []recipeIngredientRequest `json:"ingredients"`
	Packaging              []recipePackagingRequest  `json:"packaging"`
}

func (r recipeRequest) toInput() service.RecipeInput {
	input := service.RecipeInput{
		Name:                   r.Name,
		Servings:               r.Servings,
		Week:                   r.Week,
		SellingPricePerServing: r.SellingPricePerServing,
		DesiredProfitMargin:    r.DesiredProfitMargin,
	}
	for _, line := range r.Ingredients {
		input.Ingredients = append(input.Ingredients, service.RecipeIngredientInput{
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			Unit:         line.Unit,
		})
	}
	for _, line := range r.Packaging {
		input.Packaging = append(input.Packaging, service.RecipePackagingInput{
			PackagingID: line.PackagingID,
			Quantity:    line.Quantity,
		})
	}
	return input
}

type duplicateRequest struct {
	Name string     `json:"name"`
	Week *time.Time `json:"week"`
}

func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) Create(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recipe, err := h.recipes.Create(c.Request.Context(), req.toInput())
	if err != nil {
		writeError(c, err)
		return
	}
	h.reports.InvalidateDashboard(c.Request.Context())
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recipe, err := h.recipes.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		writeError(c, err)
		return
	}
	h.reports.InvalidateDashboard(c.Request.Context())
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.recipes.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	h.reports.InvalidateDashboard(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}

// Duplicate clones a recipe. The body is optional; an empty body keeps
// the original week and appends " (Copy)" to the name.
func (h *RecipeHandler) Duplicate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req duplicateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	clone, err := h.recipes.Duplicate(c.Request.Context(), id, req.Name, req.Week)
	if err != nil {
		writeError(c, err)
		return
	}
	h.reports.InvalidateDashboard(c.Request.Context())
	c.JSON(http.StatusCreated, clone)
}
