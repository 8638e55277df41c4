package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/costbook/backend/internal/service"
)

type ReportHandler struct {
	reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/dashboard", h.Dashboard)
		reports.GET("/highest-cost-recipes", h.HighestCostRecipes)
		reports.GET("/most-profitable-recipes", h.MostProfitableRecipes)
		reports.GET("/weekly-analysis", h.WeeklyAnalysis)
		reports.GET("/recipe-metrics", h.RecipeMetrics)
	}
}

// queryInt reads an integer query parameter, falling back on absence or
// garbage.
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func queryFloat(c *gin.Context, name string, fallback float64) float64 {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.reports.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *ReportHandler) HighestCostRecipes(c *gin.Context) {
	rows, err := h.reports.HighestCostRecipes(c.Request.Context(), queryInt(c, "limit", 10))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": rows})
}

func (h *ReportHandler) MostProfitableRecipes(c *gin.Context) {
	limit := queryInt(c, "limit", 10)
	markup := queryFloat(c, "profit_multiplier", 0)
	rows, err := h.reports.MostProfitableRecipes(c.Request.Context(), limit, markup)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": rows})
}

func (h *ReportHandler) WeeklyAnalysis(c *gin.Context) {
	weeks := queryInt(c, "weeks", 0)
	markup := queryFloat(c, "profit_multiplier", 0)
	rows, err := h.reports.WeeklyAnalysis(c.Request.Context(), weeks, markup)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"weekly_analysis": rows})
}

func (h *ReportHandler) RecipeMetrics(c *gin.Context) {
	metrics, err := h.reports.RecipeMetrics(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}
