package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/costbook/backend/internal/models"
	"github.com/costbook/backend/internal/reports"
)

const (
	dashboardCacheKey = "reports:dashboard"
	dashboardCacheTTL = 5 * time.Minute
)

// ReportService serves the aggregate business reports. The dashboard is
// cached in Redis because it touches every table; the cache is
// best-effort and a Redis outage only costs the caching.
type ReportService struct {
	db     *gorm.DB
	cache  *redis.Client
	markup float64
}

// NewReportService creates a new ReportService instance. cache may be
// nil, in which case every dashboard request recomputes. markup is the
// revenue multiplier assumed for recipes without a recorded selling
// price.
func NewReportService(db *gorm.DB, cache *redis.Client, markup float64) *ReportService {
	return &ReportService{db: db, cache: cache, markup: markup}
}

// VendorAnalysisRow summarizes one vendor's ingredient spend.
type VendorAnalysisRow struct {
	VendorName        string  `json:"vendor_name"`
	IngredientCount   int64   `json:"ingredient_count"`
	TotalVendorCost   float64 `json:"total_vendor_cost"`
	AvgIngredientCost float64 `json:"avg_ingredient_cost"`
}

// Dashboard bundles every key report into one payload.
type Dashboard struct {
	HighestCostRecipes    []reports.RecipeRow      `json:"highest_cost_recipes"`
	MostProfitableRecipes []reports.ProfitEstimate `json:"most_profitable_recipes"`
	RecipeStatistics      reports.RecipeMetrics    `json:"recipe_statistics"`
	WeeklyAnalysis        []reports.WeekEstimate   `json:"weekly_analysis"`
	VendorAnalysis        []VendorAnalysisRow      `json:"vendor_analysis"`
	GeneratedAt           time.Time                `json:"generated_at"`
}

// Dashboard assembles the dashboard summary, serving a cached copy when
// one is fresh.
func (s *ReportService) Dashboard(ctx context.Context) (*Dashboard, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var dashboard Dashboard
			if err := json.Unmarshal(cached, &dashboard); err == nil {
				return &dashboard, nil
			}
		}
	}

	rows, err := s.allRecipeRows(ctx)
	if err != nil {
		return nil, err
	}
	vendorRows, err := s.VendorAnalysis(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		HighestCostRecipes:    reports.TopByCost(rows, 5),
		MostProfitableRecipes: reports.TopByProfit(rows, s.markup, 5),
		RecipeStatistics:      reports.Metrics(rows, s.markup),
		WeeklyAnalysis:        lastWeeks(reports.EstimateWeekly(rows, s.markup), 4),
		VendorAnalysis:        vendorRows,
		GeneratedAt:           time.Now().UTC(),
	}

	if s.cache != nil {
		if payload, err := json.Marshal(dashboard); err == nil {
			if err := s.cache.Set(ctx, dashboardCacheKey, payload, dashboardCacheTTL).Err(); err != nil {
				log.Printf("dashboard cache write failed: %v", err)
			}
		}
	}
	return dashboard, nil
}

// InvalidateDashboard drops the cached dashboard. Called after writes
// that change cost figures.
func (s *ReportService) InvalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, dashboardCacheKey).Err(); err != nil && err != redis.Nil {
		log.Printf("dashboard cache invalidation failed: %v", err)
	}
}

// HighestCostRecipes returns up to limit recipes by total cost,
// highest first.
func (s *ReportService) HighestCostRecipes(ctx context.Context, limit int) ([]reports.RecipeRow, error) {
	rows, err := s.allRecipeRows(ctx)
	if err != nil {
		return nil, err
	}
	return reports.TopByCost(rows, limit), nil
}

// MostProfitableRecipes returns up to limit recipes by estimated
// profit. A zero markup falls back to the configured default.
func (s *ReportService) MostProfitableRecipes(ctx context.Context, limit int, markup float64) ([]reports.ProfitEstimate, error) {
	if markup <= 0 {
		markup = s.markup
	}
	rows, err := s.allRecipeRows(ctx)
	if err != nil {
		return nil, err
	}
	return reports.TopByProfit(rows, markup, limit), nil
}

// WeeklyAnalysis returns markup-estimated weekly figures for the most
// recent weeks.
func (s *ReportService) WeeklyAnalysis(ctx context.Context, weeks int, markup float64) ([]reports.WeekEstimate, error) {
	if markup <= 0 {
		markup = s.markup
	}
	if weeks <= 0 {
		weeks = 8
	}
	rows, err := s.allRecipeRows(ctx)
	if err != nil {
		return nil, err
	}
	return lastWeeks(reports.EstimateWeekly(rows, markup), weeks), nil
}

// RecipeMetrics summarizes cost figures across all costed recipes.
func (s *ReportService) RecipeMetrics(ctx context.Context) (*reports.RecipeMetrics, error) {
	rows, err := s.allRecipeRows(ctx)
	if err != nil {
		return nil, err
	}
	metrics := reports.Metrics(rows, s.markup)
	return &metrics, nil
}

// VendorAnalysis totals each vendor's ingredient costs, biggest spend
// first.
func (s *ReportService) VendorAnalysis(ctx context.Context) ([]VendorAnalysisRow, error) {
	var rows []VendorAnalysisRow
	err := s.db.WithContext(ctx).
		Table("vendors").
		Select("vendors.name AS vendor_name, COUNT(ingredients.id) AS ingredient_count, COALESCE(SUM(ingredients.cost_per_unit), 0) AS total_vendor_cost, COALESCE(AVG(ingredients.cost_per_unit), 0) AS avg_ingredient_cost").
		Joins("LEFT JOIN ingredients ON vendors.id = ingredients.vendor_id").
		Group("vendors.id, vendors.name").
		Order("total_vendor_cost DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ReportService) allRecipeRows(ctx context.Context) ([]reports.RecipeRow, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipeRows(recipes), nil
}

func lastWeeks(weeks []reports.WeekEstimate, n int) []reports.WeekEstimate {
	if n > 0 && len(weeks) > n {
		return weeks[:n]
	}
	return weeks
}
