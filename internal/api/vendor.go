package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/costbook/backend/internal/service"
)

type VendorHandler struct {
	vendors *service.VendorService
	reports *service.ReportService
}

func NewVendorHandler(vendors *service.VendorService, reports *service.ReportService) *VendorHandler {
	return &VendorHandler{vendors: vendors, reports: reports}
}

func (h *VendorHandler) RegisterRoutes(router *gin.RouterGroup) {
	vendors := router.Group("/vendors")
	{
		vendors.GET("", h.List)
		vendors.GET("/reports/price-comparison", h.PriceComparison)
		vendors.GET("/:id", h.Get)
		vendors.POST("", h.Create)
		vendors.PUT("/:id", h.Update)
		vendors.DELETE("/:id", h.Delete)
	}
}

type vendorRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	IsActive *bool  `json:"is_active"`
}

func (r vendorRequest) toInput() service.VendorInput {
	return service.VendorInput{
		Name:     r.Name,
		Address:  r.Address,
		Phone:    r.Phone,
		IsActive: r.IsActive,
	}
}

func (h *VendorHandler) List(c *gin.Context) {
	vendors, err := h.vendors.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

func (h *VendorHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	vendor, err := h.vendors.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

func (h *VendorHandler) Create(c *gin.Context) {
	var req vendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	vendor, err := h.vendors.Create(c.Request.Context(), req.toInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vendor)
}

func (h *VendorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req vendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	vendor, err := h.vendors.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// Delete deactivates a vendor that still supplies ingredients and
// removes one that does not. The response says which happened.
func (h *VendorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	result, err := h.vendors.Delete(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	h.reports.InvalidateDashboard(c.Request.Context())
	if result.SoftDeleted {
		c.JSON(http.StatusOK, gin.H{
			"message":          "vendor deactivated; ingredients still reference it",
			"soft_deleted":     true,
			"ingredient_count": result.IngredientCount,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vendor deleted", "soft_deleted": false})
}

func (h *VendorHandler) PriceComparison(c *gin.Context) {
	comparison, err := h.vendors.PriceComparison(c.Request.Context(), time.Now())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"price_comparison": comparison})
}
