package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/product_transactions/internal/core/domain"
	portssvc "github.com/SscSPs/product_transactions/internal/core/ports/services"
	"github.com/SscSPs/product_transactions/internal/dto"
	"github.com/SscSPs/product_transactions/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the monthly dashboard reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	defaultMonth     domain.Month
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, defaultMonth domain.Month) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		defaultMonth:     defaultMonth,
	}
}

// registerReportingRoutes registers the report routes on the transactions group
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingService, defaultMonth domain.Month) {
	h := newReportingHandler(rs, defaultMonth)

	rg.GET("/statistics", h.getStatistics)
	rg.GET("/bar-chart", h.getBarChart)
	rg.GET("/pie-chart", h.getPieChart)
	rg.GET("/combined-data", h.getCombinedData)
}

// getStatistics godoc
// @Summary Monthly sales statistics
// @Description Total sale amount of sold items plus sold and unsold counts for a month
// @Tags reports
// @Produce json
// @Param month query int false "Month 1-12, or 0 for all months"
// @Success 200 {object} dto.StatisticsResponse
// @Failure 500 {object} map[string]string "Failed to compute statistics"
// @Router /transactions/statistics [get]
func (h *reportingHandler) getStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month := parseMonth(c, h.defaultMonth)
	logger = logger.With(slog.Int("month", int(month)))

	stats, err := h.reportingService.Statistics(c.Request.Context(), month)
	if err != nil {
		respondError(c, logger, err, "Failed to compute statistics")
		return
	}

	c.JSON(http.StatusOK, dto.ToStatisticsResponse(*stats))
}

// getBarChart godoc
// @Summary Price range distribution
// @Description Number of items per price range for a month. Every range is present, in ascending order.
// @Tags reports
// @Produce json
// @Param month query int false "Month 1-12, or 0 for all months"
// @Success 200 {object} map[string]int
// @Failure 500 {object} map[string]string "Failed to compute price ranges"
// @Router /transactions/bar-chart [get]
func (h *reportingHandler) getBarChart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month := parseMonth(c, h.defaultMonth)
	logger = logger.With(slog.Int("month", int(month)))

	ranges, err := h.reportingService.PriceRanges(c.Request.Context(), month)
	if err != nil {
		respondError(c, logger, err, "Failed to compute price ranges")
		return
	}

	c.JSON(http.StatusOK, ranges)
}

// getPieChart godoc
// @Summary Category distribution
// @Description Number of items per category for a month. Only categories with items appear.
// @Tags reports
// @Produce json
// @Param month query int false "Month 1-12, or 0 for all months"
// @Success 200 {object} map[string]int
// @Failure 500 {object} map[string]string "Failed to compute categories"
// @Router /transactions/pie-chart [get]
func (h *reportingHandler) getPieChart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month := parseMonth(c, h.defaultMonth)
	logger = logger.With(slog.Int("month", int(month)))

	categories, err := h.reportingService.Categories(c.Request.Context(), month)
	if err != nil {
		respondError(c, logger, err, "Failed to compute categories")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(categories))
}

// getCombinedData godoc
// @Summary Combined dashboard data
// @Description Statistics, price ranges and categories for the same month in one response
// @Tags reports
// @Produce json
// @Param month query int false "Month 1-12, or 0 for all months"
// @Success 200 {object} dto.CombinedResponse
// @Failure 500 {object} map[string]string "Failed to build combined report"
// @Router /transactions/combined-data [get]
func (h *reportingHandler) getCombinedData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month := parseMonth(c, h.defaultMonth)
	logger = logger.With(slog.Int("month", int(month)))

	report, err := h.reportingService.Combined(c.Request.Context(), month)
	if err != nil {
		respondError(c, logger, err, "Failed to build combined report")
		return
	}

	c.JSON(http.StatusOK, dto.ToCombinedResponse(report))
}
