package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/product_transactions/internal/core/ports/services"
	"github.com/SscSPs/product_transactions/internal/dto"
	"github.com/SscSPs/product_transactions/internal/middleware"
	"github.com/gin-gonic/gin"
)

// seedHandler handles dataset initialization requests
type seedHandler struct {
	seedService portssvc.SeedService
}

// newSeedHandler creates a new seedHandler
func newSeedHandler(ss portssvc.SeedService) *seedHandler {
	return &seedHandler{seedService: ss}
}

// registerSeedRoutes registers the seed route behind the given middleware (rate limiting).
func registerSeedRoutes(rg *gin.RouterGroup, ss portssvc.SeedService, mw ...gin.HandlerFunc) {
	h := newSeedHandler(ss)
	rg.GET("/getinitdatabase", append(mw, h.initDatabase)...)
}

// initDatabase godoc
// @Summary Initialize the dataset
// @Description Fetches the upstream product transaction dataset and replaces every stored record with it
// @Tags seed
// @Produce json
// @Success 200 {object} dto.SeedResponse
// @Failure 422 {object} map[string]string "Seed data failed validation"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Error initializing database"
// @Failure 502 {object} map[string]string "Failed to fetch seed data"
// @Router /transactions/getinitdatabase [get]
func (h *seedHandler) initDatabase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to initialize database")

	result, err := h.seedService.Seed(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Error initializing database")
		return
	}

	logger.Info("Database initialized", slog.Int("record_count", result.Count))
	c.JSON(http.StatusOK, dto.ToSeedResponse(result))
}
