package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/product_transactions/internal/core/domain"
	portssvc "github.com/SscSPs/product_transactions/internal/core/ports/services"
	"github.com/SscSPs/product_transactions/internal/dto"
	"github.com/SscSPs/product_transactions/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for the transaction listing.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	defaultMonth       domain.Month
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade, defaultMonth domain.Month) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		defaultMonth:       defaultMonth,
	}
}

// registerTransactionRoutes registers the listing route on the transactions group.
func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade, defaultMonth domain.Month) {
	h := newTransactionHandler(ts, defaultMonth)
	rg.GET("/list", h.listTransactions)
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions for a month, filtered by a free-text search over title, description and price. Malformed numeric parameters fall back to defaults.
// @Tags transactions
// @Produce json
// @Param month query int false "Month 1-12, or 0 for all months"
// @Param search query string false "Case-insensitive substring of title, description or price"
// @Param page query int false "1-based page number" default(1)
// @Param limit query int false "Page size, capped at 100" default(10)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions/list [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter := domain.TransactionFilter{
		Month:  parseMonth(c, h.defaultMonth),
		Search: strings.TrimSpace(c.Query("search")),
	}
	page := parsePage(c)

	logger = logger.With(
		slog.Int("month", int(filter.Month)),
		slog.String("search", filter.Search),
		slog.Int("page", page.Page),
		slog.Int("limit", page.Limit),
	)
	logger.Debug("Received request to list transactions")

	result, err := h.transactionService.ListTransactions(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	logger.Info("Transactions listed successfully", slog.Int("total_count", result.TotalCount))
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(result))
}
