package handlers

import (
	"strconv"

	"github.com/SscSPs/product_transactions/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// queryInt parses key as an int. ok is false when the value is missing or not numeric.
func queryInt(c *gin.Context, key string) (int, bool) {
	raw, present := c.GetQuery(key)
	if !present || raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseMonth reads ?month. Missing, malformed or out-of-range values use fallback.
func parseMonth(c *gin.Context, fallback domain.Month) domain.Month {
	n, ok := queryInt(c, "month")
	if !ok {
		return fallback
	}
	if m := domain.Month(n); m.Valid() {
		return m
	}
	return fallback
}

// parsePage reads ?page and ?limit, clamping them into a usable page.
func parsePage(c *gin.Context) domain.PageRequest {
	page, ok := queryInt(c, "page")
	if !ok || page < 1 {
		page = defaultPage
	}
	limit, ok := queryInt(c, "limit")
	if !ok || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return domain.PageRequest{Page: page, Limit: limit}
}
