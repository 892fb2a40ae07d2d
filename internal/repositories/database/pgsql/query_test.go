package pgsql

import (
	"testing"

	"github.com/SscSPs/product_transactions/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestLikePattern_EscapesWildcards(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"backpack", "%backpack%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`c:\dir`, `%c:\\dir%`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, likePattern(tt.in), tt.in)
	}
}

func TestWhereClause(t *testing.T) {
	tests := []struct {
		name     string
		filter   domain.TransactionFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:   "all months no search",
			filter: domain.TransactionFilter{},
		},
		{
			name:     "month only",
			filter:   domain.TransactionFilter{Month: 3},
			wantSQL:  " WHERE sale_month = $1",
			wantArgs: []any{3},
		},
		{
			name:     "search only",
			filter:   domain.TransactionFilter{Search: "shirt"},
			wantSQL:  ` WHERE (title ILIKE $1 ESCAPE '\' OR description ILIKE $1 ESCAPE '\' OR price_text LIKE $1 ESCAPE '\')`,
			wantArgs: []any{"%shirt%"},
		},
		{
			name:     "month and search",
			filter:   domain.TransactionFilter{Month: 11, Search: "44.6"},
			wantSQL:  ` WHERE sale_month = $1 AND (title ILIKE $2 ESCAPE '\' OR description ILIKE $2 ESCAPE '\' OR price_text LIKE $2 ESCAPE '\')`,
			wantArgs: []any{11, "%44.6%"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := whereClause(tt.filter)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
