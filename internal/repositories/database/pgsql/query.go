package pgsql

import (
	"fmt"
	"strings"

	"github.com/SscSPs/product_transactions/internal/core/domain"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns free text into a substring LIKE pattern with wildcards escaped.
func likePattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

// whereClause renders the filter as a SQL WHERE clause with positional args.
// It returns an empty clause when the filter selects everything.
func whereClause(filter domain.TransactionFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if !filter.Month.IsAll() {
		args = append(args, int(filter.Month))
		conds = append(conds, fmt.Sprintf("sale_month = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			`(title ILIKE $%[1]d ESCAPE '\' OR description ILIKE $%[1]d ESCAPE '\' OR price_text LIKE $%[1]d ESCAPE '\')`, n))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
