package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeExclusionViolation  = "23P01"
	codeNumericOutOfRange   = "22003"
)

func pgCode(err error) string {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}

// conditions collects WHERE clauses. Each clause is a format string whose
// verbs refer to the placeholder number of its argument.
type conditions struct {
	clauses []string
	args    []any
}

func (c *conditions) add(clause string, arg any) {
	c.args = append(c.args, arg)
	c.clauses = append(c.clauses, fmt.Sprintf(clause, len(c.args)))
}

func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// page appends LIMIT and OFFSET placeholders for p.
func (c *conditions) page(p domain.PageRequest) string {
	c.args = append(c.args, p.Limit(), p.Offset())
	n := len(c.args)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", n-1, n)
}

// orderBy resolves a client ordering key such as "-price_per_night" against
// columns. Unknown keys fall back to def. The id column breaks ties so pages
// stay stable.
func orderBy(ordering string, columns map[string]string, def, id string) string {
	desc := strings.HasPrefix(ordering, "-")
	col, ok := columns[strings.TrimPrefix(ordering, "-")]
	if !ok {
		desc = strings.HasPrefix(def, "-")
		col = columns[strings.TrimPrefix(def, "-")]
	}

	dir := " ASC"
	if desc {
		dir = " DESC"
	}
	return " ORDER BY " + col + dir + " NULLS LAST, " + id
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// contains builds an ILIKE pattern matching s anywhere in the column.
func contains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
