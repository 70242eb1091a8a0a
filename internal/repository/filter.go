package repository

import (
	"fmt"
	"strings"

	"github.com/deppfellow/geology-api/internal/model"
)

// whereBuilder accumulates AND-ed conditions with positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

// add appends a condition; every "?" in cond becomes the next $n placeholder.
func (w *whereBuilder) add(cond string, args ...any) {
	for _, arg := range args {
		w.args = append(w.args, arg)
		cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(w.args)), 1)
	}
	w.conds = append(w.conds, cond)
}

func (w *whereBuilder) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.conds, " AND ")
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// buildProductWhere translates a ProductFilter into a WHERE clause.
// Attribute columns come from model.ProductAttributes only, never from input.
func buildProductWhere(f model.ProductFilter) (string, []any) {
	w := &whereBuilder{}

	if f.CategoryID != nil {
		w.add("category_id = ?", *f.CategoryID)
	}
	if f.InStock != nil {
		if *f.InStock {
			w.add("quantity > 0")
		} else {
			w.add("quantity = 0")
		}
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		w.add("name ILIKE ?", "%"+escapeLike(search)+"%")
	}
	for _, attr := range model.ProductAttributes {
		values := f.Attributes[attr]
		if len(values) == 0 {
			continue
		}
		w.add(attr+" = ANY(?)", values)
	}

	return w.sql(), w.args
}
