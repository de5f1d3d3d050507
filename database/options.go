package database

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListOptions narrows, orders and pages a listing. Each call builds a fresh
// query, so the same options can be reapplied to restart a listing.
type ListOptions struct {
	// Filters maps column names to exact values; slice values expand to an
	// IN clause.
	Filters map[string]any
	// Contains maps column names to case-insensitive substring matches.
	Contains map[string]string
	OrderBy  string
	Desc     bool
	Limit    int
	Offset   int
}

func (o ListOptions) apply(tx *gorm.DB) *gorm.DB {
	if len(o.Filters) > 0 {
		tx = tx.Where(o.Filters)
	}
	for column, substr := range o.Contains {
		tx = tx.Where(clause.Like{
			Column: clause.Expr{SQL: "LOWER(?)", Vars: []any{clause.Column{Name: column}}},
			Value:  "%" + strings.ToLower(substr) + "%",
		})
	}
	if o.OrderBy != "" {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Name: o.OrderBy},
			Desc:   o.Desc,
		})
	}
	if o.Limit > 0 {
		tx = tx.Limit(o.Limit)
	}
	if o.Offset > 0 {
		tx = tx.Offset(o.Offset)
	}
	return tx
}

