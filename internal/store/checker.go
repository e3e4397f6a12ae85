// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"smartslug/internal/slugfield"
)

// Table names of the slugged models.
const (
	PostsTable      = "posts"
	PagesTable      = "pages"
	CategoriesTable = "categories"
)

// identifier guards the table and column names interpolated into SQL.
var identifier = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLChecker answers slug existence queries against one table column.
// Day scopes compare the date column's UTC calendar date.
type SQLChecker struct {
	db     queryer
	table  string
	column string
}

// NewSQLChecker returns a checker for table.column. It panics on names that
// are not plain lowercase SQL identifiers.
func NewSQLChecker(db queryer, table, column string) *SQLChecker {
	if !identifier.MatchString(table) || !identifier.MatchString(column) {
		panic(fmt.Sprintf("store: invalid identifier %q.%q", table, column))
	}
	return &SQLChecker{db: db, table: table, column: column}
}

// Exists implements slugfield.Checker.
func (c *SQLChecker) Exists(ctx context.Context, q slugfield.Query) (bool, error) {
	query, args, err := c.build(q)
	if err != nil {
		return false, err
	}

	var exists bool
	if err := c.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("slug exists %s.%s: %w", c.table, c.column, err)
	}
	return exists, nil
}

func (c *SQLChecker) build(q slugfield.Query) (string, []any, error) {
	var b strings.Builder
	args := []any{q.Slug}

	fmt.Fprintf(&b, "SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1", c.table, c.column)

	if !q.Scope.IsZero() {
		col := q.Scope.DateField
		if !identifier.MatchString(col) {
			return "", nil, fmt.Errorf("store: invalid date column %q", col)
		}
		fmt.Fprintf(&b,
			" AND EXTRACT(YEAR FROM %[1]s AT TIME ZONE 'UTC') = $2"+
				" AND EXTRACT(MONTH FROM %[1]s AT TIME ZONE 'UTC') = $3"+
				" AND EXTRACT(DAY FROM %[1]s AT TIME ZONE 'UTC') = $4", col)
		args = append(args, q.Scope.Year, int(q.Scope.Month), q.Scope.Day)
	}

	if q.ExcludePK != nil {
		args = append(args, q.ExcludePK)
		fmt.Fprintf(&b, " AND id <> $%d", len(args))
	}

	b.WriteString(")")
	return b.String(), args, nil
}
