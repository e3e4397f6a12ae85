// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"smartslug/internal/models"
	"smartslug/internal/slugfield"
)

const pageColumns = `id, title, slug, body, created_at, updated_at`

// PageStore manages standalone pages.
type PageStore struct {
	db      *sql.DB
	field   *slugfield.Field
	checker slugfield.Checker
}

// NewPageStore returns a new PageStore.
func NewPageStore(db *sql.DB, field *slugfield.Field, checker slugfield.Checker) *PageStore {
	return &PageStore{db: db, field: field, checker: checker}
}

func scanPage(scanner interface{ Scan(...any) error }) (*models.Page, error) {
	var p models.Page
	if err := scanner.Scan(&p.ID, &p.Title, &p.Slug, &p.Body, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all pages ordered by slug.
func (s *PageStore) List(ctx context.Context) ([]models.Page, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+pageColumns+` FROM pages ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	var items []models.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// Count returns the number of pages.
func (s *PageStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count pages: %w", err)
	}
	return n, nil
}

// FindByID retrieves a page by ID. Returns nil if not found.
func (s *PageStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Page, error) {
	return s.findOne(ctx, "find page by id", `SELECT `+pageColumns+` FROM pages WHERE id = $1`, id)
}

// FindBySlug retrieves a page by slug. Returns nil if not found.
func (s *PageStore) FindBySlug(ctx context.Context, slug string) (*models.Page, error) {
	return s.findOne(ctx, "find page by slug", `SELECT `+pageColumns+` FROM pages WHERE slug = $1`, slug)
}

func (s *PageStore) findOne(ctx context.Context, op, query string, arg any) (*models.Page, error) {
	p, err := scanPage(s.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// Create settles the requested slug and inserts the page.
func (s *PageStore) Create(ctx context.Context, p *models.Page) (*models.Page, error) {
	if _, err := s.field.PreSave(ctx, s.checker, p); err != nil {
		return nil, fmt.Errorf("page slug: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO pages (title, slug, body) VALUES ($1, $2, $3)
		RETURNING `+pageColumns,
		p.Title, p.Slug, p.Body,
	)
	result, err := scanPage(row)
	if err != nil {
		return nil, fmt.Errorf("create page: %w", translate(err))
	}
	return result, nil
}

// Update settles the slug and writes the page.
func (s *PageStore) Update(ctx context.Context, p *models.Page) error {
	if _, err := s.field.PreSave(ctx, s.checker, p); err != nil {
		return fmt.Errorf("page slug: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE pages SET title = $1, slug = $2, body = $3, updated_at = NOW()
		WHERE id = $4
	`, p.Title, p.Slug, p.Body, p.ID)
	if err != nil {
		return fmt.Errorf("update page: %w", translate(err))
	}
	return requireRow(res, "update page")
}

// Delete removes a page by ID.
func (s *PageStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM pages WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}

// Preview returns the slug p would receive if saved now.
func (s *PageStore) Preview(ctx context.Context, p models.Page) (string, error) {
	return s.field.PreSave(ctx, s.checker, &p)
}
