// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"smartslug/internal/models"
	"smartslug/internal/slugfield"
)

const postColumns = `id, title, slug, body, excerpt, status, published_at, created_at, updated_at`

// PostStore handles all post-related database operations.
type PostStore struct {
	db      *sql.DB
	field   *slugfield.Field
	checker slugfield.Checker
}

// NewPostStore creates a PostStore. The field's PreSave runs with checker
// before every write.
func NewPostStore(db *sql.DB, field *slugfield.Field, checker slugfield.Checker) *PostStore {
	return &PostStore{db: db, field: field, checker: checker}
}

// scanPost scans a row into a Post struct.
func scanPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Body, &p.Excerpt,
		&p.Status, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all posts, newest publication first.
func (s *PostStore) List(ctx context.Context) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+postColumns+` FROM posts ORDER BY published_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var items []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a post by its UUID. Returns nil if not found.
func (s *PostStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

// FindByPermalink retrieves a published post by its publication day and slug.
// Returns nil if not found.
func (s *PostStore) FindByPermalink(ctx context.Context, day time.Time, slug string) (*models.Post, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+postColumns+` FROM posts
		WHERE slug = $1 AND (published_at AT TIME ZONE 'UTC')::date = $2::date
		  AND status = 'published'
	`, slug, day.UTC().Format(time.DateOnly))
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by permalink: %w", err)
	}
	return p, nil
}

// Create assigns the post's slug and inserts it. A zero PublishedAt means now.
func (s *PostStore) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	s.defaults(p)
	if _, err := s.field.PreSave(ctx, s.checker, p); err != nil {
		return nil, fmt.Errorf("post slug: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO posts (title, slug, body, excerpt, status, published_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+postColumns,
		p.Title, p.Slug, p.Body, p.Excerpt, p.Status, p.PublishedAt,
	)
	result, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", translate(err))
	}
	return result, nil
}

// Update recomputes the slug and writes the post. The post's own row never
// counts as a collision, so an unchanged title keeps its slug.
func (s *PostStore) Update(ctx context.Context, p *models.Post) error {
	s.defaults(p)
	if _, err := s.field.PreSave(ctx, s.checker, p); err != nil {
		return fmt.Errorf("post slug: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE posts SET
			title = $1, slug = $2, body = $3, excerpt = $4, status = $5,
			published_at = $6, updated_at = NOW()
		WHERE id = $7
	`, p.Title, p.Slug, p.Body, p.Excerpt, p.Status, p.PublishedAt, p.ID)
	if err != nil {
		return fmt.Errorf("update post: %w", translate(err))
	}
	return requireRow(res, "update post")
}

// Delete removes a post by ID.
func (s *PostStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// Preview returns the slug p would receive if saved now, without writing.
func (s *PostStore) Preview(ctx context.Context, p models.Post) (string, error) {
	s.defaults(&p)
	return s.field.PreSave(ctx, s.checker, &p)
}

func (s *PostStore) defaults(p *models.Post) {
	if p.PublishedAt.IsZero() {
		p.PublishedAt = time.Now().UTC()
	}
	if p.Status == "" {
		p.Status = models.PostStatusDraft
	}
}

// requireRow reports ErrNotFound when an UPDATE touched nothing.
func requireRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
