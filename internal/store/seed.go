// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"
	"log/slog"

	"smartslug/internal/models"
)

// pageSeeder and categorySeeder are the parts of PageStore and
// CategoryStore that Seed needs.
type pageSeeder interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, p *models.Page) (*models.Page, error)
}

type categorySeeder interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, c *models.Category) (*models.Category, error)
}

// Seed gives an empty database a starter page and category. Each table is
// only seeded while empty. The rows go through the regular Create path, so
// the slug fields apply their reserved words and suffixes.
func Seed(ctx context.Context, pages pageSeeder, categories categorySeeder) error {
	n, err := pages.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed check pages: %w", err)
	}
	if n == 0 {
		p, err := pages.Create(ctx, &models.Page{Title: "About", Slug: "about", Body: "<p>About this site.</p>"})
		if err != nil {
			return fmt.Errorf("seed page: %w", err)
		}
		slog.Info("seeded page", "slug", p.Slug)
	}

	n, err = categories.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}
	if n == 0 {
		c, err := categories.Create(ctx, &models.Category{Name: "General", Description: "Uncategorized posts"})
		if err != nil {
			return fmt.Errorf("seed category: %w", err)
		}
		slog.Info("seeded category", "slug", c.Slug)
	}
	return nil
}
