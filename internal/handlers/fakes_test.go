// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// fakes_test.go provides in-memory repositories that run the real slug
// fields, so handler tests exercise slug assignment without PostgreSQL.
package handlers

import (
	"context"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"smartslug/internal/models"
	"smartslug/internal/slugfield"
	"smartslug/internal/store"
)

type fakePosts struct {
	mu    sync.Mutex
	field *slugfield.Field
	rows  []models.Post
}

func (f *fakePosts) checker() slugfield.Checker {
	return slugfield.CheckerFunc(func(_ context.Context, q slugfield.Query) (bool, error) {
		for _, p := range f.rows {
			if p.Slug != q.Slug || p.ID == q.ExcludePK {
				continue
			}
			if q.Scope.IsZero() || q.Scope == slugfield.DayScope(q.Scope.DateField, p.PublishedAt.UTC()) {
				return true, nil
			}
		}
		return false, nil
	})
}

func (f *fakePosts) defaults(p *models.Post) {
	if p.PublishedAt.IsZero() {
		p.PublishedAt = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	}
	if p.Status == "" {
		p.Status = models.PostStatusDraft
	}
}

func (f *fakePosts) List(context.Context) ([]models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Post(nil), f.rows...), nil
}

func (f *fakePosts) FindByID(_ context.Context, id uuid.UUID) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.rows {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePosts) FindByPermalink(_ context.Context, day time.Time, slug string) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	want := day.UTC().Format(time.DateOnly)
	for _, p := range f.rows {
		if p.Slug == slug && p.IsPublished() && p.PublishedAt.UTC().Format(time.DateOnly) == want {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePosts) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.defaults(p)
	if _, err := f.field.PreSave(ctx, f.checker(), p); err != nil {
		return nil, err
	}
	p.ID = uuid.New()
	f.rows = append(f.rows, *p)
	return p, nil
}

func (f *fakePosts) Update(ctx context.Context, p *models.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.defaults(p)
	if _, err := f.field.PreSave(ctx, f.checker(), p); err != nil {
		return err
	}
	for i := range f.rows {
		if f.rows[i].ID == p.ID {
			f.rows[i] = *p
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakePosts) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakePosts) Preview(ctx context.Context, p models.Post) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.defaults(&p)
	return f.field.PreSave(ctx, f.checker(), &p)
}

type fakePages struct {
	mu    sync.Mutex
	field *slugfield.Field
	rows  []models.Page
}

func (f *fakePages) checker() slugfield.Checker {
	return slugfield.CheckerFunc(func(_ context.Context, q slugfield.Query) (bool, error) {
		for _, p := range f.rows {
			if p.Slug == q.Slug && p.ID != q.ExcludePK {
				return true, nil
			}
		}
		return false, nil
	})
}

func (f *fakePages) List(context.Context) ([]models.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Page(nil), f.rows...), nil
}

func (f *fakePages) FindBySlug(_ context.Context, slug string) (*models.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.rows {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePages) Create(ctx context.Context, p *models.Page) (*models.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.field.PreSave(ctx, f.checker(), p); err != nil {
		return nil, err
	}
	p.ID = uuid.New()
	f.rows = append(f.rows, *p)
	return p, nil
}

func (f *fakePages) Update(ctx context.Context, p *models.Page) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.field.PreSave(ctx, f.checker(), p); err != nil {
		return err
	}
	for i := range f.rows {
		if f.rows[i].ID == p.ID {
			f.rows[i] = *p
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakePages) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakePages) Preview(ctx context.Context, p models.Page) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.field.PreSave(ctx, f.checker(), &p)
}

type fakeCategories struct {
	mu    sync.Mutex
	field *slugfield.Field
	rows  []models.Category
	err   error
}

func (f *fakeCategories) checker() slugfield.Checker {
	return slugfield.CheckerFunc(func(_ context.Context, q slugfield.Query) (bool, error) {
		for _, c := range f.rows {
			if c.Slug == q.Slug && c.ID != q.ExcludePK {
				return true, nil
			}
		}
		return false, nil
	})
}

func (f *fakeCategories) List(context.Context) ([]models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Category(nil), f.rows...), f.err
}

func (f *fakeCategories) Tree(ctx context.Context) ([]models.Category, error) {
	flat, err := f.List(ctx)
	var roots []models.Category
	for _, c := range flat {
		if c.ParentID == nil {
			roots = append(roots, c)
		}
	}
	return roots, err
}

func (f *fakeCategories) FindBySlug(_ context.Context, slug string) (*models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.rows {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, f.err
}

func (f *fakeCategories) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if _, err := f.field.PreSave(ctx, f.checker(), c); err != nil {
		return nil, err
	}
	c.ID = uuid.New()
	f.rows = append(f.rows, *c)
	return c, nil
}

func (f *fakeCategories) Update(ctx context.Context, c *models.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.field.PreSave(ctx, f.checker(), c); err != nil {
		return err
	}
	for i := range f.rows {
		if f.rows[i].ID == c.ID {
			f.rows[i] = *c
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeCategories) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeCategories) Preview(ctx context.Context, c models.Category) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.field.PreSave(ctx, f.checker(), &c)
}

// recordingCache records invalidated slugs.
type recordingCache struct {
	mu   sync.Mutex
	keys []string
}

func (c *recordingCache) Invalidate(_ context.Context, namespace, slug string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys = append(c.keys, namespace+":"+slug)
}

type testEnv struct {
	api        *API
	router     chi.Router
	posts      *fakePosts
	pages      *fakePages
	categories *fakeCategories
	cache      *recordingCache
}

// newTestEnv wires an API over fresh fakes with the production fields.
func newTestEnv() *testEnv {
	fs := models.NewFieldSet([]string{"login"}, 0)
	env := &testEnv{
		posts:      &fakePosts{field: fs.Post},
		pages:      &fakePages{field: fs.Page},
		categories: &fakeCategories{field: fs.Category},
		cache:      &recordingCache{},
	}
	env.api = NewAPI(env.posts, env.pages, env.categories, fs.Describe(), env.cache)
	env.router = testRouter(env.api)
	return env
}

// testRouter mirrors the API routes without importing the router package,
// which depends on this one.
func testRouter(api *API) chi.Router {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/fields", api.Fields)
		r.Post("/slugs/preview", api.SlugPreview)
		r.Route("/posts", func(r chi.Router) {
			r.Get("/", api.PostsList)
			r.Post("/", api.PostCreate)
			r.Get("/{id}", api.PostGet)
			r.Put("/{id}", api.PostUpdate)
			r.Delete("/{id}", api.PostDelete)
			r.Get("/{year}/{month}/{day}/{slug}", api.PostByPermalink)
		})
		r.Route("/pages", func(r chi.Router) {
			r.Get("/", api.PagesList)
			r.Post("/", api.PageCreate)
			r.Get("/{slug}", api.PageGet)
			r.Put("/{slug}", api.PageUpdate)
			r.Delete("/{slug}", api.PageDelete)
		})
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", api.CategoriesList)
			r.Post("/", api.CategoryCreate)
			r.Get("/{slug}", api.CategoryGet)
			r.Put("/{slug}", api.CategoryUpdate)
			r.Delete("/{slug}", api.CategoryDelete)
		})
	})
	return r
}
