package models

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"smartslug/internal/slugfield"
)

// taken returns a checker reporting the given slugs as already in use.
func taken(slugs ...string) slugfield.Checker {
	set := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		set[s] = true
	}
	return slugfield.CheckerFunc(func(_ context.Context, q slugfield.Query) (bool, error) {
		return set[q.Slug], nil
	})
}

func TestPostIsPublished(t *testing.T) {
	tests := []struct {
		name   string
		status PostStatus
		want   bool
	}{
		{name: "published", status: PostStatusPublished, want: true},
		{name: "draft", status: PostStatusDraft, want: false},
		{name: "empty status", status: PostStatus(""), want: false},
		{name: "uppercase PUBLISHED", status: PostStatus("PUBLISHED"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Post{Status: tt.status}
			if got := p.IsPublished(); got != tt.want {
				t.Errorf("Post{Status: %q}.IsPublished() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestPostPermalink(t *testing.T) {
	p := &Post{Slug: "hello-world", PublishedAt: time.Date(2026, 3, 2, 23, 30, 0, 0, time.UTC)}
	if got, want := p.Permalink(), "/posts/2026/03/02/hello-world"; got != want {
		t.Errorf("Permalink() = %q, want %q", got, want)
	}
}

func TestPostSlugField(t *testing.T) {
	f := PostSlugField()
	if f.Unique() {
		t.Error("day-scoped post slug must not be globally unique")
	}
	if f.Editable() {
		t.Error("post slug is derived from the title")
	}

	p := &Post{Title: "Hello World", PublishedAt: time.Now()}
	got, err := f.PreSave(context.Background(), taken("hello-world"), p)
	if err != nil {
		t.Fatalf("PreSave: %v", err)
	}
	if got != "hello-world_" || p.Slug != got {
		t.Errorf("slug: got %q (field %q), want %q", got, p.Slug, "hello-world_")
	}
}

func TestPageSlugField(t *testing.T) {
	f := PageSlugField(slugfield.Reserved("login"))
	if !f.Unique() || !f.Editable() {
		t.Errorf("page slug: unique=%v editable=%v, want both true", f.Unique(), f.Editable())
	}

	tests := []struct {
		slug string
		want string
	}{
		{slug: "about", want: "about"},
		{slug: "api", want: "api_"},
		{slug: "login", want: "login_"},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			p := &Page{Title: "Ignored", Slug: tt.slug}
			got, err := f.PreSave(context.Background(), taken(), p)
			if err != nil {
				t.Fatalf("PreSave: %v", err)
			}
			if got != tt.want {
				t.Errorf("slug: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategorySlugField(t *testing.T) {
	c := &Category{Name: "Posts"}
	got, err := CategorySlugField().PreSave(context.Background(), taken("posts-1"), c)
	if err != nil {
		t.Fatalf("PreSave: %v", err)
	}
	if got != "posts-2" {
		t.Errorf("slug: got %q, want %q", got, "posts-2")
	}
}

func TestSetAttr(t *testing.T) {
	c := &Category{}
	if err := c.SetAttr(AttrSlug, "news"); err != nil || c.Slug != "news" {
		t.Errorf("SetAttr(slug): err=%v slug=%q", err, c.Slug)
	}
	if err := c.SetAttr(AttrName, "News"); !errors.Is(err, slugfield.ErrAttrType) {
		t.Errorf("SetAttr(name): got %v, want ErrAttrType", err)
	}
	if err := c.SetAttr(AttrSlug, 7); !errors.Is(err, slugfield.ErrAttrType) {
		t.Errorf("SetAttr(slug, int): got %v, want ErrAttrType", err)
	}
}

func TestPrimaryKey(t *testing.T) {
	p := &Page{}
	if _, ok := p.PrimaryKey(); ok {
		t.Error("new page should have no primary key")
	}

	p.ID = uuid.New()
	pk, ok := p.PrimaryKey()
	if !ok || pk != p.ID {
		t.Errorf("PrimaryKey() = %v, %v; want %v, true", pk, ok, p.ID)
	}
}

func TestNewFieldSet(t *testing.T) {
	fs := NewFieldSet([]string{"feed"}, 3)

	ds := fs.Describe()
	if len(ds) != 3 {
		t.Fatalf("Describe() returned %d descriptors, want 3", len(ds))
	}
	for i, want := range []string{ModelPost, ModelPage, ModelCategory} {
		if ds[i].Model != want {
			t.Errorf("descriptor %d: model %q, want %q", i, ds[i].Model, want)
		}
	}

	if fs.Post.IsReserved("feed") {
		t.Error("post field should not take the configured reserved words")
	}
	if !fs.Page.IsReserved("feed") || !fs.Category.IsReserved("feed") {
		t.Error("page and category fields should reserve configured words")
	}
	if !fs.Page.IsReserved("admin") {
		t.Error("configured words must not replace the route slugs")
	}

	// Every candidate is taken, so the attempt limit trips.
	all := slugfield.CheckerFunc(func(context.Context, slugfield.Query) (bool, error) { return true, nil })
	_, err := fs.Category.PreSave(context.Background(), all, &Category{Name: "News"})
	if !errors.Is(err, slugfield.ErrTooManyAttempts) {
		t.Errorf("PreSave: got %v, want ErrTooManyAttempts", err)
	}
}
