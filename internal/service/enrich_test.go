package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/inklog/internal/db"
	"github.com/inklog/internal/identity"
)

type fakeProvider struct {
	users []identity.User
	err   error
	calls int
}

func (f *fakeProvider) ListUsers(ctx context.Context) ([]identity.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

func TestEnrichPostAttachesTagsCommentsAndAuthor(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	posts := newPostService(gdb)
	created, err := posts.Create("user_1", "Hello", "# Heading\nBody", []string{"go"})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	comments := NewCommentService(gdb)
	if _, err := comments.Create(created.ID, "user_2", "first!"); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	provider := &fakeProvider{users: []identity.User{
		{ID: "user_1", FirstName: "Ada", LastName: "Lovelace"},
		{ID: "user_2", FirstName: "Alan", LastName: "Turing"},
	}}

	enricher := NewEnricher(gdb, provider)
	view, err := enricher.EnrichPost(context.Background(), created)
	if err != nil {
		t.Fatalf("enrich post: %v", err)
	}

	if view.User != "Ada Lovelace" {
		t.Fatalf("expected resolved author name, got %q", view.User)
	}
	if len(view.Tags) != 1 || view.Tags[0].Name != "go" {
		t.Fatalf("expected tag attached, got %+v", view.Tags)
	}
	if len(view.Comments) != 1 || view.Comments[0].User != "Alan Turing" {
		t.Fatalf("expected annotated comment, got %+v", view.Comments)
	}
	if !strings.Contains(view.ContentHTML, "<h1") {
		t.Fatalf("expected rendered markdown heading, got %q", view.ContentHTML)
	}
}

func TestEnrichFallsBackToRawIdentifier(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	posts := newPostService(gdb)
	created, err := posts.Create("user_unknown", "Hello", "Body", nil)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	enricher := NewEnricher(gdb, &fakeProvider{})
	view, err := enricher.EnrichPost(context.Background(), created)
	if err != nil {
		t.Fatalf("enrich post: %v", err)
	}

	if view.User != "user_unknown" {
		t.Fatalf("expected raw id fallback, got %q", view.User)
	}
}

func TestEnrichPostsFetchesDirectoryOnce(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	posts := newPostService(gdb)
	for _, title := range []string{"One", "Two", "Three"} {
		if _, err := posts.Create("user_1", title, "Body", nil); err != nil {
			t.Fatalf("create post: %v", err)
		}
	}

	provider := &fakeProvider{}
	enricher := NewEnricher(gdb, provider)

	all, err := posts.ListAll()
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if _, err := enricher.EnrichPosts(context.Background(), all); err != nil {
		t.Fatalf("enrich posts: %v", err)
	}

	if provider.calls != 1 {
		t.Fatalf("expected a single directory fetch per request, got %d", provider.calls)
	}
}

func TestEnrichPropagatesProviderFailure(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	enricher := NewEnricher(gdb, &fakeProvider{err: errors.New("provider down")})
	if _, err := enricher.EnrichPosts(context.Background(), nil); err == nil {
		t.Fatal("expected provider failure to propagate")
	}
}

func TestViewCommentUsesRawIdentifier(t *testing.T) {
	view := ViewComment(db.Comment{ID: "c1", PostID: "p1", UserID: "user_9", Content: "hi"})
	if view.User != "user_9" {
		t.Fatalf("expected raw id, got %q", view.User)
	}
}
