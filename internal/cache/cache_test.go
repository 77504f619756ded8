package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/partyapatil/Ai-blog-frontend/internal/article"
)

func testDB(t *testing.T) (*Cache, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, path
}

func sampleArticles() []article.Article {
	created := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	return []article.Article{
		{ID: "c3", Title: "Docker for Beginners", Details: "Step-by-step tutorial", Content: "# Docker\n\nContainers.", CreatedAt: created.Add(2 * time.Hour)},
		{ID: "a1", Title: "GraphQL vs REST API", Content: "body a", CreatedAt: created},
		{ID: "b2", Title: "TypeScript Best Practices", Content: "body b", CreatedAt: created.Add(time.Hour)},
	}
}

func TestReplaceAndGet(t *testing.T) {
	db, _ := testDB(t)
	articles := sampleArticles()

	if err := db.ReplaceArticles(articles); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := db.GetArticles()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(got))
	}
	// Backend order is kept, not re-sorted
	for i, want := range []string{"c3", "a1", "b2"} {
		if got[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, got[i].ID)
		}
	}
	if got[0].Details != "Step-by-step tutorial" || got[0].Content != "# Docker\n\nContainers." {
		t.Errorf("fields not round-tripped: %+v", got[0])
	}
	if !got[0].CreatedAt.Equal(articles[0].CreatedAt) {
		t.Errorf("expected created %v, got %v", articles[0].CreatedAt, got[0].CreatedAt)
	}
}

func TestReplaceIsWholesale(t *testing.T) {
	db, _ := testDB(t)
	if err := db.ReplaceArticles(sampleArticles()); err != nil {
		t.Fatalf("first replace: %v", err)
	}

	next := []article.Article{{ID: "z9", Title: "Only one", CreatedAt: time.Now()}}
	if err := db.ReplaceArticles(next); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	got, err := db.GetArticles()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 || got[0].ID != "z9" {
		t.Errorf("expected only z9 after replace, got %+v", got)
	}
}

func TestClear(t *testing.T) {
	db, _ := testDB(t)
	if err := db.ReplaceArticles(sampleArticles()); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := db.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got, err := db.GetArticles()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty snapshot after clear, got %d", len(got))
	}
	if _, ok := db.LastSync(); !ok {
		t.Error("expected last sync to survive clear")
	}
}

func TestGetArticle(t *testing.T) {
	db, _ := testDB(t)
	if err := db.ReplaceArticles(sampleArticles()); err != nil {
		t.Fatalf("replace: %v", err)
	}

	a, err := db.GetArticle("b2")
	if err != nil {
		t.Fatalf("get article: %v", err)
	}
	if a == nil || a.Title != "TypeScript Best Practices" {
		t.Errorf("unexpected article: %+v", a)
	}

	missing, err := db.GetArticle("nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing id, got %+v", missing)
	}
}

func TestLastSync(t *testing.T) {
	db, _ := testDB(t)

	if _, ok := db.LastSync(); ok {
		t.Error("expected no last sync on a fresh cache")
	}

	before := time.Now().Add(-time.Second)
	if err := db.ReplaceArticles(nil); err != nil {
		t.Fatalf("replace: %v", err)
	}
	ts, ok := db.LastSync()
	if !ok {
		t.Fatal("expected last sync after replace")
	}
	if ts.Before(before.Truncate(time.Second)) {
		t.Errorf("last sync %v is older than %v", ts, before)
	}
}

func TestStats(t *testing.T) {
	db, path := testDB(t)
	if err := db.ReplaceArticles(sampleArticles()); err != nil {
		t.Fatalf("replace: %v", err)
	}

	count, size, err := db.Stats(path)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 articles, got %d", count)
	}
	if size <= 0 {
		t.Errorf("expected positive file size, got %d", size)
	}
}

func TestEmptyDB(t *testing.T) {
	db, _ := testDB(t)

	got, err := db.GetArticles()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestReopenKeepsSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "articles.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.ReplaceArticles(sampleArticles()); err != nil {
		t.Fatalf("replace: %v", err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	got, err := db.GetArticles()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 articles after reopen, got %d", len(got))
	}
}
