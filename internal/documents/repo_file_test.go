package documents

import (
	"context"
	"testing"
	"time"
)

func testDoc(id, name, text string) Document {
	return Document{
		ID:               id,
		OriginalName:     name,
		ExtractedText:    text,
		LinesCount:       CountLines(text),
		WordCount:        CountWords(text),
		CharCount:        CountChars(text),
		ExtractionMethod: "Plain text",
		CreatedAt:        time.Now().UTC(),
	}
}

func TestFileRepoCreateAndFetchMany(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileRepo(dir)
	if err != nil {
		t.Fatalf("new file repo: %v", err)
	}

	ctx := context.Background()
	if err := repo.Create(ctx, testDoc("a", "a.txt", "alpha")); err != nil {
		t.Fatalf("create a: %v", err)
	}
	if err := repo.Create(ctx, testDoc("b", "b.txt", "beta")); err != nil {
		t.Fatalf("create b: %v", err)
	}

	docs, err := repo.FetchMany(ctx, []string{"b", "missing", "a"})
	if err != nil {
		t.Fatalf("fetch many: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
	if docs[0].ID != "b" || docs[1].ID != "a" {
		t.Fatalf("expected input order [b a], got [%s %s]", docs[0].ID, docs[1].ID)
	}
	if docs[1].ExtractedText != "alpha" {
		t.Fatalf("expected text alpha, got %q", docs[1].ExtractedText)
	}
}

func TestFileRepoDurableAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileRepo(dir)
	if err != nil {
		t.Fatalf("new file repo: %v", err)
	}
	ctx := context.Background()
	if err := repo.Create(ctx, testDoc("keep", "keep.txt", "kept text")); err != nil {
		t.Fatalf("create: %v", err)
	}

	reopened, err := NewFileRepo(dir)
	if err != nil {
		t.Fatalf("reopen file repo: %v", err)
	}
	docs, err := reopened.FetchMany(ctx, []string{"keep"})
	if err != nil {
		t.Fatalf("fetch many: %v", err)
	}
	if len(docs) != 1 || docs[0].ExtractedText != "kept text" {
		t.Fatalf("expected kept document after reopen, got %+v", docs)
	}
}

func TestFileRepoFetchManyNoMatch(t *testing.T) {
	repo, err := NewFileRepo(t.TempDir())
	if err != nil {
		t.Fatalf("new file repo: %v", err)
	}
	docs, err := repo.FetchMany(context.Background(), []string{"nope"})
	if err != nil {
		t.Fatalf("fetch many: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected empty result, got %d docs", len(docs))
	}
}

func TestFileRepoRejectsDuplicateID(t *testing.T) {
	repo, err := NewFileRepo(t.TempDir())
	if err != nil {
		t.Fatalf("new file repo: %v", err)
	}
	ctx := context.Background()
	if err := repo.Create(ctx, testDoc("dup", "one.txt", "one")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, testDoc("dup", "two.txt", "two")); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}
