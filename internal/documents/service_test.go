package documents_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"docqa-backend/internal/documents"
	"docqa-backend/internal/extract"
	localstore "docqa-backend/internal/shared/storage/object/local"
)

func newTestService(t *testing.T) (*documents.Service, *documents.FileRepo, string) {
	t.Helper()
	repoDir := t.TempDir()
	repo, err := documents.NewFileRepo(repoDir)
	if err != nil {
		t.Fatalf("new file repo: %v", err)
	}
	svc := &documents.Service{
		Store:     localstore.New(t.TempDir()),
		Repo:      repo,
		Extractor: extract.New(extract.PolicyStrict, extract.NewOCR("tesseract")),
	}
	return svc, repo, repoDir
}

func TestUploadPlainTextRoundTrip(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	text := "first line\nsecond line with words"
	doc, err := svc.Upload(ctx, "notes.txt", "text/plain", []byte(text))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if doc.ID == "" {
		t.Fatalf("expected generated id")
	}
	if doc.LinesCount != 2 {
		t.Fatalf("expected 2 lines, got %d", doc.LinesCount)
	}
	if doc.WordCount != 7 {
		t.Fatalf("expected 7 words, got %d", doc.WordCount)
	}
	if doc.ExtractionMethod != extract.MethodPlainText {
		t.Fatalf("expected method %q, got %q", extract.MethodPlainText, doc.ExtractionMethod)
	}

	fetched, err := repo.FetchMany(ctx, []string{doc.ID})
	if err != nil {
		t.Fatalf("fetch many: %v", err)
	}
	if len(fetched) != 1 {
		t.Fatalf("expected 1 stored doc, got %d", len(fetched))
	}
	if fetched[0].ExtractedText != text {
		t.Fatalf("stored text differs: got %q want %q", fetched[0].ExtractedText, text)
	}
}

func TestUploadRejectsWhitespaceOnlyText(t *testing.T) {
	svc, _, repoDir := newTestService(t)
	ctx := context.Background()

	_, err := svc.Upload(ctx, "blank.txt", "text/plain", []byte("   \n\t  \n"))
	if !errors.Is(err, documents.ErrEmptyExtraction) {
		t.Fatalf("expected ErrEmptyExtraction, got %v", err)
	}

	// The store file is only created on a successful persist.
	if _, err := os.Stat(filepath.Join(repoDir, "store.json")); !os.IsNotExist(err) {
		t.Fatalf("expected no store file after rejected upload, stat err=%v", err)
	}
}

func TestUploadRejectsUnsupportedTypeBeforeStoring(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Upload(context.Background(), "data.xyz", "application/octet-stream", []byte("binary"))
	if !errors.Is(err, extract.ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}
