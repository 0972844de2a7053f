package documents

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	doc := Document{
		ID:               "doc-1",
		OriginalName:     "report.pdf",
		ExtractedText:    "quarterly numbers",
		LinesCount:       1,
		WordCount:        2,
		CharCount:        17,
		ExtractionMethod: "PDF text extraction",
		StorageKey:       "doc-1_report.pdf",
		CreatedAt:        now,
	}

	mock.ExpectExec("INSERT INTO documents").
		WithArgs("doc-1", "report.pdf", "quarterly numbers", 1, 2, 17, "PDF text extraction", sqlmock.AnyArg(), now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoFetchManyOrdersByInput(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	cols := []string{"id", "original_name", "extracted_text", "lines_count", "word_count", "char_count", "extraction_method", "storage_key", "created_at"}
	rows := sqlmock.NewRows(cols).
		AddRow("a", "a.txt", "alpha", 1, 1, 5, "Plain text", nil, now).
		AddRow("b", "b.txt", "beta", 1, 1, 4, "Plain text", nil, now)

	mock.ExpectQuery("SELECT (.+) FROM documents").
		WithArgs("b", "missing", "a").
		WillReturnRows(rows)

	docs, err := repo.FetchMany(context.Background(), []string{"b", "missing", "a"})
	if err != nil {
		t.Fatalf("fetch many: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
	if docs[0].ID != "b" || docs[1].ID != "a" {
		t.Fatalf("expected input order [b a], got [%s %s]", docs[0].ID, docs[1].ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoFetchManyEmptyInput(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := &PGRepo{DB: db}
	docs, err := repo.FetchMany(context.Background(), nil)
	if err != nil {
		t.Fatalf("fetch many: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no docs, got %d", len(docs))
	}
}
