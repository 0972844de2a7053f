package documents

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// PGRepo implements DocumentsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
    id,
    original_name,
    extracted_text,
    lines_count,
    word_count,
    char_count,
    extraction_method,
    storage_key,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var storageKey sql.NullString
	if doc.StorageKey != "" {
		storageKey = sql.NullString{String: doc.StorageKey, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.OriginalName,
		doc.ExtractedText,
		doc.LinesCount,
		doc.WordCount,
		doc.CharCount,
		doc.ExtractionMethod,
		storageKey,
		doc.CreatedAt,
	)
	return err
}

// FetchMany returns the documents matching the given ids in input order.
// Unknown ids are skipped; duplicates resolve once.
func (r *PGRepo) FetchMany(ctx context.Context, ids []string) ([]Document, error) {
	if len(ids) == 0 {
		return []Document{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := fmt.Sprintf(`
SELECT id, original_name, extracted_text, lines_count, word_count, char_count, extraction_method, storage_key, created_at
FROM documents
WHERE id IN (%s)`, strings.Join(placeholders, ", "))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]Document, len(ids))
	for rows.Next() {
		var doc Document
		var storageKey sql.NullString
		if err := rows.Scan(
			&doc.ID,
			&doc.OriginalName,
			&doc.ExtractedText,
			&doc.LinesCount,
			&doc.WordCount,
			&doc.CharCount,
			&doc.ExtractionMethod,
			&storageKey,
			&doc.CreatedAt,
		); err != nil {
			return nil, err
		}
		if storageKey.Valid {
			doc.StorageKey = storageKey.String
		}
		byID[doc.ID] = doc
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]Document, 0, len(byID))
	seen := make(map[string]bool, len(byID))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if doc, ok := byID[id]; ok {
			out = append(out, doc)
		}
	}
	return out, nil
}

var _ DocumentsRepo = (*PGRepo)(nil)
