package documents

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"docqa-backend/internal/extract"
	"docqa-backend/internal/shared/storage/object"
)

// Service contains business logic for documents.
type Service struct {
	Store     object.ObjectStore
	Repo      DocumentsRepo
	Extractor *extract.Extractor
}

// Upload extracts text from the payload, keeps a copy of the original bytes
// in the object store, and persists the document record. Nothing is persisted
// when extraction fails or yields only whitespace.
func (s *Service) Upload(ctx context.Context, fileName, declaredType string, data []byte) (Document, error) {
	if strings.TrimSpace(fileName) == "" {
		return Document{}, ErrInvalidInput
	}

	result, err := s.Extractor.Extract(ctx, data, declaredType, fileName)
	if err != nil {
		return Document{}, err
	}
	if strings.TrimSpace(result.Text) == "" {
		return Document{}, ErrEmptyExtraction
	}

	docID := uuid.NewString()

	storageKey, _, _, err := s.Store.Save(ctx, docID, fileName, bytes.NewReader(data))
	if err != nil {
		return Document{}, fmt.Errorf("store original: %w", err)
	}

	doc := Document{
		ID:               docID,
		OriginalName:     fileName,
		ExtractedText:    result.Text,
		LinesCount:       CountLines(result.Text),
		WordCount:        CountWords(result.Text),
		CharCount:        CountChars(result.Text),
		ExtractionMethod: result.Method,
		StorageKey:       storageKey,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, fmt.Errorf("store document: %w", err)
	}

	return doc, nil
}

// FetchMany exposes the repo's batch lookup to other services.
func (s *Service) FetchMany(ctx context.Context, ids []string) ([]Document, error) {
	return s.Repo.FetchMany(ctx, ids)
}
