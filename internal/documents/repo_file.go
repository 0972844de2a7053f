package documents

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const storeFileName = "store.json"

// FileRepo implements DocumentsRepo on a single JSON file mirrored by an
// in-memory map. Writes are serialized behind a mutex and the file is
// replaced atomically, so a create either lands fully or not at all.
type FileRepo struct {
	path string

	mu   sync.RWMutex
	docs map[string]Document
}

// NewFileRepo loads (or initializes) the store file under dir.
func NewFileRepo(dir string) (*FileRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir store dir: %w", err)
	}

	repo := &FileRepo{
		path: filepath.Join(dir, storeFileName),
		docs: make(map[string]Document),
	}

	raw, err := os.ReadFile(repo.path)
	if err != nil {
		if os.IsNotExist(err) {
			return repo, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &repo.docs); err != nil {
			return nil, fmt.Errorf("parse store file: %w", err)
		}
	}
	return repo, nil
}

// Create persists the document, rewriting the backing file before returning.
func (r *FileRepo) Create(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.docs[doc.ID]; exists {
		return fmt.Errorf("duplicate document id %s", doc.ID)
	}
	r.docs[doc.ID] = doc

	if err := r.persistLocked(); err != nil {
		delete(r.docs, doc.ID)
		return err
	}
	return nil
}

// FetchMany returns the stored documents matching ids in input order,
// skipping unknown ids.
func (r *FileRepo) FetchMany(ctx context.Context, ids []string) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Document, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if doc, ok := r.docs[id]; ok {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (r *FileRepo) persistLocked() error {
	data, err := json.MarshalIndent(r.docs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}

var _ DocumentsRepo = (*FileRepo)(nil)
