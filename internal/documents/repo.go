package documents

import "context"

// DocumentsRepo defines persistence operations for documents.
//
// Create must be durable before it returns. FetchMany returns the subset of
// requested ids that exist, in input order, silently skipping unknown ids;
// no match is an empty result, never an error.
type DocumentsRepo interface {
	Create(ctx context.Context, doc Document) error
	FetchMany(ctx context.Context, ids []string) ([]Document, error)
}
