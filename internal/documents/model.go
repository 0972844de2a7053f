package documents

import "time"

// Document is the persisted record of one uploaded file's extracted text.
// ExtractedText and the derived counts are set once at creation and never
// mutated; there is no update or delete operation.
type Document struct {
	ID               string    `json:"id"`
	OriginalName     string    `json:"originalName"`
	ExtractedText    string    `json:"extractedText"`
	LinesCount       int       `json:"linesCount"`
	WordCount        int       `json:"wordCount"`
	CharCount        int       `json:"charCount"`
	ExtractionMethod string    `json:"extractionMethod"`
	StorageKey       string    `json:"storageKey,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}
