package questions

import (
	"context"
	"fmt"
	"strings"

	"docqa-backend/internal/documents"
	"docqa-backend/internal/llm"
)

const noResponseFallback = "No response generated"

// DocumentInfo is the per-document metadata echoed back with an answer.
type DocumentInfo struct {
	ID        string `json:"id"`
	FileName  string `json:"fileName"`
	WordCount int    `json:"wordCount"`
	LineCount int    `json:"lineCount"`
}

// Answer is the result of one ask exchange. Nothing about it is persisted;
// each ask is stateless with respect to prior asks.
type Answer struct {
	Answer    string         `json:"answer"`
	Documents []DocumentInfo `json:"documents"`
	Question  string         `json:"question"`
}

// Service answers questions about stored documents through one LLM call.
type Service struct {
	Repo documents.DocumentsRepo
	LLM  llm.Client
}

// Ask fetches the requested documents, builds the prompt, and forwards the
// combined text plus the question to the model. Ids that do not resolve are
// dropped without error; the answer is built only from the documents that
// remain.
func (s *Service) Ask(ctx context.Context, ids []string, question string) (Answer, error) {
	if strings.TrimSpace(question) == "" {
		return Answer{}, ErrMissingQuestion
	}
	if len(ids) == 0 {
		return Answer{}, ErrNoDocuments
	}

	docs, err := s.Repo.FetchMany(ctx, ids)
	if err != nil {
		return Answer{}, fmt.Errorf("fetch documents: %w", err)
	}

	combined := CombinedText(docs)
	if strings.TrimSpace(combined) == "" {
		return Answer{}, ErrNoValidDocuments
	}

	answer, err := s.LLM.Answer(ctx, llm.Request{
		System: BuildSystemPrompt(docs),
		User:   BuildUserMessage(combined, question),
	})
	if err != nil {
		return Answer{}, err
	}
	if strings.TrimSpace(answer) == "" {
		answer = noResponseFallback
	}

	infos := make([]DocumentInfo, 0, len(docs))
	for _, doc := range docs {
		infos = append(infos, DocumentInfo{
			ID:        doc.ID,
			FileName:  doc.OriginalName,
			WordCount: doc.WordCount,
			LineCount: doc.LinesCount,
		})
	}

	return Answer{
		Answer:    answer,
		Documents: infos,
		Question:  question,
	}, nil
}
