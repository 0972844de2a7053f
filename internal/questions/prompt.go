package questions

import (
	"fmt"
	"strings"

	"docqa-backend/internal/documents"
)

const systemPromptHeader = `You are an intelligent document analysis assistant. You have access to the full text content of uploaded documents.

Your task is to answer questions about these documents accurately and precisely. When answering:
- For counting questions (e.g., "how many times does X appear"), provide exact counts
- For location questions (e.g., "which line"), provide specific line numbers when possible
- For summarization, be concise and accurate
- If the answer cannot be found in the documents, say so clearly
- Always base your answers on the actual document content provided

Documents provided:`

// BuildSystemPrompt renders the fixed assistant instructions followed by one
// line per document with its display name and counts.
func BuildSystemPrompt(docs []documents.Document) string {
	var b strings.Builder
	b.WriteString(systemPromptHeader)
	for _, doc := range docs {
		b.WriteString(fmt.Sprintf("\n- %s (%d lines, %d words)", doc.OriginalName, doc.LinesCount, doc.WordCount))
	}
	return b.String()
}

// CombinedText concatenates every document's text, each prefixed by a
// separator line naming the document. Order follows the input slice.
func CombinedText(docs []documents.Document) string {
	var b strings.Builder
	for _, doc := range docs {
		b.WriteString(fmt.Sprintf("\n\n=== Document: %s ===\n%s", doc.OriginalName, doc.ExtractedText))
	}
	return b.String()
}

// BuildUserMessage wraps the combined context and the literal question into
// the single user message sent to the model.
func BuildUserMessage(combined, question string) string {
	return fmt.Sprintf("Here is the full content of all documents:\n%s\n\nQuestion: %s", combined, question)
}
