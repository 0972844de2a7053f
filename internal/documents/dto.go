package documents

type uploadResponse struct {
	Success          bool   `json:"success"`
	DocID            string `json:"docId"`
	FileName         string `json:"fileName"`
	LinesCount       int    `json:"linesCount"`
	WordCount        int    `json:"wordCount"`
	CharCount        int    `json:"charCount"`
	ExtractionMethod string `json:"extractionMethod"`
}

func toResponse(doc Document) uploadResponse {
	return uploadResponse{
		Success:          true,
		DocID:            doc.ID,
		FileName:         doc.OriginalName,
		LinesCount:       doc.LinesCount,
		WordCount:        doc.WordCount,
		CharCount:        doc.CharCount,
		ExtractionMethod: doc.ExtractionMethod,
	}
}
