package questions

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"docqa-backend/internal/llm"
	"docqa-backend/internal/shared/server/respond"
)

// Handler wires the ask endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches question routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ask", h.ask)
}

// idList accepts either a single id string or an array of ids.
type idList []string

func (l *idList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		if one == "" {
			*l = nil
		} else {
			*l = []string{one}
		}
		return nil
	}
	return errors.New("docIds must be a string or an array of strings")
}

type askRequest struct {
	DocIDs   idList `json:"docIds"`
	Question string `json:"question"`
}

func (h *Handler) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	answer, err := h.Svc.Ask(c.Request.Context(), req.DocIDs, req.Question)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingQuestion):
			respond.Error(c, http.StatusBadRequest, "missing_question", "Question is required")
		case errors.Is(err, ErrNoDocuments):
			respond.Error(c, http.StatusBadRequest, "no_documents", "No documents uploaded. Please upload documents first.")
		case errors.Is(err, ErrNoValidDocuments):
			respond.Error(c, http.StatusNotFound, "no_valid_documents", "No valid documents found")
		case errors.Is(err, llm.ErrNotConfigured):
			respond.Error(c, http.StatusInternalServerError, "llm_not_configured", "AI service not configured. Please set OPENAI_API_KEY")
		default:
			respond.Error(c, http.StatusInternalServerError, "llm_error", "Failed to process question")
		}
		return
	}

	respond.OK(c, answer)
}
