package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportBank struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
}

// ExportData can be posted back to the batch import endpoint as is.
type ExportData struct {
	Version    string            `json:"version" example:"1.0"`
	ExportedAt string            `json:"exported_at" example:"2024-03-01T09:00:00Z"`
	Bank       ExportBank        `json:"bank"`
	Questions  []QuestionPayload `json:"questions"`
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ── Handlers ────────────────────────────────────────────────────────────────

// exportBank downloads a bank and its questions as JSON.
// @Summary      Export a bank
// @Tags         Banks
// @Produce      json
// @Param        user-id  header    string  true  "Caller ID"
// @Param        bankID   path      string  true  "Bank ID"
// @Success      200      {object}  ExportData
// @Failure      404      {object}  map[string]string
// @Router       /api/question-banks/export/{bankID} [get]
func (h *Handler) exportBank(w http.ResponseWriter, r *http.Request) {
	export, err := h.library.ExportBank(r.Context(), r.PathValue("bankID"))
	if h.respondServiceError(w, r, err, "bank") {
		return
	}

	data := ExportData{
		Version:    "1.0",
		ExportedAt: export.ExportedAt.Format(time.RFC3339),
		Bank: ExportBank{
			Name:        export.Bank.Name,
			Description: export.Bank.Description,
			IsPublic:    export.Bank.IsPublic,
		},
		Questions: make([]QuestionPayload, len(export.Questions)),
	}
	for i, q := range export.Questions {
		answer, err := json.Marshal(q.Answer)
		if h.respondServiceError(w, r, err, "question") {
			return
		}
		data.Questions[i] = QuestionPayload{
			Type:        string(q.Type),
			Content:     q.Content,
			Options:     toOptionPayloads(q.Options),
			Answer:      answer,
			Explanation: q.Explanation,
		}
	}

	name := strings.Trim(unsafeFilename.ReplaceAllString(export.Bank.Name, "-"), "-")
	if name == "" {
		name = export.Bank.ID
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.json"`, name))
	respondJSON(w, http.StatusOK, data)
}
