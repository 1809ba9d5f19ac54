package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/examprep/backend/internal/domain/questionbank"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateBankRequest struct {
	Name        string `json:"name" example:"Go concurrency"`
	Description string `json:"description" example:"Channels, goroutines and sync"`
	IsPublic    bool   `json:"is_public" example:"true"`
}

func (r *CreateBankRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

type UpdateBankRequest struct {
	Name        *string `json:"name,omitempty" example:"Go concurrency"`
	Description *string `json:"description,omitempty"`
	IsPublic    *bool   `json:"is_public,omitempty" example:"false"`
}

type BankResponse struct {
	ID            string    `json:"id" example:"65f1c2a4e4b0a1b2c3d4e5f6"`
	Name          string    `json:"name" example:"Go concurrency"`
	Description   string    `json:"description"`
	IsPublic      bool      `json:"is_public" example:"true"`
	CreatorID     string    `json:"creator_id" example:"65f1c2a4e4b0a1b2c3d4e5f0"`
	CreatorName   string    `json:"creator_name,omitempty" example:"alice"`
	CreatedAt     time.Time `json:"created_at"`
	QuestionCount int       `json:"question_count" example:"12"`
}

func toBankResponse(b *questionbank.QuestionBank, creatorName string) BankResponse {
	return BankResponse{
		ID:            b.ID,
		Name:          b.Name,
		Description:   b.Description,
		IsPublic:      b.IsPublic,
		CreatorID:     b.CreatorID,
		CreatorName:   creatorName,
		CreatedAt:     b.CreatedAt,
		QuestionCount: b.QuestionCount,
	}
}

// respondBanks writes banks with their creators' names filled in.
func (h *Handler) respondBanks(w http.ResponseWriter, r *http.Request, banks []*questionbank.QuestionBank) {
	names, err := h.library.CreatorNames(r.Context(), banks...)
	if h.respondServiceError(w, r, err, "bank") {
		return
	}
	response := make([]BankResponse, len(banks))
	for i, b := range banks {
		response[i] = toBankResponse(b, names[b.CreatorID])
	}
	respondJSON(w, http.StatusOK, response)
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createBank creates a new question bank owned by the caller.
// @Summary      Create a question bank
// @Tags         Banks
// @Accept       json
// @Produce      json
// @Param        user-id  header    string             true  "Caller ID"
// @Param        body     body      CreateBankRequest  true  "Bank to create"
// @Success      201      {object}  BankResponse
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Router       /api/question-banks [post]
func (h *Handler) createBank(w http.ResponseWriter, r *http.Request) {
	var req CreateBankRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	bank, err := h.library.CreateBank(r.Context(), currentUser(r).ID, req.Name, req.Description, req.IsPublic)
	if h.respondServiceError(w, r, err, "bank") {
		return
	}
	respondJSON(w, http.StatusCreated, toBankResponse(bank, currentUser(r).Name))
}

// listPublicBanks lists every public bank.
// @Summary      List public banks
// @Tags         Banks
// @Produce      json
// @Param        user-id  header    string  true  "Caller ID"
// @Success      200      {array}   BankResponse
// @Failure      401      {object}  map[string]string
// @Router       /api/question-banks/public [get]
func (h *Handler) listPublicBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.library.ListPublicBanks(r.Context())
	if h.respondServiceError(w, r, err, "bank") {
		return
	}
	h.respondBanks(w, r, banks)
}

// listUserBanks lists the banks created by a user.
// @Summary      List a user's banks
// @Tags         Banks
// @Produce      json
// @Param        user-id  header    string  true  "Caller ID"
// @Param        userID   path      string  true  "Creator ID"
// @Success      200      {array}   BankResponse
// @Failure      401      {object}  map[string]string
// @Router       /api/question-banks/user/{userID} [get]
func (h *Handler) listUserBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.library.ListUserBanks(r.Context(), r.PathValue("userID"))
	if h.respondServiceError(w, r, err, "bank") {
		return
	}
	h.respondBanks(w, r, banks)
}

// getBank returns a single bank.
// @Summary      Get a question bank
// @Tags         Banks
// @Produce      json
// @Param        user-id  header    string  true  "Caller ID"
// @Param        bankID   path      string  true  "Bank ID"
// @Success      200      {object}  BankResponse
// @Failure      404      {object}  map[string]string
// @Router       /api/question-banks/{bankID} [get]
func (h *Handler) getBank(w http.ResponseWriter, r *http.Request) {
	bank, err := h.library.GetBank(r.Context(), r.PathValue("bankID"))
	if h.respondServiceError(w, r, err, "bank") {
		return
	}
	names, err := h.library.CreatorNames(r.Context(), bank)
	if h.respondServiceError(w, r, err, "bank") {
		return
	}
	respondJSON(w, http.StatusOK, toBankResponse(bank, names[bank.CreatorID]))
}

// updateBank changes a bank's name, description or visibility.
// @Summary      Update a question bank
// @Description  Omitted fields keep their current values. Owner only.
// @Tags         Banks
// @Accept       json
// @Produce      json
// @Param        user-id  header    string             true  "Caller ID"
// @Param        bankID   path      string             true  "Bank ID"
// @Param        body     body      UpdateBankRequest  true  "Fields to change"
// @Success      200      {object}  BankResponse
// @Failure      403      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /api/question-banks/{bankID} [put]
func (h *Handler) updateBank(w http.ResponseWriter, r *http.Request) {
	var req UpdateBankRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	patch := questionbank.Patch{Name: req.Name, Description: req.Description, IsPublic: req.IsPublic}
	bank, err := h.library.UpdateBank(r.Context(), currentUser(r).ID, r.PathValue("bankID"), patch)
	if h.respondServiceError(w, r, err, "bank") {
		return
	}
	respondJSON(w, http.StatusOK, toBankResponse(bank, currentUser(r).Name))
}

// deleteBank removes a bank, its questions and their wrong-question records.
// @Summary      Delete a question bank
// @Tags         Banks
// @Param        user-id  header  string  true  "Caller ID"
// @Param        bankID   path    string  true  "Bank ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/question-banks/{bankID} [delete]
func (h *Handler) deleteBank(w http.ResponseWriter, r *http.Request) {
	err := h.library.DeleteBank(r.Context(), currentUser(r).ID, r.PathValue("bankID"))
	if h.respondServiceError(w, r, err, "bank") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
