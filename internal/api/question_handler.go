package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/examprep/backend/internal/domain/question"
	"github.com/examprep/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type OptionPayload struct {
	Label   string `json:"label" example:"A"`
	Content string `json:"content" example:"A buffered channel"`
}

// QuestionPayload is a question as clients send it. Answer is a boolean for
// tf, an option label for single and a list of labels for multiple.
type QuestionPayload struct {
	Type        string          `json:"type" example:"single" enums:"single,multiple,tf"`
	Content     string          `json:"content" example:"Which channel never blocks the sender?"`
	Options     []OptionPayload `json:"options,omitempty"`
	Answer      json.RawMessage `json:"answer" swaggertype:"string" example:"A"`
	Explanation string          `json:"explanation,omitempty"`
}

func (p QuestionPayload) draft() service.QuestionDraft {
	return service.QuestionDraft{
		Type:        question.Type(p.Type),
		Content:     p.Content,
		Options:     toOptions(p.Options),
		Answer:      p.Answer,
		Explanation: p.Explanation,
	}
}

type CreateQuestionRequest struct {
	BankID string `json:"bank_id" example:"65f1c2a4e4b0a1b2c3d4e5f6"`
	QuestionPayload
}

func (r *CreateQuestionRequest) Validate() error {
	if r.BankID == "" {
		return errors.New("bank_id is required")
	}
	return nil
}

type ImportQuestionsRequest struct {
	BankID    string            `json:"bank_id,omitempty" example:"65f1c2a4e4b0a1b2c3d4e5f6"`
	Questions []QuestionPayload `json:"questions"`
}

func (r *ImportQuestionsRequest) Validate() error {
	if len(r.Questions) == 0 {
		return errors.New("questions must be a non-empty list")
	}
	return nil
}

type ImportQuestionsResponse struct {
	Imported  int                `json:"imported" example:"3"`
	Questions []QuestionResponse `json:"questions"`
}

type UpdateQuestionRequest struct {
	Type        string          `json:"type,omitempty" example:"multiple"`
	Content     string          `json:"content,omitempty"`
	Options     []OptionPayload `json:"options,omitempty"`
	Answer      json.RawMessage `json:"answer,omitempty" swaggertype:"string"`
	Explanation *string         `json:"explanation,omitempty"`
}

type AnswerRequest struct {
	Answer json.RawMessage `json:"answer" swaggertype:"string" example:"B"`
}

type QuestionResponse struct {
	ID          string          `json:"id" example:"65f1c2a4e4b0a1b2c3d4e5f7"`
	Type        string          `json:"type" example:"single"`
	Content     string          `json:"content" example:"Which channel never blocks the sender?"`
	Options     []OptionPayload `json:"options"`
	Answer      question.Answer `json:"answer" swaggertype:"string" example:"A"`
	Explanation string          `json:"explanation"`
	BankID      string          `json:"bank_id" example:"65f1c2a4e4b0a1b2c3d4e5f6"`
}

type VerdictResponse struct {
	Correct       bool                   `json:"correct" example:"false"`
	CorrectAnswer question.Answer        `json:"correct_answer" swaggertype:"string" example:"B"`
	Explanation   string                 `json:"explanation"`
	WrongQuestion *WrongQuestionResponse `json:"wrong_question,omitempty"`
}

func toOptions(payload []OptionPayload) []question.Option {
	if payload == nil {
		return nil
	}
	options := make([]question.Option, len(payload))
	for i, o := range payload {
		options[i] = question.Option{Label: o.Label, Content: o.Content}
	}
	return options
}

func toOptionPayloads(options []question.Option) []OptionPayload {
	payload := make([]OptionPayload, len(options))
	for i, o := range options {
		payload[i] = OptionPayload{Label: o.Label, Content: o.Content}
	}
	return payload
}

func toQuestionResponse(q *question.Question) QuestionResponse {
	return QuestionResponse{
		ID:          q.ID,
		Type:        string(q.Type),
		Content:     q.Content,
		Options:     toOptionPayloads(q.Options),
		Answer:      q.Answer,
		Explanation: q.Explanation,
		BankID:      q.BankID,
	}
}

func toQuestionResponses(questions []*question.Question) []QuestionResponse {
	response := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		response[i] = toQuestionResponse(q)
	}
	return response
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createQuestion adds one question to a bank owned by the caller.
// @Summary      Create a question
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        user-id  header    string                 true  "Caller ID"
// @Param        body     body      CreateQuestionRequest  true  "Question to create"
// @Success      201      {object}  QuestionResponse
// @Failure      400      {object}  map[string]string
// @Failure      403      {object}  map[string]string
// @Failure      404      {object}  map[string]string  "bank not found"
// @Router       /api/questions [post]
func (h *Handler) createQuestion(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	q, err := h.library.CreateQuestion(r.Context(), currentUser(r).ID, req.BankID, req.draft())
	if h.respondServiceError(w, r, err, "bank") {
		return
	}
	respondJSON(w, http.StatusCreated, toQuestionResponse(q))
}

// importQuestions adds a batch of questions to a bank named in the body.
// @Summary      Import questions
// @Description  All questions are validated before any is written. The bank's question count grows by the batch size.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        user-id  header    string                  true  "Caller ID"
// @Param        body     body      ImportQuestionsRequest  true  "Bank and questions"
// @Success      201      {object}  ImportQuestionsResponse
// @Failure      400      {object}  map[string]string
// @Failure      403      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /api/questions/import [post]
func (h *Handler) importQuestions(w http.ResponseWriter, r *http.Request) {
	var req ImportQuestionsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if req.BankID == "" {
		respondError(w, http.StatusBadRequest, "bank_id is required")
		return
	}
	h.runImport(w, r, req.BankID, req.Questions)
}

// importBankQuestions adds a batch of questions to the bank in the path.
// @Summary      Batch import into a bank
// @Description  Accepts the document produced by the export endpoint.
// @Tags         Banks
// @Accept       json
// @Produce      json
// @Param        user-id  header    string                  true  "Caller ID"
// @Param        bankID   path      string                  true  "Bank ID"
// @Param        body     body      ImportQuestionsRequest  true  "Questions"
// @Success      201      {object}  ImportQuestionsResponse
// @Failure      400      {object}  map[string]string
// @Failure      403      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /api/question-banks/{bankID}/questions/batch [post]
func (h *Handler) importBankQuestions(w http.ResponseWriter, r *http.Request) {
	var req ImportQuestionsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.runImport(w, r, r.PathValue("bankID"), req.Questions)
}

func (h *Handler) runImport(w http.ResponseWriter, r *http.Request, bankID string, payload []QuestionPayload) {
	drafts := make([]service.QuestionDraft, len(payload))
	for i, p := range payload {
		drafts[i] = p.draft()
	}

	created, err := h.library.ImportQuestions(r.Context(), currentUser(r).ID, bankID, drafts)
	if h.respondServiceError(w, r, err, "bank") {
		return
	}
	respondJSON(w, http.StatusCreated, ImportQuestionsResponse{
		Imported:  len(created),
		Questions: toQuestionResponses(created),
	})
}

// listBankQuestions returns the questions of a bank in insertion order.
// @Summary      List a bank's questions
// @Tags         Questions
// @Produce      json
// @Param        user-id  header    string  true  "Caller ID"
// @Param        bankID   path      string  true  "Bank ID"
// @Success      200      {array}   QuestionResponse
// @Failure      404      {object}  map[string]string
// @Router       /api/questions/bank/{bankID} [get]
func (h *Handler) listBankQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.library.ListBankQuestions(r.Context(), r.PathValue("bankID"))
	if h.respondServiceError(w, r, err, "bank") {
		return
	}
	respondJSON(w, http.StatusOK, toQuestionResponses(questions))
}

// getQuestion returns a single question.
// @Summary      Get a question
// @Tags         Questions
// @Produce      json
// @Param        user-id     header    string  true  "Caller ID"
// @Param        questionID  path      string  true  "Question ID"
// @Success      200         {object}  QuestionResponse
// @Failure      404         {object}  map[string]string
// @Router       /api/questions/{questionID} [get]
func (h *Handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	q, err := h.library.GetQuestion(r.Context(), r.PathValue("questionID"))
	if h.respondServiceError(w, r, err, "question") {
		return
	}
	respondJSON(w, http.StatusOK, toQuestionResponse(q))
}

// updateQuestion merges the given fields into a question.
// @Summary      Update a question
// @Description  Empty fields keep their current values. Changing the type requires a matching answer.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        user-id     header    string                 true  "Caller ID"
// @Param        questionID  path      string                 true  "Question ID"
// @Param        body        body      UpdateQuestionRequest  true  "Fields to change"
// @Success      200         {object}  QuestionResponse
// @Failure      400         {object}  map[string]string
// @Failure      403         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /api/questions/{questionID} [put]
func (h *Handler) updateQuestion(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuestionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	patch := question.Patch{
		Type:        question.Type(req.Type),
		Content:     req.Content,
		Options:     toOptions(req.Options),
		Answer:      req.Answer,
		Explanation: req.Explanation,
	}
	q, err := h.library.UpdateQuestion(r.Context(), currentUser(r).ID, r.PathValue("questionID"), patch)
	if h.respondServiceError(w, r, err, "question") {
		return
	}
	respondJSON(w, http.StatusOK, toQuestionResponse(q))
}

// deleteQuestion removes a question and the wrong-question records that point at it.
// @Summary      Delete a question
// @Tags         Questions
// @Param        user-id     header  string  true  "Caller ID"
// @Param        questionID  path    string  true  "Question ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/questions/{questionID} [delete]
func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	err := h.library.DeleteQuestion(r.Context(), currentUser(r).ID, r.PathValue("questionID"))
	if h.respondServiceError(w, r, err, "question") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// answerQuestion checks one answer and records it when it is wrong.
// @Summary      Answer a question
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        user-id     header    string         true  "Caller ID"
// @Param        questionID  path      string         true  "Question ID"
// @Param        body        body      AnswerRequest  true  "Submitted answer"
// @Success      200         {object}  VerdictResponse
// @Failure      400         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /api/questions/{questionID}/answer [post]
func (h *Handler) answerQuestion(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	answer, err := question.InferAnswer(req.Answer)
	if h.respondServiceError(w, r, err, "question") {
		return
	}

	verdict, err := h.wrongs.Submit(r.Context(), currentUser(r).ID, r.PathValue("questionID"), answer)
	if h.respondServiceError(w, r, err, "question") {
		return
	}

	response := VerdictResponse{
		Correct:       verdict.Correct,
		CorrectAnswer: verdict.CorrectAnswer,
		Explanation:   verdict.Explanation,
	}
	if verdict.Record != nil {
		wq := toWrongQuestionResponse(verdict.Record, nil)
		response.WrongQuestion = &wq
	}
	respondJSON(w, http.StatusOK, response)
}
