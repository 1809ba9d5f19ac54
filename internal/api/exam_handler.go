package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/examprep/backend/internal/domain/exam"
	"github.com/examprep/backend/internal/domain/question"
)

// ── Request / Response types ────────────────────────────────────────────────

// ExamQuestion is a question without its answer or explanation.
type ExamQuestion struct {
	ID      string          `json:"id" example:"65f1c2a4e4b0a1b2c3d4e5f7"`
	Type    string          `json:"type" example:"multiple"`
	Content string          `json:"content"`
	Options []OptionPayload `json:"options"`
}

type PaperResponse struct {
	BankID    string         `json:"bank_id,omitempty" example:"65f1c2a4e4b0a1b2c3d4e5f6"`
	Questions []ExamQuestion `json:"questions"`
}

// GradeRequest lists the paper's question IDs in order and the answers by
// question ID. Missing or null answers count as unanswered.
type GradeRequest struct {
	QuestionIDs []string                   `json:"question_ids"`
	Answers     map[string]json.RawMessage `json:"answers" swaggertype:"object"`
}

func (r *GradeRequest) Validate() error {
	if len(r.QuestionIDs) == 0 {
		return errors.New("question_ids must be a non-empty list")
	}
	return nil
}

type OutcomeResponse struct {
	QuestionID    string          `json:"question_id"`
	Status        string          `json:"status" example:"incorrect" enums:"correct,incorrect,unanswered"`
	Submitted     question.Answer `json:"submitted" swaggertype:"string"`
	CorrectAnswer question.Answer `json:"correct_answer" swaggertype:"string"`
}

type GradeResponse struct {
	Total      int               `json:"total" example:"10"`
	Correct    int               `json:"correct" example:"7"`
	Incorrect  int               `json:"incorrect" example:"2"`
	Unanswered int               `json:"unanswered" example:"1"`
	Accuracy   int               `json:"accuracy" example:"70"`
	Outcomes   []OutcomeResponse `json:"outcomes"`
}

func toPaperResponse(p *exam.Paper) PaperResponse {
	questions := make([]ExamQuestion, len(p.Questions))
	for i, q := range p.Questions {
		questions[i] = ExamQuestion{
			ID:      q.ID,
			Type:    string(q.Type),
			Content: q.Content,
			Options: toOptionPayloads(q.Options),
		}
	}
	return PaperResponse{BankID: p.BankID, Questions: questions}
}

// examConfig reads the optional limit and shuffle query parameters.
func examConfig(r *http.Request) (exam.Config, error) {
	config := exam.DefaultConfig()
	query := r.URL.Query()

	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return config, errors.New("limit must be a positive integer")
		}
		config.MaxQuestions = &limit
	}
	if v := query.Get("shuffle"); v != "" {
		shuffle, err := strconv.ParseBool(v)
		if err != nil {
			return config, errors.New("shuffle must be true or false")
		}
		config.Shuffle = shuffle
	}
	return config, nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// bankPaper builds an exam over a bank.
// @Summary      Exam paper for a bank
// @Tags         Exams
// @Produce      json
// @Param        user-id  header    string  true   "Caller ID"
// @Param        bankID   path      string  true   "Bank ID"
// @Param        limit    query     int     false  "Maximum number of questions"
// @Param        shuffle  query     bool    false  "Randomise question order"
// @Success      200      {object}  PaperResponse
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /api/exams/bank/{bankID} [get]
func (h *Handler) bankPaper(w http.ResponseWriter, r *http.Request) {
	config, err := examConfig(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	paper, err := h.exams.Paper(r.Context(), r.PathValue("bankID"), config)
	if h.respondServiceError(w, r, err, "bank") {
		return
	}
	respondJSON(w, http.StatusOK, toPaperResponse(paper))
}

// wrongPaper builds an exam over the caller's wrong questions.
// @Summary      Exam paper from wrong questions
// @Tags         Exams
// @Produce      json
// @Param        user-id  header    string  true   "Caller ID"
// @Param        limit    query     int     false  "Maximum number of questions"
// @Param        shuffle  query     bool    false  "Randomise question order"
// @Success      200      {object}  PaperResponse
// @Failure      400      {object}  map[string]string
// @Router       /api/exams/wrong [get]
func (h *Handler) wrongPaper(w http.ResponseWriter, r *http.Request) {
	config, err := examConfig(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	paper, err := h.exams.WrongPaper(r.Context(), currentUser(r).ID, config)
	if h.respondServiceError(w, r, err, "wrong question") {
		return
	}
	respondJSON(w, http.StatusOK, toPaperResponse(paper))
}

// gradeExam grades a finished exam and records the incorrect answers.
// @Summary      Grade an exam
// @Tags         Exams
// @Accept       json
// @Produce      json
// @Param        user-id  header    string        true  "Caller ID"
// @Param        body     body      GradeRequest  true  "Questions and answers"
// @Success      200      {object}  GradeResponse
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /api/exams/grade [post]
func (h *Handler) gradeExam(w http.ResponseWriter, r *http.Request) {
	var req GradeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	answers := make(map[string]question.Answer, len(req.Answers))
	for id, raw := range req.Answers {
		a, err := question.InferAnswer(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "answer for "+id+": "+err.Error())
			return
		}
		answers[id] = a
	}

	result, err := h.exams.Grade(r.Context(), currentUser(r).ID, req.QuestionIDs, answers)
	if h.respondServiceError(w, r, err, "question") {
		return
	}

	outcomes := make([]OutcomeResponse, len(result.Outcomes))
	for i, o := range result.Outcomes {
		outcomes[i] = OutcomeResponse{
			QuestionID:    o.QuestionID,
			Status:        string(o.Status),
			Submitted:     o.Submitted,
			CorrectAnswer: o.Correct,
		}
	}
	respondJSON(w, http.StatusOK, GradeResponse{
		Total:      result.Total,
		Correct:    result.Correct,
		Incorrect:  result.Incorrect,
		Unanswered: result.Unanswered,
		Accuracy:   result.Accuracy,
		Outcomes:   outcomes,
	})
}
