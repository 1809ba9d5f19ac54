package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/examprep/backend/internal/domain/question"
	"github.com/examprep/backend/internal/domain/wrongquestion"
)

// ── Request / Response types ────────────────────────────────────────────────

type RecordWrongAnswerRequest struct {
	QuestionID  string          `json:"question_id" example:"65f1c2a4e4b0a1b2c3d4e5f7"`
	WrongAnswer json.RawMessage `json:"wrong_answer" swaggertype:"string" example:"C"`
}

func (r *RecordWrongAnswerRequest) Validate() error {
	if r.QuestionID == "" {
		return errors.New("question_id is required")
	}
	if len(r.WrongAnswer) == 0 {
		return errors.New("wrong_answer is required")
	}
	return nil
}

type WrongQuestionResponse struct {
	ID          string            `json:"id" example:"65f1c2a4e4b0a1b2c3d4e5f8"`
	UserID      string            `json:"user_id" example:"65f1c2a4e4b0a1b2c3d4e5f0"`
	QuestionID  string            `json:"question_id" example:"65f1c2a4e4b0a1b2c3d4e5f7"`
	WrongAnswer question.Answer   `json:"wrong_answer" swaggertype:"string" example:"C"`
	Timestamp   time.Time         `json:"timestamp"`
	Question    *QuestionResponse `json:"question"`
}

type BankRefResponse struct {
	ID   string `json:"id" example:"65f1c2a4e4b0a1b2c3d4e5f6"`
	Name string `json:"name" example:"Go concurrency"`
}

type StatsResponse struct {
	Total         int               `json:"total" example:"4"`
	TypeBreakdown map[string]int    `json:"type_breakdown"`
	Banks         []BankRefResponse `json:"banks"`
}

// toWrongQuestionResponse embeds q when known. A nil q marks a record whose
// question has been deleted, or a response that does not join questions.
func toWrongQuestionResponse(wq *wrongquestion.WrongQuestion, q *question.Question) WrongQuestionResponse {
	response := WrongQuestionResponse{
		ID:          wq.ID,
		UserID:      wq.UserID,
		QuestionID:  wq.QuestionID,
		WrongAnswer: wq.WrongAnswer,
		Timestamp:   wq.Timestamp,
	}
	if q != nil {
		qr := toQuestionResponse(q)
		response.Question = &qr
	}
	return response
}

func toStatsResponse(s wrongquestion.Stats) StatsResponse {
	breakdown := make(map[string]int, len(s.TypeBreakdown))
	for t, n := range s.TypeBreakdown {
		breakdown[string(t)] = n
	}
	banks := make([]BankRefResponse, len(s.Banks))
	for i, b := range s.Banks {
		banks[i] = BankRefResponse{ID: b.ID, Name: b.Name}
	}
	return StatsResponse{Total: s.Total, TypeBreakdown: breakdown, Banks: banks}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// recordWrongAnswer stores the caller's latest wrong answer to a question.
// @Summary      Record a wrong answer
// @Description  One record per user and question; recording again overwrites the answer and timestamp.
// @Tags         WrongQuestions
// @Accept       json
// @Produce      json
// @Param        user-id  header    string                    true  "Caller ID"
// @Param        body     body      RecordWrongAnswerRequest  true  "Question and answer"
// @Success      201      {object}  WrongQuestionResponse
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string  "question not found"
// @Router       /api/wrong-questions [post]
func (h *Handler) recordWrongAnswer(w http.ResponseWriter, r *http.Request) {
	var req RecordWrongAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	answer, err := question.InferAnswer(req.WrongAnswer)
	if h.respondServiceError(w, r, err, "question") {
		return
	}

	wq, err := h.wrongs.Record(r.Context(), currentUser(r).ID, req.QuestionID, answer)
	if h.respondServiceError(w, r, err, "question") {
		return
	}
	respondJSON(w, http.StatusCreated, toWrongQuestionResponse(wq, nil))
}

// listWrongQuestions returns a user's wrong-question log, newest first.
// @Summary      List wrong questions
// @Description  Records whose question was deleted are returned with a null question.
// @Tags         WrongQuestions
// @Produce      json
// @Param        user-id  header    string  true  "Caller ID"
// @Param        userID   path      string  true  "User ID"
// @Success      200      {array}   WrongQuestionResponse
// @Failure      403      {object}  map[string]string
// @Router       /api/wrong-questions/user/{userID} [get]
func (h *Handler) listWrongQuestions(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	if !allowSelf(w, r, userID) {
		return
	}

	entries, err := h.wrongs.List(r.Context(), userID)
	if h.respondServiceError(w, r, err, "wrong question") {
		return
	}

	response := make([]WrongQuestionResponse, len(entries))
	for i := range entries {
		response[i] = toWrongQuestionResponse(&entries[i].Record, entries[i].Question)
	}
	respondJSON(w, http.StatusOK, response)
}

// wrongQuestionStats summarises a user's wrong answers.
// @Summary      Wrong-answer statistics
// @Tags         WrongQuestions
// @Produce      json
// @Param        user-id  header    string  true  "Caller ID"
// @Param        userID   path      string  true  "User ID"
// @Success      200      {object}  StatsResponse
// @Failure      403      {object}  map[string]string
// @Router       /api/wrong-questions/stats/{userID} [get]
func (h *Handler) wrongQuestionStats(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	if !allowSelf(w, r, userID) {
		return
	}

	stats, err := h.wrongs.Stats(r.Context(), userID)
	if h.respondServiceError(w, r, err, "wrong question") {
		return
	}
	respondJSON(w, http.StatusOK, toStatsResponse(stats))
}

// deleteWrongQuestion removes one of the caller's records.
// @Summary      Delete a wrong question
// @Tags         WrongQuestions
// @Param        user-id  header  string  true  "Caller ID"
// @Param        id       path    string  true  "Wrong question ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/wrong-questions/{id} [delete]
func (h *Handler) deleteWrongQuestion(w http.ResponseWriter, r *http.Request) {
	err := h.wrongs.Remove(r.Context(), currentUser(r).ID, r.PathValue("id"))
	if h.respondServiceError(w, r, err, "wrong question") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
