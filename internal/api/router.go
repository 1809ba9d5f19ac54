// internal/api/router.go
package api

import (
	"net/http"
	"time"
)

// RegisterRoutes wires every /api route onto mux. Routes other than login
// require a user-id header naming an existing user.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Users
	mux.HandleFunc("POST /api/users/login", h.login)
	mux.HandleFunc("GET /api/users", h.requireAdmin(h.listUsers))

	// Question banks
	mux.HandleFunc("POST /api/question-banks", h.requireUser(h.createBank))
	mux.HandleFunc("GET /api/question-banks/public", h.requireUser(h.listPublicBanks))
	mux.HandleFunc("GET /api/question-banks/user/{userID}", h.requireUser(h.listUserBanks))
	mux.HandleFunc("GET /api/question-banks/{bankID}", h.requireUser(h.getBank))
	mux.HandleFunc("PUT /api/question-banks/{bankID}", h.requireUser(h.updateBank))
	mux.HandleFunc("DELETE /api/question-banks/{bankID}", h.requireUser(h.deleteBank))
	mux.HandleFunc("POST /api/question-banks/{bankID}/questions/batch", h.requireUser(h.importBankQuestions))
	mux.HandleFunc("GET /api/question-banks/export/{bankID}", h.requireUser(h.exportBank))

	// Questions
	mux.HandleFunc("POST /api/questions", h.requireUser(h.createQuestion))
	mux.HandleFunc("POST /api/questions/import", h.requireUser(h.importQuestions))
	mux.HandleFunc("GET /api/questions/bank/{bankID}", h.requireUser(h.listBankQuestions))
	mux.HandleFunc("GET /api/questions/{questionID}", h.requireUser(h.getQuestion))
	mux.HandleFunc("PUT /api/questions/{questionID}", h.requireUser(h.updateQuestion))
	mux.HandleFunc("DELETE /api/questions/{questionID}", h.requireUser(h.deleteQuestion))
	mux.HandleFunc("POST /api/questions/{questionID}/answer", h.requireUser(h.answerQuestion))

	// Wrong questions
	mux.HandleFunc("POST /api/wrong-questions", h.requireUser(h.recordWrongAnswer))
	mux.HandleFunc("GET /api/wrong-questions/user/{userID}", h.requireUser(h.listWrongQuestions))
	mux.HandleFunc("GET /api/wrong-questions/stats/{userID}", h.requireUser(h.wrongQuestionStats))
	mux.HandleFunc("DELETE /api/wrong-questions/{id}", h.requireUser(h.deleteWrongQuestion))

	// Exams
	mux.HandleFunc("GET /api/exams/bank/{bankID}", h.requireUser(h.bankPaper))
	mux.HandleFunc("GET /api/exams/wrong", h.requireUser(h.wrongPaper))
	mux.HandleFunc("POST /api/exams/grade", h.requireUser(h.gradeExam))

	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "not found")
	})
}

// Health reports liveness without touching the store.
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
