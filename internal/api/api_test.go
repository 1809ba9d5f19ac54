package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/examprep/backend/internal/api"
	"github.com/examprep/backend/internal/service"
	"github.com/examprep/backend/internal/store"
)

type testServer struct {
	t       *testing.T
	handler http.Handler
	store   *store.SQLiteStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	wrongs := service.NewWrongAnswers(s, logger)
	h := api.NewHandler(
		service.NewAccounts(s, logger),
		service.NewLibrary(s, logger),
		wrongs,
		service.NewExams(s, wrongs, logger),
		logger,
	)
	mux := http.NewServeMux()
	api.RegisterRoutes(mux, h)

	return &testServer{t: t, handler: api.RequestID(mux), store: s}
}

// do sends a JSON request as userID (empty for anonymous) and decodes the
// response body into out when out is non-nil.
func (ts *testServer) do(method, path, userID string, body any, out any) *httptest.ResponseRecorder {
	ts.t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			ts.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("user-id", userID)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	if out != nil && rec.Code < 300 {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			ts.t.Fatalf("%s %s: decode response %q: %v", method, path, rec.Body.String(), err)
		}
	}
	return rec
}

func (ts *testServer) login(name string) api.UserResponse {
	ts.t.Helper()
	var resp api.LoginResponse
	rec := ts.do(http.MethodPost, "/api/users/login", "", map[string]string{"name": name}, &resp)
	if rec.Code != http.StatusCreated && rec.Code != http.StatusOK {
		ts.t.Fatalf("login %s: status %d: %s", name, rec.Code, rec.Body.String())
	}
	return resp.User
}

// seedBank creates a public bank owned by ownerID holding Q1 (single, B),
// Q2 (multiple, A C) and Q3 (tf, true).
func (ts *testServer) seedBank(ownerID string) (api.BankResponse, []api.QuestionResponse) {
	ts.t.Helper()
	var bank api.BankResponse
	rec := ts.do(http.MethodPost, "/api/question-banks", ownerID,
		map[string]any{"name": "Go basics", "is_public": true}, &bank)
	if rec.Code != http.StatusCreated {
		ts.t.Fatalf("create bank: status %d: %s", rec.Code, rec.Body.String())
	}

	options := []map[string]string{
		{"label": "A", "content": "a"}, {"label": "B", "content": "b"},
		{"label": "C", "content": "c"}, {"label": "D", "content": "d"},
	}
	batch := map[string]any{"questions": []map[string]any{
		{"type": "single", "content": "Q1", "options": options, "answer": "B"},
		{"type": "multiple", "content": "Q2", "options": options, "answer": []string{"A", "C"}},
		{"type": "tf", "content": "Q3", "answer": true, "explanation": "It is."},
	}}
	var imported api.ImportQuestionsResponse
	rec = ts.do(http.MethodPost, "/api/question-banks/"+bank.ID+"/questions/batch", ownerID, batch, &imported)
	if rec.Code != http.StatusCreated {
		ts.t.Fatalf("batch import: status %d: %s", rec.Code, rec.Body.String())
	}
	return bank, imported.Questions
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)

	var first api.LoginResponse
	rec := ts.do(http.MethodPost, "/api/users/login", "", map[string]string{"name": "alice"}, &first)
	if rec.Code != http.StatusCreated || !first.Created {
		t.Fatalf("first login: status %d created %v", rec.Code, first.Created)
	}

	var second api.LoginResponse
	rec = ts.do(http.MethodPost, "/api/users/login", "", map[string]string{"name": "alice"}, &second)
	if rec.Code != http.StatusOK || second.Created {
		t.Errorf("second login: status %d created %v", rec.Code, second.Created)
	}
	if second.User.ID != first.User.ID {
		t.Errorf("second login returned a different user")
	}

	var banks []api.BankResponse
	ts.do(http.MethodGet, "/api/question-banks/user/"+first.User.ID, first.User.ID, nil, &banks)
	if len(banks) != 1 || banks[0].IsPublic {
		t.Errorf("expected one private wrong-answer bank, got %+v", banks)
	}

	rec = ts.do(http.MethodPost, "/api/users/login", "", map[string]string{"name": " "}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("blank name: status %d, want 400", rec.Code)
	}
}

func TestGate(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.login("alice")

	tests := []struct {
		name   string
		userID string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"unknown user", "0123456789abcdef01234567", http.StatusUnauthorized},
		{"known user", alice.ID, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(http.MethodGet, "/api/question-banks/public", tt.userID, nil, nil)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}

	if rec := ts.do(http.MethodGet, "/api/users", alice.ID, nil, nil); rec.Code != http.StatusForbidden {
		t.Errorf("student listing users: status %d, want 403", rec.Code)
	}
}

func TestAdminListsUsers(t *testing.T) {
	ts := newTestServer(t)
	ts.login("alice")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	admin, err := service.NewAccounts(ts.store, logger).EnsureAdmin(t.Context(), "root")
	if err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}

	var users []api.UserResponse
	rec := ts.do(http.MethodGet, "/api/users", admin.ID, nil, &users)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
}

func TestAnswerFlow(t *testing.T) {
	ts := newTestServer(t)
	u1 := ts.login("U1")
	bank, questions := ts.seedBank(u1.ID)
	q1, q3 := questions[0], questions[2]

	var verdict api.VerdictResponse
	rec := ts.do(http.MethodPost, "/api/questions/"+q1.ID+"/answer", u1.ID, map[string]any{"answer": "B"}, &verdict)
	if rec.Code != http.StatusOK || !verdict.Correct || verdict.WrongQuestion != nil {
		t.Fatalf("correct answer: status %d verdict %+v", rec.Code, verdict)
	}

	for _, answer := range []bool{false, false} {
		rec = ts.do(http.MethodPost, "/api/questions/"+q3.ID+"/answer", u1.ID, map[string]any{"answer": answer}, &verdict)
		if rec.Code != http.StatusOK || verdict.Correct || verdict.WrongQuestion == nil {
			t.Fatalf("wrong answer: status %d verdict %+v", rec.Code, verdict)
		}
	}

	var entries []api.WrongQuestionResponse
	ts.do(http.MethodGet, "/api/wrong-questions/user/"+u1.ID, u1.ID, nil, &entries)
	if len(entries) != 1 || entries[0].QuestionID != q3.ID {
		t.Fatalf("expected one entry for Q3, got %+v", entries)
	}
	if entries[0].Question == nil || entries[0].Question.Content != "Q3" {
		t.Errorf("entry should embed its question, got %+v", entries[0].Question)
	}

	var stats api.StatsResponse
	rec = ts.do(http.MethodGet, "/api/wrong-questions/stats/"+u1.ID, u1.ID, nil, &stats)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats: status %d", rec.Code)
	}
	if stats.Total != 1 || stats.TypeBreakdown["tf"] != 1 || stats.TypeBreakdown["single"] != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if len(stats.Banks) != 1 || stats.Banks[0].ID != bank.ID {
		t.Errorf("stats banks = %+v", stats.Banks)
	}
}

func TestRecordWrongAnswer_Validation(t *testing.T) {
	ts := newTestServer(t)
	u1 := ts.login("U1")
	_, questions := ts.seedBank(u1.ID)
	q3 := questions[2]

	rec := ts.do(http.MethodPost, "/api/wrong-questions", u1.ID,
		map[string]any{"question_id": q3.ID, "wrong_answer": "true"}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("string answer for tf: status %d, want 400", rec.Code)
	}

	rec = ts.do(http.MethodPost, "/api/wrong-questions", u1.ID,
		map[string]any{"question_id": "0123456789abcdef01234567", "wrong_answer": false}, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown question: status %d, want 404", rec.Code)
	}

	var wq api.WrongQuestionResponse
	rec = ts.do(http.MethodPost, "/api/wrong-questions", u1.ID,
		map[string]any{"question_id": q3.ID, "wrong_answer": false}, &wq)
	if rec.Code != http.StatusCreated || wq.UserID != u1.ID {
		t.Errorf("record: status %d body %s", rec.Code, rec.Body.String())
	}

	var again api.WrongQuestionResponse
	rec = ts.do(http.MethodPost, "/api/wrong-questions", u1.ID,
		map[string]any{"question_id": q3.ID, "wrong_answer": false}, &again)
	if rec.Code != http.StatusCreated {
		t.Errorf("record again: status %d, want 201", rec.Code)
	}
	if again.ID != wq.ID {
		t.Errorf("record again: ID = %s, want %s", again.ID, wq.ID)
	}
}

func TestStatsOfOtherUserForbidden(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.login("alice")
	bob := ts.login("bob")

	rec := ts.do(http.MethodGet, "/api/wrong-questions/stats/"+alice.ID, bob.ID, nil, nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestOwnershipAndCascade(t *testing.T) {
	ts := newTestServer(t)
	owner := ts.login("owner")
	other := ts.login("other")
	bank, questions := ts.seedBank(owner.ID)

	if rec := ts.do(http.MethodDelete, "/api/question-banks/"+bank.ID, other.ID, nil, nil); rec.Code != http.StatusForbidden {
		t.Errorf("non-owner delete: status %d, want 403", rec.Code)
	}
	if rec := ts.do(http.MethodPut, "/api/questions/"+questions[0].ID, other.ID, map[string]any{"content": "x"}, nil); rec.Code != http.StatusForbidden {
		t.Errorf("non-owner update: status %d, want 403", rec.Code)
	}

	ts.do(http.MethodPost, "/api/questions/"+questions[1].ID+"/answer", other.ID, map[string]any{"answer": []string{"A"}}, nil)

	if rec := ts.do(http.MethodDelete, "/api/question-banks/"+bank.ID, owner.ID, nil, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("owner delete: status %d", rec.Code)
	}
	if rec := ts.do(http.MethodGet, "/api/questions/"+questions[0].ID, owner.ID, nil, nil); rec.Code != http.StatusNotFound {
		t.Errorf("question after bank delete: status %d, want 404", rec.Code)
	}

	var entries []api.WrongQuestionResponse
	ts.do(http.MethodGet, "/api/wrong-questions/user/"+other.ID, other.ID, nil, &entries)
	if len(entries) != 0 {
		t.Errorf("wrong questions should be removed with the bank, got %d", len(entries))
	}
}

func TestUpdateBankAndCount(t *testing.T) {
	ts := newTestServer(t)
	owner := ts.login("owner")
	bank, _ := ts.seedBank(owner.ID)

	var got api.BankResponse
	ts.do(http.MethodGet, "/api/question-banks/"+bank.ID, owner.ID, nil, &got)
	if got.QuestionCount != 3 {
		t.Errorf("QuestionCount = %d, want 3", got.QuestionCount)
	}

	rec := ts.do(http.MethodPut, "/api/question-banks/"+bank.ID, owner.ID, map[string]any{"is_public": false}, &got)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status %d", rec.Code)
	}
	if got.IsPublic || got.Name != "Go basics" {
		t.Errorf("update should only change visibility, got %+v", got)
	}
}

func TestExamGrade(t *testing.T) {
	ts := newTestServer(t)
	u1 := ts.login("U1")
	bank, questions := ts.seedBank(u1.ID)

	var paper api.PaperResponse
	rec := ts.do(http.MethodGet, "/api/exams/bank/"+bank.ID+"?limit=2", u1.ID, nil, &paper)
	if rec.Code != http.StatusOK || len(paper.Questions) != 2 {
		t.Fatalf("paper: status %d questions %d", rec.Code, len(paper.Questions))
	}
	if strings.Contains(rec.Body.String(), `"answer"`) {
		t.Errorf("exam paper must not reveal answers: %s", rec.Body.String())
	}

	ids := []string{questions[0].ID, questions[1].ID, questions[2].ID}
	var result api.GradeResponse
	rec = ts.do(http.MethodPost, "/api/exams/grade", u1.ID, map[string]any{
		"question_ids": ids,
		"answers": map[string]any{
			questions[0].ID: "B",
			questions[1].ID: []string{"C", "A", "B"},
			questions[2].ID: nil,
		},
	}, &result)
	if rec.Code != http.StatusOK {
		t.Fatalf("grade: status %d: %s", rec.Code, rec.Body.String())
	}
	if result.Correct != 1 || result.Incorrect != 1 || result.Unanswered != 1 {
		t.Errorf("result = %+v", result)
	}

	rec = ts.do(http.MethodGet, "/api/exams/wrong", u1.ID, nil, &paper)
	if rec.Code != http.StatusOK || len(paper.Questions) != 1 || paper.Questions[0].ID != questions[1].ID {
		t.Errorf("wrong paper = %+v", paper)
	}

	if rec := ts.do(http.MethodGet, "/api/exams/bank/"+bank.ID+"?limit=zero", u1.ID, nil, nil); rec.Code != http.StatusBadRequest {
		t.Errorf("bad limit: status %d, want 400", rec.Code)
	}
}

func TestExportRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	owner := ts.login("owner")
	bank, _ := ts.seedBank(owner.ID)

	rec := ts.do(http.MethodGet, "/api/question-banks/export/"+bank.ID, owner.ID, nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("export: status %d", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Go-basics.json") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	var copyBank api.BankResponse
	ts.do(http.MethodPost, "/api/question-banks", owner.ID, map[string]any{"name": "Copy"}, &copyBank)

	req := httptest.NewRequest(http.MethodPost, "/api/question-banks/"+copyBank.ID+"/questions/batch", bytes.NewReader(rec.Body.Bytes()))
	req.Header.Set("user-id", owner.ID)
	imported := httptest.NewRecorder()
	ts.handler.ServeHTTP(imported, req)
	if imported.Code != http.StatusCreated {
		t.Fatalf("re-import: status %d: %s", imported.Code, imported.Body.String())
	}

	var questions []api.QuestionResponse
	ts.do(http.MethodGet, "/api/questions/bank/"+copyBank.ID, owner.ID, nil, &questions)
	if len(questions) != 3 || questions[2].Type != "tf" {
		t.Errorf("re-imported questions = %+v", questions)
	}
}

func TestBankRoutes_UserAndExportDoNotOverlap(t *testing.T) {
	ts := newTestServer(t)
	owner := ts.login("owner")
	bank, _ := ts.seedBank(owner.ID)

	var banks []api.BankResponse
	rec := ts.do(http.MethodGet, "/api/question-banks/user/export", owner.ID, nil, &banks)
	if rec.Code != http.StatusOK || len(banks) != 0 {
		t.Errorf("banks of user \"export\": status %d, banks %+v", rec.Code, banks)
	}

	// the wrong-answer bank from login plus the seeded one
	rec = ts.do(http.MethodGet, "/api/question-banks/user/"+owner.ID, owner.ID, nil, &banks)
	if rec.Code != http.StatusOK || len(banks) != 2 || banks[1].ID != bank.ID {
		t.Errorf("banks of owner: status %d, banks %+v", rec.Code, banks)
	}

	var export api.ExportData
	rec = ts.do(http.MethodGet, "/api/question-banks/export/"+bank.ID, owner.ID, nil, &export)
	if rec.Code != http.StatusOK || export.Bank.Name != bank.Name || len(export.Questions) != 3 {
		t.Errorf("export: status %d, document %+v", rec.Code, export)
	}
}

func TestBankResponses_CarryCreatorName(t *testing.T) {
	ts := newTestServer(t)
	owner := ts.login("owner")
	reader := ts.login("reader")
	bank, _ := ts.seedBank(owner.ID)

	if bank.CreatorName != "owner" {
		t.Errorf("create: creator_name = %q, want owner", bank.CreatorName)
	}

	var got api.BankResponse
	ts.do(http.MethodGet, "/api/question-banks/"+bank.ID, reader.ID, nil, &got)
	if got.CreatorName != "owner" {
		t.Errorf("detail: creator_name = %q, want owner", got.CreatorName)
	}

	var public []api.BankResponse
	ts.do(http.MethodGet, "/api/question-banks/public", reader.ID, nil, &public)
	if len(public) != 1 || public[0].CreatorName != "owner" {
		t.Errorf("public: %+v", public)
	}
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/nothing-here", "", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] != "not found" {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRequestIDHeader(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/question-banks/public", "", nil, nil)
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/question-banks/public", nil)
	req.Header.Set("X-Request-ID", "abc")
	rec = httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "abc" {
		t.Errorf("X-Request-ID = %q, want abc", got)
	}
}

func TestMalformedJSON(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	api.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["status"] != "ok" {
		t.Errorf("body = %s", rec.Body.String())
	}
	if _, err := time.Parse(time.RFC3339, body["timestamp"]); err != nil {
		t.Errorf("timestamp %q: %v", body["timestamp"], err)
	}
}
