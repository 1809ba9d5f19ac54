package api_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/examprep/backend/internal/api"
)

func TestRateLimiter(t *testing.T) {
	rl := api.NewRateLimiter(2, time.Hour)
	handler := rl.Middleware("/api/")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(path, addr string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 2; i++ {
		if code := send("/api/x", "10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, code)
		}
	}
	if code := send("/api/x", "10.0.0.1:5678"); code != http.StatusTooManyRequests {
		t.Errorf("third request: status %d, want 429", code)
	}
	if code := send("/api/x", "10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("other client: status %d, want 200", code)
	}
	if code := send("/health", "10.0.0.1:1234"); code != http.StatusOK {
		t.Errorf("paths outside the prefix are not limited: status %d", code)
	}
}

func TestGzip(t *testing.T) {
	gzip, err := api.Gzip(1024)
	if err != nil {
		t.Fatalf("Gzip: %v", err)
	}
	large := strings.Repeat("a", 4096)
	handler := gzip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		if r.URL.Path == "/small" {
			io.WriteString(w, "ok")
			return
		}
		io.WriteString(w, large)
	}))

	tests := []struct {
		name     string
		path     string
		optOut   bool
		wantGzip bool
	}{
		{"large response", "/large", false, true},
		{"small response", "/small", false, false},
		{"opted out", "/large", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Accept-Encoding", "gzip")
			if tt.optOut {
				req.Header.Set("x-no-compression", "1")
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			gzipped := rec.Header().Get("Content-Encoding") == "gzip"
			if gzipped != tt.wantGzip {
				t.Errorf("gzipped = %v, want %v", gzipped, tt.wantGzip)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	called := false
	handler := api.CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/questions", nil))

	if rec.Code != http.StatusNoContent || called {
		t.Errorf("preflight: status %d, reached handler %v", rec.Code, called)
	}
	if !strings.Contains(rec.Header().Get("Access-Control-Allow-Headers"), "user-id") {
		t.Errorf("user-id header must be allowed: %q", rec.Header().Get("Access-Control-Allow-Headers"))
	}
}

func TestLoggingRecordsStatus(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	handler := api.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	if !strings.Contains(buf.String(), `"status":418`) {
		t.Errorf("log line missing status: %s", buf.String())
	}
}
