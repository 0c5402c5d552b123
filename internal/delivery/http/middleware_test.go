package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIsAllowedOrigin(t *testing.T) {
	testCases := []struct {
		name    string
		origin  string
		allowed []string
		want    bool
	}{
		{"exact match", "https://app.labelwise.in", []string{"https://app.labelwise.in"}, true},
		{"no match", "https://evil.example.com", []string{"https://app.labelwise.in"}, false},
		{"wildcard matches everything", "https://anything.example.com", []string{"*"}, true},
		{"prefix wildcard match", "https://staging.labelwise.in", []string{"https://staging.labelwise*"}, true},
		{"prefix wildcard miss", "https://prod.labelwise.in", []string{"https://staging.labelwise*"}, false},
		{"empty allow list", "https://app.labelwise.in", nil, false},
		{"second entry matches", "http://localhost:3000", []string{"https://app.labelwise.in", "http://localhost:3000"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isAllowedOrigin(tc.origin, tc.allowed); got != tc.want {
				t.Errorf("isAllowedOrigin(%q, %v) = %v, want %v", tc.origin, tc.allowed, got, tc.want)
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(CORSMiddleware([]string{"https://app.labelwise.in"}))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	t.Run("sets headers for an allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://app.labelwise.in")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.labelwise.in" {
			t.Errorf("Allow-Origin = %q", got)
		}
	})

	t.Run("skips headers for a disallowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Allow-Origin = %q, want unset", got)
		}
	})

	t.Run("answers preflight with 204", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "https://app.labelwise.in")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", w.Code)
		}
	})
}
