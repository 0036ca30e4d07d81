package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aulakit/aula-backend/internal/http/middleware"
	"github.com/aulakit/aula-backend/internal/platform/ctxutil"
)

func traceFor(t *testing.T, headers map[string]string) (*ctxutil.TraceData, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AttachRequestContext())

	var td *ctxutil.TraceData
	r.GET("/", func(c *gin.Context) {
		td = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return td, w
}

func TestAttachRequestContextResolvesTeacher(t *testing.T) {
	td, w := traceFor(t, map[string]string{"X-Teacher-ID": "42"})
	if td == nil {
		t.Fatalf("no trace data on request context")
	}
	if td.TeacherID != 42 {
		t.Fatalf("teacher id = %d, want 42", td.TeacherID)
	}
	if td.RequestID == "" {
		t.Fatalf("request id not assigned")
	}
	if w.Header().Get("X-Request-ID") != td.RequestID {
		t.Fatalf("response request id %q != %q", w.Header().Get("X-Request-ID"), td.RequestID)
	}
}

func TestAttachRequestContextIgnoresBadHeader(t *testing.T) {
	td, _ := traceFor(t, map[string]string{"X-Teacher-ID": "profe"})
	if td == nil || td.TeacherID != 0 {
		t.Fatalf("trace data = %+v, want anonymous", td)
	}

	td, _ = traceFor(t, nil)
	if td == nil || td.TeacherID != 0 {
		t.Fatalf("trace data without header = %+v, want anonymous", td)
	}
}
