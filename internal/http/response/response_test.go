package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aulakit/aula-backend/internal/http/response"
	"github.com/aulakit/aula-backend/internal/pkg/apperr"
)

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorEnvelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	response.RespondFromError(c, "boom", err)

	var env response.ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return w, env
}

func TestRespondFromErrorMapsValidation(t *testing.T) {
	w, env := respond(t, apperr.Validation("order %d already taken", 3))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env.Error.Code != "validation" || env.Error.Message != "order 3 already taken" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestRespondFromErrorMapsNotFound(t *testing.T) {
	w, env := respond(t, apperr.NotFound("topic", 42))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if env.Error.Code != "not_found" {
		t.Fatalf("envelope code = %q", env.Error.Code)
	}
}

func TestRespondFromErrorDefaultsTo500(t *testing.T) {
	w, env := respond(t, errors.New("connection reset"))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if env.Error.Code != "boom" {
		t.Fatalf("envelope code = %q, want the caller's code", env.Error.Code)
	}
}
