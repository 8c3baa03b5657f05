package pkg

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dcdanielca/casetracker/internal/domain"
)

func TestError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "not found",
			err:        domain.ErrCaseNotFound,
			wantStatus: http.StatusNotFound,
			wantDetail: "Caso no encontrado",
		},
		{
			name:       "validation",
			err:        domain.NewAppError(domain.CodeValidation, "Error de validación", nil),
			wantStatus: http.StatusBadRequest,
			wantDetail: "Error de validación",
		},
		{
			name:       "internal",
			err:        domain.NewAppError(domain.CodeInternal, "Error interno del servidor", nil),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Error interno del servidor",
		},
		{
			name:       "plain error falls back",
			err:        http.ErrBodyNotAllowed,
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Error interno del servidor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Error(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var body ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal body: %v", err)
			}
			if body.Detail != tt.wantDetail {
				t.Errorf("detail = %q, want %q", body.Detail, tt.wantDetail)
			}
			if body.Errors != nil {
				t.Errorf("errors = %v, want omitted", body.Errors)
			}
		})
	}
}

func TestValidationError_CarriesFieldMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ValidationError(c, map[string]string{
		"title":   "El título debe tener al menos 5 caracteres",
		"queries": "Debe haber al menos una query",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body.Detail != "Error de validación" {
		t.Errorf("detail = %q", body.Detail)
	}
	if body.Errors["title"] != "El título debe tener al menos 5 caracteres" {
		t.Errorf("errors = %v", body.Errors)
	}
}

func TestBindAndValidate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validBody := `{
		"title": "Lentitud en reportes",
		"description": "Los reportes tardan demasiado en generarse",
		"case_type": "support",
		"priority": "high",
		"created_by": "analista",
		"queries": [
			{"database_name": "ventas", "schema_name": "public", "query_text": "SELECT * FROM pedidos"}
		]
	}`

	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantDetail string
	}{
		{name: "valid payload", body: validBody, wantOK: true},
		{name: "malformed json", body: "{not json", wantOK: false, wantDetail: "Cuerpo de la petición inválido"},
		{name: "empty payload", body: "{}", wantOK: false, wantDetail: "Error de validación"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/api/v1/cases", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var in domain.CreateCaseInput
			ok := BindAndValidate(c, &in)

			if ok != tt.wantOK {
				t.Fatalf("BindAndValidate() = %v, want %v (body %s)", ok, tt.wantOK, w.Body.String())
			}
			if tt.wantOK {
				if in.Title != "Lentitud en reportes" {
					t.Errorf("bound title = %q", in.Title)
				}
				return
			}

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			var body ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal body: %v", err)
			}
			if body.Detail != tt.wantDetail {
				t.Errorf("detail = %q, want %q", body.Detail, tt.wantDetail)
			}
		})
	}
}
