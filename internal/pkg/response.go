package pkg

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dcdanielca/casetracker/internal/domain"
	"github.com/dcdanielca/casetracker/internal/schema"
)

// ErrorResponse is the wire shape of every API error: a human-readable
// detail message, plus per-field messages for validation failures. Success
// responses carry the resource payload directly, with no envelope.
type ErrorResponse struct {
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Error maps err to its HTTP status and writes the detail payload.
func Error(c *gin.Context, err error) {
	status := domain.HTTPStatusCode(err)
	c.JSON(status, ErrorResponse{
		Detail: domain.Message(err, "Error interno del servidor"),
	})
}

// ValidationError writes a 400 response carrying field-level messages.
func ValidationError(c *gin.Context, fieldErrors map[string]string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Detail: "Error de validación",
		Errors: fieldErrors,
	})
}

// BindAndValidate decodes the JSON body into in and validates it against
// the case schema. On failure it writes the error response and returns
// false. Usage in handlers:
//
//	if !pkg.BindAndValidate(c, &in) { return }
func BindAndValidate(c *gin.Context, in *domain.CreateCaseInput) bool {
	if err := c.ShouldBindJSON(in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Cuerpo de la petición inválido"})
		return false
	}
	if errs := schema.ValidateCreateCase(*in); errs != nil {
		ValidationError(c, errs)
		return false
	}
	return true
}
