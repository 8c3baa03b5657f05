package cases

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dcdanielca/casetracker/internal/domain"
	"github.com/dcdanielca/casetracker/internal/pkg"
)

// CaseHandler handles REST API requests for the case resource. Responses
// carry the resource payload directly; errors carry a detail message.
type CaseHandler struct {
	svc domain.CaseService
}

// NewCaseHandler creates a new CaseHandler with the given service.
func NewCaseHandler(svc domain.CaseService) *CaseHandler {
	return &CaseHandler{svc: svc}
}

// List handles GET /api/v1/cases/.
func (h *CaseHandler) List(c *gin.Context) {
	f := pkg.ParseListFilters(c)

	result, err := h.svc.ListCases(c.Request.Context(), f)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get handles GET /api/v1/cases/:id.
func (h *CaseHandler) Get(c *gin.Context) {
	detail, err := h.svc.GetCase(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Create handles POST /api/v1/cases/.
func (h *CaseHandler) Create(c *gin.Context) {
	var in domain.CreateCaseInput
	if !pkg.BindAndValidate(c, &in) {
		return
	}

	created, err := h.svc.CreateCase(c.Request.Context(), in)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}
