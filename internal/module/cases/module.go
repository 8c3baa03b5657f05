package cases

import "github.com/gin-gonic/gin"

// CaseModule implements the app.Module interface for the case domain.
type CaseModule struct {
	handler *CaseHandler
}

// NewModule creates a new CaseModule with the given handler.
// Panics if h is nil.
func NewModule(h *CaseHandler) *CaseModule {
	if h == nil {
		panic("cases.NewModule: handler must not be nil")
	}
	return &CaseModule{handler: h}
}

// RegisterRoutes registers the case API routes. Trailing-slash forms of the
// collection path are served through gin's redirect handling.
func (m *CaseModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/cases", m.handler.List)
	api.POST("/cases", m.handler.Create)
	api.GET("/cases/:id", m.handler.Get)
}
