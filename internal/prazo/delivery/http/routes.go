package http

import (
	"github.com/gin-gonic/gin"

	"legal-office-management/internal/middleware"
)

// RegisterRoutes maps the prazo endpoints. All routes require Auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	prazos := rg.Group("/prazos")
	{
		prazos.POST("", mw.Auth(), h.Create)
		prazos.GET("", mw.Auth(), h.List)
		prazos.DELETE("/:id", mw.Auth(), h.Delete)
	}

	rg.POST("/andamentos/:id/prazo", mw.Auth(), h.CreateFromAndamento)
}
