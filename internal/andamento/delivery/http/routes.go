package http

import (
	"github.com/gin-gonic/gin"

	"legal-office-management/internal/middleware"
)

// RegisterRoutes maps the andamento endpoints. All routes require Auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	processos := rg.Group("/processos/:id")
	{
		processos.GET("/andamentos", mw.Auth(), h.List)
		processos.GET("/intimacoes/urgentes", mw.Auth(), h.CountUrgent)
		processos.POST("/import", mw.Auth(), h.Import)
	}

	andamentos := rg.Group("/andamentos")
	{
		andamentos.GET("/:id", mw.Auth(), h.Detail)
		andamentos.PATCH("/:id/lida", mw.Auth(), h.MarkRead)
	}
}
