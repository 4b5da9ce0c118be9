package http

import (
	"github.com/gin-gonic/gin"

	"legal-office-management/internal/middleware"
)

// RegisterRoutes maps the intimação endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	intimacoes := rg.Group("/intimacoes")
	{
		intimacoes.POST("/parse", mw.Auth(), h.Parse)
	}
}
