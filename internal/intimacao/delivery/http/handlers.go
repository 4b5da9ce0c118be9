package http

import (
	"github.com/gin-gonic/gin"

	"legal-office-management/pkg/response"
)

// Parse godoc
// @Summary     Parse an intimação text
// @Description Extracts dates, prazo, status and urgency from an andamento description. Nothing is stored.
// @Tags        Intimacoes
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Description and optional simulated today"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Router      /api/v1/intimacoes/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	req, hoje, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newParseResp(hoje, h.parser.Evaluate(req.Descricao, hoje)))
}
