package http

import (
	"github.com/gin-gonic/gin"

	"legal-office-management/internal/middleware"
	"legal-office-management/pkg/response"
)

// Create godoc
// @Summary     Create a prazo
// @Description Inserts a deadline and mirrors it to the office agenda when configured.
// @Tags        Prazos
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Deadline"
// @Success     201 {object} prazoResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/prazos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, date, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	p, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput(date))
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, newPrazoResp(p))
}

// CreateFromAndamento godoc
// @Summary     Create a prazo from an intimação
// @Description "Criar Prazo": title, description and date are derived from the parsed andamento.
// @Tags        Prazos
// @Accept      json
// @Produce     json
// @Param       id   path string           true "Andamento ID"
// @Param       body body fromAndamentoReq true "Project and optional title override"
// @Success     201 {object} prazoResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Andamento not found"
// @Failure     422 {object} response.Resp "No deadline can be derived"
// @Router      /api/v1/andamentos/{id}/prazo [POST]
func (h *handler) CreateFromAndamento(c *gin.Context) {
	ctx := c.Request.Context()

	req, hoje, err := h.processFromAndamentoReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	p, err := h.uc.CreateFromAndamento(ctx, middleware.GetScope(c), req.toInput(hoje))
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateFromAndamento: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, newPrazoResp(p))
}

// List godoc
// @Summary     List prazos
// @Description Returns deadlines of a project or process ordered by date.
// @Tags        Prazos
// @Accept      json
// @Produce     json
// @Param       project_id      query string false "Project ID"
// @Param       processo_oab_id query string false "Processo OAB ID"
// @Param       from            query string false "First day (inclusive)"
// @Param       to              query string false "Last day (inclusive)"
// @Param       limit           query int    false "Page size (default: 50, max: 200)"
// @Param       offset          query int    false "Page offset"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/prazos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, from, to, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, middleware.GetScope(c), req.toInput(from, to))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(output))
}

// Delete godoc
// @Summary     Delete a prazo
// @Description Removes a deadline and its agenda event.
// @Tags        Prazos
// @Accept      json
// @Produce     json
// @Param       id path string true "Prazo ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/prazos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, middleware.GetScope(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
