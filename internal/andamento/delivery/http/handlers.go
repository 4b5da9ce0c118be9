package http

import (
	"github.com/gin-gonic/gin"

	"legal-office-management/internal/andamento"
	"legal-office-management/internal/middleware"
	"legal-office-management/pkg/response"
)

// List godoc
// @Summary     List andamentos of a process
// @Description Returns the process docket entries, newest first, each evaluated as an intimação against hoje.
// @Tags        Andamentos
// @Accept      json
// @Produce     json
// @Param       id          path  string true  "Processo OAB ID"
// @Param       only_unread query bool   false "Only unread entries"
// @Param       limit       query int    false "Page size (default: 50, max: 200)"
// @Param       offset      query int    false "Page offset (default: 0)"
// @Param       hoje        query string false "Simulated today (dd/mm/yyyy, yyyy-mm-dd, amanhã, em 3 dias)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/processos/{id}/andamentos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, hoje, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, middleware.GetScope(c), req.toInput(hoje))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// CountUrgent godoc
// @Summary     Count urgent intimações
// @Description Counts unread, open intimações of a process whose urgency is critica or alta.
// @Tags        Andamentos
// @Accept      json
// @Produce     json
// @Param       id   path  string true  "Processo OAB ID"
// @Param       hoje query string false "Simulated today"
// @Success     200 {object} countResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/processos/{id}/intimacoes/urgentes [GET]
func (h *handler) CountUrgent(c *gin.Context) {
	ctx := c.Request.Context()

	hoje, err := h.resolveHoje(c.Query("hoje"))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	count, err := h.uc.CountUrgent(ctx, middleware.GetScope(c), andamento.CountUrgentInput{
		ProcessoOABID: c.Param("id"),
		Now:           hoje,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.CountUrgent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, countResp{Count: count})
}

// Import godoc
// @Summary     Import lawsuit movements
// @Description Fetches the lawsuit movements from the judicial-data provider and stores the new ones.
// @Tags        Andamentos
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Processo OAB ID"
// @Param       body body importReq true "CNJ number"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Lawsuit not found at provider"
// @Failure     503 {object} response.Resp "Provider not configured"
// @Router      /api/v1/processos/{id}/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Import(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Import: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newImportResp(output))
}

// Detail godoc
// @Summary     Get andamento detail
// @Description Returns one andamento evaluated as an intimação against hoje.
// @Tags        Andamentos
// @Accept      json
// @Produce     json
// @Param       id   path  string true  "Andamento ID"
// @Param       hoje query string false "Simulated today"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/andamentos/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	hoje, err := h.resolveHoje(c.Query("hoje"))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	item, err := h.uc.Detail(ctx, middleware.GetScope(c), andamento.DetailInput{ID: c.Param("id"), Now: hoje})
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newItemResp(item))
}

// MarkRead godoc
// @Summary     Mark an andamento read or unread
// @Description Flips the lida flag. No other field of an andamento can change.
// @Tags        Andamentos
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Andamento ID"
// @Param       body body markReadReq true "Read flag"
// @Success     200 {object} andamentoResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/andamentos/{id}/lida [PATCH]
func (h *handler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMarkReadReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	a, err := h.uc.MarkRead(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.MarkRead: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAndamentoResp(a))
}
