package http

import (
	"time"

	"github.com/gin-gonic/gin"
)

// parseDate resolves an optional date field; empty input yields nil.
func (h *handler) parseDate(expr string) (*time.Time, error) {
	if expr == "" {
		return nil, nil
	}
	t, err := h.dates.Parse(expr, time.Now())
	if err != nil {
		return nil, errInvalidDate
	}
	return &t, nil
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, time.Time, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, time.Time{}, errInvalidBody
	}
	if err := req.validate(); err != nil {
		return req, time.Time{}, err
	}
	date, err := h.parseDate(req.Date)
	if err != nil {
		return req, time.Time{}, err
	}
	return req, *date, nil
}

func (h *handler) processFromAndamentoReq(c *gin.Context) (fromAndamentoReq, time.Time, error) {
	var req fromAndamentoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, time.Time{}, errInvalidBody
	}
	req.AndamentoID = c.Param("id")
	if err := req.validate(); err != nil {
		return req, time.Time{}, err
	}
	hoje, err := h.dates.Parse(req.Hoje, time.Now())
	if err != nil {
		return req, time.Time{}, errInvalidDate
	}
	return req, hoje, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, *time.Time, *time.Time, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, nil, nil, errInvalidBody
	}
	if err := req.validate(); err != nil {
		return req, nil, nil, err
	}
	from, err := h.parseDate(req.From)
	if err != nil {
		return req, nil, nil, err
	}
	to, err := h.parseDate(req.To)
	if err != nil {
		return req, nil, nil, err
	}
	return req, from, to, nil
}
