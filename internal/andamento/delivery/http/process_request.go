package http

import (
	"time"

	"github.com/gin-gonic/gin"
)

// resolveHoje turns the optional hoje query/body value into the simulated today.
func (h *handler) resolveHoje(expr string) (time.Time, error) {
	hoje, err := h.dates.Parse(expr, time.Now())
	if err != nil {
		return time.Time{}, errInvalidHoje
	}
	return hoje, nil
}

// processListReq binds the list query parameters and the process URI param.
func (h *handler) processListReq(c *gin.Context) (listReq, time.Time, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, time.Time{}, errInvalidBody
	}
	req.ProcessoOABID = c.Param("id")
	if err := req.validate(); err != nil {
		return req, time.Time{}, err
	}

	hoje, err := h.resolveHoje(req.Hoje)
	return req, hoje, err
}

// processMarkReadReq binds the lida body and the andamento URI param.
func (h *handler) processMarkReadReq(c *gin.Context) (markReadReq, error) {
	var req markReadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	req.ID = c.Param("id")
	return req, req.validate()
}

// processImportReq binds the import body and the process URI param.
func (h *handler) processImportReq(c *gin.Context) (importReq, error) {
	var req importReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	req.ProcessoOABID = c.Param("id")
	return req, req.validate()
}
