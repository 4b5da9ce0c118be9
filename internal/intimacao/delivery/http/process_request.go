package http

import (
	"time"

	"github.com/gin-gonic/gin"
)

// processParseReq binds the parse body and resolves hoje to a day.
func (h *handler) processParseReq(c *gin.Context) (parseReq, time.Time, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, time.Time{}, errInvalidBody
	}
	if err := req.validate(); err != nil {
		return req, time.Time{}, err
	}

	hoje, err := h.dates.Parse(req.Hoje, time.Now())
	if err != nil {
		return req, time.Time{}, errInvalidHoje
	}
	return req, hoje, nil
}
