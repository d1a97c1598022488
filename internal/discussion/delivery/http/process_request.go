package http

import (
	"github.com/gin-gonic/gin"
)

// processRunReq binds the run request body.
func (h *handler) processRunReq(c *gin.Context) (runReq, error) {
	var req runReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
