package http

import (
	"github.com/gin-gonic/gin"
)

// processSendMessageReq binds and validates the send-message request body.
func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
