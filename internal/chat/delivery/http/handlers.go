package http

import (
	"github.com/gin-gonic/gin"

	"intent-chat-service/internal/middleware"
	"intent-chat-service/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Matches the message against the intent catalog and returns the reply with a confidence score.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "User message"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request - empty message"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.HandleMessage(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleMessage: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSendMessageResp(output))
}

// History godoc
// @Summary     Get conversation history
// @Description Returns the session's conversation turns in call order.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Success     200 {object} historyResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	output, err := h.uc.History(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}
