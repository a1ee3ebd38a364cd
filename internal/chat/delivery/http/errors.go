package http

import (
	"net/http"

	"intent-chat-service/internal/chat"
	"intent-chat-service/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case chat.ErrEmptyInput:
		return response.NewHTTPError(http.StatusBadRequest, "message must not be empty")
	default:
		return response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
