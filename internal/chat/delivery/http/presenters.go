package http

import (
	"intent-chat-service/internal/chat"
)

// --- Request DTOs ---

type sendMessageReq struct {
	Message string `json:"message" binding:"required,max=4096"`
}

func (r sendMessageReq) validate() error { return nil }

func (r sendMessageReq) toInput() chat.HandleMessageInput {
	return chat.HandleMessageInput{
		Text: r.Message,
	}
}

// --- Response DTOs ---

type sendMessageResp struct {
	Tag        string  `json:"tag"`
	Response   string  `json:"response"`
	Confidence float64 `json:"confidence"`
}

func (h *handler) newSendMessageResp(out chat.HandleMessageOutput) sendMessageResp {
	return sendMessageResp{
		Tag:        out.Tag,
		Response:   out.Response,
		Confidence: out.Confidence,
	}
}

type turnResp struct {
	Role string `json:"role"`
	Text string `json:"text"`
	Tag  string `json:"tag,omitempty"`
}

type historyResp struct {
	Turns []turnResp `json:"turns"`
	Count int        `json:"count"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) historyResp {
	turns := make([]turnResp, len(out.Turns))
	for i, turn := range out.Turns {
		turns[i] = turnResp{
			Role: string(turn.Role),
			Text: turn.Text,
			Tag:  turn.Tag,
		}
	}
	return historyResp{
		Turns: turns,
		Count: len(turns),
	}
}
