package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laborconnect/laborconnect-api/internal/application/chat"
	"github.com/laborconnect/laborconnect-api/internal/application/dto"
)

// ChatHandler maneja el historial HTTP del chat global. El canal en vivo va
// por el websocket (ws_handler.go).
type ChatHandler struct {
	uc *chat.ChatUseCase
}

// NewChatHandler construye el handler.
func NewChatHandler(uc *chat.ChatUseCase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// History godoc
// @Summary      Últimos mensajes del chat global (ascendente por tiempo)
// @Tags         chat
// @Produce      json
// @Param        limit  query  int  false  "máximo de mensajes"  default(50)
// @Success      200  {array}  dto.ChatMessageResponse
// @Router       /api/chat/messages [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", chat.DefaultHistoryLimit)
	messages, err := h.uc.History(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(messages)
}
