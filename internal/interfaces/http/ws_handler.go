package http

import (
	"encoding/json"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/laborconnect/laborconnect-api/internal/application/chat"
	"github.com/laborconnect/laborconnect-api/internal/application/dto"
	"github.com/laborconnect/laborconnect-api/internal/relay"
	"github.com/laborconnect/laborconnect-api/pkg/logger"
)

// WSHandler canal en vivo del chat global. Cada conexión se registra en el
// hub al abrirse y se da de baja al cerrarse; la identidad del emisor viene
// del JWT validado en el upgrade, nunca del frame del cliente.
type WSHandler struct {
	uc  *chat.ChatUseCase
	hub *relay.Hub
	log *logger.Logger
}

// NewWSHandler construye el handler del websocket.
func NewWSHandler(uc *chat.ChatUseCase, hub *relay.Hub, log *logger.Logger) *WSHandler {
	return &WSHandler{uc: uc, hub: hub, log: log}
}

// Upgrade deja pasar solo peticiones de upgrade websocket; el resto recibe 426.
func (h *WSHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Serve maneja el ciclo de vida de una conexión: alta en el hub, bomba de
// escritura propia (un escritor por conexión) y bucle de lectura. Frames no
// parseables o sin type chat_message se ignoran con log, sin avisar al emisor.
func (h *WSHandler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, _ := conn.Locals(LocalUserID).(string)
		userName, _ := conn.Locals(LocalUserName).(string)
		// Un token válido sin claim de identidad no puede publicar: se corta
		// la sesión una sola vez en lugar de rechazar frame por frame.
		if userID == "" {
			h.log.Warn().Msg("chat: sesión sin identidad en los claims, cerrando")
			return
		}

		out, unsub := h.hub.Subscribe()
		defer unsub()

		h.log.Info().Str("user_id", userID).Int("clients", h.hub.Count()).Msg("chat: cliente conectado")

		// Bomba de escritura: drena el canal del hub hacia el socket para que
		// un cliente lento no bloquee el bucle de difusión.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for payload := range out {
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					return // el cliente deja de recibir; sin reintentos
				}
			}
		}()

		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				break // desconexión o fallo de red
			}
			var frame dto.ChatInboundFrame
			if err := json.Unmarshal(raw, &frame); err != nil {
				h.log.Debug().Err(err).Msg("chat: frame no parseable, ignorado")
				continue
			}
			if frame.Type != dto.ChatFrameType {
				h.log.Debug().Str("type", frame.Type).Msg("chat: tipo de frame desconocido, ignorado")
				continue
			}
			if frame.Message == "" {
				continue
			}
			if _, err := h.uc.Post(userID, userName, frame.Message); err != nil {
				h.log.Error().Err(err).Str("user_id", userID).Msg("chat: persistir mensaje")
			}
		}

		unsub()
		<-done // esperar la bomba antes de que websocket.New cierre la conexión

		h.log.Info().Str("user_id", userID).Int("clients", h.hub.Count()).Msg("chat: cliente desconectado")
	})
}
