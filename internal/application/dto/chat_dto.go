package dto

import "time"

// Tipo de frame del canal de chat (entrada y salida).
const ChatFrameType = "chat_message"

// ChatMessageResponse mensaje persistido del chat global.
type ChatMessageResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatInboundFrame frame entrante por el websocket. userId/userName pueden venir
// del cliente pero se ignoran: la identidad sale del token de la sesión.
type ChatInboundFrame struct {
	Type     string `json:"type"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Message  string `json:"message"`
}

// ChatOutboundFrame frame de difusión hacia todos los clientes conectados.
type ChatOutboundFrame struct {
	Type string              `json:"type"`
	Data ChatMessageResponse `json:"data"`
}
