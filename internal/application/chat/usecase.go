package chat

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/laborconnect/laborconnect-api/internal/application/dto"
	"github.com/laborconnect/laborconnect-api/internal/domain"
	"github.com/laborconnect/laborconnect-api/internal/domain/entity"
	"github.com/laborconnect/laborconnect-api/internal/domain/repository"
)

// DefaultHistoryLimit mensajes devueltos por el historial si no se pide otro límite.
const DefaultHistoryLimit = 50

// Broadcaster puerto hacia el hub de difusión: entrega un payload ya
// serializado a todos los clientes conectados, incluido el emisor.
type Broadcaster interface {
	Broadcast(payload []byte)
}

// ChatUseCase chat global: persiste cada mensaje y lo difunde a todos los
// clientes conectados. La identidad del emisor viene de la sesión, no del frame.
type ChatUseCase struct {
	repo repository.ChatMessageRepository
	hub  Broadcaster
}

// NewChatUseCase construye el caso de uso.
func NewChatUseCase(repo repository.ChatMessageRepository, hub Broadcaster) *ChatUseCase {
	return &ChatUseCase{repo: repo, hub: hub}
}

// Post persiste el mensaje con id y timestamp del servidor, lo serializa una
// sola vez como frame de difusión y lo entrega al hub. Sin garantía de entrega.
func (uc *ChatUseCase) Post(userID, userName, text string) (*dto.ChatMessageResponse, error) {
	if userID == "" || text == "" {
		return nil, domain.ErrInvalidInput
	}
	message := &entity.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    userID,
		UserName:  userName,
		Message:   text,
		Timestamp: time.Now(),
	}
	if err := uc.repo.Add(message); err != nil {
		return nil, err
	}

	resp := toChatMessageResponse(message)
	frame := dto.ChatOutboundFrame{Type: dto.ChatFrameType, Data: resp}
	payload, err := json.Marshal(frame)
	if err != nil {
		return nil, err
	}
	uc.hub.Broadcast(payload)
	return &resp, nil
}

// History devuelve los últimos limit mensajes en orden ascendente por timestamp.
func (uc *ChatUseCase) History(limit int) ([]dto.ChatMessageResponse, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	messages, err := uc.repo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, toChatMessageResponse(m))
	}
	return out, nil
}

func toChatMessageResponse(m *entity.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		UserName:  m.UserName,
		Message:   m.Message,
		Timestamp: m.Timestamp,
	}
}
