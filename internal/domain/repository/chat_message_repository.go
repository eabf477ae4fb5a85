package repository

import "github.com/laborconnect/laborconnect-api/internal/domain/entity"

// ChatMessageRepository puerto de persistencia para el historial del chat global.
type ChatMessageRepository interface {
	Add(message *entity.ChatMessage) error
	// ListRecent devuelve los últimos limit mensajes en orden ascendente por
	// timestamp; empates resueltos por orden de inserción.
	ListRecent(limit int) ([]*entity.ChatMessage, error)
}
