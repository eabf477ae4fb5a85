package memory

import (
	"sort"

	"github.com/laborconnect/laborconnect-api/internal/domain/entity"
	"github.com/laborconnect/laborconnect-api/internal/domain/repository"
)

var _ repository.ChatMessageRepository = (*ChatMessageRepo)(nil)

// ChatMessageRepo implementación en memoria del historial del chat global.
type ChatMessageRepo struct {
	store *Store
}

// NewChatMessageRepository construye el adaptador sobre el store compartido.
func NewChatMessageRepository(store *Store) *ChatMessageRepo {
	return &ChatMessageRepo{store: store}
}

// Add agrega un mensaje al historial preservando el orden de inserción.
func (r *ChatMessageRepo) Add(message *entity.ChatMessage) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *message
	s.chatMessages = append(s.chatMessages, &clone)
	return nil
}

// ListRecent devuelve los últimos limit mensajes en orden ascendente por
// timestamp. El sort estable preserva el orden de inserción ante timestamps iguales.
func (r *ChatMessageRepo) ListRecent(limit int) ([]*entity.ChatMessage, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := make([]*entity.ChatMessage, len(s.chatMessages))
	copy(sorted, s.chatMessages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[len(sorted)-limit:]
	}

	out := make([]*entity.ChatMessage, 0, len(sorted))
	for _, m := range sorted {
		clone := *m
		out = append(out, &clone)
	}
	return out, nil
}
