// Package redisstore guarda el historial del chat global en una lista Redis:
// RPUSH al persistir, LRANGE de la cola al leer, LTRIM para acotar la
// retención. Pensado para que el historial sobreviva reinicios del proceso
// cuando el store de entidades es el de memoria.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/laborconnect/laborconnect-api/internal/domain/entity"
	"github.com/laborconnect/laborconnect-api/internal/domain/repository"
)

const chatKey = "chat:global:messages"

var _ repository.ChatMessageRepository = (*ChatMessageRepo)(nil)

// record forma serializada de un mensaje dentro de la lista.
type record struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatMessageRepo implementación del historial de chat sobre una lista Redis.
type ChatMessageRepo struct {
	rdb *redis.Client
	max int64 // mensajes retenidos; la lista se recorta tras cada RPUSH
}

// NewChatMessageRepository construye el adaptador. max acota la retención (LTRIM).
func NewChatMessageRepository(rdb *redis.Client, max int) *ChatMessageRepo {
	if max <= 0 {
		max = 500
	}
	return &ChatMessageRepo{rdb: rdb, max: int64(max)}
}

// Add serializa el mensaje, lo agrega al final de la lista y recorta la cola.
func (r *ChatMessageRepo) Add(message *entity.ChatMessage) error {
	ctx := context.Background()
	data, err := json.Marshal(record{
		ID:        message.ID,
		UserID:    message.UserID,
		UserName:  message.UserName,
		Message:   message.Message,
		Timestamp: message.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("marshal chat message: %w", err)
	}
	if err := r.rdb.RPush(ctx, chatKey, data).Err(); err != nil {
		return fmt.Errorf("rpush chat message: %w", err)
	}
	// Retener solo la cola; los mensajes viejos se descartan.
	if err := r.rdb.LTrim(ctx, chatKey, -r.max, -1).Err(); err != nil {
		return fmt.Errorf("ltrim chat history: %w", err)
	}
	return nil
}

// ListRecent devuelve los últimos limit mensajes en orden ascendente por
// timestamp; el sort estable preserva el orden de la lista ante empates.
func (r *ChatMessageRepo) ListRecent(limit int) ([]*entity.ChatMessage, error) {
	ctx := context.Background()
	items, err := r.rdb.LRange(ctx, chatKey, int64(-limit), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange chat history: %w", err)
	}

	out := make([]*entity.ChatMessage, 0, len(items))
	for _, item := range items {
		var rec record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			continue // entrada corrupta: se omite, no aborta el historial
		}
		out = append(out, &entity.ChatMessage{
			ID:        rec.ID,
			UserID:    rec.UserID,
			UserName:  rec.UserName,
			Message:   rec.Message,
			Timestamp: rec.Timestamp,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}
