package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laborconnect/laborconnect-api/internal/domain/entity"
	"github.com/laborconnect/laborconnect-api/internal/domain/repository"
)

var _ repository.ChatMessageRepository = (*ChatMessageRepo)(nil)

// ChatMessageRepo implementación del historial del chat global sobre PostgreSQL.
type ChatMessageRepo struct {
	pool *pgxpool.Pool
}

// NewChatMessageRepository construye el adaptador de persistencia para mensajes de chat.
func NewChatMessageRepository(pool *pgxpool.Pool) *ChatMessageRepo {
	return &ChatMessageRepo{pool: pool}
}

// Add persiste un mensaje; seq (BIGSERIAL) registra el orden de inserción.
func (r *ChatMessageRepo) Add(message *entity.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (id, user_id, user_name, message, timestamp)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		message.ID, message.UserID, message.UserName, message.Message, message.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

// ListRecent devuelve los últimos limit mensajes ascendentes por timestamp,
// con seq como desempate de inserción. La subconsulta toma la cola en orden
// descendente y el SELECT externo la reordena ascendente.
func (r *ChatMessageRepo) ListRecent(limit int) ([]*entity.ChatMessage, error) {
	query := `
		SELECT id, user_id, user_name, message, timestamp FROM (
			SELECT seq, id, user_id, user_name, message, timestamp
			FROM chat_messages
			ORDER BY timestamp DESC, seq DESC
			LIMIT $1
		) tail
		ORDER BY timestamp ASC, seq ASC`
	rows, err := r.pool.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.ChatMessage, 0, limit)
	for rows.Next() {
		var m entity.ChatMessage
		err := rows.Scan(&m.ID, &m.UserID, &m.UserName, &m.Message, &m.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
