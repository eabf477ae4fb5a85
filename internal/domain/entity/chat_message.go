package entity

import "time"

// ChatMessage mensaje del chat global. UserName se desnormaliza al persistir
// para que el historial no dependa de lookups de usuario.
type ChatMessage struct {
	ID        string
	UserID    string
	UserName  string
	Message   string
	Timestamp time.Time
}
