// Package relay implementa la difusión del chat global: un registro de
// suscriptores con canales con buffer. Sin acks ni reenvíos; un suscriptor
// con el buffer lleno pierde el mensaje sin bloquear al resto.
package relay

import "sync"

// Tamaño del buffer por suscriptor. Un cliente que no drena a este ritmo
// empieza a perder mensajes.
const subscriberBuffer = 64

type subscriber struct {
	ch chan []byte
}

// Hub registro process-wide de clientes conectados al chat.
type Hub struct {
	mu   sync.RWMutex
	subs map[*subscriber]struct{}
}

// NewHub construye un hub vacío.
func NewHub() *Hub {
	return &Hub{subs: make(map[*subscriber]struct{})}
}

// Subscribe registra un cliente y devuelve su canal de salida junto con la
// función de baja. La baja cierra el canal; llamarla dos veces es seguro.
func (h *Hub) Subscribe() (<-chan []byte, func()) {
	sub := &subscriber{ch: make(chan []byte, subscriberBuffer)}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	unsub := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, sub)
			h.mu.Unlock()
			close(sub.ch)
		})
	}
	return sub.ch, unsub
}

// Broadcast entrega el payload a todos los suscriptores registrados, incluido
// el emisor. El envío es no bloqueante: si el buffer de un suscriptor está
// lleno, ese suscriptor pierde el mensaje y la entrega al resto continúa.
func (h *Hub) Broadcast(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs {
		select {
		case sub.ch <- payload:
		default:
			// drop if full
		}
	}
}

// Count devuelve el número de suscriptores activos (para logs y tests).
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
