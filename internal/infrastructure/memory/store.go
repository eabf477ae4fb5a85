// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Es el driver por defecto: los datos viven lo que vive el proceso.
// Un único RWMutex guarda todos los mapas; cada operación es una mutación o
// lectura atómica, sin estado de fallo parcial. El Store es dueño exclusivo de
// las instancias: copia al insertar y al devolver, nadie retiene referencias
// mutables.
package memory

import (
	"strings"
	"sync"

	"github.com/laborconnect/laborconnect-api/internal/domain/entity"
)

// Store datos compartidos por todos los adaptadores del paquete (análogo al
// pool de conexiones del driver postgres).
type Store struct {
	mu               sync.RWMutex
	users            map[string]*entity.User
	workerProfiles   map[string]*entity.WorkerProfile
	employerProfiles map[string]*entity.EmployerProfile
	connections      map[string]*entity.Connection
	chatMessages     []*entity.ChatMessage // orden de inserción; desempate del historial
	contactMessages  map[string]*entity.ContactMessage
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{
		users:            make(map[string]*entity.User),
		workerProfiles:   make(map[string]*entity.WorkerProfile),
		employerProfiles: make(map[string]*entity.EmployerProfile),
		connections:      make(map[string]*entity.Connection),
		contactMessages:  make(map[string]*entity.ContactMessage),
	}
}

// workerProfileByUserLocked busca el perfil de un usuario. Requiere el lock tomado.
func (s *Store) workerProfileByUserLocked(userID string) *entity.WorkerProfile {
	for _, p := range s.workerProfiles {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

// containsFold substring case-insensitive.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
