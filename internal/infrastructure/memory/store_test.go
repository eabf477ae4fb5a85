package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laborconnect/laborconnect-api/internal/domain"
	"github.com/laborconnect/laborconnect-api/internal/domain/entity"
	"github.com/laborconnect/laborconnect-api/internal/domain/repository"
	"github.com/laborconnect/laborconnect-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newWorker(id, email, skills, location, availability string) (*entity.User, *entity.WorkerProfile) {
	user := &entity.User{
		ID:        id,
		Email:     email,
		FirstName: "Ana",
		LastName:  "Rojas",
		Role:      entity.RoleWorker,
		CreatedAt: time.Now(),
	}
	profile := &entity.WorkerProfile{
		ID:           id + "-profile",
		UserID:       id,
		Skills:       skills,
		Experience:   "5 años",
		Location:     location,
		Availability: availability,
	}
	return user, profile
}

// ──────────────────────────────────────────────────────────────────────────────
// Users
// ──────────────────────────────────────────────────────────────────────────────

func TestUserRepo_CreateYGetByEmail(t *testing.T) {
	store := memory.NewStore()
	users := memory.NewUserRepository(store)

	user := &entity.User{
		ID:        "u1",
		Email:     "ana@example.com",
		FirstName: "Ana",
		LastName:  "Rojas",
		Role:      entity.RoleWorker,
		CreatedAt: time.Now(),
	}
	require.NoError(t, users.Create(user))

	got, err := users.GetByEmail("ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, got, "el usuario registrado debe poder buscarse por email")
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "Ana", got.FirstName)
}

func TestUserRepo_EmailDuplicado(t *testing.T) {
	store := memory.NewStore()
	users := memory.NewUserRepository(store)

	first := &entity.User{ID: "u1", Email: "ana@example.com", Role: entity.RoleWorker}
	require.NoError(t, users.Create(first))

	second := &entity.User{ID: "u2", Email: "ana@example.com", Role: entity.RoleEmployer}
	err := users.Create(second)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists,
		"el segundo registro con el mismo email debe fallar")

	// No debe existir una segunda fila.
	got, err := users.GetByID("u2")
	require.NoError(t, err)
	assert.Nil(t, got, "el usuario duplicado no debe persistirse")
}

func TestUserRepo_EmailMatchExacto(t *testing.T) {
	store := memory.NewStore()
	users := memory.NewUserRepository(store)

	require.NoError(t, users.Create(&entity.User{ID: "u1", Email: "Ana@Example.com"}))

	// El match es case-sensitive: otra capitalización no es duplicado ni lookup.
	got, err := users.GetByEmail("ana@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, users.Create(&entity.User{ID: "u2", Email: "ana@example.com"}))
}

func TestUserRepo_DevuelveCopias(t *testing.T) {
	store := memory.NewStore()
	users := memory.NewUserRepository(store)

	require.NoError(t, users.Create(&entity.User{ID: "u1", Email: "ana@example.com", FirstName: "Ana"}))

	got, err := users.GetByID("u1")
	require.NoError(t, err)
	got.FirstName = "Mutada"

	again, err := users.GetByID("u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", again.FirstName, "mutar lo devuelto no debe afectar al store")
}

// ──────────────────────────────────────────────────────────────────────────────
// Directorio de trabajadores
// ──────────────────────────────────────────────────────────────────────────────

func TestWorkerProfileRepo_FiltroSkillsCaseInsensitive(t *testing.T) {
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	profiles := memory.NewWorkerProfileRepository(store)

	u1, p1 := newWorker("u1", "limpleza@example.com", "Professional Cleaner", "Bogotá", "Available Now")
	u2, p2 := newWorker("u2", "plomero@example.com", "Plumbing", "Medellín", "Available Now")
	require.NoError(t, users.Create(u1))
	require.NoError(t, users.Create(u2))
	require.NoError(t, profiles.Create(p1))
	require.NoError(t, profiles.Create(p2))

	got, err := profiles.ListWithUsers(repository.WorkerFilters{Skills: "CLEAN"})
	require.NoError(t, err)
	require.Len(t, got, 1, "solo el perfil con 'clean' en skills debe pasar el filtro")
	assert.Equal(t, "u1", got[0].User.ID)
	assert.Equal(t, "Professional Cleaner", got[0].Profile.Skills)
}

func TestWorkerProfileRepo_FiltroAvailabilityExacto(t *testing.T) {
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	profiles := memory.NewWorkerProfileRepository(store)

	u1, p1 := newWorker("u1", "a@example.com", "Cleaning", "Bogotá", "Available Now")
	u2, p2 := newWorker("u2", "b@example.com", "Cleaning", "Bogotá", "This Week")
	require.NoError(t, users.Create(u1))
	require.NoError(t, users.Create(u2))
	require.NoError(t, profiles.Create(p1))
	require.NoError(t, profiles.Create(p2))

	got, err := profiles.ListWithUsers(repository.WorkerFilters{Availability: "Available Now"})
	require.NoError(t, err)
	require.Len(t, got, 1, "availability es igualdad exacta, 'This Week' queda fuera")
	assert.Equal(t, "u1", got[0].User.ID)
}

func TestWorkerProfileRepo_FiltrosConjuntivos(t *testing.T) {
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	profiles := memory.NewWorkerProfileRepository(store)

	u1, p1 := newWorker("u1", "a@example.com", "Cleaning", "Bogotá", "Available Now")
	u2, p2 := newWorker("u2", "b@example.com", "Cleaning", "Medellín", "Available Now")
	require.NoError(t, users.Create(u1))
	require.NoError(t, users.Create(u2))
	require.NoError(t, profiles.Create(p1))
	require.NoError(t, profiles.Create(p2))

	got, err := profiles.ListWithUsers(repository.WorkerFilters{
		Skills:   "clean",
		Location: "bogo",
	})
	require.NoError(t, err)
	require.Len(t, got, 1, "los filtros se aplican en conjunto")
	assert.Equal(t, "u1", got[0].User.ID)
}

func TestWorkerProfileRepo_OmitePerfilesHuerfanos(t *testing.T) {
	store := memory.NewStore()
	profiles := memory.NewWorkerProfileRepository(store)

	// Perfil sin usuario: se omite en silencio, no es error.
	require.NoError(t, profiles.Create(&entity.WorkerProfile{
		ID: "p1", UserID: "no-existe", Skills: "Cleaning", Location: "Bogotá", Availability: "Available Now",
	}))

	got, err := profiles.ListWithUsers(repository.WorkerFilters{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWorkerProfileRepo_OmiteUsuariosNoWorker(t *testing.T) {
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	profiles := memory.NewWorkerProfileRepository(store)

	// Usuario employer con perfil de worker colgado: no debe listarse.
	require.NoError(t, users.Create(&entity.User{ID: "e1", Email: "emp@example.com", Role: entity.RoleEmployer}))
	require.NoError(t, profiles.Create(&entity.WorkerProfile{
		ID: "p1", UserID: "e1", Skills: "Cleaning", Location: "Bogotá", Availability: "Available Now",
	}))

	got, err := profiles.ListWithUsers(repository.WorkerFilters{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Connections
// ──────────────────────────────────────────────────────────────────────────────

func TestConnectionRepo_ListByEmployerConJoin(t *testing.T) {
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	profiles := memory.NewWorkerProfileRepository(store)
	connections := memory.NewConnectionRepository(store)

	worker, profile := newWorker("w1", "worker@example.com", "Cleaning", "Bogotá", "Available Now")
	require.NoError(t, users.Create(worker))
	require.NoError(t, profiles.Create(profile))
	require.NoError(t, users.Create(&entity.User{ID: "e1", Email: "emp@example.com", Role: entity.RoleEmployer}))

	require.NoError(t, connections.Create(&entity.Connection{
		ID: "c1", EmployerID: "e1", WorkerID: "w1", Status: entity.ConnectionStatusConnected, CreatedAt: time.Now(),
	}))
	// Conexión de otro empleador: no debe aparecer.
	require.NoError(t, connections.Create(&entity.Connection{
		ID: "c2", EmployerID: "e2", WorkerID: "w1", Status: entity.ConnectionStatusHired, CreatedAt: time.Now(),
	}))

	got, err := connections.ListByEmployer("e1")
	require.NoError(t, err)
	require.Len(t, got, 1, "solo las conexiones del empleador consultado")
	assert.Equal(t, "c1", got[0].Connection.ID)
	assert.Equal(t, "w1", got[0].Worker.ID)
	assert.Equal(t, "w1-profile", got[0].Profile.ID)
}

func TestConnectionRepo_OmiteTrabajadorSinPerfil(t *testing.T) {
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	connections := memory.NewConnectionRepository(store)

	require.NoError(t, users.Create(&entity.User{ID: "w1", Email: "worker@example.com", Role: entity.RoleWorker}))
	require.NoError(t, connections.Create(&entity.Connection{
		ID: "c1", EmployerID: "e1", WorkerID: "w1", Status: entity.ConnectionStatusConnected,
	}))

	got, err := connections.ListByEmployer("e1")
	require.NoError(t, err)
	assert.Empty(t, got, "una conexión cuyo perfil no resuelve se omite en silencio")
}

func TestConnectionRepo_ListByWorker(t *testing.T) {
	store := memory.NewStore()
	connections := memory.NewConnectionRepository(store)

	require.NoError(t, connections.Create(&entity.Connection{ID: "c1", EmployerID: "e1", WorkerID: "w1"}))
	require.NoError(t, connections.Create(&entity.Connection{ID: "c2", EmployerID: "e2", WorkerID: "w1"}))
	require.NoError(t, connections.Create(&entity.Connection{ID: "c3", EmployerID: "e1", WorkerID: "w2"}))

	got, err := connections.ListByWorker("w1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Chat
// ──────────────────────────────────────────────────────────────────────────────

func TestChatMessageRepo_ListRecentOrdenYLimite(t *testing.T) {
	store := memory.NewStore()
	messages := memory.NewChatMessageRepository(store)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := &entity.ChatMessage{ID: "a", UserID: "u1", UserName: "Ana", Message: "A", Timestamp: base.Add(1 * time.Second)}
	b := &entity.ChatMessage{ID: "b", UserID: "u1", UserName: "Ana", Message: "B", Timestamp: base.Add(2 * time.Second)}
	c := &entity.ChatMessage{ID: "c", UserID: "u2", UserName: "Beto", Message: "C", Timestamp: base.Add(3 * time.Second)}
	require.NoError(t, messages.Add(a))
	require.NoError(t, messages.Add(b))
	require.NoError(t, messages.Add(c))

	got, err := messages.ListRecent(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID, "con límite 2 deben volver los dos últimos, ascendentes")
	assert.Equal(t, "c", got[1].ID)
}

func TestChatMessageRepo_EmpatesPorOrdenDeInsercion(t *testing.T) {
	store := memory.NewStore()
	messages := memory.NewChatMessageRepository(store)

	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, id := range []string{"m1", "m2", "m3"} {
		require.NoError(t, messages.Add(&entity.ChatMessage{ID: id, Message: id, Timestamp: ts}))
	}

	got, err := messages.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "m1", got[0].ID, "timestamps iguales conservan el orden de inserción")
	assert.Equal(t, "m2", got[1].ID)
	assert.Equal(t, "m3", got[2].ID)
}

func TestChatMessageRepo_ListRecentSinMensajes(t *testing.T) {
	store := memory.NewStore()
	messages := memory.NewChatMessageRepository(store)

	got, err := messages.ListRecent(50)
	require.NoError(t, err)
	assert.Empty(t, got)
}
