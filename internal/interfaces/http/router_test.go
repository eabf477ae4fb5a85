package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laborconnect/laborconnect-api/internal/application/auth"
	"github.com/laborconnect/laborconnect-api/internal/application/chat"
	"github.com/laborconnect/laborconnect-api/internal/application/dto"
	"github.com/laborconnect/laborconnect-api/internal/application/usecase"
	"github.com/laborconnect/laborconnect-api/internal/infrastructure/memory"
	apphttp "github.com/laborconnect/laborconnect-api/internal/interfaces/http"
	"github.com/laborconnect/laborconnect-api/internal/relay"
	"github.com/laborconnect/laborconnect-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "laborconnect-test"
	testExpMin    = 60
)

// buildTestApp levanta la aplicación completa sobre el store en memoria,
// con el mismo cableado que el arranque real.
func buildTestApp() *fiber.App {
	app, _ := buildTestAppWithHub()
	return app
}

func buildTestAppWithHub() (*fiber.App, *relay.Hub) {
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	workerRepo := memory.NewWorkerProfileRepository(store)
	employerRepo := memory.NewEmployerProfileRepository(store)
	connectionRepo := memory.NewConnectionRepository(store)
	chatRepo := memory.NewChatMessageRepository(store)
	contactRepo := memory.NewContactMessageRepository(store)

	hub := relay.NewHub()
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(userRepo, workerRepo, employerRepo, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		WorkerUC:     usecase.NewWorkerUseCase(workerRepo, userRepo),
		ConnectionUC: usecase.NewConnectionUseCase(connectionRepo, userRepo),
		ContactUC:    usecase.NewContactUseCase(contactRepo),
		ChatUC:       chat.NewChatUseCase(chatRepo, hub),
		Hub:          hub,
		Log:          log,
		JWTSecret:    testJWTSecret,
	})
	return app, hub
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, headers map[string]string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func registerWorker(t *testing.T, app *fiber.App, email string) dto.UserResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"email": email, "password": "supersecreta",
		"firstName": "Ana", "lastName": "Rojas", "role": "worker",
		"skills": "Professional Cleaner", "experience": "5 años", "location": "Bogotá",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var user dto.UserResponse
	decode(t, resp, &user)
	return user
}

func registerEmployer(t *testing.T, app *fiber.App, email string) dto.UserResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"email": email, "password": "supersecreta",
		"firstName": "Beto", "lastName": "Lima", "role": "employer",
		"companyName": "Limpieza SAS", "industry": "Servicios",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var user dto.UserResponse
	decode(t, resp, &user)
	return user
}

func loginToken(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email": email, "password": "supersecreta",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	decode(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_Endpoint(t *testing.T) {
	app := buildTestApp()

	user := registerWorker(t, app, "ana@example.com")
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "worker", user.Role)
}

func TestRegister_EmailDuplicadoDa400(t *testing.T) {
	app := buildTestApp()
	registerWorker(t, app, "ana@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"email": "ana@example.com", "password": "supersecreta",
		"firstName": "Ana", "lastName": "Rojas", "role": "worker",
		"skills": "Cleaning", "experience": "5 años", "location": "Bogotá",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errBody dto.ErrorResponse
	decode(t, resp, &errBody)
	assert.Equal(t, "EMAIL_EXISTS", errBody.Code)
}

func TestRegister_PasswordCortaDa400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"email": "ana@example.com", "password": "corta",
		"firstName": "Ana", "lastName": "Rojas", "role": "worker",
		"skills": "Cleaning", "experience": "5 años", "location": "Bogotá",
	}, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_DevuelveTokenYUsuario(t *testing.T) {
	app := buildTestApp()
	registered := registerWorker(t, app, "ana@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email": "ana@example.com", "password": "supersecreta",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	decode(t, resp, &out)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, registered.ID, out.User.ID)
}

func TestLogin_CredencialesInvalidasDa401(t *testing.T) {
	app := buildTestApp()
	registerWorker(t, app, "ana@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email": "ana@example.com", "password": "incorrecta",
	}, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMe_ConTokenValido(t *testing.T) {
	app := buildTestApp()
	registered := registerWorker(t, app, "ana@example.com")
	token := loginToken(t, app, "ana@example.com")

	resp := doJSON(t, app, http.MethodGet, "/api/auth/me", nil,
		map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user dto.UserResponse
	decode(t, resp, &user)
	assert.Equal(t, registered.ID, user.ID)
}

func TestMe_SinTokenDa401(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var errBody dto.ErrorResponse
	decode(t, resp, &errBody)
	assert.Equal(t, "MISSING_TOKEN", errBody.Code)
}

func TestMe_TokenInvalidoDa401(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/auth/me", nil,
		map[string]string{"Authorization": "Bearer no-es-un-jwt"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMe_TokenPorQueryTambienVale(t *testing.T) {
	app := buildTestApp()
	registerWorker(t, app, "ana@example.com")
	token := loginToken(t, app, "ana@example.com")

	// El middleware acepta ?token= (lo usa el upgrade del websocket).
	resp := doJSON(t, app, http.MethodGet, "/api/auth/me?token="+token, nil, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Workers
// ──────────────────────────────────────────────────────────────────────────────

func TestWorkers_BusquedaConFiltros(t *testing.T) {
	app := buildTestApp()
	cleaner := registerWorker(t, app, "cleaner@example.com")

	// Segundo trabajador con otras skills.
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"email": "plomero@example.com", "password": "supersecreta",
		"firstName": "Caro", "lastName": "Díaz", "role": "worker",
		"skills": "Plumbing", "experience": "3 años", "location": "Medellín",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Filtro substring case-insensitive sobre skills.
	resp = doJSON(t, app, http.MethodGet, "/api/workers/?skills=CLEAN", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var workers []dto.WorkerResponse
	decode(t, resp, &workers)
	require.Len(t, workers, 1)
	assert.Equal(t, cleaner.ID, workers[0].ID)
	assert.Equal(t, "Professional Cleaner", workers[0].WorkerProfile.Skills)
}

func TestWorkers_GetPorID(t *testing.T) {
	app := buildTestApp()
	registered := registerWorker(t, app, "ana@example.com")

	resp := doJSON(t, app, http.MethodGet, "/api/workers/"+registered.ID, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var worker dto.WorkerResponse
	decode(t, resp, &worker)
	assert.Equal(t, registered.ID, worker.ID)
	assert.Equal(t, registered.ID, worker.WorkerProfile.UserID)
}

func TestWorkers_GetInexistenteDa404(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/workers/no-existe", nil, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Connections
// ──────────────────────────────────────────────────────────────────────────────

func TestConnections_FlujoCompleto(t *testing.T) {
	app := buildTestApp()
	worker := registerWorker(t, app, "worker@example.com")
	employer := registerEmployer(t, app, "emp@example.com")

	// Crear sin status: nace como connected.
	resp := doJSON(t, app, http.MethodPost, "/api/connections/", fiber.Map{
		"employerId": employer.ID, "workerId": worker.ID,
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.ConnectionResponse
	decode(t, resp, &created)
	assert.Equal(t, "connected", created.Status)

	// Listado del empleador anota el trabajador con su perfil.
	resp = doJSON(t, app, http.MethodGet, "/api/connections/"+employer.ID, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var byEmployer []dto.ConnectionWithWorkerResponse
	decode(t, resp, &byEmployer)
	require.Len(t, byEmployer, 1)
	assert.Equal(t, created.ID, byEmployer[0].ID)
	assert.Equal(t, worker.ID, byEmployer[0].Worker.ID)
	assert.Equal(t, "Professional Cleaner", byEmployer[0].Worker.WorkerProfile.Skills)

	// Listado plano del trabajador.
	resp = doJSON(t, app, http.MethodGet, "/api/connections/worker/"+worker.ID, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var byWorker []dto.ConnectionResponse
	decode(t, resp, &byWorker)
	require.Len(t, byWorker, 1)
	assert.Equal(t, employer.ID, byWorker[0].EmployerID)
}

func TestConnections_ReferenciaInvalidaDa400(t *testing.T) {
	app := buildTestApp()
	employer := registerEmployer(t, app, "emp@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/connections/", fiber.Map{
		"employerId": employer.ID, "workerId": "fantasma",
	}, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Chat y contacto
// ──────────────────────────────────────────────────────────────────────────────

func TestChatMessages_HistorialVacio(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/chat/messages", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var messages []dto.ChatMessageResponse
	decode(t, resp, &messages)
	assert.Empty(t, messages)
}

func TestWS_SinUpgradeDa426(t *testing.T) {
	app := buildTestApp()

	// GET plano sin headers de upgrade: el canal exige websocket.
	resp := doJSON(t, app, http.MethodGet, "/ws", nil, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
}

func TestContact_Endpoint(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/contact", fiber.Map{
		"name": "Ana Rojas", "email": "ana@example.com",
		"subject": "Consulta", "message": "¿Cómo publico mi perfil?",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.ContactResponse
	decode(t, resp, &out)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Message sent successfully", out.Message)
}

func TestContact_CamposFaltantesDa400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/contact", fiber.Map{
		"name": "Ana Rojas",
	}, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
