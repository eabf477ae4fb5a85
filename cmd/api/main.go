package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/laborconnect/laborconnect-api/internal/application/auth"
	"github.com/laborconnect/laborconnect-api/internal/application/chat"
	"github.com/laborconnect/laborconnect-api/internal/application/usecase"
	"github.com/laborconnect/laborconnect-api/internal/domain/repository"
	"github.com/laborconnect/laborconnect-api/internal/infrastructure/memory"
	"github.com/laborconnect/laborconnect-api/internal/infrastructure/postgres"
	"github.com/laborconnect/laborconnect-api/internal/infrastructure/redisstore"
	httpRouter "github.com/laborconnect/laborconnect-api/internal/interfaces/http"
	"github.com/laborconnect/laborconnect-api/internal/relay"
	"github.com/laborconnect/laborconnect-api/pkg/config"
	"github.com/laborconnect/laborconnect-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Repositorios según el driver: memoria (por defecto) o PostgreSQL.
	var (
		userRepo       repository.UserRepository
		workerRepo     repository.WorkerProfileRepository
		employerRepo   repository.EmployerProfileRepository
		connectionRepo repository.ConnectionRepository
		chatRepo       repository.ChatMessageRepository
		contactRepo    repository.ContactMessageRepository
	)
	switch cfg.Store.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.Store)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("schema de PostgreSQL")
		}
		userRepo = postgres.NewUserRepository(pool)
		workerRepo = postgres.NewWorkerProfileRepository(pool)
		employerRepo = postgres.NewEmployerProfileRepository(pool)
		connectionRepo = postgres.NewConnectionRepository(pool)
		chatRepo = postgres.NewChatMessageRepository(pool)
		contactRepo = postgres.NewContactMessageRepository(pool)
	default:
		store := memory.NewStore()
		userRepo = memory.NewUserRepository(store)
		workerRepo = memory.NewWorkerProfileRepository(store)
		employerRepo = memory.NewEmployerProfileRepository(store)
		connectionRepo = memory.NewConnectionRepository(store)
		chatRepo = memory.NewChatMessageRepository(store)
		contactRepo = memory.NewContactMessageRepository(store)
	}

	// Historial del chat en Redis si está configurado (sobrevive reinicios
	// aunque el resto del store sea en memoria).
	if cfg.Chat.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Chat.RedisAddr,
			Password: cfg.Chat.RedisPassword,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		chatRepo = redisstore.NewChatMessageRepository(rdb, cfg.Chat.HistoryMax)
		log.Info().Str("addr", cfg.Chat.RedisAddr).Msg("historial de chat en Redis")
	}

	hub := relay.NewHub()

	authUC := auth.NewAuthUseCase(userRepo, workerRepo, employerRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	workerUC := usecase.NewWorkerUseCase(workerRepo, userRepo)
	connectionUC := usecase.NewConnectionUseCase(connectionRepo, userRepo)
	contactUC := usecase.NewContactUseCase(contactRepo)
	chatUC := chat.NewChatUseCase(chatRepo, hub)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	mountSwagger(app, log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		WorkerUC:     workerUC,
		ConnectionUC: connectionUC,
		ContactUC:    contactUC,
		ChatUC:       chatUC,
		Hub:          hub,
		Log:          log,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// mountSwagger sirve la UI de docs solo si el spec generado existe.
// swagger.New entra en pánico si el archivo falta, así que sin docs/
// la UI se deshabilita y el servidor arranca igual.
func mountSwagger(app *fiber.App, log *logger.Logger) {
	const specFile = "./docs/swagger.json"
	if _, err := os.Stat(specFile); err != nil {
		log.Warn().Str("file", specFile).Msg("swagger.json no encontrado, UI de docs deshabilitada")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: specFile,
		Path:     "docs",
		Title:    "LaborConnect API",
	}))
}
