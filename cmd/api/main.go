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
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/warehouse-picking-api/internal/application/auth"
	"github.com/jhoicas/warehouse-picking-api/internal/application/dto"
	"github.com/jhoicas/warehouse-picking-api/internal/application/usecase"
	"github.com/jhoicas/warehouse-picking-api/internal/domain/repository"
	"github.com/jhoicas/warehouse-picking-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/warehouse-picking-api/internal/infrastructure/pdf"
	"github.com/jhoicas/warehouse-picking-api/internal/infrastructure/postgres"
	"github.com/jhoicas/warehouse-picking-api/internal/infrastructure/redisstore"
	httpRouter "github.com/jhoicas/warehouse-picking-api/internal/interfaces/http"
	"github.com/jhoicas/warehouse-picking-api/pkg/config"
	"github.com/jhoicas/warehouse-picking-api/pkg/logger"
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
		Str("store", cfg.Store).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Store de productos: PostgreSQL o demo en memoria, tras el mismo puerto.
	var productRepo repository.ProductRepository
	if cfg.Store == config.StorePostgres {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		productRepo = postgres.NewProductRepository(pool)
	} else {
		productRepo = memory.NewProductRepository(memory.DemoProducts())
	}

	// Sesiones: storage en memoria, o Redis si está configurado.
	sessionCfg := session.Config{
		Expiration:     time.Duration(cfg.Session.ExpMinutes) * time.Minute,
		KeyLookup:      "cookie:" + cfg.Session.CookieName,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	}
	if cfg.Redis.Addr != "" {
		storage, err := redisstore.New(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		sessionCfg.Storage = storage
		log.Info().Str("addr", cfg.Redis.Addr).Msg("sesiones en Redis")
	}
	sessions := session.New(sessionCfg)

	authUC, err := auth.NewAuthUseCase(toCredentials(cfg.Auth.Users))
	if err != nil {
		log.Fatal().Err(err).Msg("tabla de usuarios")
	}

	scanLog := usecase.NewScanLog(500)
	inventoryUC := usecase.NewInventoryUseCase(productRepo, log)
	scanUC := usecase.NewScanUseCase(productRepo, scanLog, log)
	productUC := usecase.NewProductUseCase(productRepo, log)
	labelUC := usecase.NewLabelUseCase(productRepo, infrapdf.NewLabelGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(dto.ErrorResponse{Error: err.Error()})
		},
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Warehouse Picking API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC: inventoryUC,
		ScanUC:      scanUC,
		ProductUC:   productUC,
		LabelUC:     labelUC,
		AuthUC:      authUC,
		Sessions:    sessions,
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

func toCredentials(users []config.UserCredential) []auth.Credential {
	creds := make([]auth.Credential, 0, len(users))
	for _, u := range users {
		creds = append(creds, auth.Credential{
			Username: u.Username,
			Password: u.Password,
			Role:     u.Role,
		})
	}
	return creds
}
