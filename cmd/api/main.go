package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/acardona/stock-api/internal/application/auth"
	"github.com/acardona/stock-api/internal/application/stock"
	"github.com/acardona/stock-api/internal/application/usecase"
	"github.com/acardona/stock-api/internal/infrastructure/postgres"
	httpiface "github.com/acardona/stock-api/internal/interfaces/http"
	"github.com/acardona/stock-api/pkg/config"
	"github.com/acardona/stock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.Migrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("no se pudieron aplicar las migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	// Repositorios y casos de uso
	productoRepo := postgres.NewProductoRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	adminRepo := postgres.NewAdministradorRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productoUC := usecase.NewProductoUseCase(productoRepo, txRunner)
	stockUC := stock.NewUseCase(txRunner)
	movimientoUC := usecase.NewMovimientoUseCase(movimientoRepo, productoRepo)
	reporteUC := usecase.NewReporteUseCase(productoRepo)
	authUC := auth.NewAuthUseCase(adminRepo, auth.JWTConfig{
		Secret:       cfg.JWT.Secret,
		ExpMinutes:   cfg.JWT.Expiration,
		RefreshHours: cfg.JWT.RefreshHours,
		Issuer:       cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpiface.ErrorHandler,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	router := httpiface.NewRouter(
		httpiface.NewAuthHandler(authUC),
		httpiface.NewStockHandler(productoUC, stockUC, movimientoUC),
		httpiface.NewMovimientoHandler(movimientoUC),
		httpiface.NewReporteHandler(reporteUC),
		cfg.JWT.Secret,
	)
	router.Setup(app)

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("el servidor HTTP terminó con error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error durante el apagado")
	}
	log.Info().Msg("servidor detenido")
}
