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

	appauth "github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/auth"
	appmedia "github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/media"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/orders"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/usecase"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/infrastructure/cache"
	inframedia "github.com/AlanArratia12/MasterServicioAutomotriz/internal/infrastructure/media"
	infrapdf "github.com/AlanArratia12/MasterServicioAutomotriz/internal/infrastructure/pdf"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/infrastructure/postgres"
	httpRouter "github.com/AlanArratia12/MasterServicioAutomotriz/internal/interfaces/http"
	"github.com/AlanArratia12/MasterServicioAutomotriz/pkg/config"
	"github.com/AlanArratia12/MasterServicioAutomotriz/pkg/logger"
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
		Msg("iniciando aplicación")

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("tz", cfg.App.Timezone).Msg("zona horaria inválida")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	redisClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer redisClient.Close()
	sessions := cache.NewSessionStore(redisClient)

	userRepo := postgres.NewUserRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	attachmentRepo := postgres.NewAttachmentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	audioStore := inframedia.NewLocalAudioStore(cfg.Uploads.Dir)
	mediaHost := inframedia.NewCloudinaryHost(cfg.Media.CloudName, cfg.Media.APIKey, cfg.Media.APISecret)
	ticketGenerator := infrapdf.NewTicketGenerator(cfg.App.Name)

	authUC := appauth.NewAuthUseCase(userRepo, sessions, appauth.JWTConfig{
		Secret:       cfg.JWT.Secret,
		SessionHours: cfg.JWT.SessionHours,
		Issuer:       cfg.JWT.Issuer,
	})
	ordersUC := orders.NewOrdersUseCase(txRunner, orderRepo, attachmentRepo, audioStore, loc, log)
	ticketUC := orders.NewTicketUseCase(orderRepo, ticketGenerator)
	mediaUC := appmedia.NewMediaUseCase(txRunner, attachmentRepo, mediaHost, cfg.Media.Folder, loc, log)
	userUC := usecase.NewUserUseCase(userRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    25 * 1024 * 1024, // fotos y audios de recepción
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		OrdersUC:  ordersUC,
		TicketUC:  ticketUC,
		MediaUC:   mediaUC,
		UserUC:    userUC,
		Sessions:  sessions,
		JWTSecret: cfg.JWT.Secret,
		Log:       log,
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
