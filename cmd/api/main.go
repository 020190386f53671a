package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Mercado-api/internal/application/auth"
	"github.com/jhoicas/Mercado-api/internal/application/jobs"
	"github.com/jhoicas/Mercado-api/internal/application/password"
	"github.com/jhoicas/Mercado-api/internal/application/usecase"
	"github.com/jhoicas/Mercado-api/internal/application/verification"
	"github.com/jhoicas/Mercado-api/internal/infrastructure/mail"
	"github.com/jhoicas/Mercado-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Mercado-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Mercado-api/internal/interfaces/http"
	"github.com/jhoicas/Mercado-api/pkg/config"
	"github.com/jhoicas/Mercado-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	if err := postgres.Migrate(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	accountRepo := postgres.NewAccountRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	verificationRepo := postgres.NewVerificationRepository(pool)
	otpRepo := postgres.NewOTPRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	historyRepo := postgres.NewOrderHistoryRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mailer := mail.NewMailer(cfg.SMTP)
	photoStore, err := storage.NewS3Store(ctx, cfg.S3)
	if err != nil {
		log.Fatal().Err(err).Msg("cliente S3")
	}

	verificationUC := verification.NewUseCase(accountRepo, verificationRepo, mailer, cfg.Client.Origin)
	authUC := auth.NewUseCase(accountRepo, sessionRepo, jobRepo, verificationUC, auth.JWTConfig{
		Secret:            cfg.JWT.Secret,
		ExpMinutes:        cfg.JWT.ExpMinutes,
		RefreshSecret:     cfg.JWT.RefreshSecret,
		RefreshExpMinutes: cfg.JWT.RefreshExpMinutes,
		Issuer:            cfg.JWT.Issuer,
	})
	passwordUC := password.NewUseCase(accountRepo, otpRepo, mailer)
	accountUC := usecase.NewAccountUseCase(accountRepo, sessionRepo, jobRepo, cfg.App.AccountRetentionDays)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, photoStore)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	cartUC := usecase.NewCartUseCase(cartRepo, productRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, historyRepo, txRunner)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, commentRepo, productRepo)

	// Worker de purga: el primer barrido retoma trabajos vencidos durante una caída.
	workerCtx, stopWorker := context.WithCancel(ctx)
	defer stopWorker()
	purgeWorker := jobs.NewWorker(jobRepo, accountRepo, log)
	go purgeWorker.Run(workerCtx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Client.Origin,
		AllowCredentials: true,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// El frontend arma el botón de PayPal con este client ID; el backend solo
	// registra el resultado del pago.
	app.Get("/api/v1/config/paypal", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"client_id": cfg.Client.PayPalClientID})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		VerificationUC: verificationUC,
		PasswordUC:     passwordUC,
		AccountUC:      accountUC,
		ProductUC:      productUC,
		CategoryUC:     categoryUC,
		CartUC:         cartUC,
		OrderUC:        orderUC,
		ReviewUC:       reviewUC,
		JWTSecret:      cfg.JWT.Secret,
		CookieMaxAge:   time.Duration(cfg.JWT.RefreshExpMinutes) * time.Minute,
		Sessions:       sessionRepo,
		Accounts:       accountRepo,
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
	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
