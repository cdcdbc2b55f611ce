package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/turavia-api/internal/application/auth"
	"github.com/jhoicas/turavia-api/internal/application/ports"
	"github.com/jhoicas/turavia-api/internal/application/usecase"
	infraai "github.com/jhoicas/turavia-api/internal/infrastructure/ai"
	infraflash "github.com/jhoicas/turavia-api/internal/infrastructure/flash"
	infrapdf "github.com/jhoicas/turavia-api/internal/infrastructure/pdf"
	"github.com/jhoicas/turavia-api/internal/infrastructure/postgres"
	"github.com/jhoicas/turavia-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/turavia-api/internal/interfaces/http"
	"github.com/jhoicas/turavia-api/pkg/config"
	"github.com/jhoicas/turavia-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	destinationRepo := postgres.NewDestinationRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	offerRepo := postgres.NewOfferRepository(pool)
	packageRepo := postgres.NewTravelPackageRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	movieRepo := postgres.NewMovieRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	imageStorage, err := storage.NewLocalStorage(cfg.Upload.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de uploads")
	}

	// Flash: Redis si hay dirección configurada, memoria en desarrollo.
	var flashStore ports.FlashStore
	if cfg.Redis.Addr != "" {
		flashStore = infraflash.NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}))
	} else {
		flashStore = infraflash.NewMemoryStore()
	}

	destinationUC := usecase.NewDestinationUseCase(destinationRepo, imageStorage)
	companyUC := usecase.NewCompanyUseCase(companyRepo, imageStorage)
	offerUC := usecase.NewOfferUseCase(offerRepo, txRunner, imageStorage)
	packageUC := usecase.NewTravelPackageUseCase(packageRepo, txRunner, imageStorage)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	movieUC := usecase.NewMovieUseCase(movieRepo, categoryRepo, imageStorage)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, movieRepo)
	contactUC := usecase.NewContactUseCase(contactRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	assistantUC := usecase.NewAssistantUseCase(geminiSvc, log)

	pdfGenerator := infrapdf.NewMarotoCatalogGenerator()
	catalogUC := usecase.NewCatalogUseCase(destinationRepo, offerRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    int(cfg.Upload.MaxBytes) + 1024*1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Imágenes subidas, servidas como estáticos
	app.Static("/uploads", cfg.Upload.Dir)

	// Swagger UI en local: http://localhost:<port>/docs
	// El middleware entra en pánico si el archivo no existe, así que solo se
	// monta cuando el binario corre junto a docs/swagger.json.
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Turavia API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, UI de docs deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		DestinationUC: destinationUC,
		CompanyUC:     companyUC,
		OfferUC:       offerUC,
		PackageUC:     packageUC,
		CategoryUC:    categoryUC,
		MovieUC:       movieUC,
		ReviewUC:      reviewUC,
		ContactUC:     contactUC,
		UserUC:        userUC,
		DashboardUC:   dashboardUC,
		AssistantUC:   assistantUC,
		CatalogUC:     catalogUC,
		Flash:         flashStore,
		JWTSecret:     cfg.JWT.Secret,
		MaxImageBytes: cfg.Upload.MaxBytes,
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
