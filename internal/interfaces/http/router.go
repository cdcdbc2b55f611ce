package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/turavia-api/internal/application/auth"
	"github.com/jhoicas/turavia-api/internal/application/ports"
	"github.com/jhoicas/turavia-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	DestinationUC *usecase.DestinationUseCase
	CompanyUC     *usecase.CompanyUseCase
	OfferUC       *usecase.OfferUseCase
	PackageUC     *usecase.TravelPackageUseCase
	CategoryUC    *usecase.CategoryUseCase
	MovieUC       *usecase.MovieUseCase
	ReviewUC      *usecase.ReviewUseCase
	ContactUC     *usecase.ContactUseCase
	UserUC        *usecase.UserUseCase
	DashboardUC   *usecase.DashboardUseCase
	AssistantUC   *usecase.AssistantUseCase
	CatalogUC     *usecase.CatalogUseCase
	Flash         ports.FlashStore
	JWTSecret     string
	MaxImageBytes int64
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Mensajes de contacto del sitio público (solo el alta es abierta)
	contactHandler := NewContactHandler(deps.ContactUC, deps.Flash)
	api.Post("/contacts", contactHandler.Create)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Destinations (protegido)
	destinations := protected.Group("/destinations")
	destinationHandler := NewDestinationHandler(deps.DestinationUC, deps.Flash, deps.MaxImageBytes)
	destinations.Post("/", destinationHandler.Create)
	destinations.Get("/", destinationHandler.List)
	destinations.Get("/:id", destinationHandler.GetByID)
	destinations.Put("/:id", destinationHandler.Update)
	destinations.Patch("/:id/toggle-active", destinationHandler.ToggleActive)
	destinations.Patch("/:id/toggle-featured", destinationHandler.ToggleFeatured)
	destinations.Delete("/:id", destinationHandler.Delete)

	// Companies (protegido)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Flash, deps.MaxImageBytes)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Patch("/:id/toggle-active", companyHandler.ToggleActive)
	companies.Delete("/:id", companyHandler.Delete)

	// Offers (protegido)
	offers := protected.Group("/offers")
	offerHandler := NewOfferHandler(deps.OfferUC, deps.Flash, deps.MaxImageBytes)
	offers.Post("/", offerHandler.Create)
	offers.Get("/", offerHandler.List)
	offers.Get("/:id", offerHandler.GetByID)
	offers.Put("/:id", offerHandler.Update)
	offers.Patch("/:id/toggle-active", offerHandler.ToggleActive)
	offers.Delete("/:id", offerHandler.Delete)

	// Travel packages (protegido)
	packages := protected.Group("/packages")
	packageHandler := NewTravelPackageHandler(deps.PackageUC, deps.Flash, deps.MaxImageBytes)
	packages.Post("/", packageHandler.Create)
	packages.Get("/", packageHandler.List)
	packages.Get("/:id", packageHandler.GetByID)
	packages.Put("/:id", packageHandler.Update)
	packages.Patch("/:id/toggle-active", packageHandler.ToggleActive)
	packages.Patch("/:id/toggle-featured", packageHandler.ToggleFeatured)
	packages.Delete("/:id", packageHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Flash)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Movies y reseñas (protegido)
	movies := protected.Group("/movies")
	movieHandler := NewMovieHandler(deps.MovieUC, deps.Flash, deps.MaxImageBytes)
	movies.Post("/", movieHandler.Create)
	movies.Get("/", movieHandler.List)
	movies.Get("/:id", movieHandler.GetByID)
	movies.Put("/:id", movieHandler.Update)
	movies.Patch("/:id/toggle-featured", movieHandler.ToggleFeatured)
	movies.Delete("/:id", movieHandler.Delete)

	reviewHandler := NewReviewHandler(deps.ReviewUC)
	movies.Post("/:id/reviews", reviewHandler.Create)
	movies.Get("/:id/reviews", reviewHandler.ListByMovie)
	protected.Delete("/reviews/:id", reviewHandler.Delete)

	// Bandeja de contacto (protegido)
	contacts := protected.Group("/contacts")
	contacts.Get("/", contactHandler.List)
	contacts.Get("/:id", contactHandler.GetByID)
	contacts.Patch("/:id/read", contactHandler.MarkRead)
	contacts.Patch("/:id/unread", contactHandler.MarkUnread)
	contacts.Delete("/:id", contactHandler.Delete)

	// Flash, dashboard, asistente y reportes (protegido)
	flashHandler := NewFlashHandler(deps.Flash)
	protected.Get("/flash", flashHandler.Pop)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	assistantHandler := NewAssistantHandler(deps.AssistantUC)
	protected.Post("/assistant/chat", assistantHandler.Chat)

	reportHandler := NewReportHandler(deps.CatalogUC)
	protected.Get("/reports/catalog", reportHandler.OfferCatalog)

	// Users (solo administradores)
	users := protected.Group("/users", RequireAdmin())
	userHandler := NewUserHandler(deps.UserUC, deps.Flash)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id/toggle-active", userHandler.ToggleActive)
	users.Delete("/:id", userHandler.Delete)
}
