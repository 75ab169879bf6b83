package routes

import (
	"iclug-backend/internal/adapters/http/handlers"
	"iclug-backend/internal/adapters/persistence/repositories"
	"iclug-backend/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	memberRepo := repositories.NewMemberRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	donationRepo := repositories.NewDonationRepository(db)

	// Initialize services
	statsService := services.NewStatsService(memberRepo, paymentRepo, donationRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	memberHandler := handlers.NewMemberHandler(memberRepo)
	paymentHandler := handlers.NewPaymentHandler(paymentRepo)
	donationHandler := handlers.NewDonationHandler(donationRepo)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Members
	app.Post("/members", memberHandler.Create)
	app.Get("/members", memberHandler.List)
	app.Get("/members/:id", memberHandler.Get)

	// Payments
	app.Post("/payments", paymentHandler.Create)
	app.Get("/payments", paymentHandler.List)

	// Donations
	app.Post("/donations", donationHandler.Create)
	app.Get("/donations", donationHandler.List)

	// Stats
	statsRoutes := app.Group("/stats")
	setupStatsRoutes(statsRoutes, statsHandler)
}

// setupStatsRoutes configures aggregate report routes
func setupStatsRoutes(router fiber.Router, handler *handlers.StatsHandler) {
	router.Get("/matrix", handler.Matrix)
	router.Get("/summary", handler.Summary)
}
