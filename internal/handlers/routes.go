package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/amenitydb/internal/config"
	"github.com/localnerve/amenitydb/internal/middleware"
	"github.com/localnerve/amenitydb/internal/services"
	"github.com/localnerve/amenitydb/internal/utils"
	"gorm.io/gorm"
)

// Register mounts the root, health and /api routes on app
func Register(app fiber.Router, cfg *config.Config, db *gorm.DB) {
	app.Get("/", Root)
	app.Get("/healthz", Health(cfg, db))

	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	amenities := &AmenityHandler{DB: db}
	reviews := &ReviewHandler{DB: db}
	catalog := &CatalogHandler{DB: db}
	leaderboard := &LeaderboardHandler{DB: db}

	// Static segments are registered before :id so they win
	api.Get("/amenities", amenities.ListAmenities)
	api.Post("/amenities", amenities.CreateAmenity)
	api.Post("/amenities/with-tags", amenities.CreateAmenityWithTags)
	api.Get("/amenities/:id", amenities.GetAmenity)
	api.Put("/amenities/:id", amenities.UpdateAmenity)
	api.Delete("/amenities/:id", amenities.DeleteAmenity)
	api.Get("/amenities/:id/reviews", amenities.GetReviewsForAmenity)
	api.Get("/amenities/:id/stats", amenities.GetAmenityStatistics)
	api.Get("/amenities/:id/tags", amenities.ListAmenityTags)
	api.Post("/amenities/:id/tags/:tagId", amenities.AttachTag)
	api.Delete("/amenities/:id/tags/:tagId", amenities.DetachTag)

	api.Post("/reviews", reviews.CreateReview)
	api.Post("/reviews/upsert", reviews.UpsertReview)
	api.Get("/reviews/:id", reviews.GetReview)
	api.Put("/reviews/:id", reviews.UpdateReview)
	api.Delete("/reviews/:id", reviews.DeleteReview)

	api.Get("/buildings", catalog.ListBuildings)
	api.Post("/buildings/with-address", catalog.CreateBuildingWithAddress)
	api.Get("/buildings/:id", catalog.GetBuilding)
	api.Get("/tags", catalog.ListTags)
	api.Post("/tags", catalog.CreateTag)
	api.Post("/users", catalog.CreateUser)
	api.Get("/users/:id", catalog.GetUser)

	api.Get("/leaderboard/clean-bathrooms-vending", leaderboard.CleanBathroomsWithVending)
	api.Get("/leaderboard/coldest-fountains", leaderboard.ColdestFountains)
	api.Get("/leaderboard/overall-amenities", leaderboard.OverallAmenities)
}

// Root handles GET /
// @Summary Liveness message
// @Tags Health
// @Produce json
// @Success 200 {object} utils.MessageResponseStruct
// @Router / [get]
func Root(c *fiber.Ctx) error {
	return utils.MessageResponse(c, "API is running", fiber.StatusOK)
}

// Health handles GET /healthz
// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /healthz [get]
func Health(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result := services.HealthCheck(c.UserContext(), cfg, db)
		status := fiber.StatusOK
		if !result.Healthy() {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	}
}
