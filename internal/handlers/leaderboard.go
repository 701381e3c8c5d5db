package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/amenitydb/internal/services"
	"gorm.io/gorm"
)

// LeaderboardHandler handles the fixed top 15 rankings
type LeaderboardHandler struct {
	DB *gorm.DB
}

// CleanBathroomsWithVending handles GET /api/leaderboard/clean-bathrooms-vending
// @Summary Buildings with a vending machine ranked by bathroom reviews
// @Tags Leaderboard
// @Produce json
// @Success 200 {array} services.CleanBathroomEntry
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /leaderboard/clean-bathrooms-vending [get]
func (h *LeaderboardHandler) CleanBathroomsWithVending(c *fiber.Ctx) error {
	entries, err := services.CleanBathroomsWithVending(c.UserContext(), h.DB)
	if err != nil {
		return respondError(c, err, "leaderboard.cleanBathroomsVending")
	}
	return c.Status(fiber.StatusOK).JSON(entries)
}

// ColdestFountains handles GET /api/leaderboard/coldest-fountains
// @Summary Water fountains ranked by ColdWater tagging
// @Tags Leaderboard
// @Produce json
// @Success 200 {array} services.ColdFountainEntry
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /leaderboard/coldest-fountains [get]
func (h *LeaderboardHandler) ColdestFountains(c *fiber.Ctx) error {
	entries, err := services.ColdestFountains(c.UserContext(), h.DB)
	if err != nil {
		return respondError(c, err, "leaderboard.coldestFountains")
	}
	return c.Status(fiber.StatusOK).JSON(entries)
}

// OverallAmenities handles GET /api/leaderboard/overall-amenities
// @Summary Reviewed amenities ranked by average rating
// @Tags Leaderboard
// @Produce json
// @Success 200 {array} services.OverallAmenityEntry
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /leaderboard/overall-amenities [get]
func (h *LeaderboardHandler) OverallAmenities(c *fiber.Ctx) error {
	entries, err := services.OverallAmenities(c.UserContext(), h.DB)
	if err != nil {
		return respondError(c, err, "leaderboard.overallAmenities")
	}
	return c.Status(fiber.StatusOK).JSON(entries)
}
