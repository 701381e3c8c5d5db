// amenities.go
//
// Campus amenity ratings and discovery service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of amenitydb.
// amenitydb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// amenitydb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with amenitydb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/amenitydb/internal/models"
	"github.com/localnerve/amenitydb/internal/services"
	"github.com/localnerve/amenitydb/internal/types"
	"github.com/localnerve/amenitydb/internal/utils"
	"gorm.io/gorm"
)

// AmenityHandler handles amenity routes
type AmenityHandler struct {
	DB *gorm.DB
}

// AmenityRequest is the body of POST /api/amenities
type AmenityRequest struct {
	BuildingID types.FlexInt64 `json:"building_id" validate:"required,gt=0"`
	Type       string          `json:"type" validate:"required,oneof=Bathroom WaterFountain VendingMachine"`
	Floor      string          `json:"floor" validate:"required,max=32"`
	Notes      *string         `json:"notes" validate:"omitempty,max=1024"`
}

// AmenityUpdateRequest is the body of PUT /api/amenities/:id
type AmenityUpdateRequest struct {
	BuildingID *types.FlexInt64 `json:"building_id" validate:"omitempty,gt=0"`
	Type       *string          `json:"type" validate:"omitempty,oneof=Bathroom WaterFountain VendingMachine"`
	Floor      *string          `json:"floor" validate:"omitempty,max=32"`
	Notes      *string          `json:"notes" validate:"omitempty,max=1024"`
}

// AmenityWithTagsRequest is the body of POST /api/amenities/with-tags
type AmenityWithTagsRequest struct {
	AmenityRequest
	TagIDs types.IDList `json:"tag_ids" validate:"dive,gt=0"`
}

func (r AmenityRequest) input() services.AmenityInput {
	return services.AmenityInput{
		BuildingID: r.BuildingID.ID(),
		Type:       models.AmenityType(r.Type),
		Floor:      r.Floor,
		Notes:      r.Notes,
	}
}

// ListAmenities handles GET /api/amenities
// @Summary List amenities
// @Description Filter amenities by keyword and type, with live average rating and review count
// @Tags Amenities
// @Produce json
// @Param keyword query string false "Case-insensitive substring of building name, address or notes"
// @Param amenity_type query string false "Bathroom, WaterFountain or VendingMachine"
// @Param limit query int false "Page size (1-1500)" default(50)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {array} services.AmenityListing
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /amenities [get]
func (h *AmenityHandler) ListAmenities(c *fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit")
	if err != nil {
		return respondError(c, err, "amenities.list")
	}
	offset, err := parseQueryInt(c, "offset")
	if err != nil {
		return respondError(c, err, "amenities.list")
	}
	if c.Query("limit") != "" && limit == 0 {
		return respondError(c, services.BadRequest("limit must be between 1 and %d", services.MaxListLimit), "amenities.list")
	}

	listings, err := services.ListAmenities(c.UserContext(), h.DB, services.AmenityFilter{
		Keyword: c.Query("keyword"),
		Type:    models.AmenityType(c.Query("amenity_type")),
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return respondError(c, err, "amenities.list")
	}
	return c.Status(fiber.StatusOK).JSON(listings)
}

// GetAmenity handles GET /api/amenities/:id
// @Summary Get an amenity
// @Tags Amenities
// @Produce json
// @Param id path int true "Amenity ID"
// @Success 200 {object} models.Amenity
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /amenities/{id} [get]
func (h *AmenityHandler) GetAmenity(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "amenities.get")
	}
	amenity, err := services.GetAmenity(c.UserContext(), h.DB, id)
	if err != nil {
		return respondError(c, err, "amenities.get")
	}
	return c.Status(fiber.StatusOK).JSON(amenity)
}

// CreateAmenity handles POST /api/amenities
// @Summary Create an amenity
// @Tags Amenities
// @Accept json
// @Produce json
// @Param amenity body AmenityRequest true "Amenity"
// @Success 201 {object} models.Amenity
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /amenities [post]
func (h *AmenityHandler) CreateAmenity(c *fiber.Ctx) error {
	var body AmenityRequest
	if err := parseBody(c, &body, "amenities.validation.input"); err != nil {
		return respondError(c, err, "amenities.create")
	}
	amenity, err := services.CreateAmenity(c.UserContext(), h.DB, body.input())
	if err != nil {
		return respondError(c, err, "amenities.create")
	}
	return c.Status(fiber.StatusCreated).JSON(amenity)
}

// UpdateAmenity handles PUT /api/amenities/:id
// @Summary Update an amenity
// @Description Only the supplied fields change
// @Tags Amenities
// @Accept json
// @Produce json
// @Param id path int true "Amenity ID"
// @Param amenity body AmenityUpdateRequest true "Fields to change"
// @Success 200 {object} models.Amenity
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /amenities/{id} [put]
func (h *AmenityHandler) UpdateAmenity(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "amenities.update")
	}
	var body AmenityUpdateRequest
	if err := parseBody(c, &body, "amenities.validation.input"); err != nil {
		return respondError(c, err, "amenities.update")
	}

	update := services.AmenityUpdate{Floor: body.Floor, Notes: body.Notes}
	if body.BuildingID != nil {
		buildingID := body.BuildingID.ID()
		update.BuildingID = &buildingID
	}
	if body.Type != nil {
		t := models.AmenityType(*body.Type)
		update.Type = &t
	}

	amenity, err := services.UpdateAmenity(c.UserContext(), h.DB, id, update)
	if err != nil {
		return respondError(c, err, "amenities.update")
	}
	return c.Status(fiber.StatusOK).JSON(amenity)
}

// DeleteAmenity handles DELETE /api/amenities/:id
// @Summary Delete an amenity
// @Tags Amenities
// @Produce json
// @Param id path int true "Amenity ID"
// @Success 200 {object} map[string]uint64
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /amenities/{id} [delete]
func (h *AmenityHandler) DeleteAmenity(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "amenities.delete")
	}
	deleted, err := services.DeleteAmenity(c.UserContext(), h.DB, id)
	if err != nil {
		return respondError(c, err, "amenities.delete")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"deleted_amenity_id": deleted})
}

// CreateAmenityWithTags handles POST /api/amenities/with-tags
// @Summary Create an amenity with tags
// @Description Creates the amenity and attaches the tags atomically. Repeated or already attached tags are left out of attached_tag_ids.
// @Tags Amenities
// @Accept json
// @Produce json
// @Param amenity body AmenityWithTagsRequest true "Amenity and tag ids"
// @Success 201 {object} services.AmenityWithTagsResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /amenities/with-tags [post]
func (h *AmenityHandler) CreateAmenityWithTags(c *fiber.Ctx) error {
	var body AmenityWithTagsRequest
	if err := parseBody(c, &body, "amenities.validation.input"); err != nil {
		return respondError(c, err, "amenities.createWithTags")
	}
	result, err := services.CreateAmenityWithTags(c.UserContext(), h.DB, services.AmenityWithTagsInput{
		AmenityInput: body.input(),
		TagIDs:       body.TagIDs.IDs(),
	})
	if err != nil {
		return respondError(c, err, "amenities.createWithTags")
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetReviewsForAmenity handles GET /api/amenities/:id/reviews
// @Summary List reviews of an amenity
// @Description Most recent first
// @Tags Amenities
// @Produce json
// @Param id path int true "Amenity ID"
// @Success 200 {array} models.Review
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /amenities/{id}/reviews [get]
func (h *AmenityHandler) GetReviewsForAmenity(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "amenities.reviews")
	}
	reviews, err := services.ListReviewsForAmenity(c.UserContext(), h.DB, id)
	if err != nil {
		return respondError(c, err, "amenities.reviews")
	}
	return c.Status(fiber.StatusOK).JSON(reviews)
}

// GetAmenityStatistics handles GET /api/amenities/:id/stats
// @Summary Review statistics of an amenity
// @Tags Amenities
// @Produce json
// @Param id path int true "Amenity ID"
// @Success 200 {object} services.AmenityStatistics
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /amenities/{id}/stats [get]
func (h *AmenityHandler) GetAmenityStatistics(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "amenities.stats")
	}
	stats, err := services.GetAmenityStatistics(c.UserContext(), h.DB, id)
	if err != nil {
		return respondError(c, err, "amenities.stats")
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}

// ListAmenityTags handles GET /api/amenities/:id/tags
// @Summary List tags of an amenity
// @Tags Tags
// @Produce json
// @Param id path int true "Amenity ID"
// @Success 200 {array} models.Tag
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /amenities/{id}/tags [get]
func (h *AmenityHandler) ListAmenityTags(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "tags.listForAmenity")
	}
	tags, err := services.ListAmenityTags(c.UserContext(), h.DB, id)
	if err != nil {
		return respondError(c, err, "tags.listForAmenity")
	}
	return c.Status(fiber.StatusOK).JSON(tags)
}

// AttachTag handles POST /api/amenities/:id/tags/:tagId
// @Summary Attach a tag to an amenity
// @Description Attaching an already attached tag is not an error
// @Tags Tags
// @Produce json
// @Param id path int true "Amenity ID"
// @Param tagId path int true "Tag ID"
// @Success 201 {object} models.AmenityTag
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /amenities/{id}/tags/{tagId} [post]
func (h *AmenityHandler) AttachTag(c *fiber.Ctx) error {
	amenityID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "tags.attach")
	}
	tagID, err := parseID(c, "tagId")
	if err != nil {
		return respondError(c, err, "tags.attach")
	}

	link, attached, err := services.AttachTag(c.UserContext(), h.DB, amenityID, tagID)
	if err != nil {
		return respondError(c, err, "tags.attach")
	}
	if !attached {
		return utils.MessageResponse(c, "already attached", fiber.StatusOK)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

// DetachTag handles DELETE /api/amenities/:id/tags/:tagId
// @Summary Detach a tag from an amenity
// @Tags Tags
// @Produce json
// @Param id path int true "Amenity ID"
// @Param tagId path int true "Tag ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /amenities/{id}/tags/{tagId} [delete]
func (h *AmenityHandler) DetachTag(c *fiber.Ctx) error {
	amenityID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "tags.detach")
	}
	tagID, err := parseID(c, "tagId")
	if err != nil {
		return respondError(c, err, "tags.detach")
	}
	if err := services.DetachTag(c.UserContext(), h.DB, amenityID, tagID); err != nil {
		return respondError(c, err, "tags.detach")
	}
	return utils.MessageResponse(c, "removed", fiber.StatusOK)
}
