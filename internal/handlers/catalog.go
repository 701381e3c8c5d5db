package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/amenitydb/internal/services"
	"gorm.io/gorm"
)

// CatalogHandler handles building, tag and user routes
type CatalogHandler struct {
	DB *gorm.DB
}

// BuildingWithAddressRequest is the body of POST /api/buildings/with-address
type BuildingWithAddressRequest struct {
	Name    string   `json:"name" validate:"required,max=255"`
	Address string   `json:"address" validate:"required,max=512"`
	Lat     *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lon     *float64 `json:"lon" validate:"required,gte=-180,lte=180"`
}

// TagRequest is the body of POST /api/tags
type TagRequest struct {
	Label string `json:"label" validate:"required,max=64"`
}

// UserRequest is the body of POST /api/users
type UserRequest struct {
	Username string     `json:"username" validate:"required,max=255"`
	Email    string     `json:"email" validate:"required,email,max=255"`
	JoinDate *time.Time `json:"join_date"`
}

// CreateBuildingWithAddress handles POST /api/buildings/with-address
// @Summary Create a building and its address
// @Description Both rows are created in one transaction
// @Tags Buildings
// @Accept json
// @Produce json
// @Param building body BuildingWithAddressRequest true "Building and address"
// @Success 201 {object} services.BuildingWithAddressResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /buildings/with-address [post]
func (h *CatalogHandler) CreateBuildingWithAddress(c *fiber.Ctx) error {
	var body BuildingWithAddressRequest
	if err := parseBody(c, &body, "buildings.validation.input"); err != nil {
		return respondError(c, err, "buildings.createWithAddress")
	}
	result, err := services.CreateBuildingWithAddress(c.UserContext(), h.DB, services.BuildingWithAddressInput{
		Name:    body.Name,
		Address: body.Address,
		Lat:     *body.Lat,
		Lon:     *body.Lon,
	})
	if err != nil {
		return respondError(c, err, "buildings.createWithAddress")
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// ListBuildings handles GET /api/buildings
// @Summary List buildings
// @Tags Buildings
// @Produce json
// @Success 200 {array} models.Building
// @Router /buildings [get]
func (h *CatalogHandler) ListBuildings(c *fiber.Ctx) error {
	buildings, err := services.ListBuildings(c.UserContext(), h.DB)
	if err != nil {
		return respondError(c, err, "buildings.list")
	}
	return c.Status(fiber.StatusOK).JSON(buildings)
}

// GetBuilding handles GET /api/buildings/:id
// @Summary Get a building
// @Tags Buildings
// @Produce json
// @Param id path int true "Building ID"
// @Success 200 {object} models.Building
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /buildings/{id} [get]
func (h *CatalogHandler) GetBuilding(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "buildings.get")
	}
	building, err := services.GetBuilding(c.UserContext(), h.DB, id)
	if err != nil {
		return respondError(c, err, "buildings.get")
	}
	return c.Status(fiber.StatusOK).JSON(building)
}

// ListTags handles GET /api/tags
// @Summary List tags
// @Tags Tags
// @Produce json
// @Success 200 {array} models.Tag
// @Router /tags [get]
func (h *CatalogHandler) ListTags(c *fiber.Ctx) error {
	tags, err := services.ListTags(c.UserContext(), h.DB)
	if err != nil {
		return respondError(c, err, "tags.list")
	}
	return c.Status(fiber.StatusOK).JSON(tags)
}

// CreateTag handles POST /api/tags
// @Summary Create a tag
// @Tags Tags
// @Accept json
// @Produce json
// @Param tag body TagRequest true "Tag"
// @Success 201 {object} models.Tag
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /tags [post]
func (h *CatalogHandler) CreateTag(c *fiber.Ctx) error {
	var body TagRequest
	if err := parseBody(c, &body, "tags.validation.input"); err != nil {
		return respondError(c, err, "tags.create")
	}
	tag, err := services.CreateTag(c.UserContext(), h.DB, body.Label)
	if err != nil {
		return respondError(c, err, "tags.create")
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}

// CreateUser handles POST /api/users
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body UserRequest true "User"
// @Success 201 {object} models.User
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /users [post]
func (h *CatalogHandler) CreateUser(c *fiber.Ctx) error {
	var body UserRequest
	if err := parseBody(c, &body, "users.validation.input"); err != nil {
		return respondError(c, err, "users.create")
	}
	input := services.UserInput{Username: body.Username, Email: body.Email}
	if body.JoinDate != nil {
		input.JoinDate = *body.JoinDate
	}
	user, err := services.CreateUser(c.UserContext(), h.DB, input)
	if err != nil {
		return respondError(c, err, "users.create")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetUser handles GET /api/users/:id
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id} [get]
func (h *CatalogHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "users.get")
	}
	user, err := services.GetUser(c.UserContext(), h.DB, id)
	if err != nil {
		return respondError(c, err, "users.get")
	}
	return c.Status(fiber.StatusOK).JSON(user)
}
