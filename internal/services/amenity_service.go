package services

import (
	"context"
	"errors"
	"strings"

	"github.com/localnerve/amenitydb/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AmenityInput describes a new amenity
type AmenityInput struct {
	BuildingID uint64
	Type       models.AmenityType
	Floor      string
	Notes      *string
}

// AmenityUpdate carries the amenity fields to change. Nil fields are left as they are.
type AmenityUpdate struct {
	BuildingID *uint64
	Type       *models.AmenityType
	Floor      *string
	Notes      *string
}

func (in AmenityInput) validate() (AmenityInput, error) {
	in.Floor = strings.TrimSpace(in.Floor)
	if in.BuildingID == 0 {
		return in, BadRequest("building_id is required")
	}
	if !in.Type.Valid() {
		return in, BadRequest("invalid amenity type %q", in.Type)
	}
	if in.Floor == "" {
		return in, BadRequest("floor is required")
	}
	return in, nil
}

// GetAmenity returns an amenity with its building and address
func GetAmenity(ctx context.Context, db *gorm.DB, amenityID uint64) (*models.Amenity, error) {
	var amenity models.Amenity
	err := db.WithContext(ctx).
		Preload("Building.Address").
		Where("amenity_id = ?", amenityID).
		First(&amenity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Amenity %d not found", amenityID)
		}
		return nil, storeError(err, "get amenity", "")
	}
	return &amenity, nil
}

// CreateAmenity inserts an amenity into an existing building
func CreateAmenity(ctx context.Context, db *gorm.DB, input AmenityInput) (*models.Amenity, error) {
	in, err := input.validate()
	if err != nil {
		return nil, err
	}

	amenity := models.Amenity{
		BuildingID: in.BuildingID,
		Type:       in.Type,
		Floor:      in.Floor,
		Notes:      in.Notes,
	}
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireBuilding(tx, in.BuildingID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&amenity).Error
	})
	if err != nil {
		return nil, storeError(err, "create amenity", "")
	}
	return &amenity, nil
}

// UpdateAmenity applies a partial update and returns the stored amenity
func UpdateAmenity(ctx context.Context, db *gorm.DB, amenityID uint64, update AmenityUpdate) (*models.Amenity, error) {
	updates := map[string]any{}
	if update.BuildingID != nil {
		updates["building_id"] = *update.BuildingID
	}
	if update.Type != nil {
		if !update.Type.Valid() {
			return nil, BadRequest("invalid amenity type %q", *update.Type)
		}
		updates["type"] = *update.Type
	}
	if update.Floor != nil {
		floor := strings.TrimSpace(*update.Floor)
		if floor == "" {
			return nil, BadRequest("floor must not be empty")
		}
		updates["floor"] = floor
	}
	if update.Notes != nil {
		updates["notes"] = *update.Notes
	}
	if len(updates) == 0 {
		return nil, BadRequest("No fields provided to update")
	}

	var amenity models.Amenity
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if update.BuildingID != nil {
			if err := requireBuilding(tx, *update.BuildingID); err != nil {
				return err
			}
		}
		if err := tx.Model(&models.Amenity{}).Where("amenity_id = ?", amenityID).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Where("amenity_id = ?", amenityID).First(&amenity).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Amenity %d not found", amenityID)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, storeError(err, "update amenity", "")
	}
	return &amenity, nil
}

// DeleteAmenity removes an amenity and returns its id
func DeleteAmenity(ctx context.Context, db *gorm.DB, amenityID uint64) (uint64, error) {
	result := db.WithContext(ctx).Where("amenity_id = ?", amenityID).Delete(&models.Amenity{})
	if result.Error != nil {
		return 0, storeError(result.Error, "delete amenity", "")
	}
	if result.RowsAffected == 0 {
		return 0, NotFound("Amenity %d not found", amenityID)
	}
	return amenityID, nil
}

// requireBuilding fails with NotFound unless the building exists
func requireBuilding(tx *gorm.DB, buildingID uint64) error {
	return requireRow(tx, &models.Building{}, "building_id", buildingID, "Building")
}

// requireAmenity fails with NotFound unless the amenity exists
func requireAmenity(tx *gorm.DB, amenityID uint64) error {
	return requireRow(tx, &models.Amenity{}, "amenity_id", amenityID, "Amenity")
}

// requireTag fails with NotFound unless the tag exists
func requireTag(tx *gorm.DB, tagID uint64) error {
	return requireRow(tx, &models.Tag{}, "tag_id", tagID, "Tag")
}

func requireRow(tx *gorm.DB, model any, column string, id uint64, name string) error {
	var count int64
	if err := tx.Model(model).Where(column+" = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return NotFound("%s %d not found", name, id)
	}
	return nil
}
