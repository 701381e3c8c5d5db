package services

import (
	"context"
	"errors"

	"github.com/localnerve/amenitydb/internal/models"
	"gorm.io/gorm"
)

// ListBuildings returns every building with its address ordered by name
func ListBuildings(ctx context.Context, db *gorm.DB) ([]models.Building, error) {
	buildings := make([]models.Building, 0)
	err := db.WithContext(ctx).
		Preload("Address").
		Order("name ASC").
		Order("building_id ASC").
		Find(&buildings).Error
	if err != nil {
		return nil, storeError(err, "list buildings", "")
	}
	return buildings, nil
}

// GetBuilding returns a building with its address
func GetBuilding(ctx context.Context, db *gorm.DB, buildingID uint64) (*models.Building, error) {
	var building models.Building
	err := db.WithContext(ctx).Preload("Address").Where("building_id = ?", buildingID).First(&building).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Building %d not found", buildingID)
		}
		return nil, storeError(err, "get building", "")
	}
	return &building, nil
}
