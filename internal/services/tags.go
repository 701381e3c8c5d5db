package services

import (
	"context"
	"strings"

	"github.com/localnerve/amenitydb/internal/metrics"
	"github.com/localnerve/amenitydb/internal/models"
	"gorm.io/gorm"
)

// AttachTag associates a tag with an amenity. It reports false, without error,
// when the association already existed.
func AttachTag(ctx context.Context, db *gorm.DB, amenityID, tagID uint64) (*models.AmenityTag, bool, error) {
	var inserted bool
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireAmenity(tx, amenityID); err != nil {
			return err
		}
		if err := requireTag(tx, tagID); err != nil {
			return err
		}
		var err error
		inserted, err = insertAmenityTag(tx, amenityID, tagID)
		return err
	})
	if err != nil {
		return nil, false, storeError(err, "attach tag", "")
	}

	if inserted {
		metrics.TagAttachments.WithLabelValues("attached").Inc()
	} else {
		metrics.TagAttachments.WithLabelValues("already_attached").Inc()
	}
	return &models.AmenityTag{AmenityID: amenityID, TagID: tagID}, inserted, nil
}

// DetachTag removes the association between a tag and an amenity
func DetachTag(ctx context.Context, db *gorm.DB, amenityID, tagID uint64) error {
	result := db.WithContext(ctx).
		Where("amenity_id = ? AND tag_id = ?", amenityID, tagID).
		Delete(&models.AmenityTag{})
	if result.Error != nil {
		return storeError(result.Error, "detach tag", "")
	}
	if result.RowsAffected == 0 {
		return NotFound("Tag %d is not attached to amenity %d", tagID, amenityID)
	}
	return nil
}

// ListAmenityTags returns the tags attached to an amenity ordered by label
func ListAmenityTags(ctx context.Context, db *gorm.DB, amenityID uint64) ([]models.Tag, error) {
	tags := make([]models.Tag, 0)
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireAmenity(tx, amenityID); err != nil {
			return err
		}
		return tx.Model(&models.Tag{}).
			Joins("JOIN amenity_tags link ON link.tag_id = tags.tag_id").
			Where("link.amenity_id = ?", amenityID).
			Order("tags.label ASC").
			Find(&tags).Error
	})
	if err != nil {
		return nil, storeError(err, "list amenity tags", "")
	}
	return tags, nil
}

// ListTags returns every tag ordered by label
func ListTags(ctx context.Context, db *gorm.DB) ([]models.Tag, error) {
	tags := make([]models.Tag, 0)
	if err := db.WithContext(ctx).Order("label ASC").Find(&tags).Error; err != nil {
		return nil, storeError(err, "list tags", "")
	}
	return tags, nil
}

// CreateTag inserts a tag. Labels are unique.
func CreateTag(ctx context.Context, db *gorm.DB, label string) (*models.Tag, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, BadRequest("label is required")
	}
	tag := models.Tag{Label: label}
	if err := db.WithContext(ctx).Create(&tag).Error; err != nil {
		return nil, storeError(err, "create tag", "Tag "+label+" already exists")
	}
	return &tag, nil
}
