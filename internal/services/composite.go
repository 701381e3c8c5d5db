// composite.go
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

package services

import (
	"context"
	"math"
	"strings"

	"github.com/localnerve/amenitydb/internal/metrics"
	"github.com/localnerve/amenitydb/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BuildingWithAddressInput describes a new building at a new address
type BuildingWithAddressInput struct {
	Name    string
	Address string
	Lat     float64
	Lon     float64
}

// BuildingWithAddressResult is the outcome of CreateBuildingWithAddress
type BuildingWithAddressResult struct {
	BuildingID uint64  `json:"building_id"`
	AddressID  uint64  `json:"address_id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
}

// AmenityWithTagsInput describes a new amenity and the tags to attach to it
type AmenityWithTagsInput struct {
	AmenityInput
	TagIDs []uint64
}

// AmenityWithTagsResult is the outcome of CreateAmenityWithTags.
// AttachedTagIDs holds only the associations this call inserted.
type AmenityWithTagsResult struct {
	AmenityID      uint64   `json:"amenity_id"`
	AttachedTagIDs []uint64 `json:"attached_tag_ids"`
}

func (in BuildingWithAddressInput) validate() (BuildingWithAddressInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	if in.Name == "" {
		return in, BadRequest("name is required")
	}
	if in.Address == "" {
		return in, BadRequest("address is required")
	}
	if math.IsNaN(in.Lat) || in.Lat < -90 || in.Lat > 90 {
		return in, BadRequest("lat must be between -90 and 90")
	}
	if math.IsNaN(in.Lon) || in.Lon < -180 || in.Lon > 180 {
		return in, BadRequest("lon must be between -180 and 180")
	}
	return in, nil
}

// CreateBuildingWithAddress inserts an address and a building that references
// it in one transaction. Either both rows exist afterwards or neither does.
func CreateBuildingWithAddress(ctx context.Context, db *gorm.DB, input BuildingWithAddressInput) (*BuildingWithAddressResult, error) {
	in, err := input.validate()
	if err != nil {
		return nil, err
	}

	address := models.Address{Address: in.Address, Lat: in.Lat, Lon: in.Lon}
	building := models.Building{Name: in.Name}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&address).Error; err != nil {
			return storeError(err, "create address", "Address already exists")
		}
		building.AddressID = address.AddressID
		return tx.Omit(clause.Associations).Create(&building).Error
	})
	if err != nil {
		metrics.CompositeRollbacks.WithLabelValues("building_with_address").Inc()
		log.Ctx(ctx).Warn().Err(err).Str("building", in.Name).Msg("Building with address rolled back")
		return nil, storeError(err, "create building with address", "")
	}

	return &BuildingWithAddressResult{
		BuildingID: building.BuildingID,
		AddressID:  address.AddressID,
		Name:       building.Name,
		Address:    address.Address,
		Lat:        address.Lat,
		Lon:        address.Lon,
	}, nil
}

// CreateAmenityWithTags inserts an amenity and attaches the given tags in one
// transaction. Repeated or already attached tag ids are skipped. An unknown
// building or tag id rolls back everything, amenity included.
func CreateAmenityWithTags(ctx context.Context, db *gorm.DB, input AmenityWithTagsInput) (*AmenityWithTagsResult, error) {
	in, err := input.AmenityInput.validate()
	if err != nil {
		return nil, err
	}
	for _, id := range input.TagIDs {
		if id == 0 {
			return nil, BadRequest("tag ids must be positive")
		}
	}

	amenity := models.Amenity{
		BuildingID: in.BuildingID,
		Type:       in.Type,
		Floor:      in.Floor,
		Notes:      in.Notes,
	}
	attached := make([]uint64, 0, len(input.TagIDs))

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireBuilding(tx, in.BuildingID); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(&amenity).Error; err != nil {
			return err
		}

		seen := make(map[uint64]struct{}, len(input.TagIDs))
		for _, tagID := range input.TagIDs {
			if _, dup := seen[tagID]; dup {
				continue
			}
			seen[tagID] = struct{}{}

			if err := requireTag(tx, tagID); err != nil {
				return err
			}
			inserted, err := insertAmenityTag(tx, amenity.AmenityID, tagID)
			if err != nil {
				return err
			}
			if inserted {
				attached = append(attached, tagID)
			}
		}
		return nil
	})
	if err != nil {
		metrics.CompositeRollbacks.WithLabelValues("amenity_with_tags").Inc()
		log.Ctx(ctx).Warn().Err(err).Uint64("building_id", in.BuildingID).Msg("Amenity with tags rolled back")
		return nil, storeError(err, "create amenity with tags", "")
	}

	return &AmenityWithTagsResult{AmenityID: amenity.AmenityID, AttachedTagIDs: attached}, nil
}

// insertAmenityTag inserts the association unless it already exists and
// reports whether a row was inserted
func insertAmenityTag(tx *gorm.DB, amenityID, tagID uint64) (bool, error) {
	link := models.AmenityTag{AmenityID: amenityID, TagID: tagID}
	result := tx.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&link)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
