// seed.go
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
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/localnerve/amenitydb/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// CampusLat and CampusLon are the centre seeded coordinates are jittered around
	CampusLat = 40.1098
	CampusLon = -88.2273
	// CoordinateJitter is the largest seeded offset from the campus centre, in degrees
	CoordinateJitter = 0.005

	seedBatchSize = 200
)

var seedFloors = []string{"B", "1", "2", "3", "4", "5"}

// SeedBuilding is one entry of a building list
type SeedBuilding struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// SeedOptions controls how much random data Seed generates.
// A nil Rand is replaced by a time-seeded generator; a zero Now means time.Now.
type SeedOptions struct {
	Users   int
	Reviews int
	Rand    *rand.Rand
	Now     time.Time
}

// SeedReport counts what a Seed run wrote
type SeedReport struct {
	Buildings   int   `json:"buildings"`
	Amenities   int   `json:"amenities"`
	Users       int64 `json:"users"`
	Tags        int   `json:"tags"`
	Reviews     int64 `json:"reviews"`
	AmenityTags int64 `json:"amenity_tags"`
}

// CleanText drops NULs and control characters other than tab, newline and
// carriage return, then trims surrounding space
func CleanText(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 32 && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// LoadSeedBuildings decodes a JSON array of buildings. Names and addresses are
// cleaned, incomplete entries are dropped and the first entry for a name wins.
func LoadSeedBuildings(r io.Reader) ([]SeedBuilding, error) {
	var raw []SeedBuilding
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode building list: %w", err)
	}

	seen := make(map[string]struct{}, len(raw))
	buildings := make([]SeedBuilding, 0, len(raw))
	for _, b := range raw {
		b.Name = CleanText(b.Name)
		b.Address = CleanText(b.Address)
		if b.Name == "" || b.Address == "" {
			continue
		}
		if _, dup := seen[b.Name]; dup {
			continue
		}
		seen[b.Name] = struct{}{}
		buildings = append(buildings, b)
	}
	return buildings, nil
}

// Seed populates the store with the given buildings, random amenities for
// each, and random users, tags, reviews and tag associations. Running it again
// reuses addresses, buildings, users and tags that already exist.
func Seed(ctx context.Context, db *gorm.DB, buildings []SeedBuilding, opts SeedOptions) (*SeedReport, error) {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	s := seeder{db: db.WithContext(ctx), rng: rng, now: now}
	report := &SeedReport{}

	for _, b := range buildings {
		created, err := s.building(b)
		if err != nil {
			return report, err
		}
		report.Buildings++
		report.Amenities += created
	}
	log.Info().Int("buildings", report.Buildings).Int("amenities", report.Amenities).Msg("Seeded buildings and amenities")

	userIDs, inserted, err := s.users(opts.Users)
	if err != nil {
		return report, err
	}
	report.Users = inserted
	log.Info().Int64("users", inserted).Msg("Seeded users")

	tagIDs, err := s.tags()
	if err != nil {
		return report, err
	}
	report.Tags = len(tagIDs)

	var amenities []models.Amenity
	if err := s.db.Select("amenity_id", "type").Order("amenity_id ASC").Find(&amenities).Error; err != nil {
		return report, storeError(err, "seed list amenities", "")
	}
	if len(amenities) == 0 || len(userIDs) == 0 {
		log.Warn().Msg("No amenities or users to review, skipping reviews")
		return report, nil
	}

	reviews, links := s.reviews(opts.Reviews, userIDs, amenities, tagIDs)
	err = s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "amenity_id"}},
				DoNothing: true,
			}).
			CreateInBatches(&reviews, seedBatchSize)
		if result.Error != nil {
			return result.Error
		}
		report.Reviews = result.RowsAffected

		if len(links) == 0 {
			return nil
		}
		result = tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{DoNothing: true}).
			CreateInBatches(&links, seedBatchSize)
		if result.Error != nil {
			return result.Error
		}
		report.AmenityTags = result.RowsAffected
		return nil
	})
	if err != nil {
		return report, storeError(err, "seed reviews", "")
	}
	log.Info().Int64("reviews", report.Reviews).Int64("amenity_tags", report.AmenityTags).Msg("Seeded reviews and tags")

	return report, nil
}

type seeder struct {
	db  *gorm.DB
	rng *rand.Rand
	now time.Time
}

// building upserts one building with its address and adds 1 to 4 amenities
// of every type. It returns the number of amenities created.
func (s seeder) building(b SeedBuilding) (int, error) {
	created := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		address := models.Address{
			Address: b.Address,
			Lat:     CampusLat + s.jitter(),
			Lon:     CampusLon + s.jitter(),
		}
		if err := tx.Where(models.Address{Address: b.Address}).FirstOrCreate(&address).Error; err != nil {
			return err
		}

		var building models.Building
		err := tx.Where("name = ?", b.Name).Order("building_id ASC").Limit(1).Find(&building).Error
		if err != nil {
			return err
		}
		if building.BuildingID == 0 {
			building = models.Building{Name: b.Name, AddressID: address.AddressID}
			if err := tx.Omit(clause.Associations).Create(&building).Error; err != nil {
				return err
			}
		} else if building.AddressID != address.AddressID {
			err := tx.Model(&models.Building{}).
				Where("building_id = ?", building.BuildingID).
				Update("address_id", address.AddressID).Error
			if err != nil {
				return err
			}
		}

		amenities := make([]models.Amenity, 0, len(models.AmenityTypes)*4)
		for _, t := range models.AmenityTypes {
			n := s.rng.IntN(4) + 1
			for i := range n {
				floor := seedFloors[s.rng.IntN(len(seedFloors))]
				notes := fmt.Sprintf("Located on floor %s, near entrance/exit %d.", floor, i+1)
				amenities = append(amenities, models.Amenity{
					BuildingID: building.BuildingID,
					Type:       t,
					Floor:      floor,
					Notes:      &notes,
				})
			}
		}
		if err := tx.Omit(clause.Associations).Create(&amenities).Error; err != nil {
			return err
		}
		created = len(amenities)
		return nil
	})
	if err != nil {
		return 0, storeError(err, "seed building "+b.Name, "")
	}
	return created, nil
}

// users inserts n users, skipping emails that already exist, and returns the
// ids of the generated users present afterwards with the number inserted
func (s seeder) users(n int) ([]uint64, int64, error) {
	if n <= 0 {
		return nil, 0, nil
	}

	users := make([]models.User, 0, n)
	emails := make([]string, 0, n)
	for range n {
		id, err := uuid.NewRandomFromReader(randReader{s.rng})
		if err != nil {
			return nil, 0, err
		}
		short := strings.ReplaceAll(id.String(), "-", "")[:12]
		email := "user-" + short + "@illinois.edu"
		users = append(users, models.User{
			Username: "user_" + short[:8],
			Email:    email,
			JoinDate: s.now.AddDate(0, 0, -s.rng.IntN(730)).Truncate(24 * time.Hour),
		})
		emails = append(emails, email)
	}

	var ids []uint64
	var inserted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).CreateInBatches(&users, seedBatchSize)
		if result.Error != nil {
			return result.Error
		}
		inserted = result.RowsAffected
		return tx.Model(&models.User{}).Where("email IN ?", emails).Order("user_id ASC").Pluck("user_id", &ids).Error
	})
	if err != nil {
		return nil, 0, storeError(err, "seed users", "")
	}
	return ids, inserted, nil
}

// tags makes sure the standard tags exist and returns their ids in label order
func (s seeder) tags() ([]uint64, error) {
	tags := make([]models.Tag, 0, len(models.StandardTagLabels))
	for _, label := range models.StandardTagLabels {
		tags = append(tags, models.Tag{Label: label})
	}

	var ids []uint64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "label"}},
			DoNothing: true,
		}).Create(&tags).Error
		if err != nil {
			return err
		}
		return tx.Model(&models.Tag{}).
			Where("label IN ?", models.StandardTagLabels).
			Order("tag_id ASC").
			Pluck("tag_id", &ids).Error
	})
	if err != nil {
		return nil, storeError(err, "seed tags", "")
	}
	return ids, nil
}

type amenityTagPair struct {
	amenityID, tagID uint64
}

type userAmenityPair struct {
	userID, amenityID uint64
}

// reviews generates n reviews over random users and amenities with details
// shaped by amenity type, and tag associations for about 60% of them.
// Repeated (user, amenity) pairs are generated once.
func (s seeder) reviews(n int, userIDs []uint64, amenities []models.Amenity, tagIDs []uint64) ([]models.Review, []models.AmenityTag) {
	since := s.now.AddDate(-1, 0, 0)
	window := s.now.Sub(since)

	reviews := make([]models.Review, 0, n)
	links := make([]models.AmenityTag, 0)
	seenReviews := make(map[userAmenityPair]struct{}, n)
	seenLinks := make(map[amenityTagPair]struct{})

	for range n {
		userID := userIDs[s.rng.IntN(len(userIDs))]
		amenity := amenities[s.rng.IntN(len(amenities))]
		rating := math.Round((1+s.rng.Float64()*4)*10) / 10
		created := since.Add(time.Duration(s.rng.Int64N(int64(window))))

		if len(tagIDs) > 0 && s.rng.Float64() < 0.6 {
			k := s.rng.IntN(min(3, len(tagIDs))) + 1
			for _, i := range s.rng.Perm(len(tagIDs))[:k] {
				pair := amenityTagPair{amenity.AmenityID, tagIDs[i]}
				if _, dup := seenLinks[pair]; dup {
					continue
				}
				seenLinks[pair] = struct{}{}
				links = append(links, models.AmenityTag{AmenityID: pair.amenityID, TagID: pair.tagID})
			}
		}

		key := userAmenityPair{userID, amenity.AmenityID}
		if _, dup := seenReviews[key]; dup {
			continue
		}
		seenReviews[key] = struct{}{}

		details, _ := models.NewJSON(s.ratingDetails(amenity.Type))
		reviews = append(reviews, models.Review{
			UserID:        userID,
			AmenityID:     amenity.AmenityID,
			OverallRating: rating,
			RatingDetails: details,
			Timestamp:     created,
		})
	}
	return reviews, links
}

func (s seeder) ratingDetails(t models.AmenityType) map[string]any {
	score := func() int { return s.rng.IntN(5) + 1 }
	pick := func(choices ...string) string { return choices[s.rng.IntN(len(choices))] }

	switch t {
	case models.Bathroom:
		return map[string]any{
			"cleanliness": score(),
			"privacy":     score(),
			"stock":       score(),
		}
	case models.WaterFountain:
		return map[string]any{
			"flow":          score(),
			"temperature":   score(),
			"filter_status": pick("Good", "Needs Replacement"),
		}
	default:
		return map[string]any{
			"selection":       score(),
			"working_status":  pick("Working", "Error", "OutOfOrder"),
			"payment_options": pick("Cash Only", "Card Only", "Both"),
		}
	}
}

func (s seeder) jitter() float64 {
	return (s.rng.Float64()*2 - 1) * CoordinateJitter
}

// randReader adapts a seeded generator to io.Reader so generated ids are reproducible
type randReader struct {
	rng *rand.Rand
}

func (r randReader) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(buf[:], r.rng.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}
