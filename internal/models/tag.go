package models

// Tag is a unique label that can be attached to many amenities
type Tag struct {
	TagID uint64 `gorm:"primaryKey;autoIncrement" json:"tag_id"`
	Label string `gorm:"size:64;not null;uniqueIndex" json:"label"`
}

// AmenityTag associates one tag with one amenity. The pair is the primary key,
// so an association exists at most once.
type AmenityTag struct {
	AmenityID uint64   `gorm:"primaryKey;autoIncrement:false" json:"amenity_id"`
	TagID     uint64   `gorm:"primaryKey;autoIncrement:false;index" json:"tag_id"`
	Amenity   *Amenity `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Tag       *Tag     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name for Tag
func (Tag) TableName() string {
	return "tags"
}

// TableName overrides the table name for AmenityTag
func (AmenityTag) TableName() string {
	return "amenity_tags"
}

// ColdWaterLabel is the tag label the coldest-fountains leaderboard counts
const ColdWaterLabel = "ColdWater"

// StandardTagLabels are the tags every seeded database starts with
var StandardTagLabels = []string{
	"Clean",
	"Dirty",
	"HighPressure",
	"LowPressure",
	"OutOfOrder",
	"Modern",
	"Spacious",
	ColdWaterLabel,
	"WarmWater",
}
