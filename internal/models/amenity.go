package models

// AmenityType is the kind of facility an amenity row describes
type AmenityType string

const (
	Bathroom       AmenityType = "Bathroom"
	WaterFountain  AmenityType = "WaterFountain"
	VendingMachine AmenityType = "VendingMachine"
)

// AmenityTypes lists every supported amenity type in display order
var AmenityTypes = []AmenityType{Bathroom, WaterFountain, VendingMachine}

// Valid reports whether t is one of the supported amenity types
func (t AmenityType) Valid() bool {
	switch t {
	case Bathroom, WaterFountain, VendingMachine:
		return true
	}
	return false
}

// RatingDetailKeys documents the conventional rating detail keys per amenity type.
// The store does not enforce them.
var RatingDetailKeys = map[AmenityType][]string{
	Bathroom:       {"cleanliness", "privacy", "stock"},
	WaterFountain:  {"flow", "temperature", "filter_status"},
	VendingMachine: {"selection", "working_status", "payment_options"},
}

// Amenity is a physical facility located in a building
type Amenity struct {
	AmenityID  uint64      `gorm:"primaryKey;autoIncrement" json:"amenity_id"`
	BuildingID uint64      `gorm:"not null;index" json:"building_id"`
	Type       AmenityType `gorm:"size:32;not null;index" json:"type"`
	Floor      string      `gorm:"size:32;not null" json:"floor"`
	Notes      *string     `gorm:"size:1024" json:"notes"`
	Building   *Building   `gorm:"constraint:OnDelete:CASCADE" json:"building,omitempty"`
}

// TableName overrides the table name for Amenity
func (Amenity) TableName() string {
	return "amenities"
}
