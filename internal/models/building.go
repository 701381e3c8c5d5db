package models

// Address is a geocoded street address shared by zero or more buildings
type Address struct {
	AddressID uint64  `gorm:"primaryKey;autoIncrement" json:"address_id"`
	Address   string  `gorm:"size:512;not null;uniqueIndex" json:"address"`
	Lat       float64 `gorm:"not null" json:"lat"`
	Lon       float64 `gorm:"not null" json:"lon"`
}

// Building is a named campus building at exactly one address
type Building struct {
	BuildingID uint64   `gorm:"primaryKey;autoIncrement" json:"building_id"`
	Name       string   `gorm:"size:255;not null;index" json:"name"`
	AddressID  uint64   `gorm:"not null;index" json:"address_id"`
	Address    *Address `json:"address,omitempty"`
}

// TableName overrides the table name for Address
func (Address) TableName() string {
	return "addresses"
}

// TableName overrides the table name for Building
func (Building) TableName() string {
	return "buildings"
}
