package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/goccy/go-json"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// JSON is a wrapper around gorm.io/datatypes.JSON to allow for custom data type mapping.
// Rating details are stored through it as an opaque JSON object.
type JSON struct {
	datatypes.JSON
}

// NewJSON encodes a rating detail object. A nil map encodes as an empty object.
func NewJSON(details map[string]any) (JSON, error) {
	if details == nil {
		details = map[string]any{}
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return JSON{}, fmt.Errorf("encode rating details: %w", err)
	}
	return JSON{JSON: datatypes.JSON(raw)}, nil
}

// Map decodes the stored object. Empty or non-object payloads decode to an empty map.
func (j JSON) Map() map[string]any {
	out := map[string]any{}
	if len(j.JSON) == 0 {
		return out
	}
	_ = json.Unmarshal(j.JSON, &out)
	return out
}

// Value promotes the embedded JSON's Value method
func (j JSON) Value() (driver.Value, error) {
	return j.JSON.Value()
}

// Scan promotes the embedded JSON's Scan method
func (j *JSON) Scan(value interface{}) error {
	return j.JSON.Scan(value)
}

// GormDBDataType ensures the correct data type is used for each database driver.
// This resolves the issue where MSSQL does not support the 'json' data type.
func (JSON) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}
