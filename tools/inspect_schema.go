// inspect_schema prints the DDL GORM generates for the amenity schema on SQLite.
// Run it with: go run ./tools
package main

import (
	"fmt"

	"github.com/localnerve/amenitydb/internal/database"
	"github.com/localnerve/amenitydb/internal/logging"
	"github.com/localnerve/amenitydb/internal/testutil"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.Init("warn", "console")

	db, err := database.Connect(testutil.SQLiteConfig())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open SQLite")
	}
	defer database.Close(db)

	// Auto-migrate to see what GORM creates
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate")
	}

	// Get the schema
	var tables []string
	db.Raw("SELECT name FROM sqlite_master WHERE type='table' ORDER BY name").Scan(&tables)

	for _, table := range tables {
		fmt.Printf("\n=== Table: %s ===\n", table)
		var schema string
		db.Raw("SELECT sql FROM sqlite_master WHERE name = ?", table).Scan(&schema)
		fmt.Println(schema)

		var indexes []string
		db.Raw("SELECT sql FROM sqlite_master WHERE type='index' AND tbl_name = ? AND sql IS NOT NULL", table).Scan(&indexes)
		for _, idx := range indexes {
			fmt.Println(idx)
		}
	}
}
