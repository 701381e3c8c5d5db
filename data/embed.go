// Package data embeds the static data files shipped with the binaries.
package data

import (
	_ "embed"
)

// SeedBuildings is the default building list for cmd/seed, a JSON array of
// {"name", "address"} objects
//
//go:embed seed/buildings.json
var SeedBuildings []byte
