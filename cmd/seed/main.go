// main.go
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

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/localnerve/amenitydb/data"
	"github.com/localnerve/amenitydb/internal/config"
	"github.com/localnerve/amenitydb/internal/database"
	"github.com/localnerve/amenitydb/internal/logging"
	"github.com/localnerve/amenitydb/internal/services"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	buildingsPath string
	numUsers      int
	numReviews    int
	randomSeed    uint64
	migrate       bool
)

// rootCmd populates the configured database with buildings and random activity
var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the amenity database with buildings, amenities, users, tags and reviews",
	Long: `seed loads a building list (the embedded campus list unless --buildings is given),
creates each building with its address and a random set of amenities, then adds
random users, the standard tags, reviews and tag associations.

The database is selected with the same DB_* environment variables as the server.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&buildingsPath, "buildings", "b", "", "JSON building list to load instead of the embedded one")
	rootCmd.Flags().IntVarP(&numUsers, "users", "u", 100, "number of users to generate")
	rootCmd.Flags().IntVarP(&numReviews, "reviews", "r", 1000, "number of reviews to generate")
	rootCmd.Flags().Uint64Var(&randomSeed, "seed", 0, "random seed, 0 picks one from the clock")
	rootCmd.Flags().BoolVar(&migrate, "migrate", true, "run schema migrations first")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(cfg.LogLevel, cfg.LogFormat)

	if numUsers < 0 || numReviews < 0 {
		return fmt.Errorf("--users and --reviews must not be negative")
	}

	var source io.Reader = bytes.NewReader(data.SeedBuildings)
	if buildingsPath != "" {
		f, err := os.Open(buildingsPath)
		if err != nil {
			return fmt.Errorf("open building list: %w", err)
		}
		defer f.Close()
		source = f
	}
	buildings, err := services.LoadSeedBuildings(source)
	if err != nil {
		return err
	}
	if len(buildings) == 0 {
		return fmt.Errorf("building list is empty")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if migrate {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	opts := services.SeedOptions{Users: numUsers, Reviews: numReviews}
	if randomSeed != 0 {
		opts.Rand = rand.New(rand.NewPCG(randomSeed, randomSeed))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Int("buildings", len(buildings)).Int("users", numUsers).Int("reviews", numReviews).Msg("Seeding database")
	report, err := services.Seed(ctx, db, buildings, opts)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
