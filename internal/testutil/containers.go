// containers.go
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

package testutil

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/localnerve/amenitydb/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	containerDatabase = "amenitydb"
	containerUser     = "amenity"
	containerPassword = "amenities"
)

// DatabaseContainer is a disposable database server and the config that reaches it
type DatabaseContainer struct {
	Container testcontainers.Container
	Config    *config.Config
}

// Terminate stops and removes the container
func (dc *DatabaseContainer) Terminate(ctx context.Context) {
	if dc == nil || dc.Container == nil {
		return
	}
	if err := dc.Container.Terminate(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to terminate database container")
	}
}

// ContainerImage returns the image configured for dbType, or "" when none is set.
// POSTGRES_IMAGE selects the postgres image and DB_IMAGE the mysql/mariadb image.
func ContainerImage(dbType string) string {
	switch dbType {
	case "postgres":
		return os.Getenv("POSTGRES_IMAGE")
	case "mysql", "mariadb":
		return os.Getenv("DB_IMAGE")
	}
	return ""
}

// StartDatabase starts a postgres, mysql or mariadb container from image
func StartDatabase(ctx context.Context, dbType, image string) (*DatabaseContainer, error) {
	var (
		port    string
		env     map[string]string
		waitFor *wait.LogStrategy
	)

	switch dbType {
	case "postgres":
		port = "5432"
		env = map[string]string{
			"POSTGRES_DB":       containerDatabase,
			"POSTGRES_USER":     containerUser,
			"POSTGRES_PASSWORD": containerPassword,
		}
		waitFor = wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second)
	case "mysql", "mariadb":
		port = "3306"
		env = map[string]string{
			"MYSQL_ROOT_PASSWORD": containerPassword,
			"MYSQL_DATABASE":      containerDatabase,
			"MYSQL_USER":          containerUser,
			"MYSQL_PASSWORD":      containerPassword,
		}
		waitFor = wait.ForLog("ready for connections").WithStartupTimeout(90 * time.Second)
	default:
		return nil, fmt.Errorf("no container recipe for database type %s", dbType)
	}
	if image == "" {
		return nil, fmt.Errorf("no image configured for database type %s", dbType)
	}

	tcpPort, err := nat.NewPort("tcp", port)
	if err != nil {
		return nil, fmt.Errorf("container port: %w", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(tcpPort)},
			Env:          env,
			WaitingFor:   wait.ForAll(waitFor, wait.ForListeningPort(tcpPort)),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("start %s container: %w", dbType, err)
	}
	dc := &DatabaseContainer{Container: container}

	host, err := container.Host(ctx)
	if err != nil {
		dc.Terminate(ctx)
		return nil, fmt.Errorf("container host: %w", err)
	}
	mapped, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		dc.Terminate(ctx)
		return nil, fmt.Errorf("container port: %w", err)
	}

	dc.Config = &config.Config{
		Port:              "3000",
		Env:               "test",
		CORSOrigins:       "*",
		LogLevel:          "info",
		LogFormat:         "json",
		DBType:            dbType,
		DBHost:            host,
		DBPort:            mapped.Port(),
		DBDatabase:        containerDatabase,
		DBUser:            containerUser,
		DBPassword:        containerPassword,
		DBSSLMode:         "disable",
		DBConnectionLimit: 10,
	}

	log.Info().
		Str("db_type", dbType).
		Str("host", host).
		Str("port", mapped.Port()).
		Msg("Database container started")

	return dc, nil
}
