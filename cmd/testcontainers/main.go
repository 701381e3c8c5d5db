package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/amenitydb/internal/database"
	"github.com/localnerve/amenitydb/internal/logging"
	"github.com/localnerve/amenitydb/internal/testutil"
	"github.com/rs/zerolog/log"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var dbType string
	flag.StringVar(&dbType, "db", "postgres", "database type: postgres, mysql or mariadb")
	flag.Parse()

	usage := `
Run a disposable amenitydb database container with the environment variables from the .env file.
The schema is migrated and the DB_* settings that reach the container are printed.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH] [-db DB_TYPE]

ENV_FILE_PATH: path to the .env file (POSTGRES_IMAGE / DB_IMAGE select the image)
DB_TYPE: postgres (default), mysql or mariadb

example
  testcontainers -f /path/to/something/.env -db postgres
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	logging.Init("info", "console")

	if envFilename != "" {
		log.Info().Str("file", envFilename).Msg("Loading environment variables")
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatal().Err(err).Msg("Failed to load environment variables")
		}
	} else {
		log.Info().Msg("No environment file specified, using current environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	container, err := testutil.StartDatabase(ctx, dbType, testutil.ContainerImage(dbType))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create test container")
	}
	defer container.Terminate(context.Background())

	db, err := database.Connect(container.Config)
	if err != nil {
		container.Terminate(context.Background())
		log.Fatal().Err(err).Msg("Failed to connect to test container")
	}
	if err := database.AutoMigrate(db); err != nil {
		container.Terminate(context.Background())
		log.Fatal().Err(err).Msg("Failed to migrate test container")
	}
	_ = database.Close(db)

	cfg := container.Config
	fmt.Fprintf(os.Stdout, "DB_TYPE=%s\nDB_HOST=%s\nDB_PORT=%s\nDB_DATABASE=%s\nDB_USER=%s\nDB_PASSWORD=%s\n",
		cfg.DBType, cfg.DBHost, cfg.DBPort, cfg.DBDatabase, cfg.DBUser, cfg.DBPassword)

	<-ctx.Done()
	log.Info().Msg("Received signal, terminating test container...")
}
