package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/connection"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if len(os.Args) < 2 {
		logger.Fatal("usage: migrate up|down|drop|version|force <v>")
	}

	dsn := connection.BuildMySQLDSN(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	sourceURL := os.Getenv("MIGRATIONS_PATH")
	if sourceURL == "" {
		sourceURL = "file://migrations"
	}

	m, err := migrate.New(sourceURL, fmt.Sprintf("mysql://%s", dsn))
	if err != nil {
		logger.Fatal("open migrator failed", zap.Error(err))
	}
	defer m.Close()

	switch os.Args[1] {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "drop":
		err = m.Drop()
	case "version":
		var v uint
		var dirty bool
		v, dirty, err = m.Version()
		if err == nil {
			logger.Info("migration version", zap.Uint("version", v), zap.Bool("dirty", dirty))
		}
	case "force":
		if len(os.Args) < 3 {
			logger.Fatal("usage: migrate force <version>")
		}
		var v int
		v, err = strconv.Atoi(os.Args[2])
		if err == nil {
			err = m.Force(v)
		}
	default:
		logger.Fatal("unknown command", zap.String("command", os.Args[1]))
	}

	if err != nil && err != migrate.ErrNoChange {
		logger.Fatal("migration failed", zap.Error(err))
	}

	logger.Info("migration complete", zap.String("command", os.Args[1]))
}
