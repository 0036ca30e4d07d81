package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aulakit/aula-backend/internal/data/db"
	"github.com/aulakit/aula-backend/internal/data/repos"
	"github.com/aulakit/aula-backend/internal/platform/logger"
	"github.com/aulakit/aula-backend/internal/services"
)

func main() {
	seedFile := flag.String("seed-file", os.Getenv("SEED_FILE"), "path to the teacher seed YAML file")
	flag.Parse()

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *seedFile == "" {
		log.Error("No seed file given, pass -seed-file or set SEED_FILE")
		os.Exit(1)
	}

	pg, err := db.New(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}

	teacherRepo := repos.NewTeacherRepo(pg.DB(), log)
	bootstrap := services.NewBootstrapService(pg.DB(), log, teacherRepo)

	created, updated, err := bootstrap.SeedFromFile(context.Background(), *seedFile)
	if err != nil {
		log.Error("Teacher seed failed", "error", err)
		os.Exit(1)
	}
	log.Info("Teacher seed finished", "created", created, "updated", updated)
}
