package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aulakit/aula-backend/internal/data/db"
	apphttp "github.com/aulakit/aula-backend/internal/http"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg := LoadConfig(log)

	pg, err := db.New(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	theDB := pg.DB()

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, reposet)
	handlerset := wireHandlers(log, serviceset)

	router := apphttp.NewRouter(apphttp.RouterConfig{
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,

		SubjectHandler:  handlerset.Subject,
		GroupHandler:    handlerset.Group,
		TopicHandler:    handlerset.Topic,
		ConceptHandler:  handlerset.Concept,
		EpigraphHandler: handlerset.Epigraph,
		QuestionHandler: handlerset.Question,
		LinkHandler:     handlerset.Link,
		ExamHandler:     handlerset.Exam,
		ChangeHandler:   handlerset.Change,
		HealthHandler:   handlerset.Health,
	})

	return &App{
		Log:      log,
		DB:       theDB,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
	}, nil
}

func (a *App) Run(addr string) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
