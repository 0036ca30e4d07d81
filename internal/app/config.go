package app

import (
	"strings"

	"github.com/aulakit/aula-backend/internal/platform/envutil"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type Config struct {
	HTTPPort    string
	CORSOrigins []string

	// ExamRequireAnswers excludes questions without a live answer from exam
	// assembly when set.
	ExamRequireAnswers bool
}

func LoadConfig(log *logger.Logger) Config {
	port := envutil.String("HTTP_PORT", "8080", log)
	requireAnswers := envutil.Bool("EXAM_REQUIRE_ANSWERS", true, log)

	var origins []string
	if raw := envutil.String("CORS_ORIGINS", "", log); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Config{
		HTTPPort:           port,
		CORSOrigins:        origins,
		ExamRequireAnswers: requireAnswers,
	}
}
