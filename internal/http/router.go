package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/aulakit/aula-backend/internal/http/handlers"
	httpMW "github.com/aulakit/aula-backend/internal/http/middleware"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	CORSOrigins []string

	SubjectHandler  *httpH.SubjectHandler
	GroupHandler    *httpH.GroupHandler
	TopicHandler    *httpH.TopicHandler
	ConceptHandler  *httpH.ConceptHandler
	EpigraphHandler *httpH.EpigraphHandler
	QuestionHandler *httpH.QuestionHandler
	LinkHandler     *httpH.LinkHandler
	ExamHandler     *httpH.ExamHandler
	ChangeHandler   *httpH.ChangeHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.SubjectHandler != nil {
			api.POST("/subjects", cfg.SubjectHandler.Create)
			api.GET("/subjects", cfg.SubjectHandler.List)
			api.GET("/subjects/:id", cfg.SubjectHandler.Get)
			api.PATCH("/subjects/:id", cfg.SubjectHandler.Update)
			api.DELETE("/subjects/:id", cfg.SubjectHandler.Delete)
		}
		if cfg.LinkHandler != nil {
			api.GET("/subjects/:id/topics", cfg.LinkHandler.ListSubjectTopics)
			api.POST("/subjects/:id/topics/:topicID", cfg.LinkHandler.LinkTopicToSubject)
			api.DELETE("/subjects/:id/topics/:topicID", cfg.LinkHandler.UnlinkTopicFromSubject)
			api.POST("/subjects/:id/topics/reorder", cfg.LinkHandler.SwapTopicOrder)
		}

		if cfg.GroupHandler != nil {
			api.POST("/groups", cfg.GroupHandler.Create)
			api.GET("/groups", cfg.GroupHandler.List)
			api.GET("/groups/:id", cfg.GroupHandler.Get)
			api.PATCH("/groups/:id", cfg.GroupHandler.Update)
			api.DELETE("/groups/:id", cfg.GroupHandler.Delete)
		}
		if cfg.ExamHandler != nil {
			api.GET("/groups/:id/stats", cfg.ExamHandler.GroupStats)
			api.GET("/groups/:id/exams", cfg.ExamHandler.ListGroupExams)
		}

		if cfg.TopicHandler != nil {
			api.POST("/topics", cfg.TopicHandler.Create)
			api.GET("/topics", cfg.TopicHandler.List)
			api.GET("/topics/:id", cfg.TopicHandler.Get)
			api.PATCH("/topics/:id", cfg.TopicHandler.Update)
			api.DELETE("/topics/:id", cfg.TopicHandler.Delete)
			api.GET("/topics/:id/epigraphs", cfg.TopicHandler.ListEpigraphs)
		}
		if cfg.LinkHandler != nil {
			api.GET("/topics/:id/concepts", cfg.LinkHandler.ListTopicConcepts)
			api.POST("/topics/:id/concepts/:conceptID", cfg.LinkHandler.LinkConceptToTopic)
			api.DELETE("/topics/:id/concepts/:conceptID", cfg.LinkHandler.UnlinkConceptFromTopic)
			api.POST("/topics/:id/concepts/reorder", cfg.LinkHandler.SwapConceptOrder)
		}

		if cfg.ConceptHandler != nil {
			api.POST("/concepts", cfg.ConceptHandler.Create)
			api.GET("/concepts", cfg.ConceptHandler.List)
			api.GET("/concepts/:id", cfg.ConceptHandler.Get)
			api.PATCH("/concepts/:id", cfg.ConceptHandler.Update)
			api.DELETE("/concepts/:id", cfg.ConceptHandler.Delete)
		}
		if cfg.LinkHandler != nil {
			api.POST("/concepts/:id/links", cfg.LinkHandler.LinkConcepts)
			api.DELETE("/concepts/:id/links", cfg.LinkHandler.UnlinkConcepts)
		}

		if cfg.EpigraphHandler != nil {
			api.POST("/epigraphs", cfg.EpigraphHandler.Create)
			api.GET("/epigraphs/:id", cfg.EpigraphHandler.Get)
			api.PATCH("/epigraphs/:id", cfg.EpigraphHandler.Update)
			api.DELETE("/epigraphs/:id", cfg.EpigraphHandler.Delete)
		}

		if cfg.QuestionHandler != nil {
			api.POST("/questions", cfg.QuestionHandler.Create)
			api.GET("/questions", cfg.QuestionHandler.List)
			api.GET("/questions/:id", cfg.QuestionHandler.Get)
			api.PATCH("/questions/:id", cfg.QuestionHandler.Update)
			api.DELETE("/questions/:id", cfg.QuestionHandler.Delete)
			api.POST("/questions/:id/answers", cfg.QuestionHandler.AddAnswer)
			api.GET("/questions/:id/answers", cfg.QuestionHandler.ListAnswers)
			api.PATCH("/answers/:answerID", cfg.QuestionHandler.UpdateAnswer)
			api.DELETE("/answers/:answerID", cfg.QuestionHandler.DeleteAnswer)
		}
		if cfg.LinkHandler != nil {
			api.POST("/questions/:id/topics/:topicID", cfg.LinkHandler.LinkQuestionToTopic)
			api.DELETE("/questions/:id/topics/:topicID", cfg.LinkHandler.UnlinkQuestionFromTopic)
			api.POST("/questions/:id/concepts/:conceptID", cfg.LinkHandler.LinkQuestionToConcept)
			api.DELETE("/questions/:id/concepts/:conceptID", cfg.LinkHandler.UnlinkQuestionFromConcept)
		}

		if cfg.ExamHandler != nil {
			api.POST("/exams/assemble", cfg.ExamHandler.Assemble)
			api.POST("/exams/generate", cfg.ExamHandler.Generate)
			api.GET("/exams/:publicID", cfg.ExamHandler.Get)
			api.POST("/exams/evaluate", cfg.ExamHandler.Evaluate)
			api.POST("/exams/correct", cfg.ExamHandler.CorrectExam)
		}

		if cfg.ChangeHandler != nil {
			api.GET("/changes", cfg.ChangeHandler.ListAll)
			api.GET("/changes/:kind/:id", cfg.ChangeHandler.ListForEntity)
			api.GET("/changes/:kind/:id/latest", cfg.ChangeHandler.Latest)
			api.POST("/changes/purge", cfg.ChangeHandler.Purge)
		}
	}

	return r
}
