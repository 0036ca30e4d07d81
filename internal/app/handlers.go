package app

import (
	httpH "github.com/aulakit/aula-backend/internal/http/handlers"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type Handlers struct {
	Subject  *httpH.SubjectHandler
	Group    *httpH.GroupHandler
	Topic    *httpH.TopicHandler
	Concept  *httpH.ConceptHandler
	Epigraph *httpH.EpigraphHandler
	Question *httpH.QuestionHandler
	Link     *httpH.LinkHandler
	Exam     *httpH.ExamHandler
	Change   *httpH.ChangeHandler
	Health   *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	return Handlers{
		Subject:  httpH.NewSubjectHandler(log, s.Subject),
		Group:    httpH.NewGroupHandler(log, s.Group),
		Topic:    httpH.NewTopicHandler(log, s.Topic, s.Epigraph),
		Concept:  httpH.NewConceptHandler(log, s.Concept),
		Epigraph: httpH.NewEpigraphHandler(log, s.Epigraph),
		Question: httpH.NewQuestionHandler(log, s.Question),
		Link:     httpH.NewLinkHandler(log, s.Link),
		Exam:     httpH.NewExamHandler(log, s.Exam),
		Change:   httpH.NewChangeHandler(log, s.Change),
		Health:   httpH.NewHealthHandler(),
	}
}
