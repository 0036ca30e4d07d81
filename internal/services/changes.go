package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/aulakit/aula-backend/internal/data/repos"
	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/pkg/apperr"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

// Change-record kinds as exposed to callers.
const (
	KindSubject  = "subject"
	KindGroup    = "group"
	KindTopic    = "topic"
	KindConcept  = "concept"
	KindEpigraph = "epigraph"
	KindQuestion = "question"
	KindAnswer   = "answer"
)

// ChangeView is the kind-tagged projection of one change record, shared by
// the single-kind and cross-kind queries.
type ChangeView struct {
	Kind      string    `json:"kind"`
	ID        uint      `json:"id"`
	EntityID  uint      `json:"entity_id"`
	PrevID    *uint     `json:"prev_id,omitempty"`
	NewID     *uint     `json:"new_id,omitempty"`
	TeacherID *uint     `json:"teacher_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ChangeService interface {
	// ChangesFor returns the records of one entity, newest first.
	ChangesFor(ctx context.Context, kind string, entityID uint) ([]ChangeView, error)
	// LatestChange returns the newest record for the entity, or nil.
	LatestChange(ctx context.Context, kind string, entityID uint) (*ChangeView, error)
	// AllChanges merges every change table, newest first. Unpaginated; the
	// retention sweep keeps the tables bounded.
	AllChanges(ctx context.Context) ([]ChangeView, error)
	// PurgeOlderThan removes records older than the cutoff across all kinds
	// and reports how many rows went away.
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type changeService struct {
	db  *gorm.DB
	log *logger.Logger

	subjectRepo  repos.SubjectChangeRepo
	groupRepo    repos.StudentGroupChangeRepo
	topicRepo    repos.TopicChangeRepo
	conceptRepo  repos.ConceptChangeRepo
	epigraphRepo repos.EpigraphChangeRepo
	questionRepo repos.QuestionChangeRepo
	answerRepo   repos.AnswerChangeRepo
}

func NewChangeService(
	db *gorm.DB,
	baseLog *logger.Logger,
	subjectRepo repos.SubjectChangeRepo,
	groupRepo repos.StudentGroupChangeRepo,
	topicRepo repos.TopicChangeRepo,
	conceptRepo repos.ConceptChangeRepo,
	epigraphRepo repos.EpigraphChangeRepo,
	questionRepo repos.QuestionChangeRepo,
	answerRepo repos.AnswerChangeRepo,
) ChangeService {
	return &changeService{
		db:           db,
		log:          baseLog.With("service", "ChangeService"),
		subjectRepo:  subjectRepo,
		groupRepo:    groupRepo,
		topicRepo:    topicRepo,
		conceptRepo:  conceptRepo,
		epigraphRepo: epigraphRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
	}
}

func viewOfSubject(c *types.SubjectChange) ChangeView {
	return ChangeView{Kind: KindSubject, ID: c.ID, EntityID: c.EntityID, PrevID: c.PrevID, NewID: c.NewID, TeacherID: c.TeacherID, CreatedAt: c.CreatedAt}
}

func viewOfGroup(c *types.StudentGroupChange) ChangeView {
	return ChangeView{Kind: KindGroup, ID: c.ID, EntityID: c.EntityID, PrevID: c.PrevID, NewID: c.NewID, TeacherID: c.TeacherID, CreatedAt: c.CreatedAt}
}

func viewOfTopic(c *types.TopicChange) ChangeView {
	return ChangeView{Kind: KindTopic, ID: c.ID, EntityID: c.EntityID, PrevID: c.PrevID, NewID: c.NewID, TeacherID: c.TeacherID, CreatedAt: c.CreatedAt}
}

func viewOfConcept(c *types.ConceptChange) ChangeView {
	return ChangeView{Kind: KindConcept, ID: c.ID, EntityID: c.EntityID, PrevID: c.PrevID, NewID: c.NewID, TeacherID: c.TeacherID, CreatedAt: c.CreatedAt}
}

func viewOfEpigraph(c *types.EpigraphChange) ChangeView {
	return ChangeView{Kind: KindEpigraph, ID: c.ID, EntityID: c.EntityID, PrevID: c.PrevID, NewID: c.NewID, TeacherID: c.TeacherID, CreatedAt: c.CreatedAt}
}

func viewOfQuestion(c *types.QuestionChange) ChangeView {
	return ChangeView{Kind: KindQuestion, ID: c.ID, EntityID: c.EntityID, PrevID: c.PrevID, NewID: c.NewID, TeacherID: c.TeacherID, CreatedAt: c.CreatedAt}
}

func viewOfAnswer(c *types.AnswerChange) ChangeView {
	return ChangeView{Kind: KindAnswer, ID: c.ID, EntityID: c.EntityID, PrevID: c.PrevID, NewID: c.NewID, TeacherID: c.TeacherID, CreatedAt: c.CreatedAt}
}

func listViews[T any](ctx context.Context, repo interface {
	ListByEntityID(ctx context.Context, tx *gorm.DB, entityID uint) ([]*T, error)
}, entityID uint, conv func(*T) ChangeView) ([]ChangeView, error) {
	rows, err := repo.ListByEntityID(ctx, nil, entityID)
	if err != nil {
		return nil, err
	}
	out := make([]ChangeView, 0, len(rows))
	for _, r := range rows {
		out = append(out, conv(r))
	}
	return out, nil
}

func latestView[T any](ctx context.Context, repo interface {
	Latest(ctx context.Context, tx *gorm.DB, entityID uint) (*T, error)
}, entityID uint, conv func(*T) ChangeView) (*ChangeView, error) {
	row, err := repo.Latest(ctx, nil, entityID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	v := conv(row)
	return &v, nil
}

func (s *changeService) ChangesFor(ctx context.Context, kind string, entityID uint) ([]ChangeView, error) {
	switch kind {
	case KindSubject:
		return listViews(ctx, s.subjectRepo, entityID, viewOfSubject)
	case KindGroup:
		return listViews(ctx, s.groupRepo, entityID, viewOfGroup)
	case KindTopic:
		return listViews(ctx, s.topicRepo, entityID, viewOfTopic)
	case KindConcept:
		return listViews(ctx, s.conceptRepo, entityID, viewOfConcept)
	case KindEpigraph:
		return listViews(ctx, s.epigraphRepo, entityID, viewOfEpigraph)
	case KindQuestion:
		return listViews(ctx, s.questionRepo, entityID, viewOfQuestion)
	case KindAnswer:
		return listViews(ctx, s.answerRepo, entityID, viewOfAnswer)
	default:
		return nil, apperr.Validation("unknown change kind %q", kind)
	}
}

func (s *changeService) LatestChange(ctx context.Context, kind string, entityID uint) (*ChangeView, error) {
	switch kind {
	case KindSubject:
		return latestView(ctx, s.subjectRepo, entityID, viewOfSubject)
	case KindGroup:
		return latestView(ctx, s.groupRepo, entityID, viewOfGroup)
	case KindTopic:
		return latestView(ctx, s.topicRepo, entityID, viewOfTopic)
	case KindConcept:
		return latestView(ctx, s.conceptRepo, entityID, viewOfConcept)
	case KindEpigraph:
		return latestView(ctx, s.epigraphRepo, entityID, viewOfEpigraph)
	case KindQuestion:
		return latestView(ctx, s.questionRepo, entityID, viewOfQuestion)
	case KindAnswer:
		return latestView(ctx, s.answerRepo, entityID, viewOfAnswer)
	default:
		return nil, apperr.Validation("unknown change kind %q", kind)
	}
}

func (s *changeService) AllChanges(ctx context.Context) ([]ChangeView, error) {
	buckets := make([][]ChangeView, 7)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.subjectRepo.List(gctx, nil)
		if err != nil {
			return fmt.Errorf("list subject changes: %w", err)
		}
		for _, r := range rows {
			buckets[0] = append(buckets[0], viewOfSubject(r))
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.groupRepo.List(gctx, nil)
		if err != nil {
			return fmt.Errorf("list group changes: %w", err)
		}
		for _, r := range rows {
			buckets[1] = append(buckets[1], viewOfGroup(r))
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.topicRepo.List(gctx, nil)
		if err != nil {
			return fmt.Errorf("list topic changes: %w", err)
		}
		for _, r := range rows {
			buckets[2] = append(buckets[2], viewOfTopic(r))
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.conceptRepo.List(gctx, nil)
		if err != nil {
			return fmt.Errorf("list concept changes: %w", err)
		}
		for _, r := range rows {
			buckets[3] = append(buckets[3], viewOfConcept(r))
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.epigraphRepo.List(gctx, nil)
		if err != nil {
			return fmt.Errorf("list epigraph changes: %w", err)
		}
		for _, r := range rows {
			buckets[4] = append(buckets[4], viewOfEpigraph(r))
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.questionRepo.List(gctx, nil)
		if err != nil {
			return fmt.Errorf("list question changes: %w", err)
		}
		for _, r := range rows {
			buckets[5] = append(buckets[5], viewOfQuestion(r))
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.answerRepo.List(gctx, nil)
		if err != nil {
			return fmt.Errorf("list answer changes: %w", err)
		}
		for _, r := range rows {
			buckets[6] = append(buckets[6], viewOfAnswer(r))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []ChangeView
	for _, b := range buckets {
		merged = append(merged, b...)
	}
	sort.Slice(merged, func(i, j int) bool {
		if !merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
			return merged[i].CreatedAt.After(merged[j].CreatedAt)
		}
		if merged[i].Kind != merged[j].Kind {
			return merged[i].Kind < merged[j].Kind
		}
		return merged[i].ID > merged[j].ID
	})
	return merged, nil
}

func (s *changeService) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		purges := []func() (int64, error){
			func() (int64, error) { return s.subjectRepo.PurgeOlderThan(ctx, tx, cutoff) },
			func() (int64, error) { return s.groupRepo.PurgeOlderThan(ctx, tx, cutoff) },
			func() (int64, error) { return s.topicRepo.PurgeOlderThan(ctx, tx, cutoff) },
			func() (int64, error) { return s.conceptRepo.PurgeOlderThan(ctx, tx, cutoff) },
			func() (int64, error) { return s.epigraphRepo.PurgeOlderThan(ctx, tx, cutoff) },
			func() (int64, error) { return s.questionRepo.PurgeOlderThan(ctx, tx, cutoff) },
			func() (int64, error) { return s.answerRepo.PurgeOlderThan(ctx, tx, cutoff) },
		}
		for _, purge := range purges {
			n, err := purge()
			if err != nil {
				return fmt.Errorf("purge changes: %w", err)
			}
			total += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}
