package services_test

import (
	"context"
	"testing"

	"github.com/aulakit/aula-backend/internal/pkg/apperr"
	"github.com/aulakit/aula-backend/internal/services"
)

func TestTopicTitleMustBeUnique(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.topics.Create(ctx, "Tema 1", "Unit 1"); err != nil {
		t.Fatalf("create topic: %v", err)
	}
	if _, err := e.topics.Create(ctx, "Tema 1", "Otro"); !apperr.IsValidation(err) {
		t.Fatalf("duplicate es title: err = %v, want validation", err)
	}
	if _, err := e.topics.Create(ctx, "Otro", "Unit 1"); !apperr.IsValidation(err) {
		t.Fatalf("duplicate en title: err = %v, want validation", err)
	}
}

func TestTopicUpdateRejectsCollidingTitle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	a, err := e.topics.Create(ctx, "Tema 1", "Unit 1")
	if err != nil {
		t.Fatalf("create topic a: %v", err)
	}
	if _, err := e.topics.Create(ctx, "Tema 2", "Unit 2"); err != nil {
		t.Fatalf("create topic b: %v", err)
	}

	taken := "Tema 2"
	if _, err := e.topics.Update(ctx, a.ID, services.TopicUpdate{TitleEs: &taken}); !apperr.IsValidation(err) {
		t.Fatalf("update to taken title: err = %v, want validation", err)
	}

	// Re-saving its own title is not a collision.
	same := "Tema 1"
	if _, err := e.topics.Update(ctx, a.ID, services.TopicUpdate{TitleEs: &same}); err != nil {
		t.Fatalf("update keeping own title: %v", err)
	}
}

func TestTopicReleasedTitleIsReusable(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	old, err := e.topics.Create(ctx, "Tema 1", "Unit 1")
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}
	if err := e.topics.Delete(ctx, old.ID); err != nil {
		t.Fatalf("delete topic: %v", err)
	}

	// Retired snapshots hold the old title but do not reserve it.
	if _, err := e.topics.Create(ctx, "Tema 1", "Unit 1"); err != nil {
		t.Fatalf("recreate topic with released title: %v", err)
	}
}

func TestTopicDeleteAuditsEachEpigraph(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	topic, err := e.topics.Create(ctx, "Tema 1", "Unit 1")
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}
	ep1, err := e.epigraphs.Create(ctx, topic.ID, "1.1", "1.1", "cuerpo", "body")
	if err != nil {
		t.Fatalf("create epigraph 1: %v", err)
	}
	ep2, err := e.epigraphs.Create(ctx, topic.ID, "1.2", "1.2", "cuerpo", "body")
	if err != nil {
		t.Fatalf("create epigraph 2: %v", err)
	}

	if err := e.topics.Delete(ctx, topic.ID); err != nil {
		t.Fatalf("delete topic: %v", err)
	}

	for _, ep := range []uint{ep1.ID, ep2.ID} {
		recs, err := e.epigraphChanges.ListByEntityID(ctx, e.tx, ep)
		if err != nil {
			t.Fatalf("list epigraph changes: %v", err)
		}
		if len(recs) != 2 {
			t.Fatalf("epigraph %d change count = %d, want create + delete", ep, len(recs))
		}
		del := recs[0]
		if del.NewID != nil || del.PrevID == nil {
			t.Fatalf("epigraph %d deletion change prev=%v new=%v", ep, del.PrevID, del.NewID)
		}
		snap, err := e.epigraphRepo.GetByID(ctx, e.tx, *del.PrevID)
		if err != nil || snap == nil || !snap.Retired {
			t.Fatalf("epigraph %d snapshot missing: %+v, err %v", ep, snap, err)
		}
	}

	if left, err := e.epigraphRepo.ListLiveByTopicID(ctx, e.tx, topic.ID); err != nil || len(left) != 0 {
		t.Fatalf("live epigraphs after topic delete: %d, err %v", len(left), err)
	}
}

func TestEpigraphCreateAssignsNextOrder(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	topic, err := e.topics.Create(ctx, "Tema 1", "Unit 1")
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}
	first, err := e.epigraphs.Create(ctx, topic.ID, "1.1", "1.1", "", "")
	if err != nil {
		t.Fatalf("create epigraph: %v", err)
	}
	second, err := e.epigraphs.Create(ctx, topic.ID, "1.2", "1.2", "", "")
	if err != nil {
		t.Fatalf("create epigraph: %v", err)
	}
	if first.OrderID != 1 || second.OrderID != 2 {
		t.Fatalf("order ids = %d, %d, want 1, 2", first.OrderID, second.OrderID)
	}

	if _, err := e.epigraphs.Create(ctx, 9999, "x", "x", "", ""); !apperr.IsNotFound(err) {
		t.Fatalf("create epigraph under missing topic: err = %v, want not found", err)
	}
}
