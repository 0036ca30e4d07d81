package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/aulakit/aula-backend/internal/pkg/apperr"
	"github.com/aulakit/aula-backend/internal/services"
)

func TestChangesForEntity(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	sub, err := e.subjects.Create(ctx, "Historia", "History")
	if err != nil {
		t.Fatalf("create subject: %v", err)
	}
	name := "Historia Moderna"
	if _, err := e.subjects.Update(ctx, sub.ID, services.SubjectUpdate{NameEs: &name}); err != nil {
		t.Fatalf("update subject: %v", err)
	}
	if err := e.subjects.Delete(ctx, sub.ID); err != nil {
		t.Fatalf("delete subject: %v", err)
	}

	views, err := e.changes.ChangesFor(ctx, services.KindSubject, sub.ID)
	if err != nil {
		t.Fatalf("changes for subject: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("change count = %d, want 3", len(views))
	}
	for _, v := range views {
		if v.Kind != services.KindSubject || v.EntityID != sub.ID {
			t.Fatalf("view kind=%q entity=%d", v.Kind, v.EntityID)
		}
	}
	// Newest first: delete, update, create.
	if views[0].NewID != nil {
		t.Fatalf("newest change has new_id, want the deletion record")
	}
	if views[2].PrevID != nil {
		t.Fatalf("oldest change has prev_id, want the creation record")
	}

	latest, err := e.changes.LatestChange(ctx, services.KindSubject, sub.ID)
	if err != nil {
		t.Fatalf("latest change: %v", err)
	}
	if latest == nil || latest.ID != views[0].ID {
		t.Fatalf("latest = %+v, want the deletion record", latest)
	}

	none, err := e.changes.LatestChange(ctx, services.KindSubject, 9999)
	if err != nil || none != nil {
		t.Fatalf("latest for unknown entity: %+v, err %v", none, err)
	}

	if _, err := e.changes.ChangesFor(ctx, "lesson", sub.ID); !apperr.IsValidation(err) {
		t.Fatalf("unknown kind: err = %v, want validation", err)
	}
}

func TestAllChangesMergesEveryKind(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.subjects.Create(ctx, "Historia", ""); err != nil {
		t.Fatalf("create subject: %v", err)
	}
	if _, err := e.groups.Create(ctx, "2º ESO A", ""); err != nil {
		t.Fatalf("create group: %v", err)
	}
	topic, err := e.topics.Create(ctx, "Tema 1", "")
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}
	if _, err := e.concepts.Create(ctx, "Monarquía", "", "", ""); err != nil {
		t.Fatalf("create concept: %v", err)
	}
	if _, err := e.epigraphs.Create(ctx, topic.ID, "1.1", "", "", ""); err != nil {
		t.Fatalf("create epigraph: %v", err)
	}
	q, err := e.questions.Create(ctx, "¿Capital?", "", "", nil)
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	if _, err := e.questions.AddAnswer(ctx, q.ID, "Madrid", "", true); err != nil {
		t.Fatalf("add answer: %v", err)
	}

	views, err := e.changes.AllChanges(ctx)
	if err != nil {
		t.Fatalf("all changes: %v", err)
	}
	if len(views) != 7 {
		t.Fatalf("merged change count = %d, want 7", len(views))
	}
	kinds := map[string]int{}
	for _, v := range views {
		kinds[v.Kind]++
	}
	for _, k := range []string{
		services.KindSubject, services.KindGroup, services.KindTopic,
		services.KindConcept, services.KindEpigraph, services.KindQuestion,
		services.KindAnswer,
	} {
		if kinds[k] != 1 {
			t.Fatalf("kind %q appears %d times, want 1", k, kinds[k])
		}
	}
	for i := 1; i < len(views); i++ {
		if views[i].CreatedAt.After(views[i-1].CreatedAt) {
			t.Fatalf("merged changes not newest-first at index %d", i)
		}
	}
}

func TestPurgeOlderThan(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	sub, err := e.subjects.Create(ctx, "Historia", "")
	if err != nil {
		t.Fatalf("create subject: %v", err)
	}
	if _, err := e.topics.Create(ctx, "Tema 1", ""); err != nil {
		t.Fatalf("create topic: %v", err)
	}

	// A cutoff in the past removes nothing.
	removed, err := e.changes.PurgeOlderThan(ctx, time.Now().Add(-time.Hour))
	if err != nil || removed != 0 {
		t.Fatalf("purge with past cutoff removed %d, err %v", removed, err)
	}

	removed, err = e.changes.PurgeOlderThan(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if removed != 2 {
		t.Fatalf("purge removed %d records, want 2", removed)
	}
	views, err := e.changes.ChangesFor(ctx, services.KindSubject, sub.ID)
	if err != nil || len(views) != 0 {
		t.Fatalf("changes after purge: %d, err %v", len(views), err)
	}

	// Purged history never touches the catalog rows themselves.
	if got, err := e.subjects.Get(ctx, sub.ID); err != nil || got == nil {
		t.Fatalf("subject after purge: %+v, err %v", got, err)
	}
}
