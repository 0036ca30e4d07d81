package services_test

import (
	"context"
	"testing"

	"github.com/aulakit/aula-backend/internal/data/repos/testutil"
	"github.com/aulakit/aula-backend/internal/pkg/apperr"
	"github.com/aulakit/aula-backend/internal/services"
)

func TestSubjectCreateAppendsChange(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	sub, err := e.subjects.Create(ctx, "Historia", "History")
	if err != nil {
		t.Fatalf("create subject: %v", err)
	}
	if sub.Retired {
		t.Fatalf("new subject is retired")
	}

	recs, err := e.subjectChanges.ListByEntityID(ctx, e.tx, sub.ID)
	if err != nil {
		t.Fatalf("list changes: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("change count = %d, want 1", len(recs))
	}
	if recs[0].PrevID != nil {
		t.Fatalf("creation change has prev_id %d", *recs[0].PrevID)
	}
	if recs[0].NewID == nil || *recs[0].NewID != sub.ID {
		t.Fatalf("creation change new_id = %v, want %d", recs[0].NewID, sub.ID)
	}
}

func TestSubjectCreateRequiresAName(t *testing.T) {
	e := newEnv(t)

	if _, err := e.subjects.Create(context.Background(), "", ""); !apperr.IsValidation(err) {
		t.Fatalf("create with no names: err = %v, want validation", err)
	}
}

func TestSubjectUpdateSnapshotsPriorVersion(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	sub, err := e.subjects.Create(ctx, "Historia", "History")
	if err != nil {
		t.Fatalf("create subject: %v", err)
	}

	newName := "Historia Moderna"
	got, err := e.subjects.Update(ctx, sub.ID, services.SubjectUpdate{NameEs: &newName})
	if err != nil {
		t.Fatalf("update subject: %v", err)
	}
	if got.ID != sub.ID {
		t.Fatalf("live id changed: %d -> %d", sub.ID, got.ID)
	}
	if got.NameEs != newName || got.NameEn != "History" {
		t.Fatalf("live row = %q/%q after update", got.NameEs, got.NameEn)
	}

	recs, err := e.subjectChanges.ListByEntityID(ctx, e.tx, sub.ID)
	if err != nil {
		t.Fatalf("list changes: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("change count = %d, want 2", len(recs))
	}
	upd := recs[0] // newest first
	if upd.PrevID == nil || upd.NewID == nil || *upd.NewID != sub.ID {
		t.Fatalf("update change prev=%v new=%v", upd.PrevID, upd.NewID)
	}

	snap, err := e.subjectRepo.GetByID(ctx, e.tx, *upd.PrevID)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if snap == nil || !snap.Retired {
		t.Fatalf("snapshot missing or not retired: %+v", snap)
	}
	if snap.NameEs != "Historia" {
		t.Fatalf("snapshot name = %q, want the pre-update value", snap.NameEs)
	}
}

func TestSubjectDeleteKeepsSnapshotAndChanges(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	sub, err := e.subjects.Create(ctx, "Historia", "History")
	if err != nil {
		t.Fatalf("create subject: %v", err)
	}
	if err := e.subjects.Delete(ctx, sub.ID); err != nil {
		t.Fatalf("delete subject: %v", err)
	}

	if live, err := e.subjectRepo.GetByID(ctx, e.tx, sub.ID); err != nil || live != nil {
		t.Fatalf("live row after delete: %+v, err %v", live, err)
	}

	recs, err := e.subjectChanges.ListByEntityID(ctx, e.tx, sub.ID)
	if err != nil {
		t.Fatalf("list changes: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("change count = %d, want 2", len(recs))
	}
	del := recs[0]
	if del.NewID != nil {
		t.Fatalf("deletion change has new_id %d", *del.NewID)
	}
	if del.PrevID == nil {
		t.Fatalf("deletion change has no prev_id")
	}
	snap, err := e.subjectRepo.GetByID(ctx, e.tx, *del.PrevID)
	if err != nil || snap == nil || !snap.Retired {
		t.Fatalf("final snapshot missing: %+v, err %v", snap, err)
	}

	if _, err := e.subjects.Update(ctx, sub.ID, services.SubjectUpdate{}); !apperr.IsNotFound(err) {
		t.Fatalf("update after delete: err = %v, want not found", err)
	}
}

func TestSubjectChangeRecordsActor(t *testing.T) {
	e := newEnv(t)
	teacher := testutil.SeedTeacher(t, context.Background(), e.tx, "ana@example.com")

	sub, err := e.subjects.Create(actorCtx(teacher.ID), "Historia", "History")
	if err != nil {
		t.Fatalf("create subject: %v", err)
	}
	recs, err := e.subjectChanges.ListByEntityID(context.Background(), e.tx, sub.ID)
	if err != nil || len(recs) != 1 {
		t.Fatalf("list changes: %v (%d records)", err, len(recs))
	}
	if recs[0].TeacherID == nil || *recs[0].TeacherID != teacher.ID {
		t.Fatalf("change teacher_id = %v, want %d", recs[0].TeacherID, teacher.ID)
	}

	anon, err := e.subjects.Create(context.Background(), "Arte", "Art")
	if err != nil {
		t.Fatalf("create subject without actor: %v", err)
	}
	recs, err = e.subjectChanges.ListByEntityID(context.Background(), e.tx, anon.ID)
	if err != nil || len(recs) != 1 {
		t.Fatalf("list changes: %v (%d records)", err, len(recs))
	}
	if recs[0].TeacherID != nil {
		t.Fatalf("anonymous change carries teacher_id %d", *recs[0].TeacherID)
	}
}
