package exams_test

import (
	"context"
	"testing"

	"github.com/aulakit/aula-backend/internal/data/repos/exams"
	"github.com/aulakit/aula-backend/internal/data/repos/testutil"
)

func TestStatEnsureRowIsIdempotent(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := exams.NewGroupQuestionStatRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	group := testutil.SeedGroup(t, ctx, tx, "2º ESO A", "")
	q := testutil.SeedQuestion(t, ctx, tx, "¿Capital?", "")

	if err := repo.EnsureRow(ctx, tx, group.ID, q.ID); err != nil {
		t.Fatalf("ensure row: %v", err)
	}
	if err := repo.EnsureRow(ctx, tx, group.ID, q.ID); err != nil {
		t.Fatalf("ensure row again: %v", err)
	}

	rows, err := repo.ListByGroupID(ctx, tx, group.ID)
	if err != nil {
		t.Fatalf("list by group: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("row count = %d, want 1", len(rows))
	}
	if rows[0].EvaluationCount != 0 || rows[0].CorrectCount != 0 {
		t.Fatalf("fresh row counters = %d/%d", rows[0].EvaluationCount, rows[0].CorrectCount)
	}
}

func TestStatIncrement(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := exams.NewGroupQuestionStatRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	group := testutil.SeedGroup(t, ctx, tx, "2º ESO A", "")
	q := testutil.SeedQuestion(t, ctx, tx, "¿Capital?", "")

	if err := repo.EnsureRow(ctx, tx, group.ID, q.ID); err != nil {
		t.Fatalf("ensure row: %v", err)
	}
	if err := repo.Increment(ctx, tx, group.ID, q.ID, true); err != nil {
		t.Fatalf("increment correct: %v", err)
	}
	if err := repo.Increment(ctx, tx, group.ID, q.ID, false); err != nil {
		t.Fatalf("increment wrong: %v", err)
	}

	got, err := repo.GetByPair(ctx, tx, group.ID, q.ID)
	if err != nil || got == nil {
		t.Fatalf("get by pair: %+v, err %v", got, err)
	}
	if got.EvaluationCount != 2 || got.CorrectCount != 1 {
		t.Fatalf("counters = %d/%d, want 2/1", got.EvaluationCount, got.CorrectCount)
	}
}

func TestStatDeleteByGroupID(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := exams.NewGroupQuestionStatRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	ga := testutil.SeedGroup(t, ctx, tx, "2º ESO A", "")
	gb := testutil.SeedGroup(t, ctx, tx, "2º ESO B", "")
	q := testutil.SeedQuestion(t, ctx, tx, "¿Capital?", "")

	for _, g := range []uint{ga.ID, gb.ID} {
		if err := repo.EnsureRow(ctx, tx, g, q.ID); err != nil {
			t.Fatalf("ensure row: %v", err)
		}
	}
	if err := repo.DeleteByGroupID(ctx, tx, ga.ID); err != nil {
		t.Fatalf("delete by group: %v", err)
	}
	if rows, err := repo.ListByGroupID(ctx, tx, ga.ID); err != nil || len(rows) != 0 {
		t.Fatalf("rows for deleted group: %d, err %v", len(rows), err)
	}
	if rows, err := repo.ListByGroupID(ctx, tx, gb.ID); err != nil || len(rows) != 1 {
		t.Fatalf("rows for other group: %d, err %v", len(rows), err)
	}
}
