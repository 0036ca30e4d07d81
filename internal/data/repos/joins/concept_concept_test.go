package joins_test

import (
	"context"
	"testing"

	"github.com/aulakit/aula-backend/internal/data/repos/joins"
	"github.com/aulakit/aula-backend/internal/data/repos/testutil"
	types "github.com/aulakit/aula-backend/internal/domain"
)

func TestConceptConceptDeleteByConceptID(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := joins.NewConceptConceptRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	a := testutil.SeedConcept(t, ctx, tx, "Monarquía", "Monarchy")
	b := testutil.SeedConcept(t, ctx, tx, "República", "Republic")
	c := testutil.SeedConcept(t, ctx, tx, "Imperio", "Empire")

	for _, edge := range []*types.ConceptConcept{
		{FromID: a.ID, ToID: b.ID},
		{FromID: b.ID, ToID: a.ID},
		{FromID: b.ID, ToID: c.ID},
	} {
		if err := repo.Create(ctx, tx, edge); err != nil {
			t.Fatalf("create edge %d->%d: %v", edge.FromID, edge.ToID, err)
		}
	}

	// Removing a concept drops its edges in both directions.
	if err := repo.DeleteByConceptID(ctx, tx, a.ID); err != nil {
		t.Fatalf("delete by concept: %v", err)
	}
	if got, err := repo.GetPair(ctx, tx, a.ID, b.ID); err != nil || got != nil {
		t.Fatalf("outgoing edge survived: %+v, err %v", got, err)
	}
	if got, err := repo.GetPair(ctx, tx, b.ID, a.ID); err != nil || got != nil {
		t.Fatalf("incoming edge survived: %+v, err %v", got, err)
	}
	if got, err := repo.GetPair(ctx, tx, b.ID, c.ID); err != nil || got == nil {
		t.Fatalf("unrelated edge lost: %+v, err %v", got, err)
	}
}

func TestConceptConceptListFrom(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := joins.NewConceptConceptRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	a := testutil.SeedConcept(t, ctx, tx, "Monarquía", "Monarchy")
	b := testutil.SeedConcept(t, ctx, tx, "República", "Republic")
	c := testutil.SeedConcept(t, ctx, tx, "Imperio", "Empire")

	for _, to := range []uint{c.ID, b.ID} {
		if err := repo.Create(ctx, tx, &types.ConceptConcept{FromID: a.ID, ToID: to}); err != nil {
			t.Fatalf("create edge: %v", err)
		}
	}
	out, err := repo.ListFrom(ctx, tx, a.ID)
	if err != nil {
		t.Fatalf("list from: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("edge count = %d, want 2", len(out))
	}
	if out[0].ToID != b.ID || out[1].ToID != c.ID {
		t.Fatalf("edges not ordered by target id: %d, %d", out[0].ToID, out[1].ToID)
	}
}
