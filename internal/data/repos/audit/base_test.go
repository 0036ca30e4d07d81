package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/aulakit/aula-backend/internal/data/repos/audit"
	"github.com/aulakit/aula-backend/internal/data/repos/testutil"
	types "github.com/aulakit/aula-backend/internal/domain"
)

func TestChangeRepoListsNewestFirst(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := audit.NewSubjectChangeRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	var ids []uint
	for i := 0; i < 3; i++ {
		rec := &types.SubjectChange{EntityID: 7, NewID: testutil.PtrUint(7)}
		if err := repo.Append(ctx, tx, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
		ids = append(ids, rec.ID)
	}
	if err := repo.Append(ctx, tx, &types.SubjectChange{EntityID: 8}); err != nil {
		t.Fatalf("append other entity: %v", err)
	}

	recs, err := repo.ListByEntityID(ctx, tx, 7)
	if err != nil {
		t.Fatalf("list by entity: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("record count = %d, want 3", len(recs))
	}
	for i, want := range []uint{ids[2], ids[1], ids[0]} {
		if recs[i].ID != want {
			t.Fatalf("record[%d].ID = %d, want %d", i, recs[i].ID, want)
		}
	}

	latest, err := repo.Latest(ctx, tx, 7)
	if err != nil || latest == nil || latest.ID != ids[2] {
		t.Fatalf("latest = %+v, err %v, want id %d", latest, err, ids[2])
	}
	if missing, err := repo.Latest(ctx, tx, 99); err != nil || missing != nil {
		t.Fatalf("latest for unknown entity: %+v, err %v", missing, err)
	}

	all, err := repo.List(ctx, tx)
	if err != nil || len(all) != 4 {
		t.Fatalf("list all: %d records, err %v", len(all), err)
	}
}

func TestChangeRepoPurgeOlderThan(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := audit.NewSubjectChangeRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	old := &types.SubjectChange{EntityID: 7, CreatedAt: time.Now().Add(-48 * time.Hour)}
	if err := repo.Append(ctx, tx, old); err != nil {
		t.Fatalf("append old: %v", err)
	}
	fresh := &types.SubjectChange{EntityID: 7}
	if err := repo.Append(ctx, tx, fresh); err != nil {
		t.Fatalf("append fresh: %v", err)
	}

	removed, err := repo.PurgeOlderThan(ctx, tx, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if removed != 1 {
		t.Fatalf("purge removed %d, want 1", removed)
	}

	recs, err := repo.ListByEntityID(ctx, tx, 7)
	if err != nil || len(recs) != 1 || recs[0].ID != fresh.ID {
		t.Fatalf("surviving records: %d, err %v", len(recs), err)
	}
}
