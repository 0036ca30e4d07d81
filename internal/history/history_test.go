package history

import (
	"context"
	"testing"

	"github.com/aulakit/aula-backend/internal/platform/ctxutil"
)

func TestRefs(t *testing.T) {
	created := Created(5)
	if created.Prev != nil || created.New == nil || *created.New != 5 {
		t.Fatalf("Created(5) = %+v", created)
	}
	updated := Updated(3, 5)
	if updated.Prev == nil || *updated.Prev != 3 || updated.New == nil || *updated.New != 5 {
		t.Fatalf("Updated(3, 5) = %+v", updated)
	}
	deleted := Deleted(3)
	if deleted.Prev == nil || *deleted.Prev != 3 || deleted.New != nil {
		t.Fatalf("Deleted(3) = %+v", deleted)
	}
}

func TestActor(t *testing.T) {
	if got := Actor(context.Background()); got != nil {
		t.Fatalf("Actor on bare context = %d", *got)
	}

	ctx := ctxutil.WithTraceData(context.Background(), &ctxutil.TraceData{TeacherID: 0})
	if got := Actor(ctx); got != nil {
		t.Fatalf("Actor with zero teacher = %d", *got)
	}

	ctx = ctxutil.WithTraceData(context.Background(), &ctxutil.TraceData{TeacherID: 9})
	got := Actor(ctx)
	if got == nil || *got != 9 {
		t.Fatalf("Actor = %v, want 9", got)
	}
}
