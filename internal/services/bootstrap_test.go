package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aulakit/aula-backend/internal/data/repos"
	"github.com/aulakit/aula-backend/internal/data/repos/testutil"
	"github.com/aulakit/aula-backend/internal/pkg/apperr"
	"github.com/aulakit/aula-backend/internal/services"
)

func newBootstrap(t *testing.T) (services.BootstrapService, repos.TeacherRepo, *env) {
	t.Helper()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	teacherRepo := repos.NewTeacherRepo(tx, log)
	return services.NewBootstrapService(tx, log, teacherRepo), teacherRepo, &env{tx: tx}
}

func TestSeedIsIdempotent(t *testing.T) {
	svc, teacherRepo, e := newBootstrap(t)
	ctx := context.Background()

	seed := []services.SeedTeacher{
		{FullName: "Ana García", Email: "ana@example.com", Admin: true},
		{FullName: "Luis Pérez", Email: "luis@example.com"},
	}
	created, updated, err := svc.Seed(ctx, seed)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if created != 2 || updated != 0 {
		t.Fatalf("first run created=%d updated=%d, want 2/0", created, updated)
	}

	// Unchanged entries are skipped entirely.
	created, updated, err = svc.Seed(ctx, seed)
	if err != nil {
		t.Fatalf("seed again: %v", err)
	}
	if created != 0 || updated != 0 {
		t.Fatalf("second run created=%d updated=%d, want 0/0", created, updated)
	}

	seed[1].Admin = true
	created, updated, err = svc.Seed(ctx, seed)
	if err != nil {
		t.Fatalf("seed with change: %v", err)
	}
	if created != 0 || updated != 1 {
		t.Fatalf("third run created=%d updated=%d, want 0/1", created, updated)
	}
	got, err := teacherRepo.GetByEmail(ctx, e.tx, "luis@example.com")
	if err != nil || got == nil || !got.Admin {
		t.Fatalf("teacher after update: %+v, err %v", got, err)
	}
}

func TestSeedValidatesEntries(t *testing.T) {
	svc, _, _ := newBootstrap(t)
	ctx := context.Background()

	if _, _, err := svc.Seed(ctx, []services.SeedTeacher{{FullName: "Sin Correo"}}); !apperr.IsValidation(err) {
		t.Fatalf("seed without email: err = %v, want validation", err)
	}
	if _, _, err := svc.Seed(ctx, []services.SeedTeacher{{Email: "x@example.com"}}); !apperr.IsValidation(err) {
		t.Fatalf("seed without name: err = %v, want validation", err)
	}
}

func TestSeedFromFile(t *testing.T) {
	svc, teacherRepo, e := newBootstrap(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "teachers.yaml")
	raw := "teachers:\n  - full_name: Ana García\n    email: ana@example.com\n    admin: true\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}

	created, updated, err := svc.SeedFromFile(ctx, path)
	if err != nil {
		t.Fatalf("seed from file: %v", err)
	}
	if created != 1 || updated != 0 {
		t.Fatalf("created=%d updated=%d, want 1/0", created, updated)
	}
	got, err := teacherRepo.GetByEmail(ctx, e.tx, "ana@example.com")
	if err != nil || got == nil || got.FullName != "Ana García" {
		t.Fatalf("seeded teacher: %+v, err %v", got, err)
	}

	if _, _, err := svc.SeedFromFile(ctx, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("seed from missing file succeeded")
	}
}
