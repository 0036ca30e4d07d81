package services

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/aulakit/aula-backend/internal/data/repos"
	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/pkg/apperr"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

// SeedTeacher is one entry of the bootstrap seed file.
type SeedTeacher struct {
	FullName string `yaml:"full_name"`
	Email    string `yaml:"email"`
	Admin    bool   `yaml:"admin"`
}

type seedFile struct {
	Teachers []SeedTeacher `yaml:"teachers"`
}

// BootstrapService seeds teacher accounts from a YAML file. Seeding is
// idempotent: teachers are keyed by email, existing rows are updated in
// place. It runs only when deployment tooling invokes it, never at server
// start.
type BootstrapService interface {
	SeedFromFile(ctx context.Context, path string) (created, updated int, err error)
	Seed(ctx context.Context, teachers []SeedTeacher) (created, updated int, err error)
}

type bootstrapService struct {
	db          *gorm.DB
	log         *logger.Logger
	teacherRepo repos.TeacherRepo
}

func NewBootstrapService(db *gorm.DB, baseLog *logger.Logger, teacherRepo repos.TeacherRepo) BootstrapService {
	return &bootstrapService{
		db:          db,
		log:         baseLog.With("service", "BootstrapService"),
		teacherRepo: teacherRepo,
	}
}

func (s *bootstrapService) SeedFromFile(ctx context.Context, path string) (int, int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("read seed file: %w", err)
	}
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return 0, 0, fmt.Errorf("parse seed file: %w", err)
	}
	return s.Seed(ctx, f.Teachers)
}

func (s *bootstrapService) Seed(ctx context.Context, teachers []SeedTeacher) (int, int, error) {
	created, updated := 0, 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range teachers {
			if t.Email == "" {
				return apperr.Validation("seed teacher without email")
			}
			if t.FullName == "" {
				return apperr.Validation("seed teacher %s without full name", t.Email)
			}

			existing, err := s.teacherRepo.GetByEmail(ctx, tx, t.Email)
			if err != nil {
				return fmt.Errorf("load teacher %s: %w", t.Email, err)
			}
			if existing == nil {
				row := &types.Teacher{FullName: t.FullName, Email: t.Email, Admin: t.Admin}
				if err := s.teacherRepo.Create(ctx, tx, row); err != nil {
					return fmt.Errorf("create teacher %s: %w", t.Email, err)
				}
				created++
				continue
			}
			if existing.FullName == t.FullName && existing.Admin == t.Admin {
				continue
			}
			existing.FullName = t.FullName
			existing.Admin = t.Admin
			if err := s.teacherRepo.Save(ctx, tx, existing); err != nil {
				return fmt.Errorf("update teacher %s: %w", t.Email, err)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	s.log.Info("teacher seed applied", "created", created, "updated", updated)
	return created, updated, nil
}
