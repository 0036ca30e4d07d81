package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	types "github.com/aulakit/aula-backend/internal/domain"
)

func SeedTeacher(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.Teacher {
	tb.Helper()
	t := &types.Teacher{
		FullName: "Profe Prueba",
		Email:    email,
	}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed teacher: %v", err)
	}
	return t
}

func SeedSubject(tb testing.TB, ctx context.Context, tx *gorm.DB, nameEs, nameEn string) *types.Subject {
	tb.Helper()
	s := &types.Subject{NameEs: nameEs, NameEn: nameEn}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed subject: %v", err)
	}
	return s
}

func SeedGroup(tb testing.TB, ctx context.Context, tx *gorm.DB, nameEs, nameEn string) *types.StudentGroup {
	tb.Helper()
	g := &types.StudentGroup{NameEs: nameEs, NameEn: nameEn}
	if err := tx.WithContext(ctx).Create(g).Error; err != nil {
		tb.Fatalf("seed group: %v", err)
	}
	return g
}

func SeedTopic(tb testing.TB, ctx context.Context, tx *gorm.DB, titleEs, titleEn string) *types.Topic {
	tb.Helper()
	t := &types.Topic{TitleEs: titleEs, TitleEn: titleEn}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed topic: %v", err)
	}
	return t
}

func SeedConcept(tb testing.TB, ctx context.Context, tx *gorm.DB, nameEs, nameEn string) *types.Concept {
	tb.Helper()
	c := &types.Concept{
		NameEs:        nameEs,
		NameEn:        nameEn,
		DescriptionEs: "descripcion",
		DescriptionEn: "description",
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed concept: %v", err)
	}
	return c
}

func SeedEpigraph(tb testing.TB, ctx context.Context, tx *gorm.DB, topicID uint, orderID int) *types.Epigraph {
	tb.Helper()
	e := &types.Epigraph{
		TopicID: topicID,
		OrderID: orderID,
		TitleEs: "Epigrafe",
		TitleEn: "Epigraph",
		BodyEs:  "cuerpo",
		BodyEn:  "body",
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed epigraph: %v", err)
	}
	return e
}

func SeedQuestion(tb testing.TB, ctx context.Context, tx *gorm.DB, statementEs, statementEn string) *types.Question {
	tb.Helper()
	q := &types.Question{
		StatementEs: statementEs,
		StatementEn: statementEn,
		Kind:        types.QuestionKindChoice,
		Approved:    true,
	}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed question: %v", err)
	}
	return q
}

func SeedAnswer(tb testing.TB, ctx context.Context, tx *gorm.DB, questionID uint, correct bool) *types.Answer {
	tb.Helper()
	a := &types.Answer{
		QuestionID: questionID,
		TextEs:     "respuesta",
		TextEn:     "answer",
		Correct:    correct,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed answer: %v", err)
	}
	return a
}

func SeedQuestionTopic(tb testing.TB, ctx context.Context, tx *gorm.DB, questionID, topicID uint) *types.QuestionTopic {
	tb.Helper()
	qt := &types.QuestionTopic{QuestionID: questionID, TopicID: topicID}
	if err := tx.WithContext(ctx).Create(qt).Error; err != nil {
		tb.Fatalf("seed question topic: %v", err)
	}
	return qt
}

func PtrBool(v bool) *bool { return &v }

func PtrUint(v uint) *uint { return &v }
