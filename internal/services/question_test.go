package services_test

import (
	"context"
	"testing"

	"github.com/aulakit/aula-backend/internal/data/repos/testutil"
	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/pkg/apperr"
	"github.com/aulakit/aula-backend/internal/services"
)

func TestQuestionCreateKindRules(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	q, err := e.questions.Create(ctx, "¿Capital de España?", "Capital of Spain?", "", nil)
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	if q.Kind != types.QuestionKindChoice {
		t.Fatalf("default kind = %q, want choice", q.Kind)
	}
	if !q.Approved {
		t.Fatalf("new question not approved")
	}

	if _, err := e.questions.Create(ctx, "¿2+2=4?", "", types.QuestionKindTrueFalse, nil); !apperr.IsValidation(err) {
		t.Fatalf("true/false without is_true: err = %v, want validation", err)
	}
	tf, err := e.questions.Create(ctx, "¿2+2=4?", "", types.QuestionKindTrueFalse, testutil.PtrBool(true))
	if err != nil {
		t.Fatalf("create true/false question: %v", err)
	}
	if tf.IsTrue == nil || !*tf.IsTrue {
		t.Fatalf("is_true not stored: %v", tf.IsTrue)
	}

	if _, err := e.questions.Create(ctx, "x", "x", "essay", nil); !apperr.IsValidation(err) {
		t.Fatalf("unknown kind: err = %v, want validation", err)
	}

	// choice questions never carry an expected truth value
	choice, err := e.questions.Create(ctx, "¿Color del cielo?", "", types.QuestionKindChoice, testutil.PtrBool(true))
	if err != nil {
		t.Fatalf("create choice question: %v", err)
	}
	if choice.IsTrue != nil {
		t.Fatalf("choice question stored is_true %v", *choice.IsTrue)
	}
}

func TestQuestionUpdateToTrueFalseNeedsExpectedValue(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	q, err := e.questions.Create(ctx, "¿2+2=4?", "", "", nil)
	if err != nil {
		t.Fatalf("create question: %v", err)
	}

	kind := types.QuestionKindTrueFalse
	if _, err := e.questions.Update(ctx, q.ID, services.QuestionUpdate{Kind: &kind}); !apperr.IsValidation(err) {
		t.Fatalf("convert without is_true: err = %v, want validation", err)
	}
	got, err := e.questions.Update(ctx, q.ID, services.QuestionUpdate{Kind: &kind, IsTrue: testutil.PtrBool(true)})
	if err != nil {
		t.Fatalf("convert with is_true: %v", err)
	}
	if got.Kind != types.QuestionKindTrueFalse || got.IsTrue == nil || !*got.IsTrue {
		t.Fatalf("converted question = kind %q is_true %v", got.Kind, got.IsTrue)
	}
}

func TestAnswerLifecycleIsAudited(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	q, err := e.questions.Create(ctx, "¿Capital de España?", "Capital of Spain?", "", nil)
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	a, err := e.questions.AddAnswer(ctx, q.ID, "Madrid", "Madrid", true)
	if err != nil {
		t.Fatalf("add answer: %v", err)
	}

	newText := "Madrid (capital)"
	if _, err := e.questions.UpdateAnswer(ctx, a.ID, services.AnswerUpdate{TextEs: &newText}); err != nil {
		t.Fatalf("update answer: %v", err)
	}
	if err := e.questions.DeleteAnswer(ctx, a.ID); err != nil {
		t.Fatalf("delete answer: %v", err)
	}

	recs, err := e.answerChanges.ListByEntityID(ctx, e.tx, a.ID)
	if err != nil {
		t.Fatalf("list answer changes: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("answer change count = %d, want create + update + delete", len(recs))
	}
	if recs[0].NewID != nil {
		t.Fatalf("deletion change has new_id %d", *recs[0].NewID)
	}
	if recs[2].PrevID != nil {
		t.Fatalf("creation change has prev_id %d", *recs[2].PrevID)
	}

	// The update snapshot preserves the original wording.
	snap, err := e.answerRepo.GetByID(ctx, e.tx, *recs[1].PrevID)
	if err != nil || snap == nil {
		t.Fatalf("load answer snapshot: %+v, err %v", snap, err)
	}
	if snap.TextEs != "Madrid" || !snap.Retired {
		t.Fatalf("answer snapshot = %q retired=%v", snap.TextEs, snap.Retired)
	}
}

func TestQuestionDeleteCascadesAnswers(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	q, err := e.questions.Create(ctx, "¿Capital de España?", "", "", nil)
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	a1, err := e.questions.AddAnswer(ctx, q.ID, "Madrid", "", true)
	if err != nil {
		t.Fatalf("add answer: %v", err)
	}
	a2, err := e.questions.AddAnswer(ctx, q.ID, "Barcelona", "", false)
	if err != nil {
		t.Fatalf("add answer: %v", err)
	}

	if err := e.questions.Delete(ctx, q.ID); err != nil {
		t.Fatalf("delete question: %v", err)
	}

	for _, id := range []uint{a1.ID, a2.ID} {
		recs, err := e.answerChanges.ListByEntityID(ctx, e.tx, id)
		if err != nil {
			t.Fatalf("list answer changes: %v", err)
		}
		if len(recs) != 2 || recs[0].NewID != nil {
			t.Fatalf("answer %d changes after cascade: %d records, newest new_id %v", id, len(recs), recs[0].NewID)
		}
	}
	if live, err := e.answerRepo.ListLiveByQuestionID(ctx, e.tx, q.ID); err != nil || len(live) != 0 {
		t.Fatalf("live answers after question delete: %d, err %v", len(live), err)
	}

	if _, err := e.questions.AddAnswer(ctx, q.ID, "Sevilla", "", false); !apperr.IsNotFound(err) {
		t.Fatalf("add answer to deleted question: err = %v, want not found", err)
	}
}
