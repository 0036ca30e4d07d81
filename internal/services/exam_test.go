package services_test

import (
	"context"
	"encoding/json"
	"testing"

	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/pkg/apperr"
	"github.com/aulakit/aula-backend/internal/services"
)

// seedPool creates n answered questions linked to the topic and returns them.
func seedPool(t *testing.T, e *env, topicID uint, statements ...string) []*types.Question {
	t.Helper()
	ctx := context.Background()
	out := make([]*types.Question, 0, len(statements))
	for _, st := range statements {
		q, err := e.questions.Create(ctx, st, "", "", nil)
		if err != nil {
			t.Fatalf("create question %q: %v", st, err)
		}
		if _, err := e.questions.AddAnswer(ctx, q.ID, "correcta", "", true); err != nil {
			t.Fatalf("add correct answer: %v", err)
		}
		if _, err := e.questions.AddAnswer(ctx, q.ID, "incorrecta", "", false); err != nil {
			t.Fatalf("add wrong answer: %v", err)
		}
		if _, err := e.links.LinkQuestionToTopic(ctx, q.ID, topicID); err != nil {
			t.Fatalf("link question to topic: %v", err)
		}
		out = append(out, q)
	}
	return out
}

func TestAssembleDrawsFromTopicPool(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	topic, err := e.topics.Create(ctx, "Tema 1", "Unit 1")
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}
	pool := seedPool(t, e, topic.ID,
		"¿Cuál es la capital de España?",
		"¿Cuál es el río más largo?",
		"¿En qué año terminó la Reconquista?",
	)

	got, err := e.exams.Assemble(ctx, []uint{topic.ID}, 2)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("assembled %d questions, want 2", len(got))
	}
	ids := map[uint]bool{}
	for _, q := range pool {
		ids[q.ID] = true
	}
	seen := map[uint]bool{}
	for _, q := range got {
		if !ids[q.ID] {
			t.Fatalf("assembled question %d is not in the topic pool", q.ID)
		}
		if seen[q.ID] {
			t.Fatalf("question %d assembled twice", q.ID)
		}
		seen[q.ID] = true
	}

	// A shortfall fills with what the pool has.
	all, err := e.exams.Assemble(ctx, []uint{topic.ID}, 10)
	if err != nil {
		t.Fatalf("assemble over pool size: %v", err)
	}
	if len(all) != len(pool) {
		t.Fatalf("assembled %d questions, want whole pool of %d", len(all), len(pool))
	}

	empty, err := e.exams.Assemble(ctx, []uint{topic.ID}, 0)
	if err != nil || len(empty) != 0 {
		t.Fatalf("assemble with count 0: %d questions, err %v", len(empty), err)
	}
}

func TestAssembleDeduplicatesAcrossTopics(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	t1, err := e.topics.Create(ctx, "Tema 1", "Unit 1")
	if err != nil {
		t.Fatalf("create topic 1: %v", err)
	}
	t2, err := e.topics.Create(ctx, "Tema 2", "Unit 2")
	if err != nil {
		t.Fatalf("create topic 2: %v", err)
	}
	shared := seedPool(t, e, t1.ID, "¿Cuál es la capital de España?")[0]
	if _, err := e.links.LinkQuestionToTopic(ctx, shared.ID, t2.ID); err != nil {
		t.Fatalf("link question to second topic: %v", err)
	}
	seedPool(t, e, t2.ID, "¿Cuál es el río más largo?")

	// A question linked to both requested topics appears once in the pool.
	got, err := e.exams.Assemble(ctx, []uint{t1.ID, t2.ID}, 10)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("pool size = %d, want 2 distinct questions", len(got))
	}
	hits := 0
	for _, q := range got {
		if q.ID == shared.ID {
			hits++
		}
	}
	if hits != 1 {
		t.Fatalf("shared question appears %d times", hits)
	}
}

func TestAssembleExcludesUnanswerableQuestions(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	topic, err := e.topics.Create(ctx, "Tema 1", "Unit 1")
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}
	answered := seedPool(t, e, topic.ID, "¿Cuál es la capital de España?")

	bare, err := e.questions.Create(ctx, "Sin respuestas", "", "", nil)
	if err != nil {
		t.Fatalf("create bare question: %v", err)
	}
	if _, err := e.links.LinkQuestionToTopic(ctx, bare.ID, topic.ID); err != nil {
		t.Fatalf("link bare question: %v", err)
	}

	retired := seedPool(t, e, topic.ID, "Retirada")[0]
	approved := false
	if _, err := e.questions.Update(ctx, retired.ID, services.QuestionUpdate{Approved: &approved}); err != nil {
		t.Fatalf("unapprove question: %v", err)
	}

	got, err := e.exams.Assemble(ctx, []uint{topic.ID}, 10)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(got) != 1 || got[0].ID != answered[0].ID {
		t.Fatalf("pool = %d questions, want only the answered approved one", len(got))
	}
}

func TestGeneratePersistsExam(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	group, err := e.groups.Create(ctx, "2º ESO A", "")
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	topic, err := e.topics.Create(ctx, "Tema 1", "Unit 1")
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}
	seedPool(t, e, topic.ID, "¿Cuál es la capital de España?", "¿Cuál es el río más largo?")

	exam, qs, err := e.exams.Generate(ctx, group.ID, []uint{topic.ID}, 2)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if exam.GroupID != group.ID || exam.QuestionCount != 2 || len(qs) != 2 {
		t.Fatalf("exam group=%d count=%d questions=%d", exam.GroupID, exam.QuestionCount, len(qs))
	}

	var stored []uint
	if err := json.Unmarshal(exam.QuestionIDs, &stored); err != nil {
		t.Fatalf("decode question ids: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("stored %d question ids, want 2", len(stored))
	}
	for i, q := range qs {
		if stored[i] != q.ID {
			t.Fatalf("stored id[%d] = %d, want %d", i, stored[i], q.ID)
		}
	}

	got, err := e.exams.GetExam(ctx, exam.PublicID)
	if err != nil || got == nil || got.ID != exam.ID {
		t.Fatalf("get exam by public id: %+v, err %v", got, err)
	}
	list, err := e.exams.ListGroupExams(ctx, group.ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("list group exams: %d, err %v", len(list), err)
	}

	if _, _, err := e.exams.Generate(ctx, 9999, []uint{topic.ID}, 1); !apperr.IsNotFound(err) {
		t.Fatalf("generate for missing group: err = %v, want not found", err)
	}
}

func TestEvaluateUpdatesCounters(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	group, err := e.groups.Create(ctx, "2º ESO A", "")
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	q, err := e.questions.Create(ctx, "¿Cuál es la capital de España?", "What is the capital of Spain?", "", nil)
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	madrid, err := e.questions.AddAnswer(ctx, q.ID, "Madrid", "Madrid", true)
	if err != nil {
		t.Fatalf("add answer: %v", err)
	}
	barcelona, err := e.questions.AddAnswer(ctx, q.ID, "Barcelona", "Barcelona", false)
	if err != nil {
		t.Fatalf("add answer: %v", err)
	}

	ok, err := e.exams.Evaluate(ctx, group.ID, q.ID, madrid.ID)
	if err != nil || !ok {
		t.Fatalf("evaluate correct answer: ok=%v err=%v", ok, err)
	}
	ok, err = e.exams.Evaluate(ctx, group.ID, q.ID, barcelona.ID)
	if err != nil || ok {
		t.Fatalf("evaluate wrong answer: ok=%v err=%v", ok, err)
	}

	other, err := e.groups.Create(ctx, "2º ESO B", "")
	if err != nil {
		t.Fatalf("create second group: %v", err)
	}
	if _, err := e.exams.Evaluate(ctx, other.ID, q.ID, madrid.ID); err != nil {
		t.Fatalf("evaluate for second group: %v", err)
	}

	stat, err := e.statRepo.GetByPair(ctx, e.tx, group.ID, q.ID)
	if err != nil || stat == nil {
		t.Fatalf("load stat: %+v, err %v", stat, err)
	}
	if stat.EvaluationCount != 2 || stat.CorrectCount != 1 {
		t.Fatalf("stat = %d/%d, want 2 evaluations 1 correct", stat.EvaluationCount, stat.CorrectCount)
	}
	otherStat, err := e.statRepo.GetByPair(ctx, e.tx, other.ID, q.ID)
	if err != nil || otherStat == nil {
		t.Fatalf("load second stat: %+v, err %v", otherStat, err)
	}
	if otherStat.EvaluationCount != 1 || otherStat.CorrectCount != 1 {
		t.Fatalf("second stat = %d/%d, want 1/1", otherStat.EvaluationCount, otherStat.CorrectCount)
	}
}

func TestEvaluateRejectsCrossQuestionAnswer(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	group, err := e.groups.Create(ctx, "2º ESO A", "")
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	qa, err := e.questions.Create(ctx, "Pregunta A", "", "", nil)
	if err != nil {
		t.Fatalf("create question a: %v", err)
	}
	qb, err := e.questions.Create(ctx, "Pregunta B", "", "", nil)
	if err != nil {
		t.Fatalf("create question b: %v", err)
	}
	foreign, err := e.questions.AddAnswer(ctx, qb.ID, "respuesta de B", "", true)
	if err != nil {
		t.Fatalf("add answer: %v", err)
	}

	if _, err := e.exams.Evaluate(ctx, group.ID, qa.ID, foreign.ID); !apperr.IsValidation(err) {
		t.Fatalf("cross-question answer: err = %v, want validation", err)
	}
	// A rejected submission leaves no counter behind.
	if stat, err := e.statRepo.GetByPair(ctx, e.tx, group.ID, qa.ID); err != nil || stat != nil {
		t.Fatalf("stat after rejected evaluation: %+v, err %v", stat, err)
	}
}

func TestCorrectExamGradesAtomically(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	group, err := e.groups.Create(ctx, "2º ESO A", "")
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	topic, err := e.topics.Create(ctx, "Tema 1", "Unit 1")
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}
	qs := seedPool(t, e, topic.ID, "Pregunta 1", "Pregunta 2", "Pregunta 3")

	answers := make(map[uint]uint, len(qs)) // question -> submitted answer
	for i, q := range qs {
		list, err := e.questions.ListAnswers(ctx, q.ID)
		if err != nil || len(list) != 2 {
			t.Fatalf("list answers: %d, err %v", len(list), err)
		}
		pick := list[0]
		if i == 2 { // one deliberately wrong submission
			if pick.Correct {
				pick = list[1]
			}
		} else if !pick.Correct {
			pick = list[1]
		}
		answers[q.ID] = pick.ID
	}

	correct, err := e.exams.CorrectExam(ctx, group.ID, answers)
	if err != nil {
		t.Fatalf("correct exam: %v", err)
	}
	if correct != 2 {
		t.Fatalf("correct = %d, want 2", correct)
	}
	stats, err := e.exams.GroupStats(ctx, group.ID)
	if err != nil || len(stats) != 3 {
		t.Fatalf("group stats: %d rows, err %v", len(stats), err)
	}

	// One malformed pair aborts the run without touching any counter.
	bad := map[uint]uint{qs[0].ID: answers[qs[0].ID], qs[1].ID: answers[qs[2].ID]}
	if _, err := e.exams.CorrectExam(ctx, group.ID, bad); !apperr.IsValidation(err) {
		t.Fatalf("correct exam with cross-question pair: err = %v, want validation", err)
	}
	stat, err := e.statRepo.GetByPair(ctx, e.tx, group.ID, qs[0].ID)
	if err != nil || stat == nil {
		t.Fatalf("load stat: %+v, err %v", stat, err)
	}
	if stat.EvaluationCount != 1 {
		t.Fatalf("evaluation count = %d after aborted run, want 1", stat.EvaluationCount)
	}
}
