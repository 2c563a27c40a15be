package session

import (
	"errors"
	"math/rand/v2"
	"testing"

	"quizdesk/internal/content"
)

// sampleContent returns the two-question fixture used across tests.
func sampleContent() (content.Questions, content.AnswerKey) {
	return content.Questions{1: "What is 2+2?", 2: "What is the capital?"},
		content.AnswerKey{1: content.LetterA, 2: content.LetterB}
}

// newTestSession builds a seeded session over questions numbered 1..n, all answered A.
func newTestSession(t *testing.T, n int) *Session {
	t.Helper()
	questions := content.Questions{}
	answers := content.AnswerKey{}
	for i := 1; i <= n; i++ {
		questions[i] = "question"
		answers[i] = content.LetterA
	}
	s, err := New(questions, answers, WithRand(rand.New(rand.NewPCG(1, 2))))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

// TestNewRejectsInconsistentContent verifies mismatched tables fail at construction.
func TestNewRejectsInconsistentContent(t *testing.T) {
	_, err := New(content.Questions{1: "a", 2: "b"}, content.AnswerKey{1: content.LetterA})
	var mismatch *content.MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected mismatch error, got %v", err)
	}
	_, err = New(content.Questions{}, content.AnswerKey{})
	if !errors.Is(err, content.ErrNoContent) {
		t.Fatalf("expected no content error, got %v", err)
	}
}

// TestPickNextWithoutReplacement verifies no number repeats until the pool is exhausted.
func TestPickNextWithoutReplacement(t *testing.T) {
	const total = 25
	s := newTestSession(t, total)
	drawn := map[int]bool{}
	for i := 0; i < total; i++ {
		number, err := s.PickNext()
		if err != nil {
			t.Fatalf("pick %d: %v", i, err)
		}
		if drawn[number] {
			t.Fatalf("question %d drawn twice", number)
		}
		if number < 1 || number > total {
			t.Fatalf("unknown question %d", number)
		}
		drawn[number] = true
		if current, ok := s.Current(); !ok || current != number {
			t.Fatalf("expected current %d, got %d (%v)", number, current, ok)
		}
	}
	if !s.Exhausted() {
		t.Fatalf("expected exhausted after %d picks", total)
	}
	if _, err := s.PickNext(); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected exhausted error, got %v", err)
	}
}

// TestPickNextCoversPool verifies every question is reachable across draws.
func TestPickNextCoversPool(t *testing.T) {
	s := newTestSession(t, 4)
	firsts := map[int]bool{}
	for i := 0; i < 200; i++ {
		number, err := s.PickNext()
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		firsts[number] = true
		s.Reset()
	}
	if len(firsts) != 4 {
		t.Fatalf("expected every question to be drawn first at some point, got %v", firsts)
	}
}

// TestSubmitCorrect verifies a matching letter is counted as correct.
func TestSubmitCorrect(t *testing.T) {
	questions, answers := sampleContent()
	s, err := New(questions, answers)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	s.present(1)
	result, err := s.Submit(content.LetterA)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Correct || result.Expected != content.LetterA {
		t.Fatalf("unexpected result %+v", result)
	}
	stats := s.Stats()
	if stats.Attempted != 1 || stats.Correct != 1 || stats.Missed != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

// TestSubmitWrong verifies a wrong letter is recorded in the missed list.
func TestSubmitWrong(t *testing.T) {
	questions, answers := sampleContent()
	s, err := New(questions, answers)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	s.present(1)
	result, err := s.Submit(content.LetterC)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Correct || result.Expected != content.LetterA {
		t.Fatalf("unexpected result %+v", result)
	}
	if missed := s.Missed(); len(missed) != 1 || missed[0] != 1 {
		t.Fatalf("expected missed [1], got %v", missed)
	}
}

// TestSubmitPreconditions verifies submits without an active question or with a bad letter fail.
func TestSubmitPreconditions(t *testing.T) {
	s := newTestSession(t, 2)
	if _, err := s.Submit(content.LetterA); !errors.Is(err, ErrNoActiveQuestion) {
		t.Fatalf("expected no active question error, got %v", err)
	}
	if _, err := s.PickNext(); err != nil {
		t.Fatalf("pick: %v", err)
	}
	if _, err := s.Submit(content.Letter("F")); !errors.Is(err, ErrInvalidLetter) {
		t.Fatalf("expected invalid letter error, got %v", err)
	}
	if stats := s.Stats(); stats.Attempted != 0 {
		t.Fatalf("invalid letter must not count, got %+v", stats)
	}
	if _, err := s.Submit(content.LetterA); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := s.Submit(content.LetterA); !errors.Is(err, ErrNoActiveQuestion) {
		t.Fatalf("expected second submit to fail, got %v", err)
	}
}

// TestAttemptedEqualsCorrectPlusMissed verifies the counter invariant after every submit.
func TestAttemptedEqualsCorrectPlusMissed(t *testing.T) {
	s := newTestSession(t, 12)
	letters := content.Letters
	for i := 0; ; i++ {
		if _, err := s.PickNext(); errors.Is(err, ErrExhausted) {
			break
		}
		if _, err := s.Submit(letters[i%len(letters)]); err != nil {
			t.Fatalf("submit: %v", err)
		}
		stats := s.Stats()
		if stats.Attempted != stats.Correct+len(s.Missed()) {
			t.Fatalf("invariant broken: %+v missed=%v", stats, s.Missed())
		}
		if stats.Correct > stats.Attempted {
			t.Fatalf("correct exceeds attempted: %+v", stats)
		}
	}
}

// TestResetRestoresInitialState verifies reset clears progress and frees the pool.
func TestResetRestoresInitialState(t *testing.T) {
	s := newTestSession(t, 3)
	firstID := s.ID()
	for {
		if _, err := s.PickNext(); err != nil {
			break
		}
		if _, err := s.Submit(content.LetterB); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	s.Reset()
	stats := s.Stats()
	if stats.Attempted != 0 || stats.Correct != 0 || stats.Missed != 0 || stats.Remaining != 3 {
		t.Fatalf("unexpected stats after reset %+v", stats)
	}
	if _, ok := stats.Percentage(); ok {
		t.Fatalf("expected no percentage after reset")
	}
	if _, ok := s.Current(); ok {
		t.Fatalf("expected no current question after reset")
	}
	if s.ID() == firstID {
		t.Fatalf("expected a new session id after reset")
	}
	for i := 0; i < 3; i++ {
		if _, err := s.PickNext(); err != nil {
			t.Fatalf("pick after reset: %v", err)
		}
	}
}

// TestRestartPassKeepsScore verifies a new pass keeps counters and allows repeated misses.
func TestRestartPassKeepsScore(t *testing.T) {
	s := newTestSession(t, 1)
	for pass := 0; pass < 2; pass++ {
		if _, err := s.PickNext(); err != nil {
			t.Fatalf("pick: %v", err)
		}
		if _, err := s.Submit(content.LetterC); err != nil {
			t.Fatalf("submit: %v", err)
		}
		if _, err := s.PickNext(); !errors.Is(err, ErrExhausted) {
			t.Fatalf("expected exhausted, got %v", err)
		}
		s.RestartPass()
	}
	if missed := s.Missed(); len(missed) != 2 || missed[0] != 1 || missed[1] != 1 {
		t.Fatalf("expected duplicate misses, got %v", missed)
	}
	if stats := s.Stats(); stats.Attempted != 2 || stats.Remaining != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

// TestStatsPercentage verifies the percentage calculation.
func TestStatsPercentage(t *testing.T) {
	if _, ok := (Stats{}).Percentage(); ok {
		t.Fatalf("expected no data for zero attempts")
	}
	pct, ok := Stats{Attempted: 3, Correct: 2}.Percentage()
	if !ok || pct < 66.66 || pct > 66.67 {
		t.Fatalf("expected 66.67%%, got %v (%v)", pct, ok)
	}
}
