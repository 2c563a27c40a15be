// Package session holds the state of one quiz run: which questions were
// drawn, how they were answered, and the running score.
package session

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"quizdesk/internal/content"
)

var (
	// ErrExhausted indicates every question was drawn in the current pass.
	ErrExhausted = errors.New("question pool exhausted")
	// ErrNoActiveQuestion indicates Submit was called without a drawn question.
	ErrNoActiveQuestion = errors.New("no active question")
	// ErrInvalidLetter indicates an answer outside A through E.
	ErrInvalidLetter = errors.New("invalid answer letter")
)

// Result reports the outcome of a submitted answer.
type Result struct {
	Correct  bool
	Expected content.Letter
}

// Session tracks progress through a fixed question pool.
// It is not safe for concurrent use.
type Session struct {
	id        string
	questions content.Questions
	answers   content.AnswerKey
	numbers   []int
	seen      map[int]struct{}
	current   int
	active    bool
	attempted int
	correct   int
	missed    []int
	rng       *rand.Rand
	newID     func() string
}

// Option customizes a Session.
type Option func(*Session)

// WithRand sets the random source used to draw questions.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithIDFunc overrides session id generation.
func WithIDFunc(fn func() string) Option {
	return func(s *Session) {
		s.newID = fn
	}
}

// New creates a session over consistent question and answer tables.
func New(questions content.Questions, answers content.AnswerKey, opts ...Option) (*Session, error) {
	if err := content.CheckConsistency(questions, answers); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	s := &Session{
		questions: questions,
		answers:   answers,
		numbers:   questions.Numbers(),
		seen:      make(map[int]struct{}, len(questions)),
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.id = s.newID()
	return s, nil
}

// ID returns the identifier of the current run. It changes on Reset.
func (s *Session) ID() string {
	return s.id
}

// PickNext draws a question uniformly from those not yet seen in this pass.
func (s *Session) PickNext() (int, error) {
	remaining := s.remaining()
	if len(remaining) == 0 {
		return 0, ErrExhausted
	}
	number := remaining[s.intN(len(remaining))]
	s.present(number)
	return number, nil
}

// present marks number as seen and on display.
func (s *Session) present(number int) {
	s.seen[number] = struct{}{}
	s.current = number
	s.active = true
}

// remaining lists unseen question numbers in ascending order.
func (s *Session) remaining() []int {
	remaining := make([]int, 0, len(s.numbers)-len(s.seen))
	for _, number := range s.numbers {
		if _, ok := s.seen[number]; !ok {
			remaining = append(remaining, number)
		}
	}
	return remaining
}

func (s *Session) intN(n int) int {
	if s.rng != nil {
		return s.rng.IntN(n)
	}
	return rand.IntN(n)
}

// Submit scores letter against the question on display.
// The question stops being active once scored.
func (s *Session) Submit(letter content.Letter) (Result, error) {
	if !s.active {
		return Result{}, ErrNoActiveQuestion
	}
	if !letter.Valid() {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidLetter, letter)
	}
	expected := s.answers[s.current]
	s.attempted++
	result := Result{Correct: letter == expected, Expected: expected}
	if result.Correct {
		s.correct++
	} else {
		s.missed = append(s.missed, s.current)
	}
	s.active = false
	return result, nil
}

// Reset starts a new run: nothing seen, no score, no current question.
func (s *Session) Reset() {
	clear(s.seen)
	s.missed = nil
	s.attempted = 0
	s.correct = 0
	s.current = 0
	s.active = false
	s.id = s.newID()
}

// RestartPass makes every question drawable again while keeping the score
// and the missed list.
func (s *Session) RestartPass() {
	clear(s.seen)
	s.current = 0
	s.active = false
}

// Current returns the question on display, if any.
func (s *Session) Current() (int, bool) {
	return s.current, s.active
}

// Exhausted reports whether the current pass has drawn every question.
func (s *Session) Exhausted() bool {
	return len(s.seen) == len(s.numbers)
}

// Body returns the text of a question.
func (s *Session) Body(number int) (string, bool) {
	body, ok := s.questions[number]
	return body, ok
}

// Expected returns the correct letter for a question.
func (s *Session) Expected(number int) (content.Letter, bool) {
	letter, ok := s.answers[number]
	return letter, ok
}

// Missed returns the incorrectly answered question numbers in answer order.
func (s *Session) Missed() []int {
	return append([]int(nil), s.missed...)
}

// Stats returns a snapshot of the running score.
func (s *Session) Stats() Stats {
	return Stats{
		Attempted: s.attempted,
		Correct:   s.correct,
		Missed:    len(s.missed),
		Remaining: len(s.numbers) - len(s.seen),
		Total:     len(s.numbers),
	}
}
