package content

import "sort"

// Letter is a multiple-choice answer label.
type Letter string

// Answer letters accepted in answer files and from the user.
const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
	LetterE Letter = "E"
)

// Letters lists the answer letters in display order.
var Letters = []Letter{LetterA, LetterB, LetterC, LetterD, LetterE}

// Valid reports whether the letter is one of A through E.
func (l Letter) Valid() bool {
	switch l {
	case LetterA, LetterB, LetterC, LetterD, LetterE:
		return true
	default:
		return false
	}
}

// Questions maps question numbers to question bodies.
type Questions map[int]string

// AnswerKey maps question numbers to the correct letter.
type AnswerKey map[int]Letter

// Numbers returns the question numbers in ascending order.
func (q Questions) Numbers() []int {
	return sortedKeys(q)
}

// Numbers returns the answered question numbers in ascending order.
func (a AnswerKey) Numbers() []int {
	return sortedKeys(a)
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	return keys
}
