package session

// Stats is a read-only snapshot of session progress.
type Stats struct {
	Attempted int
	Correct   int
	Missed    int
	Remaining int
	Total     int
}

// Percentage returns the share of correct answers in percent.
// The second result is false when nothing has been attempted.
func (s Stats) Percentage() (float64, bool) {
	if s.Attempted == 0 {
		return 0, false
	}
	return float64(s.Correct) / float64(s.Attempted) * 100, true
}
