package live

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings used across phases.
type keyMap struct {
	Answer     key.Binding
	Finish     key.Binding
	Advance    key.Binding
	AnotherRun key.Binding
	NewQuiz    key.Binding
	Scroll     key.Binding
	Quit       key.Binding
}

// defaultKeyMap returns the standard bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Answer: key.NewBinding(
			key.WithKeys("a", "b", "c", "d", "e", "A", "B", "C", "D", "E"),
			key.WithHelp("a-e", "answer"),
		),
		Finish: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "finish"),
		),
		Advance: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "next"),
		),
		AnotherRun: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "another pass"),
		),
		NewQuiz: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new quiz"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// bindingsFor returns the help bindings shown in a phase.
func (k keyMap) bindingsFor(p phase) []key.Binding {
	switch p {
	case phaseFeedback:
		return []key.Binding{k.Advance, k.Finish, k.Quit}
	case phaseExhausted:
		return []key.Binding{k.AnotherRun, k.NewQuiz, k.Finish, k.Quit}
	case phaseReport:
		return []key.Binding{k.Scroll, k.NewQuiz, k.Quit}
	default:
		return []key.Binding{k.Answer, k.Finish, k.Quit}
	}
}
