package live

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"quizdesk/internal/session"
)

// Run shows the quiz full-screen until the user quits.
func Run(sess *session.Session, in io.Reader, out io.Writer, opts Options) error {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	program := tea.NewProgram(
		NewModel(sess, opts),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}
