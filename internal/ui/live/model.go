package live

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizdesk/internal/content"
	"quizdesk/internal/report"
	"quizdesk/internal/session"
)

// Model renders an interactive quiz using Bubble Tea.
// All scoring decisions are delegated to the session.
type Model struct {
	session    *session.Session
	keys       keyMap
	help       help.Model
	results    viewport.Model
	phase      phase
	question   question
	feedback   feedback
	advanceSeq int
	delay      time.Duration
	notice     string
	width      int
	height     int
	noColor    bool
	logger     *slog.Logger
}

// Options configures the live UI model.
type Options struct {
	NoColor       bool
	FeedbackDelay time.Duration
	Logger        *slog.Logger
}

// NewModel constructs a model and draws the first question.
func NewModel(sess *session.Session, opts Options) Model {
	delay := opts.FeedbackDelay
	if delay <= 0 {
		delay = time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := Model{
		session: sess,
		keys:    defaultKeyMap(),
		help:    help.New(),
		results: viewport.New(80, 20),
		delay:   delay,
		width:   80,
		height:  24,
		noColor: opts.NoColor,
		logger:  logger,
	}
	return m.nextQuestion()
}

// Init sets the terminal title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("quizdesk")
}

// Update handles key presses, window resizes, and scheduled advances.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.help.Width = typed.Width
		m.results.Width = typed.Width
		m.results.Height = max(typed.Height-4, 1)
		if m.phase == phaseReport {
			m.results.SetContent(m.reportContent())
		}
		return m, nil
	case advanceMsg:
		if typed.seq != m.advanceSeq || m.phase != phaseFeedback {
			return m, nil
		}
		return m.nextQuestion(), nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

// handleKey dispatches a key press according to the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.cancelAdvance()
		return m, tea.Quit
	}
	switch m.phase {
	case phaseQuestion:
		switch {
		case key.Matches(msg, m.keys.Answer):
			letter, ok := content.NormalizeLetter(msg.String())
			if !ok {
				return m, nil
			}
			return m.answer(letter)
		case key.Matches(msg, m.keys.Finish):
			return m.finish(), nil
		}
	case phaseFeedback:
		switch {
		case key.Matches(msg, m.keys.Advance):
			m.cancelAdvance()
			return m.nextQuestion(), nil
		case key.Matches(msg, m.keys.Finish):
			return m.finish(), nil
		}
	case phaseExhausted:
		switch {
		case key.Matches(msg, m.keys.AnotherRun):
			m.session.RestartPass()
			m.logger.Info("question pass restarted", "session_id", m.session.ID())
			return m.nextQuestion(), nil
		case key.Matches(msg, m.keys.NewQuiz):
			return m.newQuiz(), nil
		case key.Matches(msg, m.keys.Finish):
			return m.finish(), nil
		}
	case phaseReport:
		if key.Matches(msg, m.keys.NewQuiz) {
			return m.newQuiz(), nil
		}
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}
	return m, nil
}

// answer submits letter and schedules the advance to the next question.
func (m Model) answer(letter content.Letter) (tea.Model, tea.Cmd) {
	result, err := m.session.Submit(letter)
	if err != nil {
		m.logger.Error("submit answer", "letter", string(letter), "error", err)
		return m, nil
	}
	m.logger.Debug("answer submitted",
		"session_id", m.session.ID(),
		"question", m.question.Number,
		"letter", string(letter),
		"correct", result.Correct,
	)
	m.feedback = feedback{Chosen: letter, Result: result}
	m.phase = phaseFeedback
	m.notice = ""
	m.advanceSeq++
	return m, advanceAfter(m.delay, m.advanceSeq)
}

// nextQuestion draws the next question or moves to the exhausted prompt.
func (m Model) nextQuestion() Model {
	m.feedback = feedback{}
	number, err := m.session.PickNext()
	if errors.Is(err, session.ErrExhausted) {
		m.phase = phaseExhausted
		return m
	}
	body, _ := m.session.Body(number)
	m.question = question{Number: number, Formatted: content.FormatBody(body)}
	m.phase = phaseQuestion
	return m
}

// finish shows the report, or a notice when nothing was answered.
func (m Model) finish() Model {
	if m.session.Stats().Attempted == 0 {
		m.notice = "No questions answered yet."
		return m
	}
	m.cancelAdvance()
	built := report.Build(m.session)
	m.logger.Info("quiz finished",
		"session_id", built.SessionID,
		"attempted", built.Stats.Attempted,
		"correct", built.Stats.Correct,
	)
	m.results.SetContent(m.reportContent())
	m.results.GotoTop()
	m.notice = ""
	m.phase = phaseReport
	return m
}

// newQuiz resets the session and draws a fresh first question.
func (m Model) newQuiz() Model {
	m.cancelAdvance()
	m.session.Reset()
	m.notice = ""
	m.logger.Info("new quiz started", "session_id", m.session.ID())
	return m.nextQuestion()
}

// reportContent renders the report wrapped to the current width.
func (m Model) reportContent() string {
	return wrap(report.Text(report.Build(m.session)), m.width)
}

// cancelAdvance invalidates any scheduled advance.
func (m *Model) cancelAdvance() {
	m.advanceSeq++
}

// View renders the current phase.
func (m Model) View() string {
	helpLine := m.help.ShortHelpView(m.keys.bindingsFor(m.phase))
	switch m.phase {
	case phaseReport:
		return lipgloss.JoinVertical(lipgloss.Left,
			renderTitle("Results", m.noColor),
			m.results.View(),
			helpLine,
		)
	case phaseExhausted:
		stats := m.session.Stats()
		return lipgloss.JoinVertical(lipgloss.Left,
			renderHeader(m.session.ID(), 0, stats, m.noColor),
			"",
			renderExhausted(stats),
			"",
			renderStats(stats, m.noColor),
			renderNotice(m.notice, m.noColor),
			helpLine,
		)
	default:
		stats := m.session.Stats()
		return lipgloss.JoinVertical(lipgloss.Left,
			renderHeader(m.session.ID(), m.question.Number, stats, m.noColor),
			"",
			renderQuestion(m.question.Formatted, m.width),
			"",
			renderButtons(m.phase == phaseFeedback, m.feedback, m.noColor),
			renderFeedbackLine(m.phase == phaseFeedback, m.feedback, m.noColor),
			renderStats(stats, m.noColor),
			renderNotice(m.notice, m.noColor),
			helpLine,
		)
	}
}

// advanceAfter schedules an advanceMsg tagged with seq.
func advanceAfter(delay time.Duration, seq int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg { return advanceMsg{seq: seq} })
}

// wrap soft-wraps text to width columns when the width is known.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(strings.TrimRight(text, "\n"))
}
