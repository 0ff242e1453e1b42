// Package tui provides a Bubble Tea tag panel for picturedb: pick one of the
// favorite tags and it is added to every file given on the command line.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/picturedb/internal/app"
	"github.com/handiism/picturedb/internal/model"
	"github.com/handiism/picturedb/internal/organize"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500")).
			Background(lipgloss.Color("#333333"))
)

// State represents the current UI state.
type State int

const (
	StateChoose State = iota
	StateApplying
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   organize.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	entering  bool
	spinner   spinner.Model
	progress  progress.Model
	logs      []LogEntry
	err       error

	tags   []model.Tag
	cursor int
	files  []string

	org    *organize.Organizer
	events *EventBuffer

	// Current run
	chosen    model.Tag
	seq       *model.Sequence
	next      int
	failed    int
	cancelled bool

	// Options
	remove  bool
	verbose bool

	width  int
	height int
}

// NewModel creates a tag panel for files. events must be the buffer the
// Organizer reports progress to.
func NewModel(org *organize.Organizer, events *EventBuffer, tags []model.Tag, files []string) Model {
	ti := textinput.New()
	ti.Placeholder = "New tag"
	ti.CharLimit = 200
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	m := Model{
		state:     StateChoose,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		logs:      make([]LogEntry, 0),
		tags:      tags,
		files:     append([]string(nil), files...),
		org:       org,
		events:    events,
	}
	for _, e := range events.Drain() {
		m.addLog(e)
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Message types
type (
	// FileDoneMsg is sent when one file has been tagged and saved.
	FileDoneMsg struct {
		Index  int
		Path   string
		Events []organize.ProgressEvent
		Err    error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.entering {
			return m.updateEntry(msg)
		}

		switch msg.String() {
		case "esc", "q":
			switch m.state {
			case StateApplying:
				m.cancelled = true
			default:
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == StateChoose && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.state == StateChoose && m.cursor < len(m.tags)-1 {
				m.cursor++
			}

		case "enter":
			switch m.state {
			case StateChoose:
				if len(m.tags) > 0 {
					return m.start(m.tags[m.cursor])
				}
			case StateComplete, StateError:
				m.reset()
			}

		case "n":
			if m.state == StateChoose {
				m.entering = true
				m.textInput.SetValue("")
				cmds = append(cmds, m.textInput.Focus())
			}

		case "x":
			if m.state == StateChoose {
				m.remove = !m.remove
			}

		case "v":
			if m.state == StateChoose {
				m.verbose = !m.verbose
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.reset()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case FileDoneMsg:
		for _, e := range msg.Events {
			m.addLog(e)
		}
		if msg.Err != nil {
			m.failed++
			m.addLog(organize.ProgressEvent{Message: msg.Err.Error(), Level: organize.LevelError})
		} else {
			m.files[msg.Index] = msg.Path
		}

		m.next = msg.Index + 1
		if m.next < len(m.files) && !m.cancelled {
			cmds = append(cmds, m.applyFile(m.next))
		} else {
			m.state = StateComplete
		}
		cmds = append(cmds, m.progress.SetPercent(float64(m.next)/float64(len(m.files))))

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.entering = false
		m.textInput.Blur()
		return m, nil
	case "enter":
		tag, err := model.ParseTag(m.textInput.Value())
		if err != nil {
			m.addLog(organize.ProgressEvent{Message: err.Error(), Level: organize.LevelError})
			return m, nil
		}
		m.entering = false
		m.textInput.Blur()
		m.addTag(tag)
		return m.start(tag)
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// addTag puts a tag entered by hand into the list and selects it.
func (m *Model) addTag(tag model.Tag) {
	set := model.NewTagSet(m.tags...)
	set.Add(tag)
	m.tags = set.Sorted()
	for i, t := range m.tags {
		if t == tag {
			m.cursor = i
		}
	}
}

// start applies tag to all files, one after another.
func (m Model) start(tag model.Tag) (tea.Model, tea.Cmd) {
	if len(m.files) == 0 {
		m.state = StateError
		m.err = fmt.Errorf("no files given")
		return m, nil
	}

	m.state = StateApplying
	m.chosen = tag
	m.seq = model.NewSequence(1)
	m.next = 0
	m.failed = 0
	m.cancelled = false
	m.logs = nil
	m.events.Drain()
	return m, tea.Batch(m.applyFile(0), m.progress.SetPercent(0), m.spinner.Tick)
}

func (m *Model) reset() {
	m.state = StateChoose
	m.err = nil
	m.logs = nil
}

func (m *Model) addLog(e organize.ProgressEvent) {
	if e.Level == organize.LevelVerbose && !m.verbose {
		return
	}
	m.logs = append(m.logs, LogEntry{Message: e.Message, Level: e.Level})
	// Keep only last 10 logs
	if len(m.logs) > 10 {
		m.logs = m.logs[len(m.logs)-10:]
	}
}

// applyFile opens file i, edits its tags and saves it. Files are handled one
// at a time, so the Organizer is never used concurrently.
func (m Model) applyFile(i int) tea.Cmd {
	org, events, seq := m.org, m.events, m.seq
	path, tag, remove := m.files[i], m.chosen, m.remove

	return func() tea.Msg {
		img, err := org.Open(path, seq)
		if err != nil {
			return FileDoneMsg{Index: i, Path: path, Events: events.Drain(), Err: err}
		}
		if remove {
			img.RemoveTag(tag)
		} else {
			img.AddTag(tag)
		}
		err = org.Save(img)
		return FileDoneMsg{Index: i, Path: img.DiskPath(), Events: events.Drain(), Err: err}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("# picturedb tags"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d file(s)", len(m.files))))
	if m.org.DryRun() {
		b.WriteString(warningStyle.Render("  dry run"))
	}
	b.WriteString("\n\n")

	switch m.state {
	case StateChoose:
		b.WriteString(m.viewChoose())
	case StateApplying:
		b.WriteString(m.viewApplying())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewChoose() string {
	var b strings.Builder

	action := "Add tag:"
	if m.remove {
		action = "Remove tag:"
	}
	b.WriteString(subtitleStyle.Render(action))
	b.WriteString("\n\n")

	if len(m.tags) == 0 {
		b.WriteString(dimStyle.Render("  No favorite tags configured. Press n to enter one."))
		b.WriteString("\n")
	}
	for i, t := range m.tags {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("› " + t.Text))
		} else {
			b.WriteString(tagStyle.Render("  " + t.Text))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.entering {
		b.WriteString(m.textInput.View())
		b.WriteString("\n\n")
	}

	// Options
	removeCheck := "[ ]"
	if m.remove {
		removeCheck = "[×]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Remove instead of add (x)\n", removeCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", verboseCheck))
	b.WriteString("\n")

	// Show logs
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewApplying() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Tagging with %q...", m.chosen.Text)))
	b.WriteString("\n\n")

	var percent float64
	if len(m.files) > 0 {
		percent = float64(m.next) / float64(len(m.files))
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", m.next, len(m.files))))
	b.WriteString("\n\n")

	// Logs
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	verb := "Tagged"
	if m.remove {
		verb = "Untagged"
	}
	summary := fmt.Sprintf("✨ %s %d file(s) with %q", verb, m.next-m.failed, m.chosen.Text)
	if m.failed > 0 {
		summary += fmt.Sprintf("\n\nFailed: %d", m.failed)
	}
	if m.cancelled && m.next < len(m.files) {
		summary += fmt.Sprintf("\nSkipped: %d", len(m.files)-m.next)
	}
	b.WriteString(boxStyle.Render(summary))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case organize.LevelError:
			style = errorStyle
			prefix = "✗"
		case organize.LevelWarning:
			style = warningStyle
			prefix = "!"
		case organize.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case organize.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch {
	case m.entering:
		return "enter: apply • esc: back"
	case m.state == StateChoose:
		return "↑/↓: select • enter: apply • n: new tag • x: remove mode • v: verbose • q: quit"
	case m.state == StateApplying:
		return "esc: stop after current file"
	case m.state == StateComplete, m.state == StateError:
		return "r: another tag • q: quit"
	}
	return ""
}

// Run starts the tag panel for files.
func Run(opts app.Options, files []string) error {
	events := NewEventBuffer()
	opts.OnProgress = events.Record
	if opts.LogOutput == nil {
		// Log lines would tear the alternate screen.
		opts.LogOutput = io.Discard
	}

	a, err := app.New(opts)
	if err != nil {
		return err
	}
	defer a.Close()

	tags, err := a.Settings.Tags()
	if err != nil {
		events.Record(organize.ProgressEvent{
			Message: fmt.Sprintf("Some favorite tags were skipped: %v", err),
			Level:   organize.LevelWarning,
		})
	}

	p := tea.NewProgram(NewModel(a.Organizer, events, tags, files), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
