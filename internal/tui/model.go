package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const pollInterval = 1500 * time.Millisecond

type tickMsg time.Time

type snapshotMsg struct {
	Snapshot Snapshot
	At       time.Time
}

type pollErrMsg struct {
	Err error
	At  time.Time
}

type activatedMsg struct {
	Window int
	Err    error
}

type Model struct {
	newBuilder    BuilderFunc
	host          string
	snap          *Snapshot
	polledAt      time.Time
	self          int // window the inspector itself runs in
	last          int // most recent active window other than self
	paused        bool
	status        string
	err           error
	width, height int
	quitting      bool
}

// NewModel creates an inspector polling through newBuilder. host labels the
// target in the title; empty means local.
func NewModel(newBuilder BuilderFunc, host string) Model {
	return Model{
		newBuilder: newBuilder,
		host:       host,
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.poll, tickCmd())
}

func (m Model) poll() tea.Msg {
	s, err := TakeSnapshot(m.newBuilder)
	if err != nil {
		return pollErrMsg{Err: err, At: time.Now()}
	}
	return snapshotMsg{Snapshot: s, At: time.Now()}
}

func (m Model) activateCmd(window int) tea.Cmd {
	return func() tea.Msg {
		res, err := m.newBuilder().WindowActivate(strconv.Itoa(window)).Execute()
		if err == nil {
			err = res.Err()
		}
		return activatedMsg{Window: window, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case snapshotMsg:
		s := msg.Snapshot
		m.snap = &s
		m.polledAt = msg.At
		m.err = nil
		if m.self == 0 {
			m.self = s.Window
		} else if s.Window != m.self {
			m.last = s.Window
		}
		return m, nil

	case pollErrMsg:
		m.err = msg.Err
		m.polledAt = msg.At
		return m, nil

	case activatedMsg:
		if msg.Err != nil {
			m.status = "activate failed: " + msg.Err.Error()
		} else {
			m.status = "activated window " + strconv.Itoa(msg.Window)
		}
		return m, m.poll

	case tickMsg:
		if m.paused {
			return m, tickCmd()
		}
		return m, tea.Batch(tickCmd(), m.poll)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Refresh):
		m.status = ""
		return m, m.poll

	case key.Matches(msg, keys.Pause):
		m.paused = !m.paused
		return m, nil

	case key.Matches(msg, keys.Activate):
		if m.last == 0 {
			m.status = "no other window seen yet"
			return m, nil
		}
		return m, m.activateCmd(m.last)
	}
	return m, nil
}
