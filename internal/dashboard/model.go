// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/state"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/views/cards"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

const progressTickInterval = 100 * time.Millisecond

// StateStore persists dashboard preferences between runs.
type StateStore interface {
	SaveDashboard(state.DashboardState) error
	LoadDashboard() (state.DashboardState, bool, error)
	AppendSession(state.StudySession) error
}

// Model is the root Bubble Tea model for the board.
type Model struct {
	fetcher Fetcher
	store   StateStore

	focus  Focus
	width  int
	height int
	cursor int
	active string

	// gen counts fetch generations per widget. A result carrying a stale
	// generation belongs to a torn-down view and is discarded.
	gen       map[string]int
	payloads  map[string][]byte
	fromCache map[string]bool
	errs      map[string]error
	loading   map[string]bool

	study *cards.Session

	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
}

// NewModel creates a board Model focused on the widget list. Persisted
// preferences are restored best-effort.
func NewModel(fetcher Fetcher, store StateStore) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		fetcher:   fetcher,
		store:     store,
		focus:     PaneLeft,
		active:    Widgets[0],
		gen:       make(map[string]int),
		payloads:  make(map[string][]byte),
		fromCache: make(map[string]bool),
		errs:      make(map[string]error),
		loading:   make(map[string]bool),
		spinner:   sp,
		viewport:  viewport.New(0, 0),
		help:      help.New(),
	}

	if store != nil {
		if ds, found, err := store.LoadDashboard(); err == nil && found {
			for i, w := range Widgets {
				if w == ds.ActiveWidget {
					m.active = w
					m.cursor = i
					break
				}
			}
		}
	}

	return m
}

// Init starts the spinner and kicks off the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd(m.active, false))
}

// fetchCmd starts a fetch for the widget and bumps its generation so any
// result still in flight from an earlier request is discarded on arrival.
func (m Model) fetchCmd(widget string, force bool) tea.Cmd {
	m.gen[widget]++
	gen := m.gen[widget]
	m.loading[widget] = true

	fetcher := m.fetcher
	return tea.Batch(
		func() tea.Msg {
			data, fromCache, err := fetcher.Fetch(context.Background(), widget, force)
			return PayloadMsg{Widget: widget, Gen: gen, Data: data, FromCache: fromCache, Err: err}
		},
		tickCmd(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(progressTickInterval, func(t time.Time) tea.Msg {
		return ProgressTickMsg(t)
	})
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		_, rightWidth := PaneWidths(msg.Width)
		vpWidth := rightWidth - borderChrome
		if vpWidth < 0 {
			vpWidth = 0
		}
		m.viewport.Width = vpWidth
		m.viewport.Height = m.contentHeight()
		return m, nil

	case PayloadMsg:
		// A stale generation means the view this fetch belonged to was
		// refreshed or abandoned. The cache write already happened (or
		// didn't); the UI just ignores the leftover.
		if msg.Gen != m.gen[msg.Widget] {
			return m, nil
		}
		m.loading[msg.Widget] = false
		if msg.Err != nil {
			m.errs[msg.Widget] = msg.Err
			return m, nil
		}
		m.errs[msg.Widget] = nil
		m.payloads[msg.Widget] = msg.Data
		m.fromCache[msg.Widget] = msg.FromCache
		if msg.Widget == m.active {
			m.viewport.SetContent(m.renderWidget(msg.Widget))
		}
		return m, nil

	case ProgressTickMsg:
		if m.anyLoading() {
			return m, tickCmd()
		}
		return m, nil

	case SessionSavedMsg:
		// Best-effort persistence; a failed save is not worth interrupting
		// the session for.
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes key messages, routing to study mode when active.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.study != nil {
		return m.handleStudyKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.persist()
		return m, tea.Quit

	case "tab":
		if m.focus == PaneLeft {
			m.focus = PaneRight
		} else {
			m.focus = PaneLeft
		}
		return m, nil

	case "up", "k":
		if m.focus == PaneLeft {
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(Widgets) - 1
			}
			return m, nil
		}

	case "down", "j":
		if m.focus == PaneLeft {
			m.cursor++
			if m.cursor >= len(Widgets) {
				m.cursor = 0
			}
			return m, nil
		}

	case "enter":
		if m.focus == PaneLeft {
			return m.activate(Widgets[m.cursor], false)
		}
		return m, nil

	case "r":
		return m.activate(m.active, true)

	case "s":
		if m.active == "cards" {
			return m.startStudy()
		}
		return m, nil
	}

	// Unhandled keys scroll the content pane when it has focus.
	if m.focus == PaneRight {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// activate switches the active widget, fetching its payload if absent or
// when a refresh is forced.
func (m Model) activate(widget string, force bool) (tea.Model, tea.Cmd) {
	m.active = widget

	if !force {
		if _, ok := m.payloads[widget]; ok {
			m.viewport.SetContent(m.renderWidget(widget))
			return m, nil
		}
	}

	cmd := m.fetchCmd(widget, force)
	return m, cmd
}

// startStudy begins a flash card session over the cached card payload.
func (m Model) startStudy() (tea.Model, tea.Cmd) {
	deck := cardsFromPayload(m.payloads["cards"])
	if len(deck) == 0 {
		return m, nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	m.study = cards.NewSession("all", deck, rng)
	return m, nil
}

func (m Model) handleStudyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ", "f":
		m.study.Flip()
		return m, nil

	case "a":
		m.study.Review(cards.GradeAgain)
		return m, nil

	case "g":
		m.study.Review(cards.GradeGood)
		if m.study.Done() {
			return m.endStudy()
		}
		return m, nil

	case "esc":
		return m.endStudy()
	}

	return m, nil
}

// endStudy records the session and returns to browse mode.
func (m Model) endStudy() (tea.Model, tea.Cmd) {
	session := m.study
	m.study = nil

	if m.store == nil {
		return m, nil
	}

	store := m.store
	record := session.Record()
	return m, func() tea.Msg {
		return SessionSavedMsg{Err: store.AppendSession(record)}
	}
}

// persist saves the dashboard preferences. Best-effort on quit.
func (m Model) persist() {
	if m.store == nil {
		return
	}
	_ = m.store.SaveDashboard(state.DashboardState{ActiveWidget: m.active})
}

func (m Model) anyLoading() bool {
	for _, l := range m.loading {
		if l {
			return true
		}
	}
	return false
}

// contentHeight returns the usable height for pane content, accounting for
// border chrome and the help bar.
func (m Model) contentHeight() int {
	h := m.height - borderChrome - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// View renders the two-pane layout with help bar, or the study card when a
// session is running.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	if m.study != nil {
		return m.viewStudy()
	}

	leftWidth, rightWidth := PaneWidths(m.width)
	contentHeight := m.contentHeight()

	var leftStyle, rightStyle lipgloss.Style
	if m.focus == PaneLeft {
		leftStyle = FocusedBorder()
		rightStyle = UnfocusedBorder()
	} else {
		leftStyle = UnfocusedBorder()
		rightStyle = FocusedBorder()
	}

	leftStyle = leftStyle.
		Width(leftWidth - borderChrome).
		Height(contentHeight)
	rightStyle = rightStyle.
		Width(rightWidth - borderChrome).
		Height(contentHeight)

	leftPane := leftStyle.Render(m.viewWidgetList())
	rightPane := rightStyle.Render(m.viewContent())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
	helpView := m.help.View(BrowseKeyMap())

	return lipgloss.JoinVertical(lipgloss.Left, panes, helpView)
}

// viewContent renders the right pane for the active widget.
func (m Model) viewContent() string {
	if m.loading[m.active] {
		return fmt.Sprintf("%s Fetching %s... %3.0f%%",
			m.spinner.View(), m.active, m.fetcher.Fraction()*100)
	}

	if err := m.errs[m.active]; err != nil {
		out := errorText.Render(fmt.Sprintf("Error: %s", err)) + "\n\nPress r to retry"
		// Show the last good payload under the error rather than a blank
		// pane.
		if _, ok := m.payloads[m.active]; ok {
			out += "\n\n" + mutedText.Render("showing cached data") + "\n" + m.renderWidget(m.active)
		}
		return out
	}

	if _, ok := m.payloads[m.active]; !ok {
		return "Press enter to load"
	}

	m.viewport.SetContent(m.renderWidget(m.active))
	return m.viewport.View()
}

// viewStudy renders the flash card under review.
func (m Model) viewStudy() string {
	card, ok := m.study.Current()
	if !ok {
		return "Session complete"
	}

	face := card.Front
	if m.study.Flipped() {
		face = card.Back
	}

	status := fmt.Sprintf("%d remaining", m.study.Remaining())
	helpView := m.help.View(StudyKeyMap())

	return lipgloss.JoinVertical(lipgloss.Left,
		cardFace.Render(face),
		mutedText.Render(status),
		helpView,
	)
}
