// Package browse implements the interactive cache browser.
package browse

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lakshaymaurya-felt/fastclean/internal/clean"
	"github.com/lakshaymaurya-felt/fastclean/internal/config"
	"github.com/lakshaymaurya-felt/fastclean/internal/ui"
)

// ─── Messages ────────────────────────────────────────────────────────────────

type sizeMsg struct {
	index int
	bytes int64
	err   error
}

type deleteResultMsg struct {
	index  int
	failed int
	err    error
}

// probeRow sums the kilobyte usage of a row's paths. Paths are probed one
// after another; unparsable output counts as zero.
func probeRow(ctx context.Context, probe clean.SizeProbe, index int, paths []string) tea.Cmd {
	return func() tea.Msg {
		var total int64
		var errs []error
		for _, path := range paths {
			out, err := probe.KilobyteSize(ctx, path)
			if err != nil {
				errs = append(errs, err)
			}
			if kb, ok := clean.ParseKilobytes(out); ok {
				total += kb * 1024
			}
		}
		return sizeMsg{index: index, bytes: total, err: errors.Join(errs...)}
	}
}

func deleteRow(ctx context.Context, remover clean.Remover, index int, paths []string) tea.Cmd {
	return func() tea.Msg {
		var errs []error
		for _, path := range paths {
			if _, err := remover.Remove(ctx, path); err != nil {
				errs = append(errs, err)
			}
		}
		return deleteResultMsg{index: index, failed: len(errs), err: errors.Join(errs...)}
	}
}

// ─── Keys ────────────────────────────────────────────────────────────────────

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Delete  key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Delete, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Confirm}}
}

// ─── Model ───────────────────────────────────────────────────────────────────

type rowState int

const (
	rowPending rowState = iota
	rowSized
	rowDeleting
)

type row struct {
	folder config.CacheFolder
	paths  []string
	bytes  int64
	state  rowState
	err    error
}

// Model is the bubbletea model of the cache browser. Rows are sized one
// at a time in declaration order; at most one command runs at any moment.
type Model struct {
	ctx     context.Context
	probe   clean.SizeProbe
	remover clean.Remover
	theme   *ui.Theme

	rows          []row
	cursor        int
	busy          bool // a probe or removal is in flight
	confirmDelete bool // two-key delete: Backspace then Enter
	quitting      bool
	status        string
	err           error
	width         int

	spinner spinner.Model
	keys    keyMap
	help    help.Model
}

// NewModel returns a browser over every concrete cache folder.
func NewModel(ctx context.Context, opts Options) Model {
	var rows []row
	for _, f := range config.All.Concrete() {
		rows = append(rows, row{folder: f, paths: config.ExpandPaths(f.Paths(), opts.Home)})
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = opts.Theme.Accent

	h := help.New()
	h.Styles.ShortKey = opts.Theme.Hint
	h.Styles.ShortDesc = opts.Theme.Muted
	h.Styles.ShortSeparator = opts.Theme.Muted

	return Model{
		ctx:     ctx,
		probe:   opts.Probe,
		remover: opts.Remover,
		theme:   opts.Theme,
		rows:    rows,
		busy:    len(rows) > 0,
		width:   80,
		spinner: sp,
		keys:    defaultKeyMap(),
		help:    h,
	}
}

// Init starts sizing the first row; NewModel already marked it busy.
func (m Model) Init() tea.Cmd {
	if len(m.rows) == 0 {
		return m.spinner.Tick
	}
	return tea.Batch(m.spinner.Tick, probeRow(m.ctx, m.probe, 0, m.rows[0].paths))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sizeMsg:
		m.busy = false
		if msg.index >= 0 && msg.index < len(m.rows) {
			r := &m.rows[msg.index]
			r.bytes = msg.bytes
			r.err = msg.err
			r.state = rowSized
		}
		return m.nextProbe()

	case deleteResultMsg:
		m.busy = false
		if msg.index >= 0 && msg.index < len(m.rows) {
			r := &m.rows[msg.index]
			r.state = rowPending
			if msg.err != nil {
				m.err = msg.err
				m.status = fmt.Sprintf("%s: %d path(s) could not be removed", r.folder, msg.failed)
			} else {
				m.err = nil
				m.status = fmt.Sprintf("%s deleted", r.folder)
			}
		}
		return m.nextProbe()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

		// If awaiting delete confirmation, only Enter confirms.
		if m.confirmDelete {
			m.confirmDelete = false
			if key.Matches(msg, m.keys.Confirm) {
				return m.startDelete()
			}
			m.status = "deletion cancelled"
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Delete):
			if m.busy {
				m.status = "wait for the current operation to finish"
				return m, nil
			}
			m.confirmDelete = true
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// View delegates to view.go renderView.
func (m Model) View() string {
	return m.renderView()
}

// Total returns the summed size of every sized row.
func (m Model) Total() int64 {
	var total int64
	for _, r := range m.rows {
		if r.state == rowSized {
			total += r.bytes
		}
	}
	return total
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// nextProbe starts sizing the first pending row unless something is in flight.
func (m Model) nextProbe() (Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	for i := range m.rows {
		if m.rows[i].state == rowPending {
			m.busy = true
			return m, probeRow(m.ctx, m.probe, i, m.rows[i].paths)
		}
	}
	return m, nil
}

func (m Model) startDelete() (Model, tea.Cmd) {
	if m.busy || m.cursor < 0 || m.cursor >= len(m.rows) {
		return m, nil
	}
	r := &m.rows[m.cursor]
	r.state = rowDeleting
	m.busy = true
	m.status = ""
	return m, deleteRow(m.ctx, m.remover, m.cursor, r.paths)
}
