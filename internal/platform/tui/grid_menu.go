package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkovardin/tui-pairs/internal/core"
	"github.com/mkovardin/tui-pairs/internal/games/pairs"
	"github.com/mkovardin/tui-pairs/internal/storage"
)

// GridSelection holds the user's choice from the grid menu.
type GridSelection struct {
	GridIndex int
}

// GridSelectModel lets users choose a board size before playing.
type GridSelectModel struct {
	cursor    int
	width     int
	height    int
	store     *storage.Store
	keyMapper *KeyMapper
	selection GridSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewGridSelectModel creates a new grid selection model. The cursor starts
// on the previously selected preset, if any.
func NewGridSelectModel(store *storage.Store, width, height int) GridSelectModel {
	cursor := pairs.SelectedGrid()
	if cursor < 0 || cursor >= pairs.GridCount() {
		cursor = pairs.DefaultGridIndex
	}

	return GridSelectModel{
		cursor:    cursor,
		width:     width,
		height:    height,
		store:     store,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m GridSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GridSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m GridSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < pairs.GridCount()-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = GridSelection{GridIndex: m.cursor}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the grid selection.
func (m GridSelectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT BOARD SIZE", m.width))
	b.WriteString("\n\n")

	names := pairs.GridNames()
	keys := pairs.GridKeys()
	for i, name := range names {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s%s", cursor, name, m.bestSuffix(keys[i]))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// bestSuffix annotates a preset with its stored best time, if any.
func (m GridSelectModel) bestSuffix(gridKey string) string {
	if m.store == nil {
		return ""
	}
	best, err := m.store.BestTime(gridKey)
	if err != nil || best == 0 {
		return ""
	}
	secs := best / 1000
	return fmt.Sprintf("  -  best %d:%02d", secs/60, secs%60)
}

// Selected returns the selection, or nil if still choosing.
func (m GridSelectModel) Selected() *GridSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m GridSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m GridSelectModel) WantsBack() bool {
	return m.back
}

// RunGridSelector runs the board size selection and returns the selection.
// A nil selection means back or quit.
func RunGridSelector(store *storage.Store, cfg core.RuntimeConfig) (*GridSelection, core.RuntimeConfig, error) {
	model := NewGridSelectModel(store, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(GridSelectModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
