// Package tui implements the full-screen task browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/tasklist/internal/activity"
	"github.com/twiced-technology-gmbh/tasklist/internal/output"
	"github.com/twiced-technology-gmbh/tasklist/internal/task"
)

// view represents the current screen state.
type view int

const (
	viewList view = iota
	viewConfirmDelete
)

const (
	keyEsc          = "esc"
	browserChrome   = 2 // blank line + status bar below the list
	errorChrome     = 1 // extra line when an error is displayed
	defaultListW    = 80
	defaultListH    = 20
	listTitle       = "Tasklist"
	detailSeparator = " · "
)

// Store loads and saves the task file.
type Store interface {
	Load() ([]*task.Task, error)
	Save(tasks []*task.Task) error
}

type keyMap struct {
	Delete key.Binding
	Quit   key.Binding
	Yes    key.Binding
	No     key.Binding
}

var keys = keyMap{
	Delete: key.NewBinding(key.WithKeys("d", "D"), key.WithHelp("d", "delete")),
	Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "save & quit")),
	Yes:    key.NewBinding(key.WithKeys("y", "Y")),
	No:     key.NewBinding(key.WithKeys("n", "N", keyEsc, "q")),
}

// Browser is the top-level bubbletea model for the browse command.
type Browser struct {
	store  Store
	rec    activity.Recorder
	tasks  *task.List
	list   list.Model
	view   view
	width  int
	height int
	dirty  bool
	err    error
	notice string

	// Delete confirmation.
	deleteNumber  int
	deleteTitle   string
	reloadPending bool
}

// NewBrowser creates a Browser and loads tasks from store.
func NewBrowser(store Store, rec activity.Recorder) *Browser {
	if rec == nil {
		rec = activity.Nop{}
	}
	l := list.New(nil, list.NewDefaultDelegate(), defaultListW, defaultListH)
	l.Title = listTitle
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.DisableQuitKeybindings()
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{keys.Delete, keys.Quit} }

	b := &Browser{store: store, rec: rec, list: l, tasks: task.NewList(nil)}
	b.loadTasks()
	return b
}

// Err returns the error that ended the session, if the final save failed.
func (b *Browser) Err() error {
	return b.err
}

// Tasks returns the browser's current tasks.
func (b *Browser) Tasks() []*task.Task {
	return b.tasks.Tasks()
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return b.handleKey(msg)
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.resize()
		return b, nil
	case ReloadMsg:
		b.handleReload(msg)
		return b, nil
	}

	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return b, cmd
}

// View implements tea.Model.
func (b *Browser) View() string {
	if b.width == 0 {
		return "Loading..."
	}
	if b.view == viewConfirmDelete {
		return b.viewDeleteConfirm()
	}
	return b.list.View() + "\n\n" + b.renderStatusBar()
}

func (b *Browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c"))) {
		return b, tea.Quit
	}

	if b.view == viewConfirmDelete {
		return b.handleDeleteKey(msg)
	}

	// While the filter input is focused, every key belongs to it.
	if b.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, keys.Quit):
			return b.quit()
		case key.Matches(msg, keys.Delete):
			b.handleDeleteStart()
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return b, cmd
}

func (b *Browser) handleDeleteStart() {
	it, ok := b.list.SelectedItem().(item)
	if !ok {
		return
	}
	b.deleteNumber = it.number
	b.deleteTitle = it.task.Title()
	b.view = viewConfirmDelete
}

func (b *Browser) handleDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Yes):
		b.executeDelete()
	case key.Matches(msg, keys.No):
		b.view = viewList
	default:
		return b, nil
	}
	if b.reloadPending {
		b.reloadPending = false
		b.handleReload(ReloadMsg{})
	}
	return b, nil
}

func (b *Browser) executeDelete() {
	b.view = viewList
	t, err := b.tasks.Remove(b.deleteNumber)
	if err != nil {
		b.err = fmt.Errorf("deleting task #%d: %w", b.deleteNumber, err)
		return
	}
	b.dirty = true
	b.notice = ""
	b.rec.Record(activity.ActionDelete, b.deleteNumber, t.Title())
	b.refreshItems()
}

// quit saves pending deletions, then exits. A failed save still exits; the
// caller reports it through Err.
func (b *Browser) quit() (tea.Model, tea.Cmd) {
	if b.dirty {
		tasks := b.tasks.Tasks()
		if err := b.store.Save(tasks); err != nil {
			b.err = fmt.Errorf("saving tasks: %w", err)
			return b, tea.Quit
		}
		b.dirty = false
		b.rec.Record(activity.ActionSave, 0, fmt.Sprintf("%d tasks", len(tasks)))
	}
	b.err = nil
	return b, tea.Quit
}

// handleReload re-reads the file unless there are unsaved deletions, which
// would be lost.
func (b *Browser) handleReload(msg ReloadMsg) {
	switch {
	case msg.Removed:
		// Keep what is on screen; quitting writes it back.
		b.dirty = true
		b.notice = "task file removed; q saves the list shown"
	case b.view == viewConfirmDelete:
		// deleteNumber refers to the list on screen; reload once the
		// dialog closes.
		b.reloadPending = true
	case b.dirty:
		b.notice = "file changed on disk; unsaved deletions kept"
	default:
		b.loadTasks()
	}
}

func (b *Browser) loadTasks() {
	tasks, err := b.store.Load()
	if err != nil {
		b.err = err
		return
	}
	b.err = nil
	b.notice = ""
	b.tasks = task.NewList(tasks)
	b.refreshItems()
}

func (b *Browser) refreshItems() {
	entries := b.tasks.Entries()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = item{number: e.Number, task: e.Task}
	}
	b.list.SetItems(items)
}

func (b *Browser) resize() {
	h := b.height - browserChrome
	if b.err != nil {
		h -= errorChrome
	}
	b.list.SetSize(b.width, max(h, 1))
}

func (b *Browser) renderStatusBar() string {
	status := fmt.Sprintf(" %d tasks", b.tasks.Len())
	if b.dirty {
		status += " (unsaved)"
	}
	if b.notice != "" {
		status += " | " + b.notice
	}
	status = truncate(status, b.width)

	if b.err != nil {
		errStr := errorStyle.Render(truncate("Error: "+b.err.Error(), b.width))
		return errStr + "\n" + statusBarStyle.Render(status)
	}
	return statusBarStyle.Render(status)
}

func (b *Browser) viewDeleteConfirm() string {
	content := errorStyle.Render("Delete task?") + "\n\n" +
		fmt.Sprintf("  #%d: %s", b.deleteNumber, b.deleteTitle) + "\n\n" +
		dimStyle.Render("y:yes  n:no")

	return dialogStyle.Render(content)
}

// item adapts a numbered task to the bubbles list.
type item struct {
	number int
	task   *task.Task
}

// FilterValue implements list.Item.
func (i item) FilterValue() string {
	return strings.Join(i.task.Description, " ")
}

// Title implements list.DefaultItem.
func (i item) Title() string {
	return fmt.Sprintf("#%d %s", i.number, i.task.Title())
}

// Description implements list.DefaultItem.
func (i item) Description() string {
	parts := []string{
		i.task.Date.String() + " " + i.task.Time.String(),
		output.PriorityLabel(i.task.Priority),
		output.DueLabel(i.task.Due),
	}
	if n := len(i.task.SubItems()); n > 0 {
		parts = append(parts, fmt.Sprintf("+%d", n))
	}
	return strings.Join(parts, detailSeparator)
}

// --- Messages ---

// ReloadMsg is sent by the file watcher when the task file changes.
type ReloadMsg struct {
	// Removed is set when the file was deleted or renamed away.
	Removed bool
}

// --- Styles ---

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	dialogPadY = 1
	dialogPadX = 2

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(dialogPadY, dialogPadX)
)

func truncate(s string, maxLen int) string {
	if maxLen < 4 { //nolint:mnd // minimum length for truncation
		maxLen = 4
	}
	if lipgloss.Width(s) <= maxLen {
		return s
	}
	// Slice by runes to avoid breaking multi-byte UTF-8 characters.
	runes := []rune(s)
	target := min(maxLen-3, len(runes)) //nolint:mnd // room for "..."
	for target > 0 && lipgloss.Width(string(runes[:target])) > maxLen-3 {
		target--
	}
	return string(runes[:target]) + "..."
}
