// Package tui is the interactive dashboard: the task table with inline
// editing, filter and search controls, pagination, and the transient
// rate-limit notice line.
package tui

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/gorev/pkg/api"
	"tableflip.dev/gorev/pkg/editor"
	"tableflip.dev/gorev/pkg/filterctl"
	"tableflip.dev/gorev/pkg/msg"
	"tableflip.dev/gorev/pkg/store"
	"tableflip.dev/gorev/pkg/task"
	"tableflip.dev/gorev/pkg/validate"
)

type mode int

const (
	modeNormal mode = iota
	modeAdd
	modeSearch
	modeEditTitle
	modeEditDate
	modeBound
	modeHelp
)

// Relay forwards messages into the running program from goroutines the
// program does not own: debounce timers, notice dismissal, the 401 hook. It
// is safe to use before the program starts; early messages are dropped.
type Relay struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (r *Relay) Bind(send func(tea.Msg)) {
	r.mu.Lock()
	r.send = send
	r.mu.Unlock()
}

func (r *Relay) Send(m tea.Msg) {
	r.mu.Lock()
	send := r.send
	r.mu.Unlock()
	if send != nil {
		send(m)
	}
}

// Options wire the dashboard to the state layer.
type Options struct {
	Store     *store.Store
	Validator *validate.Validator
	Loc       *msg.Localizer
	Notices   *api.NoticeCenter
	Relay     *Relay
}

// Model is the dashboard state.
type Model struct {
	store   *store.Store
	filters *filterctl.Controller
	val     *validate.Validator
	loc     *msg.Localizer
	notices *api.NoticeCenter
	relay   *Relay

	mode   mode
	cursor int
	snap   store.Snapshot
	notice *api.Notice
	flash  string

	input  textinput.Model
	editor *editor.Editor
	editID int64

	termWidth  int
	termHeight int
}

// messages
type stateChangedMsg struct{}
type noticeChangedMsg struct{}
type editorChangedMsg struct{}
type flashMsg struct{ text string }
type sessionExpiredMsg struct{}

// SessionExpired is the message the gateway's unauthorized hook relays into
// the program: the dashboard announces the expiry and quits back to the
// login command.
func SessionExpired() tea.Msg {
	return sessionExpiredMsg{}
}

// New builds the dashboard model.
func New(opts Options) Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Prompt = ""

	m := Model{
		store:   opts.Store,
		val:     opts.Validator,
		loc:     opts.Loc,
		notices: opts.Notices,
		relay:   opts.Relay,
		input:   ti,
	}
	m.filters = filterctl.New(filterctl.Options{
		Store:     opts.Store,
		Validator: opts.Validator,
		OnError:   func(text string) { opts.Relay.Send(flashMsg{text}) },
	})
	m.snap = opts.Store.Snapshot()
	return m
}

// Init arms the event listeners and triggers the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.listenStore(), m.listenNotices(), m.refresh())
}

func (m Model) refresh() tea.Cmd {
	st := m.store
	return func() tea.Msg {
		_ = st.FetchTasks(context.Background())
		return nil
	}
}

func (m Model) listenStore() tea.Cmd {
	events := m.store.Events()
	return func() tea.Msg {
		<-events
		return stateChangedMsg{}
	}
}

func (m Model) listenNotices() tea.Cmd {
	events := m.notices.Events()
	return func() tea.Msg {
		<-events
		return noticeChangedMsg{}
	}
}

func (m *Model) selectedTask() *task.Task {
	if m.cursor < 0 || m.cursor >= len(m.snap.Tasks) {
		return nil
	}
	t := m.snap.Tasks[m.cursor]
	return &t
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.snap.Tasks) {
		m.cursor = len(m.snap.Tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update routes messages.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = message.Width
		m.termHeight = message.Height

	case stateChangedMsg:
		m.snap = m.store.Snapshot()
		m.clampCursor()
		cmds = append(cmds, m.listenStore())

	case noticeChangedMsg:
		m.notice = m.notices.Current()
		cmds = append(cmds, m.listenNotices())

	case editorChangedMsg:
		if m.editor != nil && m.editor.State() == editor.Viewing && m.mode != modeNormal {
			// The debounced commit resolved while still in the edit mode.
			if m.mode == modeEditTitle || m.mode == modeEditDate {
				m.exitEdit()
			}
		}

	case flashMsg:
		m.flash = message.text

	case sessionExpiredMsg:
		m.flash = m.loc.T(msg.SessionExpired)
		cmds = append(cmds, tea.Quit)

	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(message)...)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(key tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch m.mode {
	case modeHelp:
		switch key.String() {
		case "q", "esc", "?":
			m.mode = modeNormal
		}

	case modeAdd:
		switch key.String() {
		case "enter":
			title := strings.TrimSpace(m.input.Value())
			if errs := m.val.CreateTask(title, nil); !errs.OK() {
				m.flash = errs.First()
				break
			}
			st := m.store
			cmds = append(cmds, func() tea.Msg {
				_ = st.CreateTask(context.Background(), title, nil)
				return nil
			})
			m.leaveInput()
		case "esc":
			m.leaveInput()
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(key)
			cmds = append(cmds, cmd)
		}

	case modeSearch:
		switch key.String() {
		case "enter", "esc":
			m.leaveInput()
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(key)
			cmds = append(cmds, cmd)
			// Every keystroke restarts the quiet window; the store only
			// changes once typing pauses.
			m.filters.SearchInput(m.input.Value())
		}

	case modeBound:
		switch key.String() {
		case "enter":
			raw := strings.TrimSpace(m.input.Value())
			if raw == "" {
				m.filters.SetEndDate(nil)
				m.leaveInput()
				break
			}
			d, err := task.ParseDate(raw)
			if err != nil {
				m.flash = m.loc.T(msg.TaskDueDateInvalid)
				break
			}
			m.filters.SetEndDate(d)
			m.leaveInput()
		case "esc":
			m.leaveInput()
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(key)
			cmds = append(cmds, cmd)
		}

	case modeEditTitle, modeEditDate:
		switch key.String() {
		case "enter":
			m.editor.Commit()
			m.exitEdit()
		case "esc":
			m.editor.Cancel()
			m.exitEdit()
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(key)
			cmds = append(cmds, cmd)
			m.editor.SetValue(m.input.Value())
		}

	case modeNormal:
		cmds = append(cmds, m.handleNormalKey(key)...)
	}

	return cmds
}

func (m *Model) handleNormalKey(key tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch key.String() {
	case "q", "ctrl+c":
		cmds = append(cmds, tea.Quit)

	case "?":
		m.mode = modeHelp

	case "j", "down":
		if m.cursor < len(m.snap.Tasks)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g":
		m.cursor = 0
	case "G":
		m.cursor = len(m.snap.Tasks) - 1
		m.clampCursor()

	case "h", "left":
		if m.snap.Page > 1 {
			m.filters.SetPage(m.snap.Page - 1)
		}
	case "l", "right":
		if m.snap.Page < m.snap.TotalPages {
			m.filters.SetPage(m.snap.Page + 1)
		}

	case "f":
		m.filters.SetStatusFilter(nextStatus(m.snap.Filters.Status))
	case "c":
		m.filters.ClearFilters()
	case "r":
		m.filters.Refresh()

	case "/":
		m.enterInput(modeSearch, m.snap.Filters.SearchTerm, "search", &cmds)
	case "b":
		current := ""
		if m.snap.Filters.EndDate != nil {
			current = m.snap.Filters.EndDate.String()
		}
		m.enterInput(modeBound, current, "due before (YYYY-MM-DD)", &cmds)

	case "o":
		m.enterInput(modeAdd, "", "new task title", &cmds)

	case "i":
		if t := m.selectedTask(); t != nil {
			m.startTitleEdit(t, &cmds)
		}
	case "d":
		if t := m.selectedTask(); t != nil {
			m.startDateEdit(t, &cmds)
		}

	case "x":
		if t := m.selectedTask(); t != nil {
			id, done := t.ID, t.IsCompleted
			st := m.store
			cmds = append(cmds, func() tea.Msg {
				_ = st.ToggleTaskCompletion(context.Background(), id, !done)
				return nil
			})
		}

	case "backspace", "delete":
		if t := m.selectedTask(); t != nil {
			id := t.ID
			st := m.store
			cmds = append(cmds, func() tea.Msg {
				_ = st.DeleteTask(context.Background(), id)
				return nil
			})
		}
	}

	return cmds
}

func (m *Model) enterInput(target mode, value, placeholder string, cmds *[]tea.Cmd) {
	m.mode = target
	m.flash = ""
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) leaveInput() {
	m.mode = modeNormal
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) exitEdit() {
	m.mode = modeNormal
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) startTitleEdit(t *task.Task, cmds *[]tea.Cmd) {
	st, val, relay := m.store, m.val, m.relay
	id := t.ID
	m.editID = id
	m.editor = editor.New(editor.Options{
		Debounce: editor.TitleDebounce,
		Validate: func(value string) string {
			if errs := val.UpdateTaskTitle(id, value); !errs.OK() {
				return errs.First()
			}
			return ""
		},
		Commit: func(ctx context.Context, value string) error {
			return st.UpdateTaskTitle(ctx, id, value)
		},
		OnError:  func(text string) { relay.Send(flashMsg{text}) },
		OnChange: func() { relay.Send(editorChangedMsg{}) },
	})
	m.editor.StartEdit(t.Title)
	m.enterInput(modeEditTitle, t.Title, "title", cmds)
}

func (m *Model) startDateEdit(t *task.Task, cmds *[]tea.Cmd) {
	st, val, relay, loc := m.store, m.val, m.relay, m.loc
	id := t.ID
	m.editID = id
	current := ""
	if t.DueDate != nil {
		current = t.DueDate.String()
	}
	m.editor = editor.New(editor.Options{
		// Date fields only commit on enter/blur.
		Validate: func(value string) string {
			if errs := val.UpdateTaskDueDate(id, value); !errs.OK() {
				return errs.First()
			}
			return ""
		},
		Commit: func(ctx context.Context, value string) error {
			if value == "" {
				return st.UpdateTaskDueDate(ctx, id, nil)
			}
			d, err := task.ParseDate(value)
			if err != nil {
				return errors.New(loc.T(msg.TaskDueDateInvalid))
			}
			return st.UpdateTaskDueDate(ctx, id, d)
		},
		OnError:  func(text string) { relay.Send(flashMsg{text}) },
		OnChange: func() { relay.Send(editorChangedMsg{}) },
	})
	m.editor.StartEdit(current)
	m.enterInput(modeEditDate, current, "YYYY-MM-DD (empty clears)", cmds)
}

func nextStatus(s task.StatusFilter) task.StatusFilter {
	switch s {
	case task.StatusAll:
		return task.StatusPending
	case task.StatusPending:
		return task.StatusCompleted
	default:
		return task.StatusAll
	}
}
