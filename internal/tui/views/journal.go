package views

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/mood/internal/api"
	"github.com/xolan/mood/internal/journal"
	"github.com/xolan/mood/internal/service"
	"github.com/xolan/mood/internal/tui/ui"
)

const (
	fieldMood = iota
	fieldActivities
	fieldContent
	fieldCount
)

// JournalModel is the model for the protected journal view: the entry form
// on top and the feed below it.
type JournalModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap
	life     lifetime

	width  int
	height int

	form       journal.Form
	feed       journal.Feed
	activities textinput.Model
	content    textarea.Model
	focus      int
	spinner    spinner.Model

	noticeFor time.Duration
	noticeSeq int
	now       func() time.Time
}

// NewJournalModel creates a new journal view model. noticeFor is how long a
// save notice stays up before the form returns to idle.
func NewJournalModel(services *service.Services, styles ui.Styles, keys ui.KeyMap, noticeFor time.Duration) JournalModel {
	activities := textinput.New()
	activities.Placeholder = "Running, Coffee, Friends"
	activities.CharLimit = 200
	activities.Width = 50

	content := textarea.New()
	content.Placeholder = "How was your day?"
	content.ShowLineNumbers = false
	content.CharLimit = 5000
	content.SetWidth(60)
	content.SetHeight(4)

	return JournalModel{
		services:   services,
		styles:     styles,
		keys:       keys,
		life:       newLifetime(),
		form:       journal.NewForm(),
		activities: activities,
		content:    content,
		focus:      fieldMood,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		noticeFor:  noticeFor,
		now:        time.Now,
	}
}

// refreshMsg asks the view to start a feed refresh
type refreshMsg struct {
	view uint64
}

// entriesLoadedMsg is sent when a feed refresh completes
type entriesLoadedMsg struct {
	view    uint64
	gen     uint64
	entries []journal.Entry
	err     error
}

// entrySavedMsg is sent when a submit completes
type entrySavedMsg struct {
	view uint64
	err  error
}

// noticeExpiredMsg returns the form to idle once a notice has been shown
type noticeExpiredMsg struct {
	view uint64
	seq  int
}

// Init implements tea.Model
func (m JournalModel) Init() tea.Cmd {
	view := m.life.id
	return func() tea.Msg { return refreshMsg{view: view} }
}

// Update implements tea.Model
func (m JournalModel) Update(msg tea.Msg) (JournalModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case refreshMsg:
		if msg.view != m.life.id {
			return m, nil
		}
		cmd := m.refresh()
		return m, cmd

	case entriesLoadedMsg:
		if msg.view != m.life.id {
			return m, nil
		}
		if msg.err != nil {
			m.feed.Fail(msg.gen, api.MessageOr(msg.err, journal.RefreshFailedNotice))
		} else {
			m.feed.Apply(msg.gen, msg.entries)
		}
		return m, nil

	case entrySavedMsg:
		if msg.view != m.life.id {
			return m, nil
		}
		return m.handleSaved(msg)

	case noticeExpiredMsg:
		if msg.view != m.life.id || msg.seq != m.noticeSeq {
			return m, nil
		}
		_ = m.form.Acknowledge()
		return m, nil

	case spinner.TickMsg:
		if !m.form.Busy() && !m.feed.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	// Cursor blink and other internal messages go to the focused input
	return m.updateFocused(msg)
}

func (m JournalModel) handleKey(msg tea.KeyMsg) (JournalModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Refresh):
		cmd := m.refresh()
		return m, cmd
	case key.Matches(msg, m.keys.Dismiss):
		m.form.Dismiss()
		m.feed.DismissNotice()
		return m, nil
	case key.Matches(msg, m.keys.Logout):
		return m, m.logout()
	case key.Matches(msg, m.keys.NextField):
		cmd := m.setFocus((m.focus + 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.keys.PrevField):
		cmd := m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, cmd
	}

	if m.form.Busy() {
		// The draft is frozen while it is being sent
		return m, nil
	}

	switch m.focus {
	case fieldMood:
		draft := m.form.Draft()
		switch {
		case key.Matches(msg, m.keys.MoodDown):
			_ = m.form.SetMood(draft.Mood - 1)
		case key.Matches(msg, m.keys.MoodUp):
			_ = m.form.SetMood(draft.Mood + 1)
		case key.Matches(msg, m.keys.Mood):
			mood, err := journal.ParseMood(msg.String())
			if err == nil {
				_ = m.form.SetMood(mood)
			}
		}
		return m, nil

	case fieldActivities:
		if key.Matches(msg, m.keys.Confirm) {
			cmd := m.setFocus(fieldContent)
			return m, cmd
		}
		var cmd tea.Cmd
		m.activities, cmd = m.activities.Update(msg)
		_ = m.form.SetActivities(m.activities.Value())
		return m, cmd

	default:
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		_ = m.form.SetContent(m.content.Value())
		return m, cmd
	}
}

func (m JournalModel) updateFocused(msg tea.Msg) (JournalModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldActivities:
		m.activities, cmd = m.activities.Update(msg)
	case fieldContent:
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

// submit sends the draft. A notice still on screen is dismissed first so the
// user does not have to wait for it.
func (m JournalModel) submit() (JournalModel, tea.Cmd) {
	if m.form.Busy() {
		return m, nil
	}
	if s := m.form.State(); s == journal.FormSuccess || s == journal.FormError {
		_ = m.form.Acknowledge()
		m.noticeSeq++
	}

	req, err := m.form.Begin()
	if err != nil {
		// Validation failures stay local; the notice is already set
		var vErr *journal.ValidationError
		if errors.As(err, &vErr) && vErr.Field == "content" {
			cmd := m.setFocus(fieldContent)
			return m, cmd
		}
		return m, nil
	}

	svc := m.services.Journal
	life := m.life
	save := func() tea.Msg {
		_, err := svc.Create(life.ctx, req)
		return entrySavedMsg{view: life.id, err: err}
	}
	return m, tea.Batch(save, m.spinner.Tick)
}

func (m JournalModel) handleSaved(msg entrySavedMsg) (JournalModel, tea.Cmd) {
	var cmds []tea.Cmd

	if msg.err != nil {
		if m.form.Fail(api.MessageOr(msg.err, journal.SaveFailedMessage)) != nil {
			return m, nil
		}
	} else {
		if m.form.Succeed() != nil {
			return m, nil
		}
		m.activities.SetValue("")
		m.content.Reset()
		// Exactly one refresh per successful submit
		cmds = append(cmds, m.refresh())
	}

	cmds = append(cmds, m.expireNotice())
	return m, tea.Batch(cmds...)
}

// expireNotice schedules the return to idle. With a zero duration the form
// is idle at once and the notice stays until the next edit or submit.
func (m *JournalModel) expireNotice() tea.Cmd {
	m.noticeSeq++
	if m.noticeFor <= 0 {
		_ = m.form.Settle()
		return nil
	}
	view, seq := m.life.id, m.noticeSeq
	return tea.Tick(m.noticeFor, func(time.Time) tea.Msg {
		return noticeExpiredMsg{view: view, seq: seq}
	})
}

// refresh starts a new feed generation; older responses will be dropped.
func (m *JournalModel) refresh() tea.Cmd {
	gen := m.feed.Begin()
	svc := m.services.Journal
	life := m.life
	load := func() tea.Msg {
		entries, err := svc.List(life.ctx)
		return entriesLoadedMsg{view: life.id, gen: gen, entries: entries, err: err}
	}
	return tea.Batch(load, m.spinner.Tick)
}

func (m JournalModel) logout() tea.Cmd {
	auth := m.services.Auth
	return func() tea.Msg {
		return ui.SignedOutMsg{Err: auth.Logout()}
	}
}

func (m *JournalModel) setFocus(field int) tea.Cmd {
	m.focus = field
	m.activities.Blur()
	m.content.Blur()
	switch field {
	case fieldActivities:
		m.activities.Focus()
		return textinput.Blink
	case fieldContent:
		m.content.Focus()
		return textarea.Blink
	}
	return nil
}

// View implements tea.Model
func (m JournalModel) View() string {
	var b strings.Builder

	b.WriteString(RenderStatsLine(m.feed.Entries(), m.styles))
	b.WriteString("\n\n")

	b.WriteString(m.renderForm())
	b.WriteString("\n")
	b.WriteString(m.renderFeed())

	return b.String()
}

func (m JournalModel) renderForm() string {
	var b strings.Builder
	draft := m.form.Draft()

	b.WriteString(m.label("Mood", fieldMood))
	b.WriteString("\n")
	b.WriteString(m.renderMoodSelector(draft.Mood))
	b.WriteString("\n\n")

	b.WriteString(m.label("Activities (comma separated)", fieldActivities))
	b.WriteString("\n")
	b.WriteString(m.box(fieldActivities).Render(m.activities.View()))
	b.WriteString("\n")

	b.WriteString(m.label("Entry", fieldContent))
	b.WriteString("\n")
	b.WriteString(m.box(fieldContent).Render(m.content.View()))
	b.WriteString("\n")

	if m.form.Busy() {
		b.WriteString(m.spinner.View() + " " + m.styles.Muted.Render("Saving..."))
	} else {
		hint := "ctrl+s: save entry"
		if !m.form.Notice().Empty() || !m.feed.Notice().Empty() {
			hint += "  ctrl+x: dismiss"
		}
		b.WriteString(m.styles.Hint.Render(hint))
	}
	b.WriteString("\n")

	if n := m.form.Notice(); !n.Empty() {
		b.WriteString(m.renderNotice(n))
		b.WriteString("\n")
	}
	return b.String()
}

func (m JournalModel) renderMoodSelector(current int) string {
	options := make([]string, 0, journal.MaxMood)
	for mood := journal.MinMood; mood <= journal.MaxMood; mood++ {
		text := journal.MoodFace(mood) + " " + journal.MoodLabel(mood)
		if mood == current {
			options = append(options, m.styles.Mood(mood).Padding(0, 1).Underline(true).Render(text))
		} else {
			options = append(options, m.styles.MoodOption.Render(text))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, options...)
}

func (m JournalModel) renderFeed() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Your entries"))
	b.WriteString("\n")

	if n := m.feed.Notice(); !n.Empty() {
		b.WriteString(m.renderNotice(n))
		b.WriteString("\n")
	}

	switch {
	case m.feed.Loading() && !m.feed.Loaded():
		b.WriteString(m.spinner.View() + " " + m.styles.Muted.Render("Loading entries..."))
		return b.String()
	case m.feed.Len() == 0 && m.feed.Loaded():
		b.WriteString(m.styles.Muted.Render("No entries yet. Write your first one above."))
		return b.String()
	}

	b.WriteString(RenderEntryList(m.feed.Entries(), m.styles, EntryRenderOptions{
		Width: m.width,
		Now:   m.now(),
	}))
	return b.String()
}

func (m JournalModel) renderNotice(n journal.Notice) string {
	switch n.Kind {
	case journal.NoticeSuccess:
		return m.styles.Success.Render("✓ " + n.Text)
	case journal.NoticeValidation:
		return m.styles.Warning.Render(n.Text)
	}
	return m.styles.Error.Render(n.Text)
}

func (m JournalModel) label(text string, field int) string {
	if m.focus == field {
		return m.styles.LabelFocused.Render("▸ " + text)
	}
	return m.styles.Label.Render("  " + text)
}

func (m JournalModel) box(field int) lipgloss.Style {
	if m.focus == field {
		return m.styles.InputFocused
	}
	return m.styles.Input
}

// SetSize sets the view dimensions
func (m *JournalModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	inner := min(80, max(20, width-8))
	m.activities.Width = inner
	m.content.SetWidth(inner)
}

// Close cancels requests still in flight for this view and drops the draft.
func (m JournalModel) Close() {
	m.life.cancel()
}
