package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/cli/formatter"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/service"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/timeline"
)

// scheduleKeyMap defines the schedule view key bindings.
type scheduleKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	ExpandAll   key.Binding
	Granularity key.Binding
	NextYear    key.Binding
	PrevYear    key.Binding
	Add         key.Binding
	Quit        key.Binding
}

func newScheduleKeyMap() scheduleKeyMap {
	return scheduleKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "expand/collapse")),
		ExpandAll:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "expand all")),
		Granularity: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "month/week")),
		NextYear:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "next year")),
		PrevYear:    key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "prev year")),
		Add:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add planting")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type scheduleLoadedMsg struct {
	sched *service.Schedule
	err   error
}

type draftSavedMsg struct {
	clientRef string
	err       error
}

// scheduleModel is the interactive timeline view. It rebuilds the schedule
// through the service on every structural change; drafts created by the form
// are spliced into the current schedule immediately and reconciled by
// clientRef once the save lands.
type scheduleModel struct {
	app   *App
	query service.ScheduleQuery
	keys  scheduleKeyMap

	sched  *service.Schedule
	cursor int
	width  int
	height int

	form     *huh.Form
	formData *plantingFormData

	// nextDraftID hands out negative ids for unsaved plantings.
	nextDraftID int64

	status string
	err    error
}

func newScheduleModel(app *App, query service.ScheduleQuery) *scheduleModel {
	return &scheduleModel{
		app:         app,
		query:       query,
		keys:        newScheduleKeyMap(),
		nextDraftID: -1,
	}
}

func (m *scheduleModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m *scheduleModel) loadCmd() tea.Cmd {
	query := m.query
	return func() tea.Msg {
		sched, err := m.app.Schedule.Build(context.Background(), query)
		return scheduleLoadedMsg{sched: sched, err: err}
	}
}

func (m *scheduleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case scheduleLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.sched = msg.sched
		// One-shot flag: the first build already persisted the expansion.
		m.query.ExpandAll = false
		if m.cursor >= len(m.sched.Rows) {
			m.cursor = len(m.sched.Rows) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case draftSavedMsg:
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "saved"
		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.handleKey(msg)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m *scheduleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.sched != nil && m.cursor < len(m.sched.Rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		row := m.selectedRow()
		if row == nil || row.Kind() == timeline.RowBed {
			return m, nil
		}
		if err := m.app.Schedule.ToggleRow(context.Background(), m.query.Scope, row.RowID()); err != nil {
			m.err = err
			return m, nil
		}
		return m, m.loadCmd()

	case key.Matches(msg, m.keys.ExpandAll):
		if err := m.app.Schedule.ExpandAll(context.Background(), m.query.Scope); err != nil {
			m.err = err
			return m, nil
		}
		return m, m.loadCmd()

	case key.Matches(msg, m.keys.Granularity):
		if m.query.Granularity == timeline.GranularityWeek {
			m.query.Granularity = timeline.GranularityMonth
		} else {
			m.query.Granularity = timeline.GranularityWeek
		}
		return m, m.loadCmd()

	case key.Matches(msg, m.keys.NextYear):
		m.query.Year++
		return m, m.loadCmd()

	case key.Matches(msg, m.keys.PrevYear):
		m.query.Year--
		return m, m.loadCmd()

	case key.Matches(msg, m.keys.Add):
		return m.openForm()
	}
	return m, nil
}

// openForm starts the add-planting form, preselecting the bed under the
// cursor when there is one.
func (m *scheduleModel) openForm() (tea.Model, tea.Cmd) {
	beds, err := m.app.Beds.List(context.Background())
	if err != nil {
		m.err = err
		return m, nil
	}
	if len(beds) == 0 {
		m.status = "no beds yet; add one with `farmplan bed add`"
		return m, nil
	}

	options := make([]huh.Option[string], len(beds))
	for i, b := range beds {
		options[i] = huh.NewOption(b.Name, fmt.Sprintf("%d", b.ID))
	}
	defaultBed := options[0].Value
	if row := m.selectedRow(); row != nil && row.Kind() == timeline.RowBed {
		defaultBed = row.RowID()
	}

	m.formData = &plantingFormData{}
	m.form = newPlantingForm(options, defaultBed, m.formData)
	return m, m.form.Init()
}

func (m *scheduleModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		m.status = "cancelled"
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		data := m.formData
		m.form = nil
		m.formData = nil
		return m.acceptDraft(data, cmd)
	}
	return m, cmd
}

// acceptDraft splices a draft planting into the visible schedule and kicks
// off the asynchronous save.
func (m *scheduleModel) acceptDraft(data *plantingFormData, pending tea.Cmd) (tea.Model, tea.Cmd) {
	draft, err := data.draftPlanting(m.nextDraftID, uuid.NewString())
	if err != nil {
		m.err = err
		return m, pending
	}
	m.nextDraftID--

	if m.sched != nil {
		if bar := timeline.Project(*draft, m.query.Year, m.query.Granularity); bar != nil {
			rowID := timeline.BedRowID(draft.BedID)
			entries := append(m.sched.Bars[rowID], service.BarEntry{Planting: *draft, Bar: *bar})
			sort.SliceStable(entries, func(i, j int) bool {
				return entries[i].Planting.StartDate.Before(entries[j].Planting.StartDate)
			})
			m.sched.Bars[rowID] = entries
		}
	}
	m.status = fmt.Sprintf("saving %s…", draft.Crop)

	app := m.app
	saved := *draft
	saveCmd := func() tea.Msg {
		p := saved
		p.ID = 0 // the database assigns the real id
		err := app.Plantings.Create(context.Background(), &p)
		return draftSavedMsg{clientRef: p.ClientRef, err: err}
	}
	return m, tea.Batch(pending, saveCmd)
}

func (m *scheduleModel) selectedRow() timeline.Row {
	if m.sched == nil || m.cursor < 0 || m.cursor >= len(m.sched.Rows) {
		return nil
	}
	return m.sched.Rows[m.cursor]
}

func (m *scheduleModel) View() string {
	if m.form != nil {
		return m.form.View()
	}
	if m.err != nil {
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.sched == nil {
		return formatter.Dim("Loading…")
	}

	body := renderSchedule(m.sched, m.cursor)
	help := formatter.Dim(renderHelp(m.keys))
	if m.status != "" {
		help = formatter.Dim(m.status) + "\n" + help
	}
	return body + "\n\n" + help
}

func renderHelp(keys scheduleKeyMap) string {
	bindings := []key.Binding{
		keys.Toggle, keys.ExpandAll, keys.Granularity,
		keys.NextYear, keys.PrevYear, keys.Add, keys.Quit,
	}
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		out += b.Help().Key + " " + b.Help().Desc
	}
	return out
}
