package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ewanmak/junket/internal/export"
	"github.com/ewanmak/junket/internal/logger"
	"github.com/ewanmak/junket/internal/models"
	"github.com/ewanmak/junket/internal/plan"
)

func (m Model) Init() tea.Cmd {
	return nil
}

// flush persists the session after a mutation. Save failures are
// logged and surfaced in the status line; the TUI keeps running on the
// in-memory state.
func (m *Model) flush() {
	if !m.session.Dirty() {
		return
	}
	if err := m.session.Flush(m.store); err != nil {
		logger.Error("failed to save plan", "error", err)
		m.statusMsg = "Save failed: " + err.Error()
		return
	}
	m.statusMsg = "Saved " + m.plan().SavedAt.Local().Format("15:04:05")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateEditing:
			return m.updateEditing(msg)
		case StateAssign:
			return m.updateAssign(msg)
		case StateConfirmDeleteEvent:
			return m.updateConfirmDeleteEvent(msg)
		case StateConfirmRemoveDay:
			return m.updateConfirmRemoveDay(msg)
		case StateLibrary:
			return m.updateLibrary(msg)
		default:
			return m.updateSchedule(msg)
		}
	}

	if m.state == StateEditing && m.form != nil {
		return m.updateEditing(msg)
	}
	return m, nil
}

func (m Model) updateCommon(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit, true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil, true
	case key.Matches(msg, m.keys.Tab):
		m.state = (m.state + 1) % 2
		m.statusMsg = ""
		return m, nil, true
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.state + 1) % 2
		m.statusMsg = ""
		return m, nil, true
	case key.Matches(msg, m.keys.More):
		m.session.SetAttendees(m.plan().Attendees + 1)
		m.flush()
		return m, nil, true
	case key.Matches(msg, m.keys.Fewer):
		m.session.SetAttendees(m.plan().Attendees - 1)
		m.flush()
		return m, nil, true
	case key.Matches(msg, m.keys.Currency):
		if m.plan().Currency == models.CurrencyHKD {
			m.session.SetCurrency(models.CurrencyUSD)
		} else {
			m.session.SetCurrency(models.CurrencyHKD)
		}
		m.flush()
		return m, nil, true
	case key.Matches(msg, m.keys.Export):
		path, err := export.WriteScheduleCSV(m.plan(), "")
		if err != nil {
			m.statusMsg = "Export failed: " + err.Error()
		} else {
			m.statusMsg = "Exported " + path
		}
		return m, nil, true
	}
	return m, nil, false
}

func (m Model) updateSchedule(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if next, cmd, handled := m.updateCommon(msg); handled {
		return next, cmd
	}

	day, hasDay := m.currentDay()
	items := []models.Event{}
	if hasDay {
		items = m.plan().Schedule[day.ID]
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		if m.dayIdx > 0 {
			m.dayIdx--
			m.itemIdx = 0
		}
	case key.Matches(msg, m.keys.Right):
		if m.dayIdx < len(m.plan().Days)-1 {
			m.dayIdx++
			m.itemIdx = 0
		}
	case key.Matches(msg, m.keys.Up):
		if m.itemIdx > 0 {
			m.itemIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.itemIdx < len(items)-1 {
			m.itemIdx++
		}
	case key.Matches(msg, m.keys.MoveUp):
		if hasDay {
			m.session.MoveScheduled(day.ID, m.itemIdx, plan.MoveUp)
			if m.session.Dirty() {
				m.itemIdx--
			}
			m.flush()
		}
	case key.Matches(msg, m.keys.MoveDown):
		if hasDay {
			m.session.MoveScheduled(day.ID, m.itemIdx, plan.MoveDown)
			if m.session.Dirty() {
				m.itemIdx++
			}
			m.flush()
		}
	case key.Matches(msg, m.keys.Delete):
		if hasDay && len(items) > 0 {
			m.session.UnscheduleAt(day.ID, m.itemIdx)
			m.flush()
			m.clampItemCursor()
		}
	case key.Matches(msg, m.keys.Assign):
		if hasDay && len(m.plan().Events) > 0 {
			m.assignIdx = 0
			m.previousState = m.state
			m.state = StateAssign
		}
	case key.Matches(msg, m.keys.NewDay):
		m.session.AddDay()
		m.flush()
		m.dayIdx = len(m.plan().Days) - 1
		m.itemIdx = 0
	case key.Matches(msg, m.keys.DropDay):
		if hasDay && len(m.plan().Days) > 1 {
			m.dayToRemoveID = day.ID
			m.previousState = m.state
			m.state = StateConfirmRemoveDay
		}
	}

	return m, nil
}

func (m Model) updateLibrary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if next, cmd, handled := m.updateCommon(msg); handled {
		return next, cmd
	}

	events := m.plan().Events
	if m.libIdx >= len(events) {
		m.libIdx = len(events) - 1
	}
	if m.libIdx < 0 {
		m.libIdx = 0
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.libIdx > 0 {
			m.libIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.libIdx < len(events)-1 {
			m.libIdx++
		}
	case key.Matches(msg, m.keys.Add):
		m.editingID = 0
		m.eventForm = &EventFormModel{Category: string(models.CategoryOther)}
		m.form = newEventForm(m.eventForm)
		m.previousState = m.state
		m.state = StateEditing
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Edit):
		if len(events) > 0 {
			e := events[m.libIdx]
			m.editingID = e.ID
			m.eventForm = formFromEvent(e)
			m.form = newEventForm(m.eventForm)
			m.previousState = m.state
			m.state = StateEditing
			return m, m.form.Init()
		}
	case key.Matches(msg, m.keys.Delete):
		if len(events) > 0 {
			m.eventToDeleteID = events[m.libIdx].ID
			m.previousState = m.state
			m.state = StateConfirmDeleteEvent
		}
	}

	return m, nil
}

func (m Model) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		event := models.Event{
			ID:            m.editingID,
			Name:          m.eventForm.Name,
			Description:   m.eventForm.Description,
			Duration:      m.eventForm.Duration,
			PerPersonCost: parseCost(m.eventForm.PerPerson),
			MinimumCost:   parseCost(m.eventForm.Minimum),
			Category:      models.Category(m.eventForm.Category),
		}
		if m.editingID == 0 {
			added := m.session.AddEvent(event)
			m.statusMsg = fmt.Sprintf("Added %q (ID %d)", added.Name, added.ID)
		} else {
			m.session.UpdateEvent(event)
			m.statusMsg = fmt.Sprintf("Updated %q; scheduled copies keep their old values", event.Name)
		}
		m.flush()
		m.form = nil
		m.state = m.previousState
		return m, nil
	case huh.StateAborted:
		m.form = nil
		m.state = m.previousState
		return m, nil
	}

	return m, cmd
}

func (m Model) updateAssign(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	events := m.plan().Events
	if len(events) == 0 {
		m.state = m.previousState
		return m, nil
	}
	if m.assignIdx >= len(events) {
		m.assignIdx = len(events) - 1
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = m.previousState
	case key.Matches(msg, m.keys.Up):
		if m.assignIdx > 0 {
			m.assignIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.assignIdx < len(events)-1 {
			m.assignIdx++
		}
	case key.Matches(msg, m.keys.Enter):
		if day, ok := m.currentDay(); ok {
			m.session.ScheduleEvent(day.ID, events[m.assignIdx].ID)
			m.flush()
			m.statusMsg = fmt.Sprintf("Scheduled %q on %s", events[m.assignIdx].Name, day.Label)
		}
		m.state = m.previousState
	}

	return m, nil
}

func (m Model) updateConfirmDeleteEvent(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.session.DeleteEvent(m.eventToDeleteID)
		m.flush()
		m.clampItemCursor()
		m.statusMsg = "Deleted event and removed it from every day"
		m.state = m.previousState
	case "n", "N", "esc", "q":
		m.state = m.previousState
	}
	return m, nil
}

func (m Model) updateConfirmRemoveDay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.session.RemoveDay(m.dayToRemoveID)
		m.flush()
		if m.dayIdx >= len(m.plan().Days) {
			m.dayIdx = len(m.plan().Days) - 1
		}
		m.itemIdx = 0
		m.statusMsg = "Removed day"
		m.state = m.previousState
	case "n", "N", "esc", "q":
		m.state = m.previousState
	}
	return m, nil
}
