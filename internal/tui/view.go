package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ewanmak/junket/internal/budget"
	"github.com/ewanmak/junket/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateLibrary:
		content = docStyle.Render(m.viewLibrary())
	case StateEditing:
		if m.form != nil {
			content = docStyle.Render(m.form.View())
		}
	case StateAssign:
		content = docStyle.Render(m.viewAssign())
	case StateConfirmDeleteEvent:
		content = m.viewConfirm("Delete this event from the library and every day?")
	case StateConfirmRemoveDay:
		content = m.viewConfirm("Remove this day and everything scheduled on it?")
	default:
		content = docStyle.Render(m.viewSchedule())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewTotals(),
		content,
		statusStyle.Render(m.statusMsg),
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Schedule", "Library"} {
		if m.state == SessionState(i) || (m.state > StateLibrary && m.previousState == SessionState(i)) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewTotals() string {
	p := m.plan()
	total := budget.GrandTotal(p)
	line := fmt.Sprintf("%s  |  Total %s (≈ %s)  |  Per person %s  |  %d attendees  |  %d events scheduled",
		headerStyle.Render(p.Title),
		totalStyle.Render(budget.Format(total, models.CurrencyHKD)),
		budget.Format(budget.ToUSD(total), models.CurrencyUSD),
		m.display(budget.PerPersonShare(p)),
		p.Attendees,
		budget.ScheduledCount(p),
	)
	return docStyle.Render(line)
}

// display renders an HKD amount in the plan's selected currency.
func (m Model) display(amount float64) string {
	if m.plan().Currency == models.CurrencyUSD {
		return budget.Format(budget.ToUSD(amount), models.CurrencyUSD)
	}
	return budget.Format(amount, models.CurrencyHKD)
}

func (m Model) viewSchedule() string {
	p := m.plan()
	day, ok := m.currentDay()
	if !ok {
		return "No days in the plan"
	}

	var b strings.Builder

	var names []string
	for i, d := range p.Days {
		if i == m.dayIdx {
			names = append(names, selectedStyle.Render(d.Label))
		} else {
			names = append(names, dimStyle.Render(d.Label))
		}
	}
	b.WriteString(strings.Join(names, "  ") + "\n\n")

	if day.Notes != "" {
		b.WriteString(dimStyle.Render(day.Notes) + "\n\n")
	}

	items := p.Schedule[day.ID]
	if len(items) == 0 {
		b.WriteString(dimStyle.Render("Nothing scheduled - press s to add an event") + "\n")
	} else {
		for i, e := range items {
			cost := m.display(budget.EventCost(e, p.Attendees))
			line := fmt.Sprintf("%-42s %12s", e.Name, cost)
			if e.Duration != "" {
				line += dimStyle.Render("  " + e.Duration)
			}
			if i == m.itemIdx {
				b.WriteString(selectedStyle.Render("> "+line) + "\n")
			} else {
				b.WriteString("  " + line + "\n")
			}
		}
		b.WriteString(fmt.Sprintf("\n%s %s\n", dimStyle.Render("Day total:"), totalStyle.Render(m.display(budget.DayTotal(p, day.ID)))))
	}

	return b.String()
}

func (m Model) viewLibrary() string {
	p := m.plan()
	if len(p.Events) == 0 {
		return dimStyle.Render("The library is empty - press a to add an event")
	}

	var b strings.Builder
	for i, e := range p.Events {
		cost := m.display(budget.EventCost(e, p.Attendees))
		line := fmt.Sprintf("[%d] %-42s %12s  %s", e.ID, e.Name, cost, dimStyle.Render(e.Category.Label()))
		if i == m.libIdx {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

func (m Model) viewAssign() string {
	day, _ := m.currentDay()
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Schedule an event on %s", day.Label)) + "\n\n")
	for i, e := range m.plan().Events {
		line := fmt.Sprintf("%-42s %s", e.Name, dimStyle.Render(e.Category.Label()))
		if i == m.assignIdx {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString("\n" + dimStyle.Render("enter to schedule, q to cancel"))
	return b.String()
}

func (m Model) viewConfirm(question string) string {
	return lipgloss.Place(m.width, m.height-8,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(question),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
