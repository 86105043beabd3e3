package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"

	"github.com/ewanmak/junket/internal/models"
	"github.com/ewanmak/junket/internal/plan"
	"github.com/ewanmak/junket/internal/storage"
)

type SessionState int

const (
	StateSchedule SessionState = iota
	StateLibrary
	StateEditing
	StateAssign
	StateConfirmDeleteEvent
	StateConfirmRemoveDay
)

// EventFormModel holds the string-typed fields bound to the huh form.
type EventFormModel struct {
	Name        string
	Description string
	Duration    string
	PerPerson   string
	Minimum     string
	Category    string
}

type Model struct {
	store   storage.Provider
	session *plan.Session

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	form      *huh.Form
	eventForm *EventFormModel
	editingID int // 0 while adding a new event

	dayIdx    int // selected day on the schedule tab
	itemIdx   int // selected item within the day
	libIdx    int // selected event on the library tab
	assignIdx int // selected event in the assign picker

	eventToDeleteID int
	dayToRemoveID   string

	statusMsg string
	quitting  bool
	width     int
	height    int
}

func NewModel(store storage.Provider, session *plan.Session) Model {
	return Model{
		store:   store,
		session: session,
		state:   StateSchedule,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

func (m Model) plan() *models.Plan { return m.session.Plan() }

// currentDay returns the selected day, clamping the cursor after day
// removals.
func (m *Model) currentDay() (models.Day, bool) {
	days := m.plan().Days
	if len(days) == 0 {
		return models.Day{}, false
	}
	if m.dayIdx >= len(days) {
		m.dayIdx = len(days) - 1
	}
	if m.dayIdx < 0 {
		m.dayIdx = 0
	}
	return days[m.dayIdx], true
}

func (m *Model) clampItemCursor() {
	day, ok := m.currentDay()
	if !ok {
		m.itemIdx = 0
		return
	}
	items := m.plan().Schedule[day.ID]
	if m.itemIdx >= len(items) {
		m.itemIdx = len(items) - 1
	}
	if m.itemIdx < 0 {
		m.itemIdx = 0
	}
}

// newEventForm builds the huh form for adding or editing an event.
func newEventForm(f *EventFormModel) *huh.Form {
	var categories []huh.Option[string]
	for _, c := range models.KnownCategories {
		categories = append(categories, huh.NewOption(c.Label(), string(c)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&f.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&f.Description),
			huh.NewInput().
				Title("Duration").
				Description("Free-text label, e.g. '3 hours' or 'Dinner'").
				Value(&f.Duration),
			huh.NewSelect[string]().
				Title("Category").
				Options(categories...).
				Value(&f.Category),
			huh.NewInput().
				Title("Per-person cost (HKD)").
				Value(&f.PerPerson).
				Validate(validateCost),
			huh.NewInput().
				Title("Minimum cost (HKD)").
				Value(&f.Minimum).
				Validate(validateCost),
		),
	)
}

func validateCost(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 0 {
		return fmt.Errorf("must be non-negative")
	}
	return nil
}

func parseCost(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func formFromEvent(e models.Event) *EventFormModel {
	return &EventFormModel{
		Name:        e.Name,
		Description: e.Description,
		Duration:    e.Duration,
		PerPerson:   strconv.FormatFloat(e.PerPersonCost, 'f', -1, 64),
		Minimum:     strconv.FormatFloat(e.MinimumCost, 'f', -1, 64),
		Category:    string(e.Category),
	}
}
