package validation

import (
	"fmt"

	"github.com/ewanmak/junket/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateEventID  ConflictType = "duplicate_event_id"
	ConflictStaleCounter      ConflictType = "stale_counter"
	ConflictOrphanSchedule    ConflictType = "orphan_schedule"
	ConflictMissingSchedule   ConflictType = "missing_schedule"
	ConflictNegativeCost      ConflictType = "negative_cost"
	ConflictInvalidAttendees  ConflictType = "invalid_attendees"
	ConflictEmptyDayList      ConflictType = "empty_day_list"
	ConflictUnknownCurrency   ConflictType = "unknown_currency"
	ConflictDuplicateDaySlug  ConflictType = "duplicate_day_slug"
)

// Conflict represents a detected inconsistency in the plan state
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // Names/ids involved
}

// Result contains all detected conflicts
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range r.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks a plan for consistency. It reports only; nothing
// here mutates or blocks the plan.
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidatePlan checks the structural invariants of the plan state.
func (v *Validator) ValidatePlan(p *models.Plan) Result {
	var conflicts []Conflict

	seenEvents := make(map[int]string, len(p.Events))
	maxEventID := 0
	for _, e := range p.Events {
		if prev, ok := seenEvents[e.ID]; ok {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictDuplicateEventID,
				Description: fmt.Sprintf("catalog id %d is used by both %q and %q", e.ID, prev, e.Name),
				Items:       []string{prev, e.Name},
			})
		}
		seenEvents[e.ID] = e.Name
		if e.ID > maxEventID {
			maxEventID = e.ID
		}
		if e.PerPersonCost < 0 || e.MinimumCost < 0 {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictNegativeCost,
				Description: fmt.Sprintf("event %q has a negative cost", e.Name),
				Items:       []string{e.Name},
			})
		}
	}

	if p.NextEventID <= maxEventID {
		conflicts = append(conflicts, Conflict{
			Type:        ConflictStaleCounter,
			Description: fmt.Sprintf("next event id %d is not above the highest assigned id %d", p.NextEventID, maxEventID),
		})
	}

	if len(p.Days) == 0 {
		conflicts = append(conflicts, Conflict{
			Type:        ConflictEmptyDayList,
			Description: "the plan has no days; at least one day must always exist",
		})
	}

	seenDays := make(map[string]bool, len(p.Days))
	for _, d := range p.Days {
		if seenDays[d.ID] {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictDuplicateDaySlug,
				Description: fmt.Sprintf("day slug %q appears more than once", d.ID),
				Items:       []string{d.ID},
			})
		}
		seenDays[d.ID] = true
		if _, ok := p.Schedule[d.ID]; !ok {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictMissingSchedule,
				Description: fmt.Sprintf("day %q has no schedule entry", d.ID),
				Items:       []string{d.ID},
			})
		}
	}

	for dayID := range p.Schedule {
		if !seenDays[dayID] {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictOrphanSchedule,
				Description: fmt.Sprintf("schedule entry %q does not correspond to any day", dayID),
				Items:       []string{dayID},
			})
		}
	}

	if p.Attendees < 1 {
		conflicts = append(conflicts, Conflict{
			Type:        ConflictInvalidAttendees,
			Description: fmt.Sprintf("attendee count %d is below one", p.Attendees),
		})
	}

	if p.Currency != models.CurrencyHKD && p.Currency != models.CurrencyUSD {
		conflicts = append(conflicts, Conflict{
			Type:        ConflictUnknownCurrency,
			Description: fmt.Sprintf("unknown currency %q", p.Currency),
		})
	}

	return Result{Conflicts: conflicts}
}
