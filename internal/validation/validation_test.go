package validation

import (
	"strings"
	"testing"

	"github.com/ewanmak/junket/internal/models"
)

func conflictTypes(r Result) map[ConflictType]int {
	counts := make(map[ConflictType]int)
	for _, c := range r.Conflicts {
		counts[c.Type]++
	}
	return counts
}

func TestValidatePlan_SeedIsClean(t *testing.T) {
	result := New().ValidatePlan(models.DefaultPlan())
	if result.HasConflicts() {
		t.Errorf("seed dataset reported conflicts:\n%s", result.FormatReport())
	}
	if got := result.FormatReport(); got != "No conflicts detected." {
		t.Errorf("clean report = %q", got)
	}
}

func TestValidatePlan_DuplicateEventID(t *testing.T) {
	p := models.DefaultPlan()
	p.Events = append(p.Events, models.Event{ID: 1, Name: "Shadow Reception"})

	counts := conflictTypes(New().ValidatePlan(p))
	if counts[ConflictDuplicateEventID] != 1 {
		t.Errorf("duplicate id conflicts = %d, want 1", counts[ConflictDuplicateEventID])
	}
}

func TestValidatePlan_StaleCounter(t *testing.T) {
	p := models.DefaultPlan()
	p.NextEventID = 22

	counts := conflictTypes(New().ValidatePlan(p))
	if counts[ConflictStaleCounter] != 1 {
		t.Errorf("stale counter conflicts = %d, want 1", counts[ConflictStaleCounter])
	}
}

func TestValidatePlan_ScheduleDayMismatches(t *testing.T) {
	p := models.DefaultPlan()
	p.Schedule["day9"] = []models.Event{}
	delete(p.Schedule, "day1")

	counts := conflictTypes(New().ValidatePlan(p))
	if counts[ConflictOrphanSchedule] != 1 {
		t.Errorf("orphan schedule conflicts = %d, want 1", counts[ConflictOrphanSchedule])
	}
	if counts[ConflictMissingSchedule] != 1 {
		t.Errorf("missing schedule conflicts = %d, want 1", counts[ConflictMissingSchedule])
	}
}

func TestValidatePlan_NegativeCost(t *testing.T) {
	p := models.DefaultPlan()
	p.Events[0].MinimumCost = -1

	counts := conflictTypes(New().ValidatePlan(p))
	if counts[ConflictNegativeCost] != 1 {
		t.Errorf("negative cost conflicts = %d, want 1", counts[ConflictNegativeCost])
	}
}

func TestValidatePlan_InvalidAttendees(t *testing.T) {
	p := models.DefaultPlan()
	p.Attendees = 0

	counts := conflictTypes(New().ValidatePlan(p))
	if counts[ConflictInvalidAttendees] != 1 {
		t.Errorf("attendee conflicts = %d, want 1", counts[ConflictInvalidAttendees])
	}
}

func TestValidatePlan_EmptyDayList(t *testing.T) {
	p := models.DefaultPlan()
	p.Days = nil
	p.Schedule = map[string][]models.Event{}

	counts := conflictTypes(New().ValidatePlan(p))
	if counts[ConflictEmptyDayList] != 1 {
		t.Errorf("empty day list conflicts = %d, want 1", counts[ConflictEmptyDayList])
	}
}

func TestValidatePlan_UnknownCurrencyAndDuplicateSlug(t *testing.T) {
	p := models.DefaultPlan()
	p.Currency = models.Currency("GBP")
	p.Days = append(p.Days, models.Day{ID: "day1", Label: "Day 1 Again"})

	counts := conflictTypes(New().ValidatePlan(p))
	if counts[ConflictUnknownCurrency] != 1 {
		t.Errorf("currency conflicts = %d, want 1", counts[ConflictUnknownCurrency])
	}
	if counts[ConflictDuplicateDaySlug] != 1 {
		t.Errorf("duplicate slug conflicts = %d, want 1", counts[ConflictDuplicateDaySlug])
	}
}

func TestFormatReport_ListsEveryConflict(t *testing.T) {
	p := models.DefaultPlan()
	p.Attendees = 0
	p.Currency = models.Currency("GBP")

	result := New().ValidatePlan(p)
	report := result.FormatReport()
	if !strings.Contains(report, "Conflicts detected:") {
		t.Errorf("report missing heading: %q", report)
	}
	if strings.Count(report, "- ") != len(result.Conflicts) {
		t.Errorf("report lines do not match conflict count:\n%s", report)
	}
}
