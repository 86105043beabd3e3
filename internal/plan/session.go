// Package plan implements the catalog/schedule store: every mutation
// of the in-memory plan state goes through a Session, which tracks
// whether state has diverged from the persisted copy.
package plan

import (
	"fmt"
	"time"

	"github.com/ewanmak/junket/internal/models"
)

// Direction selects a neighbor for schedule reordering.
type Direction int

const (
	MoveUp Direction = iota
	MoveDown
)

// Saver is the persistence boundary a Session flushes through.
type Saver interface {
	Save(*models.Plan) error
}

// Session owns one plan state for the lifetime of a command or UI run.
// Mutators are total: a missing target id or out-of-range index is a
// silent no-op and never leaves the state structurally invalid. The
// dirty flag is set only when a mutation actually changed state.
type Session struct {
	plan  *models.Plan
	dirty bool
}

func NewSession(p *models.Plan) *Session {
	if p.Schedule == nil {
		p.Schedule = make(map[string][]models.Event)
	}
	return &Session{plan: p}
}

// Plan exposes the owned state for read-only use by callers.
func (s *Session) Plan() *models.Plan { return s.plan }

// Dirty reports whether state has diverged from the persisted copy.
func (s *Session) Dirty() bool { return s.dirty }

// AddEvent assigns the next catalog id to draft and appends it.
// Names are not required to be unique.
func (s *Session) AddEvent(draft models.Event) models.Event {
	draft.ID = s.plan.NextEventID
	s.plan.NextEventID++
	s.plan.Events = append(s.plan.Events, draft)
	s.dirty = true
	return draft
}

// UpdateEvent replaces the catalog entry with updated.ID in place,
// preserving its position. Already-scheduled copies are not touched:
// schedule entries are value snapshots, only future scheduling sees
// the new fields.
func (s *Session) UpdateEvent(updated models.Event) {
	for i, e := range s.plan.Events {
		if e.ID == updated.ID {
			s.plan.Events[i] = updated
			s.dirty = true
			return
		}
	}
}

// DeleteEvent removes the catalog entry and purges every scheduled
// copy with the same id from every day. Both effects land together;
// there is no intermediate state where one is visible without the
// other.
func (s *Session) DeleteEvent(id int) {
	idx := -1
	for i, e := range s.plan.Events {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	s.plan.Events = append(s.plan.Events[:idx], s.plan.Events[idx+1:]...)
	for dayID, items := range s.plan.Schedule {
		kept := items[:0]
		for _, e := range items {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		s.plan.Schedule[dayID] = kept
	}
	s.dirty = true
}

// AddDay appends a new day with the next slug and an empty schedule
// entry.
func (s *Session) AddDay() models.Day {
	day := models.Day{
		ID:    fmt.Sprintf("day%d", s.plan.NextDayID),
		Label: fmt.Sprintf("Day %d", s.plan.NextDayID),
	}
	s.plan.NextDayID++
	s.plan.Days = append(s.plan.Days, day)
	s.plan.Schedule[day.ID] = []models.Event{}
	s.dirty = true
	return day
}

// RemoveDay removes a day and its schedule entry together. The last
// remaining day is never removed.
func (s *Session) RemoveDay(dayID string) {
	if len(s.plan.Days) <= 1 {
		return
	}
	for i, d := range s.plan.Days {
		if d.ID == dayID {
			s.plan.Days = append(s.plan.Days[:i], s.plan.Days[i+1:]...)
			delete(s.plan.Schedule, dayID)
			s.dirty = true
			return
		}
	}
}

// SetDayNotes updates the free-text itinerary summary of a day.
func (s *Session) SetDayNotes(dayID, notes string) {
	for i, d := range s.plan.Days {
		if d.ID == dayID {
			if d.Notes != notes {
				s.plan.Days[i].Notes = notes
				s.dirty = true
			}
			return
		}
	}
}

// ScheduleEvent appends a copy of the catalog entry to the day's
// sequence. Duplicates are allowed, on one day or across days.
func (s *Session) ScheduleEvent(dayID string, eventID int) {
	if _, ok := s.plan.DayByID(dayID); !ok {
		return
	}
	e, ok := s.plan.EventByID(eventID)
	if !ok {
		return
	}
	s.plan.Schedule[dayID] = append(s.plan.Schedule[dayID], e)
	s.dirty = true
}

// MoveScheduled swaps the item at index with its neighbor. At a
// boundary the call is a no-op.
func (s *Session) MoveScheduled(dayID string, index int, dir Direction) {
	items := s.plan.Schedule[dayID]
	j := index - 1
	if dir == MoveDown {
		j = index + 1
	}
	if index < 0 || index >= len(items) || j < 0 || j >= len(items) {
		return
	}
	items[index], items[j] = items[j], items[index]
	s.dirty = true
}

// UnscheduleAt removes the item at index from the day's sequence.
func (s *Session) UnscheduleAt(dayID string, index int) {
	items := s.plan.Schedule[dayID]
	if index < 0 || index >= len(items) {
		return
	}
	s.plan.Schedule[dayID] = append(items[:index], items[index+1:]...)
	s.dirty = true
}

func (s *Session) SetTitle(title string) {
	if s.plan.Title != title {
		s.plan.Title = title
		s.dirty = true
	}
}

func (s *Session) SetDescription(desc string) {
	if s.plan.Description != desc {
		s.plan.Description = desc
		s.dirty = true
	}
}

// SetAttendees updates the headcount. Counts below one are refused.
func (s *Session) SetAttendees(n int) {
	if n < 1 || n == s.plan.Attendees {
		return
	}
	s.plan.Attendees = n
	s.dirty = true
}

func (s *Session) SetCurrency(c models.Currency) {
	if c != models.CurrencyHKD && c != models.CurrencyUSD {
		return
	}
	if s.plan.Currency != c {
		s.plan.Currency = c
		s.dirty = true
	}
}

// Flush writes the whole state through the saver if anything changed
// since the last flush, stamping SavedAt first. A clean session is a
// no-op.
func (s *Session) Flush(store Saver) error {
	if !s.dirty {
		return nil
	}
	s.plan.SavedAt = time.Now().UTC().Truncate(time.Second)
	if err := store.Save(s.plan); err != nil {
		return fmt.Errorf("failed to persist plan: %w", err)
	}
	s.dirty = false
	return nil
}
