package models

import "time"

type Currency string

const (
	CurrencyHKD Currency = "HKD"
	CurrencyUSD Currency = "USD"
)

// Day is a labeled slot in the itinerary. ID is a stable "dayN" slug;
// slice order in Plan.Days is display and export order.
type Day struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Notes string `json:"notes"`
}

// Plan is the whole session state: the event catalog, the ordered day
// list, and the per-day schedule of event copies. The JSON tags are the
// persisted file schema and must stay stable.
//
// Schedule entries are independent value copies taken from the catalog
// at the moment of scheduling, not references: editing a catalog event
// later does not touch copies already on a day.
type Plan struct {
	Title       string             `json:"eventTitle"`
	Description string             `json:"eventDescription"`
	Attendees   int                `json:"attendees"`
	Currency    Currency           `json:"currency"`
	Events      []Event            `json:"events"`
	Days        []Day              `json:"days"`
	Schedule    map[string][]Event `json:"schedule"`
	NextEventID int                `json:"nextId"`
	NextDayID   int                `json:"nextDayId"`
	SavedAt     time.Time          `json:"savedAt"`
}

// EventByID returns the catalog entry with the given id.
func (p *Plan) EventByID(id int) (Event, bool) {
	for _, e := range p.Events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

// DayByID returns the day with the given slug.
func (p *Plan) DayByID(id string) (Day, bool) {
	for _, d := range p.Days {
		if d.ID == id {
			return d, true
		}
	}
	return Day{}, false
}
