package budget

import (
	"math"
	"testing"

	"github.com/ewanmak/junket/internal/models"
)

func TestEventCost_MinimumSpendRule(t *testing.T) {
	tests := []struct {
		name      string
		perPerson float64
		minimum   float64
		attendees int
		want      float64
	}{
		{"minimum wins", 1180, 140000, 100, 140000},
		{"per-person wins", 1180, 140000, 200, 236000},
		{"no minimum", 1000, 0, 100, 100000},
		{"flat minimum only", 0, 45000, 100, 45000},
		{"fractional per-person", 299.98, 0, 100, 29998},
		{"zero attendees yields minimum", 500, 10000, 0, 10000},
		{"zero attendees no minimum", 500, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := models.Event{PerPersonCost: tt.perPerson, MinimumCost: tt.minimum}
			got := EventCost(e, tt.attendees)
			if got != tt.want {
				t.Errorf("EventCost(%v, %v, n=%d) = %v, want %v", tt.perPerson, tt.minimum, tt.attendees, got, tt.want)
			}
		})
	}
}

func TestGrandTotal_SeedDataset(t *testing.T) {
	p := models.DefaultPlan()

	wantDayTotals := map[string]float64{
		"day1": 140000, // max(1180*100, 140000)
		"day2": 339998, // 75000 + 100000 + 29998 + 10000 + 45000 + 50000 + 30000
		"day3": 139000, // 9000 + 50000 + 80000
		"day4": 470000, // 75000 + 35000 + 360000
	}

	for dayID, want := range wantDayTotals {
		if got := DayTotal(p, dayID); got != want {
			t.Errorf("DayTotal(%s) = %v, want %v", dayID, got, want)
		}
	}

	if got := GrandTotal(p); got != 1088998 {
		t.Errorf("GrandTotal = %v, want 1088998", got)
	}
	if got := PerPersonShare(p); got != 10889.98 {
		t.Errorf("PerPersonShare = %v, want 10889.98", got)
	}
	if got := ScheduledCount(p); got != 14 {
		t.Errorf("ScheduledCount = %d, want 14", got)
	}
}

func TestGrandTotal_MatchesDaySums(t *testing.T) {
	p := models.DefaultPlan()

	var fromDays float64
	for _, d := range p.Days {
		fromDays += DayTotal(p, d.ID)
	}
	if got := GrandTotal(p); got != fromDays {
		t.Errorf("GrandTotal = %v, sum of day totals = %v", got, fromDays)
	}

	var fromItems float64
	for _, d := range p.Days {
		for _, e := range p.Schedule[d.ID] {
			fromItems += EventCost(e, p.Attendees)
		}
	}
	if fromDays != fromItems {
		t.Errorf("sum of day totals = %v, sum of item costs = %v", fromDays, fromItems)
	}
}

func TestPerPersonShare_GuardsZeroAttendees(t *testing.T) {
	p := models.DefaultPlan()
	p.Attendees = 0
	if got := PerPersonShare(p); got != 0 {
		t.Errorf("PerPersonShare with 0 attendees = %v, want 0", got)
	}

	p.Attendees = -3
	if got := PerPersonShare(p); got != 0 {
		t.Errorf("PerPersonShare with negative attendees = %v, want 0", got)
	}
}

func TestConversion_RoundTrip(t *testing.T) {
	for _, amount := range []float64{0, 1, 7.8, 299.98, 1088998, 140000} {
		back := FromUSD(ToUSD(amount))
		if math.Abs(back-amount) > 1e-9 {
			t.Errorf("FromUSD(ToUSD(%v)) = %v, want %v", amount, back, amount)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		amount   float64
		currency models.Currency
		want     string
	}{
		{0, models.CurrencyHKD, "HK$0"},
		{140000, models.CurrencyHKD, "HK$140,000"},
		{1088998, models.CurrencyHKD, "HK$1,088,998"},
		{1234.6, models.CurrencyHKD, "HK$1,235"},
		{0, models.CurrencyUSD, "US$0.00"},
		{17948.717948, models.CurrencyUSD, "US$17,948.72"},
		{139615.128, models.CurrencyUSD, "US$139,615.13"},
		{999.5, models.CurrencyUSD, "US$999.50"},
	}

	for _, tt := range tests {
		if got := Format(tt.amount, tt.currency); got != tt.want {
			t.Errorf("Format(%v, %s) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}
