// Package budget holds the pricing rules: pure functions from plan
// state to derived amounts. Nothing here mutates state.
package budget

import (
	"fmt"
	"strings"

	"github.com/ewanmak/junket/internal/models"
)

// HKDPerUSD is the fixed conversion rate used for USD display. Rates
// are not fetched live; this is a configuration constant.
const HKDPerUSD = 7.8

// EventCost applies the minimum-spend rule: cost is the per-head rate
// times the headcount unless a contractual minimum exceeds it.
func EventCost(e models.Event, attendees int) float64 {
	perPerson := e.PerPersonCost * float64(attendees)
	if e.MinimumCost > perPerson {
		return e.MinimumCost
	}
	return perPerson
}

// DayTotal sums the cost of every event scheduled on the given day.
func DayTotal(p *models.Plan, dayID string) float64 {
	var total float64
	for _, e := range p.Schedule[dayID] {
		total += EventCost(e, p.Attendees)
	}
	return total
}

// GrandTotal sums DayTotal over all days, in day order.
func GrandTotal(p *models.Plan) float64 {
	var total float64
	for _, d := range p.Days {
		total += DayTotal(p, d.ID)
	}
	return total
}

// PerPersonShare divides the grand total by the attendee count. A
// non-positive attendee count yields 0 rather than an arithmetic fault.
func PerPersonShare(p *models.Plan) float64 {
	if p.Attendees <= 0 {
		return 0
	}
	return GrandTotal(p) / float64(p.Attendees)
}

// ScheduledCount returns the number of scheduled items across all days.
func ScheduledCount(p *models.Plan) int {
	var n int
	for _, d := range p.Days {
		n += len(p.Schedule[d.ID])
	}
	return n
}

// ToUSD converts an HKD amount to USD at the fixed rate.
func ToUSD(hkd float64) float64 {
	return hkd / HKDPerUSD
}

// FromUSD converts a USD amount back to HKD at the fixed rate.
func FromUSD(usd float64) float64 {
	return usd * HKDPerUSD
}

// Format renders an amount in the display convention of the currency:
// HKD as a whole number ("HK$140,000"), USD with two decimal places
// ("US$17,948.72"). Amounts are always HKD-denominated internally; the
// caller converts before formatting USD.
func Format(amount float64, currency models.Currency) string {
	if currency == models.CurrencyUSD {
		return "US$" + groupThousands(fmt.Sprintf("%.2f", amount))
	}
	return "HK$" + groupThousands(fmt.Sprintf("%.0f", amount))
}

// groupThousands inserts commas into the integer part of a formatted
// decimal string.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
