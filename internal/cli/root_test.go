package cli

import (
	"testing"

	"github.com/ewanmak/junket/internal/models"
	"github.com/ewanmak/junket/internal/plan"
)

func TestFormatAmount_ConvertsForUSDDisplay(t *testing.T) {
	if got := formatAmount(140000, models.CurrencyHKD); got != "HK$140,000" {
		t.Errorf("HKD display = %q", got)
	}
	// 140000 / 7.8 = 17948.717...
	if got := formatAmount(140000, models.CurrencyUSD); got != "US$17,948.72" {
		t.Errorf("USD display = %q", got)
	}
}

func TestParseCategory(t *testing.T) {
	if c, err := parseCategory(" Food "); err != nil || c != models.CategoryFood {
		t.Errorf("parseCategory(Food) = %v, %v", c, err)
	}
	if c, err := parseCategory(""); err != nil || c != models.CategoryOther {
		t.Errorf("empty category = %v, %v", c, err)
	}
	if _, err := parseCategory("snacks"); err == nil {
		t.Error("unknown category accepted")
	}
}

func TestParseCurrency(t *testing.T) {
	if c, err := parseCurrency("hkd"); err != nil || c != models.CurrencyHKD {
		t.Errorf("parseCurrency(hkd) = %v, %v", c, err)
	}
	if c, err := parseCurrency(" USD "); err != nil || c != models.CurrencyUSD {
		t.Errorf("parseCurrency(USD) = %v, %v", c, err)
	}
	if _, err := parseCurrency("EUR"); err == nil {
		t.Error("unknown currency accepted")
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := parseDirection("Up"); err != nil || d != plan.MoveUp {
		t.Errorf("parseDirection(Up) = %v, %v", d, err)
	}
	if d, err := parseDirection("down"); err != nil || d != plan.MoveDown {
		t.Errorf("parseDirection(down) = %v, %v", d, err)
	}
	if _, err := parseDirection("sideways"); err == nil {
		t.Error("unknown direction accepted")
	}
}

func TestEventPricing(t *testing.T) {
	tests := []struct {
		name  string
		event models.Event
		want  string
	}{
		{"both", models.Event{PerPersonCost: 1180, MinimumCost: 140000}, "HK$1,180/person, min HK$140,000"},
		{"per person only", models.Event{PerPersonCost: 500}, "HK$500/person"},
		{"minimum only", models.Event{MinimumCost: 45000}, "min HK$45,000"},
		{"free", models.Event{}, "free"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eventPricing(tt.event); got != tt.want {
				t.Errorf("eventPricing = %q, want %q", got, tt.want)
			}
		})
	}
}
