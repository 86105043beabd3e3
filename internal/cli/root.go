package cli

import (
	"fmt"
	"strings"

	"github.com/ewanmak/junket/internal/budget"
	"github.com/ewanmak/junket/internal/models"
	"github.com/ewanmak/junket/internal/plan"
	"github.com/ewanmak/junket/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// loadSession restores the persisted plan and wraps it in a session.
func (ctx *Context) loadSession() (*plan.Session, error) {
	p, err := ctx.Store.Load()
	if err != nil {
		return nil, err
	}
	return plan.NewSession(p), nil
}

// formatAmount renders an HKD-denominated amount in the plan's display
// currency.
func formatAmount(amount float64, c models.Currency) string {
	if c == models.CurrencyUSD {
		return budget.Format(budget.ToUSD(amount), models.CurrencyUSD)
	}
	return budget.Format(amount, models.CurrencyHKD)
}

func parseCategory(s string) (models.Category, error) {
	c := models.Category(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return models.CategoryOther, nil
	}
	for _, known := range models.KnownCategories {
		if c == known {
			return c, nil
		}
	}
	var names []string
	for _, known := range models.KnownCategories {
		names = append(names, string(known))
	}
	return "", fmt.Errorf("invalid category %q (expected one of %s)", s, strings.Join(names, "|"))
}

func parseCurrency(s string) (models.Currency, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HKD":
		return models.CurrencyHKD, nil
	case "USD":
		return models.CurrencyUSD, nil
	default:
		return "", fmt.Errorf("invalid currency %q (expected HKD or USD)", s)
	}
}

func parseDirection(s string) (plan.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return plan.MoveUp, nil
	case "down":
		return plan.MoveDown, nil
	default:
		return 0, fmt.Errorf("invalid direction %q (expected up or down)", s)
	}
}

// eventPricing renders the pricing rule of a catalog entry for listings.
func eventPricing(e models.Event) string {
	perPerson := ""
	if e.PerPersonCost > 0 {
		perPerson = fmt.Sprintf("%s/person", budget.Format(e.PerPersonCost, models.CurrencyHKD))
	}
	minimum := ""
	if e.MinimumCost > 0 {
		minimum = fmt.Sprintf("min %s", budget.Format(e.MinimumCost, models.CurrencyHKD))
	}
	switch {
	case perPerson != "" && minimum != "":
		return perPerson + ", " + minimum
	case perPerson != "":
		return perPerson
	case minimum != "":
		return minimum
	default:
		return "free"
	}
}
