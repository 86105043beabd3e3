package cli

import (
	"fmt"

	"github.com/ewanmak/junket/internal/budget"
	"github.com/ewanmak/junket/internal/models"
)

type TotalsCmd struct{}

func (c *TotalsCmd) Run(ctx *Context) error {
	session, err := ctx.loadSession()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()
	p := session.Plan()

	total := budget.GrandTotal(p)

	fmt.Printf("Total budget:     %s (≈ %s)\n",
		budget.Format(total, models.CurrencyHKD),
		budget.Format(budget.ToUSD(total), models.CurrencyUSD))
	fmt.Printf("Per person:       %s (≈ %s)\n",
		budget.Format(budget.PerPersonShare(p), models.CurrencyHKD),
		budget.Format(budget.ToUSD(budget.PerPersonShare(p)), models.CurrencyUSD))
	fmt.Printf("Events scheduled: %d\n\n", budget.ScheduledCount(p))

	for _, day := range p.Days {
		fmt.Printf("%-10s %s\n", day.Label, formatAmount(budget.DayTotal(p, day.ID), p.Currency))
	}

	return nil
}
