package cli

import (
	"fmt"

	"github.com/ewanmak/junket/internal/budget"
)

type ShowCmd struct {
	Day string `arg:"" optional:"" help:"Day slug to show (e.g. day2). Shows every day when omitted."`
}

func (c *ShowCmd) Run(ctx *Context) error {
	session, err := ctx.loadSession()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()
	p := session.Plan()

	if c.Day != "" {
		if _, ok := p.DayByID(c.Day); !ok {
			return fmt.Errorf("no day found with id %q", c.Day)
		}
	}

	fmt.Printf("%s\n", p.Title)
	if p.Description != "" {
		fmt.Printf("%s\n", p.Description)
	}
	fmt.Printf("Attendees: %d | Currency: %s\n\n", p.Attendees, p.Currency)

	for _, day := range p.Days {
		if c.Day != "" && day.ID != c.Day {
			continue
		}

		fmt.Printf("%s (%s)\n", day.Label, day.ID)
		if day.Notes != "" {
			fmt.Printf("  Notes: %s\n", day.Notes)
		}

		items := p.Schedule[day.ID]
		if len(items) == 0 {
			fmt.Println("  No events scheduled")
		} else {
			for i, e := range items {
				cost := budget.EventCost(e, p.Attendees)
				line := fmt.Sprintf("  %d. %-40s %s", i+1, e.Name, formatAmount(cost, p.Currency))
				if e.Duration != "" {
					line += fmt.Sprintf("  (%s)", e.Duration)
				}
				fmt.Println(line)
			}
			fmt.Printf("  Day total: %s\n", formatAmount(budget.DayTotal(p, day.ID), p.Currency))
		}
		fmt.Println()
	}

	return nil
}
