package cli

import (
	"fmt"

	"github.com/ewanmak/junket/internal/budget"
)

type EventListCmd struct {
	Category string `short:"c" help:"Only show events in this category."`
}

func (c *EventListCmd) Run(ctx *Context) error {
	session, err := ctx.loadSession()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()
	p := session.Plan()

	if len(p.Events) == 0 {
		fmt.Println("No events in the library")
		return nil
	}

	fmt.Println("Event library:")
	for _, e := range p.Events {
		if c.Category != "" && string(e.Category) != c.Category {
			continue
		}

		fmt.Printf("  [%d] %s - %s (%s)\n", e.ID, e.Name, eventPricing(e), e.Category.Label())
		if e.Duration != "" {
			fmt.Printf("      Duration: %s\n", e.Duration)
		}
		if e.Description != "" {
			fmt.Printf("      %s\n", e.Description)
		}
		fmt.Printf("      Cost for %d attendees: %s\n", p.Attendees, formatAmount(budget.EventCost(e, p.Attendees), p.Currency))
	}

	return nil
}
