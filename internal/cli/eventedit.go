package cli

import (
	"fmt"
)

type EventEditCmd struct {
	ID          int      `arg:"" help:"Catalog id of the event to edit."`
	Name        *string  `help:"New name."`
	PerPerson   *float64 `short:"p" help:"New per-person cost in HKD."`
	Minimum     *float64 `short:"m" help:"New minimum spend in HKD."`
	Duration    *string  `short:"d" help:"New duration label."`
	Category    *string  `short:"c" help:"New category."`
	Description *string  `help:"New description."`
}

func (c *EventEditCmd) Run(ctx *Context) error {
	session, err := ctx.loadSession()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	event, ok := session.Plan().EventByID(c.ID)
	if !ok {
		return fmt.Errorf("no event found with id %d", c.ID)
	}

	if c.Name != nil {
		event.Name = *c.Name
	}
	if c.Description != nil {
		event.Description = *c.Description
	}
	if c.Duration != nil {
		event.Duration = *c.Duration
	}
	if c.PerPerson != nil {
		if *c.PerPerson < 0 {
			return fmt.Errorf("per-person cost must be non-negative")
		}
		event.PerPersonCost = *c.PerPerson
	}
	if c.Minimum != nil {
		if *c.Minimum < 0 {
			return fmt.Errorf("minimum cost must be non-negative")
		}
		event.MinimumCost = *c.Minimum
	}
	if c.Category != nil {
		category, err := parseCategory(*c.Category)
		if err != nil {
			return err
		}
		event.Category = category
	}

	session.UpdateEvent(event)
	if err := session.Flush(ctx.Store); err != nil {
		return err
	}

	fmt.Printf("Updated event: %s (ID: %d)\n", event.Name, event.ID)
	fmt.Println("Note: copies already scheduled on days keep their old values.")
	return nil
}
