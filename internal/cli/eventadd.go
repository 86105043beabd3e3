package cli

import (
	"fmt"

	"github.com/ewanmak/junket/internal/models"
)

type EventAddCmd struct {
	Name        string  `arg:"" help:"Event name."`
	PerPerson   float64 `short:"p" help:"Per-person cost in HKD." default:"0"`
	Minimum     float64 `short:"m" help:"Minimum contractual spend in HKD." default:"0"`
	Duration    string  `short:"d" help:"Free-text duration label (e.g. '3 hours', 'Dinner')."`
	Category    string  `short:"c" help:"Category (venue|food|travel|entertainment|accommodation|other)." default:"other"`
	Description string  `help:"Description."`
}

func (c *EventAddCmd) Validate() error {
	if c.PerPerson < 0 || c.Minimum < 0 {
		return fmt.Errorf("costs must be non-negative")
	}
	return nil
}

func (c *EventAddCmd) Run(ctx *Context) error {
	session, err := ctx.loadSession()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	category, err := parseCategory(c.Category)
	if err != nil {
		return err
	}

	added := session.AddEvent(models.Event{
		Name:          c.Name,
		Description:   c.Description,
		Duration:      c.Duration,
		PerPersonCost: c.PerPerson,
		MinimumCost:   c.Minimum,
		Category:      category,
	})

	if err := session.Flush(ctx.Store); err != nil {
		return err
	}

	fmt.Printf("Added event: %s (ID: %d)\n", added.Name, added.ID)
	return nil
}
