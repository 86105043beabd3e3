package cli

import (
	"fmt"
)

type DayAddCmd struct{}

func (c *DayAddCmd) Run(ctx *Context) error {
	session, err := ctx.loadSession()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	day := session.AddDay()
	if err := session.Flush(ctx.Store); err != nil {
		return err
	}

	fmt.Printf("Added %s (%s)\n", day.Label, day.ID)
	return nil
}

type DayRemoveCmd struct {
	Day string `arg:"" help:"Day slug to remove (e.g. day3)."`
}

func (c *DayRemoveCmd) Run(ctx *Context) error {
	session, err := ctx.loadSession()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	p := session.Plan()
	day, ok := p.DayByID(c.Day)
	if !ok {
		return fmt.Errorf("no day found with id %q", c.Day)
	}
	if len(p.Days) == 1 {
		return fmt.Errorf("cannot remove the last remaining day")
	}

	session.RemoveDay(c.Day)
	if err := session.Flush(ctx.Store); err != nil {
		return err
	}

	fmt.Printf("Removed %s and its schedule\n", day.Label)
	return nil
}

type DayNotesCmd struct {
	Day   string `arg:"" help:"Day slug (e.g. day2)."`
	Notes string `arg:"" help:"Free-text itinerary summary."`
}

func (c *DayNotesCmd) Run(ctx *Context) error {
	session, err := ctx.loadSession()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	if _, ok := session.Plan().DayByID(c.Day); !ok {
		return fmt.Errorf("no day found with id %q", c.Day)
	}

	session.SetDayNotes(c.Day, c.Notes)
	if err := session.Flush(ctx.Store); err != nil {
		return err
	}

	fmt.Printf("Updated notes for %s\n", c.Day)
	return nil
}
