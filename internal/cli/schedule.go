package cli

import (
	"fmt"
)

type ScheduleAddCmd struct {
	Day   string `arg:"" help:"Day slug (e.g. day2)."`
	Event int    `arg:"" help:"Catalog id of the event to schedule."`
}

func (c *ScheduleAddCmd) Run(ctx *Context) error {
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
	event, ok := p.EventByID(c.Event)
	if !ok {
		return fmt.Errorf("no event found with id %d", c.Event)
	}

	session.ScheduleEvent(c.Day, c.Event)
	if err := session.Flush(ctx.Store); err != nil {
		return err
	}

	fmt.Printf("Scheduled %q on %s\n", event.Name, day.Label)
	return nil
}

type ScheduleMoveCmd struct {
	Day       string `arg:"" help:"Day slug."`
	Index     int    `arg:"" help:"1-based position of the item to move."`
	Direction string `arg:"" help:"up or down."`
}

func (c *ScheduleMoveCmd) Run(ctx *Context) error {
	session, err := ctx.loadSession()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	dir, err := parseDirection(c.Direction)
	if err != nil {
		return err
	}
	items := session.Plan().Schedule[c.Day]
	if c.Index < 1 || c.Index > len(items) {
		return fmt.Errorf("no scheduled item at position %d on %s", c.Index, c.Day)
	}

	session.MoveScheduled(c.Day, c.Index-1, dir)
	moved := session.Dirty()
	if err := session.Flush(ctx.Store); err != nil {
		return err
	}

	if moved {
		fmt.Printf("Moved item %d %s on %s\n", c.Index, c.Direction, c.Day)
	} else {
		fmt.Printf("Item %d cannot move %s any further\n", c.Index, c.Direction)
	}
	return nil
}

type ScheduleRemoveCmd struct {
	Day   string `arg:"" help:"Day slug."`
	Index int    `arg:"" help:"1-based position of the item to remove."`
}

func (c *ScheduleRemoveCmd) Run(ctx *Context) error {
	session, err := ctx.loadSession()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	items := session.Plan().Schedule[c.Day]
	if c.Index < 1 || c.Index > len(items) {
		return fmt.Errorf("no scheduled item at position %d on %s", c.Index, c.Day)
	}
	name := items[c.Index-1].Name

	session.UnscheduleAt(c.Day, c.Index-1)
	if err := session.Flush(ctx.Store); err != nil {
		return err
	}

	fmt.Printf("Removed %q from %s\n", name, c.Day)
	return nil
}
