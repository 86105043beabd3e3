package cli

import (
	"fmt"
)

type EventDeleteCmd struct {
	ID int `arg:"" help:"Catalog id of the event to delete."`
}

func (c *EventDeleteCmd) Run(ctx *Context) error {
	session, err := ctx.loadSession()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	event, ok := session.Plan().EventByID(c.ID)
	if !ok {
		return fmt.Errorf("no event found with id %d", c.ID)
	}

	session.DeleteEvent(c.ID)
	if err := session.Flush(ctx.Store); err != nil {
		return err
	}

	fmt.Printf("Deleted event %q and removed it from every day\n", event.Name)
	return nil
}
