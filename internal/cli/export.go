package cli

import (
	"fmt"

	"github.com/ewanmak/junket/internal/export"
)

type ExportCSVCmd struct {
	Output string `short:"o" help:"Output path. Defaults to '<title>-schedule.csv' in the current directory."`
}

func (c *ExportCSVCmd) Run(ctx *Context) error {
	session, err := ctx.loadSession()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	path, err := export.WriteScheduleCSV(session.Plan(), c.Output)
	if err != nil {
		return err
	}

	fmt.Printf("Exported schedule to %s\n", path)
	return nil
}

type ExportJSONCmd struct {
	Output string `short:"o" help:"Output path. Defaults to '<title>-plan.json' in the current directory."`
}

func (c *ExportJSONCmd) Run(ctx *Context) error {
	session, err := ctx.loadSession()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	path, err := export.WritePlanJSON(session.Plan(), c.Output)
	if err != nil {
		return err
	}

	fmt.Printf("Exported plan to %s\n", path)
	return nil
}
