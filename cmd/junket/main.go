package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ewanmak/junket/internal/cli"
	"github.com/ewanmak/junket/internal/errors"
	"github.com/ewanmak/junket/internal/logger"
	"github.com/ewanmak/junket/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Plan data file path." type:"path" default:"~/.config/junket/plan.json"`
	Debug   bool   `help:"Enable debug logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize plan storage with the seed dataset."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Show   cli.ShowCmd   `cmd:"" help:"Show the itinerary with per-day costs."`
	Totals cli.TotalsCmd `cmd:"" help:"Show budget totals."`
	Event  struct {
		Add    cli.EventAddCmd    `cmd:"" help:"Add an event to the library."`
		Edit   cli.EventEditCmd   `cmd:"" help:"Edit a library event."`
		Delete cli.EventDeleteCmd `cmd:"" help:"Delete a library event everywhere."`
		List   cli.EventListCmd   `cmd:"" help:"List library events."`
	} `cmd:"" help:"Manage the event library."`
	Day struct {
		Add    cli.DayAddCmd    `cmd:"" help:"Append a day to the itinerary."`
		Remove cli.DayRemoveCmd `cmd:"" help:"Remove a day and its schedule."`
		Notes  cli.DayNotesCmd  `cmd:"" help:"Set a day's notes."`
	} `cmd:"" help:"Manage itinerary days."`
	Schedule struct {
		Add    cli.ScheduleAddCmd    `cmd:"" help:"Schedule a library event on a day."`
		Move   cli.ScheduleMoveCmd   `cmd:"" help:"Reorder a scheduled item."`
		Remove cli.ScheduleRemoveCmd `cmd:"" help:"Remove a scheduled item."`
	} `cmd:"" help:"Assign events to days."`
	Set struct {
		Title       cli.SetTitleCmd       `cmd:"" help:"Set the plan title."`
		Description cli.SetDescriptionCmd `cmd:"" help:"Set the plan description."`
		Attendees   cli.SetAttendeesCmd   `cmd:"" help:"Set the attendee headcount."`
		Currency    cli.SetCurrencyCmd    `cmd:"" help:"Set the display currency."`
	} `cmd:"" help:"Update plan settings."`
	Export struct {
		Csv  cli.ExportCSVCmd  `cmd:"" help:"Export the schedule as CSV."`
		Json cli.ExportJSONCmd `cmd:"" help:"Export the plan state as JSON."`
	} `cmd:"" help:"Export the plan."`
	Validate cli.ValidateCmd `cmd:"" help:"Check the plan for inconsistencies."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Back up the plan data file."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the data file from a backup."`
	} `cmd:"" help:"Manage data file backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("junket"),
		kong.Description("Event & travel budget planner"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:   CLI.Debug,
		DataDir: filepath.Dir(CLI.Data),
	}); err != nil {
		errors.Fatal(err)
	}

	// Select the storage backend by data file extension.
	var store storage.Provider
	if strings.HasSuffix(CLI.Data, ".db") {
		store = storage.NewSQLiteStore(CLI.Data)
	} else {
		store = storage.NewJSONStore(CLI.Data)
	}

	appCtx := &cli.Context{Store: store}
	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
