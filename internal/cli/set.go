package cli

import (
	"fmt"
)

type SetTitleCmd struct {
	Title string `arg:"" help:"Plan title."`
}

func (c *SetTitleCmd) Run(ctx *Context) error {
	session, err := ctx.loadSession()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	session.SetTitle(c.Title)
	if err := session.Flush(ctx.Store); err != nil {
		return err
	}

	fmt.Printf("Title set to %q\n", c.Title)
	return nil
}

type SetDescriptionCmd struct {
	Description string `arg:"" help:"Plan description."`
}

func (c *SetDescriptionCmd) Run(ctx *Context) error {
	session, err := ctx.loadSession()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	session.SetDescription(c.Description)
	if err := session.Flush(ctx.Store); err != nil {
		return err
	}

	fmt.Println("Description updated")
	return nil
}

type SetAttendeesCmd struct {
	Count int `arg:"" help:"Attendee headcount (at least 1)."`
}

func (c *SetAttendeesCmd) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("attendee count must be at least 1")
	}
	return nil
}

func (c *SetAttendeesCmd) Run(ctx *Context) error {
	session, err := ctx.loadSession()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	session.SetAttendees(c.Count)
	if err := session.Flush(ctx.Store); err != nil {
		return err
	}

	fmt.Printf("Attendees set to %d\n", c.Count)
	return nil
}

type SetCurrencyCmd struct {
	Currency string `arg:"" help:"Display currency (HKD or USD)."`
}

func (c *SetCurrencyCmd) Run(ctx *Context) error {
	session, err := ctx.loadSession()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	currency, err := parseCurrency(c.Currency)
	if err != nil {
		return err
	}

	session.SetCurrency(currency)
	if err := session.Flush(ctx.Store); err != nil {
		return err
	}

	fmt.Printf("Currency set to %s\n", currency)
	return nil
}
