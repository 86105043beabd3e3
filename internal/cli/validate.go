package cli

import (
	"fmt"

	"github.com/ewanmak/junket/internal/validation"
)

type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	session, err := ctx.loadSession()
	if err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	fmt.Println("Validating plan...")
	validator := validation.New()
	result := validator.ValidatePlan(session.Plan())

	fmt.Println()
	fmt.Println(result.FormatReport())

	// Conflicts are reported, not fatal.
	return nil
}
