package main

import (
	"fmt"

	"github.com/globality-corp/deboiler"
)

// Run executes the "fit" command: learn a domain's boilerplate signatures
// from a dataset and persist them via the configured SignatureStore.
func (c *FitCmd) Run(deps *Dependencies) error {
	ds, err := c.open()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deboiler.ErrorMessage(err))
		return err
	}

	d, err := deboiler.New(c.config(deps, false))
	if err != nil {
		return err
	}

	if err := d.Fit(deps.Ctx, ds); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deboiler.ErrorMessage(err))
		return err
	}

	if err := d.SaveBoilerplate(deps.Ctx, deps.Store); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deboiler.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "learned %d boilerplate signatures for %s\n", d.Boilerplate().Len(), c.Domain)
	return nil
}
