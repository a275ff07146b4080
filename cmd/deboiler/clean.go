package main

import (
	"fmt"
	"path/filepath"

	"github.com/globality-corp/deboiler"
	"github.com/globality-corp/deboiler/fs"
)

// Run executes the "clean" command: Fit and Transform a dataset in one
// process without persisting the learned signature set, for a domain that
// will not be revisited.
func (c *CleanCmd) Run(deps *Dependencies) error {
	ds, err := c.open()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deboiler.ErrorMessage(err))
		return err
	}

	d, err := deboiler.New(c.config(deps, c.Markdown))
	if err != nil {
		return err
	}

	if err := d.Fit(deps.Ctx, ds); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deboiler.ErrorMessage(err))
		return err
	}

	pages, err := d.Transform(deps.Ctx, ds)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deboiler.ErrorMessage(err))
		return err
	}

	outDir := filepath.Clean(c.OutputDir)
	store := fs.NewFileStore(filepath.Dir(outDir), filepath.Base(outDir))
	var n int
	for page := range pages {
		if err := store.Save(deps.Ctx, page); err != nil {
			_ = store.Abort()
			return err
		}
		n++
	}
	if err := store.Commit(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "learned %d boilerplate signatures, cleaned %d pages into %s\n",
		d.Boilerplate().Len(), n, c.OutputDir)
	return nil
}
