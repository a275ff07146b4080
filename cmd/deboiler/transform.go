package main

import (
	"fmt"
	"path/filepath"

	"github.com/globality-corp/deboiler"
	"github.com/globality-corp/deboiler/fs"
	"github.com/globality-corp/deboiler/htmldom"
)

// Run executes the "transform" command: strip a previously saved
// boilerplate set from every page in the dataset and write the cleaned
// pages to OutputDir.
func (c *TransformCmd) Run(deps *Dependencies) error {
	ds, err := c.open()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deboiler.ErrorMessage(err))
		return err
	}

	var converter deboiler.Converter
	if c.Markdown {
		converter = deps.Converter
	}

	d, err := deboiler.New(deboiler.Config{
		Domain:    c.Domain,
		Parser:    htmldom.New(),
		Converter: converter,
	})
	if err != nil {
		return err
	}

	if err := d.LoadBoilerplate(deps.Ctx, deps.Store); err != nil {
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

	fmt.Fprintf(deps.Stdout, "cleaned %d pages into %s\n", n, c.OutputDir)
	return nil
}
