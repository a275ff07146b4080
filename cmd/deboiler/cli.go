package main

import (
	"context"
	"io"

	"github.com/globality-corp/deboiler"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Store     deboiler.SignatureStore
	Converter deboiler.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Fit       FitCmd       `cmd:"" help:"Learn a domain's boilerplate signatures and save them"`
	Transform TransformCmd `cmd:"" help:"Strip saved boilerplate from a dataset and write cleaned pages"`
	Clean     CleanCmd     `cmd:"" help:"Fit and Transform a dataset in one pass, without persisting signatures"`
}

// datasetFlags are the flags shared by every subcommand that reads a
// JSON-lines dataset.
type datasetFlags struct {
	Dataset        string `arg:"" help:"Path to a JSON-lines crawl export"`
	URLKey         string `default:"url" help:"Field name holding each record's URL"`
	ContentKey     string `default:"content" help:"Field name holding each record's raw HTML"`
	StatusKey      string `help:"Field name holding each record's HTTP status; rejects non-2xx records"`
	ContentTypeKey string `help:"Field name holding each record's content type; rejects non-text/html records"`
}

// fitFlags are the flags controlling the Fit pass.
type fitFlags struct {
	Domain        string  `arg:"" help:"Domain name this boilerplate set is saved/loaded under"`
	IoUMax        float64 `default:"0.9" help:"Near-duplicate safeguard threshold"`
	MinOccurrence int     `default:"1" help:"Adjacent pairs a signature must be shared between to count as boilerplate"`
	Workers       int     `default:"1" short:"w" help:"Worker pool size (ModeMemory only)"`
	Performance   bool    `help:"Cache parsed DOMs during Fit for faster Transform (forces one worker)"`
}

// FitCmd is the "fit" subcommand: learn and persist a domain's boilerplate.
type FitCmd struct {
	datasetFlags
	fitFlags
}

// TransformCmd is the "transform" subcommand: clean a dataset using a
// previously saved boilerplate set.
type TransformCmd struct {
	datasetFlags
	Domain    string `arg:"" help:"Domain name the boilerplate set was saved under"`
	OutputDir string `arg:"" help:"Directory cleaned pages are written to"`
	Markdown  bool   `help:"Render CleanedPage.Markdown via the configured Converter"`
}

// CleanCmd is the "clean" subcommand: Fit then Transform in one process,
// useful for a one-off domain that will not be revisited.
type CleanCmd struct {
	datasetFlags
	fitFlags
	OutputDir string `arg:"" help:"Directory cleaned pages are written to"`
	Markdown  bool   `help:"Render CleanedPage.Markdown via the configured Converter"`
}
