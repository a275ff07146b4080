package main

import (
	"github.com/globality-corp/deboiler"
	"github.com/globality-corp/deboiler/htmldom"
	"github.com/globality-corp/deboiler/jsonl"
)

func (f *datasetFlags) open() (*jsonl.Dataset, error) {
	return jsonl.Open(f.Dataset, jsonl.Options{
		URLKey:         f.URLKey,
		ContentKey:     f.ContentKey,
		StatusKey:      f.StatusKey,
		ContentTypeKey: f.ContentTypeKey,
	})
}

func (f *fitFlags) config(deps *Dependencies, markdown bool) deboiler.Config {
	mode := deboiler.ModeMemory
	workers := f.Workers
	if f.Performance {
		mode = deboiler.ModePerformance
		workers = 1
	}

	var converter deboiler.Converter
	if markdown {
		converter = deps.Converter
	}

	return deboiler.Config{
		NumWorkers:    workers,
		OperationMode: mode,
		Domain:        f.Domain,
		IoUMax:        f.IoUMax,
		MinOccurrence: f.MinOccurrence,
		Parser:        htmldom.New(),
		Converter:     converter,
	}
}
