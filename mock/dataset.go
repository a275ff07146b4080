package mock

import "github.com/globality-corp/deboiler"

var _ deboiler.Dataset = (*Dataset)(nil)

// Dataset is a mock implementation of deboiler.Dataset.
type Dataset struct {
	LenFn  func() int
	GetFn  func(i int) (string, []byte, error)
	URLsFn func() []string
}

func (d *Dataset) Len() int { return d.LenFn() }

func (d *Dataset) Get(i int) (string, []byte, error) { return d.GetFn(i) }

func (d *Dataset) URLs() []string { return d.URLsFn() }
