package mock

import "github.com/globality-corp/deboiler"

var _ deboiler.Document = (*Document)(nil)

// Document is a mock implementation of deboiler.Document.
type Document struct {
	RootFn              func() deboiler.Node
	CandidateSubtreesFn func(tags map[string]struct{}) []deboiler.Node
	SerializeFn         func() string
	TextFn              func() string
	TitleFn             func() string
	HeadingsFn          func() string
	ListsFn             func() string
	BreadcrumbsFn       func() string
	CloneFn             func() deboiler.Document
}

func (d *Document) Root() deboiler.Node { return d.RootFn() }

func (d *Document) CandidateSubtrees(tags map[string]struct{}) []deboiler.Node {
	return d.CandidateSubtreesFn(tags)
}

func (d *Document) Serialize() string { return d.SerializeFn() }

func (d *Document) Text() string { return d.TextFn() }

func (d *Document) Title() string { return d.TitleFn() }

func (d *Document) Headings() string { return d.HeadingsFn() }

func (d *Document) Lists() string { return d.ListsFn() }

func (d *Document) Breadcrumbs() string { return d.BreadcrumbsFn() }

func (d *Document) Clone() deboiler.Document { return d.CloneFn() }
