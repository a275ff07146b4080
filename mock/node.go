package mock

import "github.com/globality-corp/deboiler"

var _ deboiler.Node = (*Node)(nil)

// Node is a mock implementation of deboiler.Node.
type Node struct {
	TagNameFn         func() string
	CanonicalStringFn func() string
	RemoveFn          func()
}

func (n *Node) TagName() string { return n.TagNameFn() }

func (n *Node) CanonicalString() string { return n.CanonicalStringFn() }

func (n *Node) Remove() {
	if n.RemoveFn != nil {
		n.RemoveFn()
	}
}
