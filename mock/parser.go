package mock

import "github.com/globality-corp/deboiler"

var _ deboiler.Parser = (*Parser)(nil)

// Parser is a mock implementation of deboiler.Parser.
type Parser struct {
	ParseFn func(rawHTML []byte) (deboiler.Document, error)
}

func (p *Parser) Parse(rawHTML []byte) (deboiler.Document, error) {
	return p.ParseFn(rawHTML)
}
