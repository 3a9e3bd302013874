package mock

import "github.com/fwojciec/shopgrid"

var _ shopgrid.SectionParser = (*SectionParser)(nil)

// SectionParser is a mock implementation of shopgrid.SectionParser.
type SectionParser struct {
	ParseSectionsFn func(html string) shopgrid.SectionMap
}

func (p *SectionParser) ParseSections(html string) shopgrid.SectionMap {
	return p.ParseSectionsFn(html)
}
