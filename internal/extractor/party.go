package extractor

import (
	"fjacquet/edi-analyze/internal/models"
	"fjacquet/edi-analyze/internal/textutils"
)

// partyContinuationTags are the tags that may appear inside an open
// NAD group without closing it. Any other tag finalizes the group.
var partyContinuationTags = map[string]bool{
	models.TagCTA: true,
	models.TagCOM: true,
	models.TagRFF: true,
}

// COM communication channel qualifiers.
const (
	comChannelPhone = "TE"
	comChannelEmail = "EM"
	comChannelFax   = "FX"
)

// partyScanner is the small state machine behind the party grouping
// scan. It is either closed (no open party) or open with a party being
// filled; the transition rules live in observe.
type partyScanner struct {
	current *models.Party
	parties []models.Party
}

// ExtractParties infers NAD segment groups from tag adjacency: an NAD
// opens a group, CTA/COM enrich it, RFF is tolerated inside it, and any
// other tag (or the end of the document) closes it.
func ExtractParties(segments []models.Segment) []models.Party {
	var scanner partyScanner
	for _, seg := range segments {
		scanner.observe(seg)
	}
	scanner.finalize()
	return scanner.parties
}

func (s *partyScanner) observe(seg models.Segment) {
	switch seg.Tag {
	case models.TagNAD:
		s.finalize()
		s.current = newParty(seg)
	case models.TagCTA:
		if s.current != nil {
			s.current.Contact.Name = textutils.JoinNonEmpty(seg.Field(1).Components, " ")
		}
	case models.TagCOM:
		if s.current != nil {
			s.applyContactChannel(seg)
		}
	default:
		if s.current != nil && !partyContinuationTags[seg.Tag] {
			s.finalize()
		}
	}
}

// finalize pushes the open party, if any, and returns the scanner to
// the closed state.
func (s *partyScanner) finalize() {
	if s.current != nil {
		s.parties = append(s.parties, *s.current)
		s.current = nil
	}
}

// applyContactChannel routes one COM occurrence by its channel code.
// Unrecognized codes are ignored.
func (s *partyScanner) applyContactChannel(seg models.Segment) {
	value := seg.Component(0, 0)
	switch seg.Component(0, 1) {
	case comChannelPhone:
		s.current.Contact.Phone = value
	case comChannelEmail:
		s.current.Contact.Email = value
	case comChannelFax:
		s.current.Contact.Fax = value
	}
}

// newParty builds a Party from the positional data of one NAD segment.
func newParty(seg models.Segment) *models.Party {
	return &models.Party{
		Role:   seg.Field(0).Value,
		ID:     seg.Component(1, 0),
		IDType: seg.Component(1, 2),
		Name:   textutils.JoinNonEmpty(seg.Field(3).Components, " "),
		Address: models.Address{
			StreetLines: streetLines(seg.Field(4).Components),
			City:        seg.Component(5, 0),
			PostalCode:  seg.Component(7, 0),
			CountryCode: seg.Component(8, 0),
		},
	}
}

// streetLines keeps the non-empty address components as separate lines.
func streetLines(components []string) []string {
	var lines []string
	for _, c := range components {
		if c != "" {
			lines = append(lines, c)
		}
	}
	return lines
}
