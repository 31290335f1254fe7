package models

// Service segment tags of the EDIFACT envelope.
const (
	TagUNA = "UNA" // service string advice (delimiter declaration)
	TagUNB = "UNB" // interchange header
	TagUNZ = "UNZ" // interchange trailer
	TagUNH = "UNH" // message header
	TagUNT = "UNT" // message trailer
	TagUNS = "UNS" // section control
	TagBGM = "BGM" // beginning of message
)

// Frequently referenced business segment tags.
const (
	TagDTM = "DTM" // date/time/period
	TagRFF = "RFF" // reference
	TagNAD = "NAD" // name and address
	TagCTA = "CTA" // contact information
	TagCOM = "COM" // communication contact
	TagCUX = "CUX" // currencies
	TagMOA = "MOA" // monetary amount
	TagLIN = "LIN" // line item
)

// KnownSegmentTags is the advisory allow-list used by the structural
// validator; tags outside it are flagged as informational findings, not
// errors.
var KnownSegmentTags = map[string]bool{
	TagUNA: true, TagUNB: true, TagUNZ: true, TagUNH: true, TagUNT: true,
	TagUNS: true, TagBGM: true, TagDTM: true, TagRFF: true, TagNAD: true,
	TagCTA: true, TagCOM: true, TagCUX: true, TagMOA: true, TagLIN: true,
	"PIA": true, "IMD": true, "QTY": true, "PRI": true, "TAX": true,
	"ALC": true, "PCD": true, "CNT": true, "FTX": true, "FII": true,
	"PAT": true, "TDT": true, "TOD": true, "LOC": true, "MEA": true,
	"PAC": true, "GIN": true, "DOC": true, "PAI": true, "ALI": true,
}

// RequiredSegments lists the envelope segments every supported standard
// expects to see at least once.
var RequiredSegments = []string{TagUNB, TagUNH, TagBGM, TagUNT, TagUNZ}
