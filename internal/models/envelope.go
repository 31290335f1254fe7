package models

import "time"

// Interchange is the parsed UNB interchange header. It is nil on the
// Analysis when the document carries no UNB segment.
type Interchange struct {
	SyntaxIdentifier     string     `json:"syntax_identifier" yaml:"syntax_identifier"`
	SyntaxVersion        string     `json:"syntax_version" yaml:"syntax_version"`
	Sender               string     `json:"sender" yaml:"sender"`
	Receiver             string     `json:"receiver" yaml:"receiver"`
	ControlReference     string     `json:"control_reference" yaml:"control_reference"`
	RecipientReference   string     `json:"recipient_reference,omitempty" yaml:"recipient_reference,omitempty"`
	ApplicationReference string     `json:"application_reference,omitempty" yaml:"application_reference,omitempty"`
	Timestamp            *time.Time `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	TestIndicator        bool       `json:"test_indicator" yaml:"test_indicator"`
}

// MessageHeader is the parsed UNH message header of the first message
// in the interchange. Nil on the Analysis when no UNH segment exists.
type MessageHeader struct {
	Reference         string `json:"reference" yaml:"reference"`
	MessageType       string `json:"message_type" yaml:"message_type"`
	Version           string `json:"version" yaml:"version"`
	Release           string `json:"release" yaml:"release"`
	ControllingAgency string `json:"controlling_agency" yaml:"controlling_agency"`
	AssociationCode   string `json:"association_code" yaml:"association_code"`
}
