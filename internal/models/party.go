package models

import "strings"

// Address is the structured address block of a party.
type Address struct {
	StreetLines []string `json:"street_lines,omitempty" yaml:"street_lines,omitempty"`
	City        string   `json:"city" yaml:"city"`
	PostalCode  string   `json:"postal_code" yaml:"postal_code"`
	CountryCode string   `json:"country_code" yaml:"country_code"`
	Region      string   `json:"region" yaml:"region"`
}

// Contact holds the CTA/COM details attached to a party group.
type Contact struct {
	Name  string `json:"name" yaml:"name"`
	Phone string `json:"phone" yaml:"phone"`
	Email string `json:"email" yaml:"email"`
	Fax   string `json:"fax" yaml:"fax"`
}

// Party is one NAD segment group: the party proper plus any contact
// segments that followed it before the group closed.
type Party struct {
	Role    string  `json:"role" yaml:"role"`
	ID      string  `json:"id" yaml:"id"`
	IDType  string  `json:"id_type" yaml:"id_type"`
	Name    string  `json:"name" yaml:"name"`
	Address Address `json:"address" yaml:"address"`
	Contact Contact `json:"contact" yaml:"contact"`
}

// partyRoleLabels maps NAD role qualifiers to human-readable labels.
var partyRoleLabels = map[string]string{
	"BY": "Buyer",
	"SU": "Supplier",
	"SE": "Seller",
	"DP": "Delivery party",
	"IV": "Invoicee",
	"CN": "Consignee",
	"CO": "Corporate office",
	"MR": "Message recipient",
	"MS": "Message sender",
	"PE": "Payee",
	"PR": "Payer",
	"ST": "Ship to",
	"UC": "Ultimate consignee",
}

// RoleLabel returns a human-readable label for the party role, falling
// back to the raw qualifier for codes outside the known set.
func (p Party) RoleLabel() string {
	if label, ok := partyRoleLabels[strings.ToUpper(p.Role)]; ok {
		return label
	}
	return p.Role
}

// DisplayName returns the party name, or its identifier when no name
// was present in the NAD segment.
func (p Party) DisplayName() string {
	if strings.TrimSpace(p.Name) != "" {
		return p.Name
	}
	return p.ID
}
