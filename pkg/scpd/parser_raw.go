package scpd

import "encoding/xml"

// Raw XML parsing structures for UPnP SCPD documents.
// These map directly to XML and are converted to domain models.
// encoding/xml ignores elements not listed here; SCPD documents from real
// devices routinely carry vendor extensions.

// rawSCPD is the root scpd element.
type rawSCPD struct {
	XMLName        xml.Name           `xml:"scpd"`
	SpecVersion    *rawSpecVersion    `xml:"specVersion"`
	StateVariables []rawStateVariable `xml:"serviceStateTable>stateVariable"`
	Actions        []rawAction        `xml:"actionList>action"`
}

// rawSpecVersion represents the specVersion element.
type rawSpecVersion struct {
	Major int `xml:"major"`
	Minor int `xml:"minor"`
}

// rawAction represents an actionList entry. The argumentList element is
// optional; actions without one simply take no arguments.
type rawAction struct {
	Name      string        `xml:"name"`
	Arguments []rawArgument `xml:"argumentList>argument"`
}

// rawArgument represents an argumentList entry.
type rawArgument struct {
	Name                 string `xml:"name"`
	Direction            string `xml:"direction"`
	RelatedStateVariable string `xml:"relatedStateVariable"`
}

// rawStateVariable represents a serviceStateTable entry. sendEvents and
// multicast are attributes per the UPnP device architecture; both are
// optional with documented defaults. The optional element is a pure
// presence marker, so it is decoded into a pointer whose nilness is the
// only information kept.
type rawStateVariable struct {
	SendEvents        *string               `xml:"sendEvents,attr"`
	Multicast         *string               `xml:"multicast,attr"`
	Name              string                `xml:"name"`
	DataType          string                `xml:"dataType"`
	DefaultValue      *string               `xml:"defaultValue"`
	AllowedValueList  *rawAllowedValueList  `xml:"allowedValueList"`
	AllowedValueRange *rawAllowedValueRange `xml:"allowedValueRange"`
	Optional          *rawOptional          `xml:"optional"`
}

// rawOptional marks an implementation-optional state variable. Presence,
// not content, carries the meaning.
type rawOptional struct{}

// rawAllowedValueList represents the allowedValueList element.
type rawAllowedValueList struct {
	Values []string `xml:"allowedValue"`
}

// rawAllowedValueRange represents the allowedValueRange element. Sub-fields
// stay pointers so an omitted field is distinguishable from an explicit
// value and can take its documented default.
type rawAllowedValueRange struct {
	Minimum *int32 `xml:"minimum"`
	Maximum *int32 `xml:"maximum"`
	Step    *int32 `xml:"step"`
}
