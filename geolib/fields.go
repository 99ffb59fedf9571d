package geolib

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canonical field names.
const (
	FieldIP            = "ip"
	FieldHost          = "host"
	FieldRDNS          = "rdns"
	FieldASN           = "asn"
	FieldISP           = "isp"
	FieldOrg           = "org"
	FieldCountry       = "country"
	FieldCountryCode   = "country_code"
	FieldRegion        = "region"
	FieldRegionCode    = "region_code"
	FieldCity          = "city"
	FieldPostalCode    = "postal_code"
	FieldContinentName = "continent_name"
	FieldContinentCode = "continent_code"
	FieldLatitude      = "latitude"
	FieldLongitude     = "longitude"
	FieldMetroCode     = "metro_code"
	FieldTimezone      = "timezone"
	FieldDatetime      = "datetime"
)

// DisplayOrder defines a sequence of fields in rendered output. Fields
// which are not listed here are kept in a Record but never rendered.
var DisplayOrder = []string{
	FieldIP,
	FieldHost,
	FieldRDNS,
	FieldASN,
	FieldISP,
	FieldOrg,
	FieldCountry,
	FieldCountryCode,
	FieldRegion,
	FieldRegionCode,
	FieldCity,
	FieldPostalCode,
	FieldContinentName,
	FieldContinentCode,
	FieldLatitude,
	FieldLongitude,
	FieldMetroCode,
	FieldTimezone,
	FieldDatetime,
}

// keys are lowercased provider field names
var fieldMapping = map[string]string{
	"query":         FieldIP,
	"hostname":      FieldRDNS,
	"as":            FieldASN,
	"country_name":  FieldCountry,
	"countrycode":   FieldCountryCode,
	"region_name":   FieldRegion,
	"regionname":    FieldRegion,
	"zip":           FieldPostalCode,
	"postal":        FieldPostalCode,
	"lat":           FieldLatitude,
	"lon":           FieldLongitude,
	"continent":     FieldContinentName,
	"continentcode": FieldContinentCode,
	"time_zone":     FieldTimezone,
}

var labelOverrides = map[string]string{
	FieldMetroCode:     "Metro Code",
	FieldContinentName: "Continent Name",
	FieldContinentCode: "Continent Code",
}

var labelCaser = cases.Title(language.English)

// CanonicalName maps a provider field name to a canonical one. Unknown
// names are returned lowercased.
func CanonicalName(name string) string {
	name = strings.ToLower(name)

	if canonical, ok := fieldMapping[name]; ok {
		return canonical
	}

	return name
}

// Label returns a display label for a canonical field name.
func Label(name string) string {
	if label, ok := labelOverrides[name]; ok {
		return label
	}

	return labelCaser.String(strings.ReplaceAll(name, "_", " "))
}
