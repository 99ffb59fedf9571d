package geolib

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RawResult is a response of the provider with its own field names.
// Values are expected to be scalars: strings, numbers (json.Number or
// native), booleans or nil.
type RawResult map[string]interface{}

// Record is a merged result of many providers keyed by canonical field
// names. Only non-empty values are stored.
type Record map[string]string

// Merge folds a raw provider result into the record. Field names are
// mapped to canonical ones, empty values are skipped and a value which
// differs from already stored one overwrites it.
func (r Record) Merge(raw RawResult) {
	for key, value := range raw {
		str, ok := stringifyValue(value)
		if !ok {
			continue
		}

		name := CanonicalName(key)

		if current, ok := r[name]; ok && current == str {
			continue
		}

		r[name] = str
	}
}

// Cleanup is executed once all providers are merged. It removes org if
// it duplicates isp. Other values are kept as providers returned them.
func (r Record) Cleanup() {
	if isp, ok := r[FieldISP]; ok && isp == r[FieldOrg] {
		delete(r, FieldOrg)
	}
}

// FillCountryName sets a common country name if record has a known
// country code but no country. Existing values are never changed.
func (r Record) FillCountryName() {
	if _, ok := r[FieldCountry]; ok {
		return
	}

	if name := CountryName(r[FieldCountryCode]); name != "" {
		r[FieldCountry] = name
	}
}

// Copy returns a shallow copy of the record.
func (r Record) Copy() Record {
	rv := make(Record, len(r))

	for k, v := range r {
		rv[k] = v
	}

	return rv
}

// Merge is a functional form of Record.Merge.
func Merge(record Record, raw RawResult) Record {
	if record == nil {
		record = Record{}
	}

	record.Merge(raw)

	return record
}

func stringifyValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, strings.TrimSpace(v) != ""
	case json.Number:
		if f, err := v.Float64(); err == nil && f == 0 {
			return "", false
		}

		return v.String(), v.String() != ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), v != 0
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), v != 0
	case int:
		return strconv.Itoa(v), v != 0
	case int64:
		return strconv.FormatInt(v, 10), v != 0
	case uint:
		return strconv.FormatUint(uint64(v), 10), v != 0
	case uint64:
		return strconv.FormatUint(v, 10), v != 0
	case bool:
		return "true", v
	}

	return "", false
}
