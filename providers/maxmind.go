package providers

import (
	"context"
	"fmt"
	"sync"

	"github.com/oschwald/maxminddb-golang"

	"github.com/9seconds/geolookup/geolib"
)

type maxmindLookupResult struct {
	City struct {
		Names struct {
			En string `maxminddb:"en"`
		} `maxminddb:"names"`
	} `maxminddb:"city"`
	Continent struct {
		Code  string `maxminddb:"code"`
		Names struct {
			En string `maxminddb:"en"`
		} `maxminddb:"names"`
	} `maxminddb:"continent"`
	Country struct {
		IsoCode string `maxminddb:"iso_code"`
		Names   struct {
			En string `maxminddb:"en"`
		} `maxminddb:"names"`
	} `maxminddb:"country"`
	Location struct {
		Latitude  float64 `maxminddb:"latitude"`
		Longitude float64 `maxminddb:"longitude"`
		MetroCode uint    `maxminddb:"metro_code"`
		TimeZone  string  `maxminddb:"time_zone"`
	} `maxminddb:"location"`
	Postal struct {
		Code string `maxminddb:"code"`
	} `maxminddb:"postal"`
	Subdivisions []struct {
		IsoCode string `maxminddb:"iso_code"`
		Names   struct {
			En string `maxminddb:"en"`
		} `maxminddb:"names"`
	} `maxminddb:"subdivisions"`
}

type maxmindProvider struct {
	dbReader     *maxminddb.Reader
	dbReaderLock sync.RWMutex
}

func (m *maxmindProvider) Name() string {
	return NameMaxmind
}

func (m *maxmindProvider) Title() string {
	return "MaxMind"
}

func (m *maxmindProvider) Shutdown() {
	m.dbReaderLock.Lock()
	defer m.dbReaderLock.Unlock()

	if m.dbReader != nil {
		m.dbReader.Close()
		m.dbReader = nil
	}
}

func (m *maxmindProvider) Lookup(_ context.Context, subject geolib.Subject) (geolib.RawResult, error) {
	m.dbReaderLock.RLock()
	defer m.dbReaderLock.RUnlock()

	if m.dbReader == nil {
		return nil, geolib.NewTransportError("", ErrDatabaseIsClosed)
	}

	record := maxmindLookupResult{}

	_, ok, err := m.dbReader.LookupNetwork(subject.IP(), &record)

	switch {
	case err != nil:
		return nil, geolib.NewParseError("cannot lookup this ip address", err)
	case !ok:
		return nil, geolib.NewParseError("", ErrNotFound)
	}

	rv := geolib.RawResult{
		geolib.FieldCity:          record.City.Names.En,
		geolib.FieldContinentCode: record.Continent.Code,
		geolib.FieldContinentName: record.Continent.Names.En,
		geolib.FieldCountryCode:   record.Country.IsoCode,
		"country_name":            record.Country.Names.En,
		geolib.FieldLatitude:      record.Location.Latitude,
		geolib.FieldLongitude:     record.Location.Longitude,
		geolib.FieldMetroCode:     record.Location.MetroCode,
		geolib.FieldTimezone:      record.Location.TimeZone,
		geolib.FieldPostalCode:    record.Postal.Code,
	}

	if len(record.Subdivisions) > 0 {
		rv[geolib.FieldRegionCode] = record.Subdivisions[0].IsoCode
		rv["region_name"] = record.Subdivisions[0].Names.En
	}

	return rv, nil
}

// NewMaxmind opens a local GeoIP2/GeoLite2 City database. Databases are
// not downloaded: a path to mmdb file is required.
func NewMaxmind(path string) (geolib.OfflineProvider, error) {
	if path == "" {
		return nil, ErrDatabasePathIsRequired
	}

	reader, err := maxminddb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize a reader of maxminddb: %w", err)
	}

	return &maxmindProvider{
		dbReader: reader,
	}, nil
}
