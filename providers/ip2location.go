package providers

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ip2location/ip2location-go/v9"

	"github.com/9seconds/geolookup/geolib"
)

// LITE databases fill unsupported fields with this text.
const ip2locationUnavailablePrefix = "This parameter is unavailable"

type ip2locationProvider struct {
	db     *ip2location.DB
	dbLock sync.RWMutex
}

func (i *ip2locationProvider) Name() string {
	return NameIP2Location
}

func (i *ip2locationProvider) Title() string {
	return "IP2Location"
}

func (i *ip2locationProvider) Shutdown() {
	i.dbLock.Lock()
	defer i.dbLock.Unlock()

	if i.db != nil {
		i.db.Close()
		i.db = nil
	}
}

func (i *ip2locationProvider) Lookup(_ context.Context, subject geolib.Subject) (geolib.RawResult, error) {
	i.dbLock.RLock()
	defer i.dbLock.RUnlock()

	if i.db == nil {
		return nil, geolib.NewTransportError("", ErrDatabaseIsClosed)
	}

	record, err := i.db.Get_all(subject.Addr().Unmap().String())
	if err != nil {
		return nil, geolib.NewParseError("cannot lookup this ip address", err)
	}

	if code := ip2locationValue(record.Country_short); code == "" {
		return nil, geolib.NewParseError("", ErrNotFound)
	}

	rv := geolib.RawResult{
		geolib.FieldCountryCode: ip2locationValue(record.Country_short),
		"country_name":          ip2locationValue(record.Country_long),
		"region_name":           ip2locationValue(record.Region),
		geolib.FieldCity:        ip2locationValue(record.City),
		geolib.FieldISP:         ip2locationValue(record.Isp),
		geolib.FieldPostalCode:  ip2locationValue(record.Zipcode),
		geolib.FieldTimezone:    ip2locationValue(record.Timezone),
	}

	if record.Latitude != 0 || record.Longitude != 0 {
		rv[geolib.FieldLatitude] = record.Latitude
		rv[geolib.FieldLongitude] = record.Longitude
	}

	return rv, nil
}

func ip2locationValue(value string) string {
	value = strings.TrimSpace(value)

	if value == "-" || strings.HasPrefix(value, ip2locationUnavailablePrefix) {
		return ""
	}

	return value
}

// NewIP2Location opens a local IP2Location BIN database. Any DB level
// works, missing fields are skipped.
func NewIP2Location(path string) (geolib.OfflineProvider, error) {
	if path == "" {
		return nil, ErrDatabasePathIsRequired
	}

	db, err := ip2location.OpenDB(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open ip2location database: %w", err)
	}

	return &ip2locationProvider{
		db: db,
	}, nil
}
