package geolib

import (
	"context"
	"net/http"
)

// HTTPClient is an interface for HTTP client which is used by online
// providers.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Provider is a source of geolocation data. Each provider owns its own
// parsing logic and returns a flat RawResult with provider-specific
// field names.
type Provider interface {
	// Name is an identifier used in configuration and logs.
	Name() string

	// Title is a human readable name used as a section header.
	Title() string

	Lookup(context.Context, Subject) (RawResult, error)
}

// Logger is an interface which is used by Geolocator to report
// lookup events.
type Logger interface {
	LookupError(subject Subject, name string, err error)
	LookupInfo(subject Subject, name string, fieldsCount int)
	Stats(stats []*UsageStats)
}

// OfflineProvider is a provider which works with a local database. It
// has to be shutdown to release a file.
type OfflineProvider interface {
	Provider

	Shutdown()
}
