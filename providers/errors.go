package providers

import "errors"

var (
	// ErrAuthTokenIsRequired is returned if you are trying to initialize
	// a provider which requires some token to work.
	ErrAuthTokenIsRequired = errors.New("auth token is required")

	// ErrURLIsRequired is returned if a scraper is initialized without
	// URL template.
	ErrURLIsRequired = errors.New("url template is required")

	// ErrDatabasePathIsRequired is returned if an offline provider is
	// initialized without a path to the database.
	ErrDatabasePathIsRequired = errors.New("path to the database is required")

	// ErrDatabaseIsClosed is returned if offline provider was shutdown.
	ErrDatabaseIsClosed = errors.New("database is closed")

	// ErrNotFound is returned if provider has no data for the address.
	ErrNotFound = errors.New("address is not found")

	// ErrOnlyIPv4 is returned by providers which support only single
	// IPv4 addresses.
	ErrOnlyIPv4 = errors.New("only single ipv4 addresses are supported")

	// ErrOnlyAddress is returned by providers which cannot lookup
	// networks.
	ErrOnlyAddress = errors.New("networks are not supported")
)
