// This package provides a set of structs and functions which are used
// to geolocate a single IP address or network with a set of third-party
// sources.
//
// geolib is a core of the geolookup project. The rest of the
// application is a thin wrapper: CLI flags, configuration and provider
// wiring.
//
// Geolocator is a main entity of the geolib. It asks each provider in
// turn, folds their RawResult into a canonical Record and tracks usage
// statistics. Providers name things differently: ip-api says "query"
// where keycdn says "ip", so field names are normalized with a static
// mapping before merging.
//
// Record is then rendered into a Section: an ordered list of aligned
// "Label: value" lines which can be printed to console or appended to a
// ResultsFile.
package geolib
