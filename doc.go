// Geolookup is a command line tool to geolocate a single IP address or
// network.
//
// Idea is simple: you have an IP address like 8.8.8.8 and you want to
// know where it lives. There are plenty of free services which can tell
// you that, but each of them names things differently and knows
// different things. So geolookup asks several of them, merges their
// answers into a single record and prints it.
//
// Tool itself is organized into 3 logical parts:
//
// Geolib
//
// geolib is a core package of the application. It contains the
// Geolocator, field normalization, merging and rendering logic.
//
// Providers
//
// This package has a set of provider implementations: online services
// like keycdn, ip-api or ipinfo and offline databases like MaxMind or
// IP2Location.
//
// Geolookup
//
// A main package itself wires both geolib and providers into CLI. It
// prints results to console and appends them to the results file.
package main
