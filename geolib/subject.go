package geolib

import (
	"net"
	"net/netip"
	"strings"
)

// Subject is a validated query subject: either a single IP address or
// a network in CIDR notation.
type Subject struct {
	addr   netip.Addr
	prefix netip.Prefix
}

// String returns a canonical form of the subject. This is the value
// which is sent to providers.
func (s Subject) String() string {
	if s.prefix.IsValid() {
		return s.prefix.String()
	}

	return s.addr.String()
}

// IsPrefix tells if subject is a network rather than a single address.
func (s Subject) IsPrefix() bool {
	return s.prefix.IsValid()
}

// Addr returns an address of the subject. For networks this is the
// first address of the network.
func (s Subject) Addr() netip.Addr {
	if s.prefix.IsValid() {
		return s.prefix.Addr()
	}

	return s.addr
}

// IP returns the same value as Addr but as net.IP. Some database
// readers still want the old type.
func (s Subject) IP() net.IP {
	return net.IP(s.Addr().Unmap().AsSlice())
}

// IsValid is false for zero Subject.
func (s Subject) IsValid() bool {
	return s.addr.IsValid() || s.prefix.IsValid()
}

// ParseSubject validates a raw argument. Only IP addresses (v4, v6,
// v6 with a zone) and CIDR networks are accepted, hostnames are not.
// Surrounding whitespace is not stripped.
func ParseSubject(raw string) (Subject, error) {
	if raw == "" {
		return Subject{}, ErrNoSubject
	}

	if strings.Contains(raw, "/") {
		prefix, err := netip.ParsePrefix(raw)
		if err != nil {
			return Subject{}, &InputError{raw: raw, err: err}
		}

		return Subject{prefix: prefix.Masked()}, nil
	}

	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return Subject{}, &InputError{raw: raw, err: err}
	}

	return Subject{addr: addr}, nil
}

// MustParseSubject is like ParseSubject but panics on error. It is
// intended for tests and static values.
func MustParseSubject(raw string) Subject {
	subject, err := ParseSubject(raw)
	if err != nil {
		panic(err)
	}

	return subject
}
