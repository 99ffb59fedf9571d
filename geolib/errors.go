package geolib

import (
	"errors"
)

var (
	// ErrNoSubject is returned by ParseSubject for an empty argument.
	ErrNoSubject = errors.New("host address is not provided")

	// ErrNoProviders is returned if Geolocator is created without any
	// provider.
	ErrNoProviders = errors.New("at least one provider is required")
)

// InputError is returned when a query subject cannot be parsed.
type InputError struct {
	raw string
	err error
}

// Raw returns an argument which failed to parse.
func (i *InputError) Raw() string {
	if i == nil {
		return ""
	}

	return i.raw
}

func (i *InputError) Unwrap() error {
	if i == nil {
		return nil
	}

	return i.err
}

func (i *InputError) Error() string {
	switch {
	case i == nil:
		return ""
	case i.err != nil:
		return i.err.Error()
	}

	return "incorrect address " + i.raw
}

// LookupErrorKind classifies failures of providers.
type LookupErrorKind uint8

const (
	// LookupErrorTransport covers network failures, timeouts and
	// unexpected status codes.
	LookupErrorTransport LookupErrorKind = iota

	// LookupErrorParse covers malformed or unexpected response bodies.
	LookupErrorParse
)

func (l LookupErrorKind) String() string {
	switch l {
	case LookupErrorTransport:
		return "transport"
	case LookupErrorParse:
		return "parse"
	}

	return "unknown"
}

// LookupError is returned by providers. Geolocator logs them and
// moves on to the next provider.
type LookupError struct {
	Kind    LookupErrorKind
	message string
	err     error
}

func (l *LookupError) Message() string {
	if l == nil {
		return ""
	}

	return l.message
}

func (l *LookupError) Unwrap() error {
	if l == nil {
		return nil
	}

	return l.err
}

func (l *LookupError) Error() string {
	switch {
	case l == nil:
		return ""
	case l.err != nil && l.message != "":
		return l.message + ": " + l.err.Error()
	case l.err != nil:
		return l.err.Error()
	}

	return l.message
}

// NewTransportError builds a LookupError of transport kind.
func NewTransportError(message string, err error) error {
	return &LookupError{
		Kind:    LookupErrorTransport,
		message: message,
		err:     err,
	}
}

// NewParseError builds a LookupError of parse kind.
func NewParseError(message string, err error) error {
	return &LookupError{
		Kind:    LookupErrorParse,
		message: message,
		err:     err,
	}
}

// IsTransportError checks if any error in a chain is a transport
// LookupError.
func IsTransportError(err error) bool {
	var lerr *LookupError

	return errors.As(err, &lerr) && lerr.Kind == LookupErrorTransport
}

// IsParseError checks if any error in a chain is a parse LookupError.
func IsParseError(err error) bool {
	var lerr *LookupError

	return errors.As(err, &lerr) && lerr.Kind == LookupErrorParse
}
