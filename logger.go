package main

import (
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/9seconds/geolookup/geolib"
)

type logger struct {
	lookupLog zerolog.Logger
	statsLog  zerolog.Logger
}

func (l *logger) LookupError(subject geolib.Subject, name string, err error) {
	kind := "unknown"

	if geolib.IsTransportError(err) {
		kind = geolib.LookupErrorTransport.String()
	} else if geolib.IsParseError(err) {
		kind = geolib.LookupErrorParse.String()
	}

	l.lookupLog.Error().
		Str("provider", name).
		Stringer("subject", subject).
		Str("kind", kind).
		Err(err).
		Msg("Lookup has failed")
}

func (l *logger) LookupInfo(subject geolib.Subject, name string, fieldsCount int) {
	l.lookupLog.Debug().
		Str("provider", name).
		Stringer("subject", subject).
		Int("fields", fieldsCount).
		Msg("Lookup is done")
}

func (l *logger) Stats(stats []*geolib.UsageStats) {
	for _, v := range stats {
		lastUsed := "never"
		if !v.LastUsed().IsZero() {
			lastUsed = humanize.Time(v.LastUsed())
		}

		l.statsLog.Debug().
			Str("provider", v.Name).
			Uint64("success", v.SuccessCount()).
			Uint64("failure", v.FailureCount()).
			Uint64("fields", v.FieldsCount()).
			Str("last_used", lastUsed).
			Dur("last_duration", v.LastDuration()).
			Msg("Usage stats")
	}
}

func newLogger(out io.Writer, debug, noColor bool) geolib.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: time.Kitchen,
	}
	base := zerolog.New(writer).Level(level).With().Timestamp().Logger()

	return &logger{
		lookupLog: base.With().Str("event_name", "lookup").Logger(),
		statsLog:  base.With().Str("event_name", "stats").Logger(),
	}
}
