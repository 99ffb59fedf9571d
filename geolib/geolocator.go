package geolib

import (
	"context"
	"fmt"
	"time"
)

// ProviderResult is an outcome of a single provider lookup.
type ProviderResult struct {
	Name  string
	Title string
	Raw   RawResult
	Err   error
}

// OK tells if provider has responded with data.
func (p ProviderResult) OK() bool {
	return p.Err == nil
}

// Report is a result of Geolocator.Process.
type Report struct {
	Subject Subject
	Record  Record
	Results []ProviderResult
}

// OK tells if at least one provider has contributed to the record.
func (r Report) OK() bool {
	for _, v := range r.Results {
		if v.OK() {
			return true
		}
	}

	return false
}

// Geolocator asks providers one by one and merges their responses.
type Geolocator struct {
	logger    Logger
	providers []Provider
	stats     []*UsageStats
}

// Process queries all providers strictly sequentially. A failure of
// one provider is logged and does not affect the others. This method
// never fails: in the worst case a record is empty.
//
// If context is closed, remaining providers are not queried and are
// reported as failed.
func (g *Geolocator) Process(ctx context.Context, subject Subject) Report {
	rv := Report{
		Subject: subject,
		Record:  Record{},
		Results: make([]ProviderResult, 0, len(g.providers)),
	}

	for i, prov := range g.providers {
		result := g.lookup(ctx, subject, prov, g.stats[i])

		if result.OK() {
			rv.Record.Merge(result.Raw)
		}

		rv.Results = append(rv.Results, result)
	}

	rv.Record.Cleanup()
	g.logger.Stats(g.stats)

	return rv
}

func (g *Geolocator) lookup(ctx context.Context,
	subject Subject,
	prov Provider,
	stats *UsageStats) ProviderResult {
	started := time.Now()
	result := ProviderResult{
		Name:  prov.Name(),
		Title: prov.Title(),
	}

	if err := ctx.Err(); err != nil {
		result.Err = NewTransportError("lookup is cancelled", err)
	} else {
		result.Raw, result.Err = prov.Lookup(ctx, subject)
	}

	stats.Used(started, len(result.Raw), result.Err)

	if result.Err != nil {
		result.Raw = nil
		g.logger.LookupError(subject, result.Name, result.Err)
	} else {
		g.logger.LookupInfo(subject, result.Name, len(result.Raw))
	}

	return result
}

// Shutdown releases resources of offline providers.
func (g *Geolocator) Shutdown() {
	for _, v := range g.providers {
		if vv, ok := v.(OfflineProvider); ok {
			vv.Shutdown()
		}
	}
}

// Providers returns names of providers in the order they are queried.
func (g *Geolocator) Providers() []string {
	rv := make([]string, 0, len(g.providers))

	for _, v := range g.providers {
		rv = append(rv, v.Name())
	}

	return rv
}

// Stats returns usage statistics of providers.
func (g *Geolocator) Stats() []*UsageStats {
	return g.stats
}

// NewGeolocator creates a new Geolocator. Providers are queried in the
// given order, so later providers win conflicts. Provider names have to
// be unique.
func NewGeolocator(providers []Provider, logger Logger) (*Geolocator, error) {
	if len(providers) == 0 {
		return nil, ErrNoProviders
	}

	if logger == nil {
		logger = noopLogger{}
	}

	rv := &Geolocator{
		logger:    logger,
		providers: make([]Provider, 0, len(providers)),
		stats:     make([]*UsageStats, 0, len(providers)),
	}

	seen := map[string]struct{}{}

	for _, v := range providers {
		if _, ok := seen[v.Name()]; ok {
			return nil, fmt.Errorf("provider %s is duplicated", v.Name())
		}

		seen[v.Name()] = struct{}{}

		rv.providers = append(rv.providers, v)
		rv.stats = append(rv.stats, &UsageStats{Name: v.Name()})
	}

	return rv, nil
}

type noopLogger struct{}

func (noopLogger) LookupError(Subject, string, error) {}
func (noopLogger) LookupInfo(Subject, string, int)    {}
func (noopLogger) Stats([]*UsageStats)                {}
