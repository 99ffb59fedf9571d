package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/9seconds/geolookup/geolib"
)

type application struct {
	geo          *geolib.Geolocator
	fs           afero.Fs
	console      consolePrinter
	resultsPath  string
	raw          bool
	truncate     bool
	countryNames bool
}

// Run processes a subject, prints sections to console and appends
// them to the results file. Console output always goes first, so a
// broken results file does not hide collected data.
func (a *application) Run(ctx context.Context, subject geolib.Subject) (err error) {
	report := a.geo.Process(ctx, subject)

	if a.countryNames {
		report.Record.FillCountryName()
	}

	sections := a.sections(report)

	for _, v := range sections {
		a.console.Print(v)
	}

	file, err := geolib.OpenResultsFile(a.fs, a.resultsPath, a.truncate)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	for _, v := range sections {
		if err := file.Write(v); err != nil {
			return fmt.Errorf("cannot save results: %w", err)
		}
	}

	return nil
}

func (a *application) sections(report geolib.Report) []geolib.Section {
	rv := []geolib.Section{}

	if a.raw {
		for _, v := range report.Results {
			if v.OK() {
				rv = append(rv, geolib.RenderRaw(v.Title, v.Raw))
			}
		}
	}

	return append(rv, geolib.RenderRecord(report.Record))
}
