package main

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/spf13/afero"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/9seconds/geolookup/geolib"
)

const version = "0.1.0"

type cliArgs struct {
	debug        *bool
	configFile   *string
	outputFile   *string
	timeout      *time.Duration
	raw          *bool
	noColor      *bool
	truncate     *bool
	countryNames *bool
	host         *string
}

func newArgParser(stderr io.Writer) (*kingpin.Application, *cliArgs) {
	app := kingpin.New(
		"geolookup",
		"Geolocate an IP address or network with several online services")
	args := &cliArgs{}

	app.Version(version)
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	args.debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("GEOLOOKUP_DEBUG").
		Bool()
	args.configFile = app.Flag("config", "Path to the hjson config.").
		Short('c').
		Envar("GEOLOOKUP_CONFIG").
		ExistingFile()
	args.outputFile = app.Flag("output", "Path to the results file.").
		Short('o').
		Envar("GEOLOOKUP_OUTPUT").
		String()
	args.timeout = app.Flag("timeout", "Timeout of a single provider request.").
		Duration()
	args.raw = app.Flag("raw", "Print raw responses of providers as well.").
		Bool()
	args.noColor = app.Flag("no-color", "Disable colored output.").
		Bool()
	args.truncate = app.Flag("truncate", "Truncate the results file before writing.").
		Bool()
	args.countryNames = app.Flag("country-names",
		"Add a country name if providers returned only a country code.").
		Bool()
	args.host = app.Arg("host", "IP address or network to geolocate.").
		String()

	return app, args
}

type cli struct {
	stdout        io.Writer
	stderr        io.Writer
	fs            afero.Fs
	makeProviders func(*config) ([]geolib.Provider, error)
	makeContext   func() (context.Context, context.CancelFunc)
}

// Run executes a single lookup and returns an exit code. Subject is
// validated before anything else is built.
func (c *cli) Run(argv []string) int {
	parser, args := newArgParser(c.stderr)

	if _, err := parser.Parse(argv); err != nil {
		newConsolePrinter(c.stderr, false).Error(err.Error())

		return 1
	}

	stderr := newConsolePrinter(c.stderr, !*args.noColor)

	subject, err := geolib.ParseSubject(*args.host)

	switch {
	case errors.Is(err, geolib.ErrNoSubject):
		stderr.Error("You forgot to include the host address.")

		return 1
	case err != nil:
		stderr.Error(err.Error())

		return 1
	}

	conf := &config{}

	if *args.configFile != "" {
		conf, err = parseConfig(*args.configFile)
		if err != nil {
			stderr.Error("cannot parse config: " + err.Error())

			return 1
		}
	}

	args.apply(conf)

	stderr = newConsolePrinter(c.stderr, !conf.NoColor)

	provs, err := c.makeProviders(conf)
	if err != nil {
		stderr.Error(err.Error())

		return 1
	}

	geo, err := geolib.NewGeolocator(provs, newLogger(c.stderr, *args.debug, conf.NoColor))
	if err != nil {
		stderr.Error(err.Error())

		return 1
	}

	defer geo.Shutdown()

	ctx, cancel := c.makeContext()
	defer cancel()

	runner := &application{
		geo:          geo,
		fs:           c.fs,
		console:      newConsolePrinter(c.stdout, !conf.NoColor),
		resultsPath:  conf.GetResultsFile(),
		raw:          conf.Raw,
		truncate:     conf.Truncate,
		countryNames: conf.CountryNames,
	}

	if err := runner.Run(ctx, subject); err != nil {
		stderr.Error(err.Error())

		return 1
	}

	return 0
}

func (a *cliArgs) apply(conf *config) {
	if *a.outputFile != "" {
		conf.ResultsFile = *a.outputFile
	}

	if *a.timeout > 0 {
		conf.HTTPTimeout.Duration = *a.timeout
	}

	conf.Raw = conf.Raw || *a.raw
	conf.NoColor = conf.NoColor || *a.noColor
	conf.Truncate = conf.Truncate || *a.truncate
	conf.CountryNames = conf.CountryNames || *a.countryNames
}

func main() {
	c := &cli{
		stdout:        os.Stdout,
		stderr:        os.Stderr,
		fs:            afero.NewOsFs(),
		makeProviders: makeProviders,
		makeContext:   makeRootContext,
	}

	os.Exit(c.Run(os.Args[1:]))
}
