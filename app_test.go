package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/9seconds/geolookup/geolib"
)

type staticProvider struct {
	name   string
	title  string
	result geolib.RawResult
	err    error
	calls  int
}

func (s *staticProvider) Name() string {
	return s.name
}

func (s *staticProvider) Title() string {
	return s.title
}

func (s *staticProvider) Lookup(_ context.Context, _ geolib.Subject) (geolib.RawResult, error) {
	s.calls++

	return s.result, s.err
}

type ApplicationTestSuite struct {
	suite.Suite

	fs      afero.Fs
	stdout  *bytes.Buffer
	keycdn  *staticProvider
	ipapi   *staticProvider
	subject geolib.Subject
}

func (suite *ApplicationTestSuite) SetupTest() {
	suite.fs = afero.NewMemMapFs()
	suite.stdout = &bytes.Buffer{}
	suite.subject = geolib.MustParseSubject("8.8.8.8")
	suite.keycdn = &staticProvider{
		name:  "keycdn",
		title: "KeyCDN",
		result: geolib.RawResult{
			"country_name": "United States",
			"isp":          "Google LLC",
		},
	}
	suite.ipapi = &staticProvider{
		name:  "ipapi",
		title: "IP-API",
		result: geolib.RawResult{
			"query": "8.8.8.8",
			"org":   "Google LLC",
			"isp":   "Google LLC",
		},
	}
}

func (suite *ApplicationTestSuite) makeApplication(raw, truncate bool) *application {
	geo, err := geolib.NewGeolocator([]geolib.Provider{suite.keycdn, suite.ipapi}, nil)

	suite.Require().NoError(err)

	return &application{
		geo:         geo,
		fs:          suite.fs,
		console:     newConsolePrinter(suite.stdout, false),
		resultsPath: "/opt/geolookup/geo_results.txt",
		raw:         raw,
		truncate:    truncate,
	}
}

func (suite *ApplicationTestSuite) results() string {
	data, err := afero.ReadFile(suite.fs, "/opt/geolookup/geo_results.txt")

	suite.Require().NoError(err)

	return string(data)
}

func (suite *ApplicationTestSuite) TestRun() {
	suite.NoError(suite.makeApplication(false, false).Run(context.Background(), suite.subject))

	block := "\nGeolocation Results\n" +
		strings.Repeat("-", 50) + "\n" +
		"Ip             : 8.8.8.8\n" +
		"Isp            : Google LLC\n" +
		"Country        : United States\n"

	suite.Equal(block, suite.stdout.String())
	suite.Equal(block, suite.results())
	suite.NotContains(suite.results(), "Org")
}

func (suite *ApplicationTestSuite) TestRunAppends() {
	suite.NoError(suite.makeApplication(false, false).Run(context.Background(), suite.subject))
	suite.NoError(suite.makeApplication(false, false).Run(context.Background(), suite.subject))

	suite.Equal(2, strings.Count(suite.results(), "Geolocation Results"))
}

func (suite *ApplicationTestSuite) TestRunTruncates() {
	suite.NoError(suite.makeApplication(false, false).Run(context.Background(), suite.subject))
	suite.NoError(suite.makeApplication(false, true).Run(context.Background(), suite.subject))

	suite.Equal(1, strings.Count(suite.results(), "Geolocation Results"))
}

func (suite *ApplicationTestSuite) TestRunProviderFailed() {
	suite.keycdn.result = nil
	suite.keycdn.err = geolib.NewTransportError("cannot send a request", context.DeadlineExceeded)

	suite.NoError(suite.makeApplication(false, false).Run(context.Background(), suite.subject))

	suite.Equal(1, suite.ipapi.calls)
	suite.Contains(suite.results(), "Ip             : 8.8.8.8")
	suite.Contains(suite.results(), "Isp            : Google LLC")
	suite.NotContains(suite.results(), "Country")
}

func (suite *ApplicationTestSuite) TestRunRaw() {
	suite.NoError(suite.makeApplication(true, false).Run(context.Background(), suite.subject))

	output := suite.stdout.String()

	suite.Contains(output, "KeyCDN Results")
	suite.Contains(output, "IP-API Results")
	suite.Contains(output, "query"+strings.Repeat(" ", 30)+": 8.8.8.8")
	suite.Less(strings.Index(output, "IP-API Results"), strings.Index(output, "Geolocation Results"))
	suite.Equal(output, suite.results())
}

func (suite *ApplicationTestSuite) TestRunBrokenResultsFile() {
	runner := suite.makeApplication(false, false)

	runner.fs = afero.NewReadOnlyFs(suite.fs)

	suite.Error(runner.Run(context.Background(), suite.subject))
	suite.Contains(suite.stdout.String(), "Geolocation Results")
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationTestSuite{})
}
