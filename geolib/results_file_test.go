package geolib_test

import (
	"testing"

	"github.com/9seconds/geolookup/geolib"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"
)

type ResultsFileTestSuite struct {
	suite.Suite

	fs      afero.Fs
	section geolib.Section
}

func (suite *ResultsFileTestSuite) SetupTest() {
	suite.fs = afero.NewMemMapFs()
	suite.section = geolib.RenderRecord(geolib.Record{"ip": "8.8.8.8"})
}

func (suite *ResultsFileTestSuite) write(truncate bool) {
	file, err := geolib.OpenResultsFile(suite.fs, "/results/geo_results.txt", truncate)

	suite.Require().NoError(err)
	suite.NoError(file.Write(suite.section))
	suite.NoError(file.Close())
}

func (suite *ResultsFileTestSuite) read() string {
	data, err := afero.ReadFile(suite.fs, "/results/geo_results.txt")

	suite.Require().NoError(err)

	return string(data)
}

func (suite *ResultsFileTestSuite) TestCreate() {
	suite.write(false)

	suite.Equal(suite.section.Block(), suite.read())
}

func (suite *ResultsFileTestSuite) TestAppend() {
	suite.write(false)
	suite.write(false)

	suite.Equal(suite.section.Block()+suite.section.Block(), suite.read())
}

func (suite *ResultsFileTestSuite) TestTruncate() {
	suite.write(false)
	suite.write(false)
	suite.write(true)

	suite.Equal(suite.section.Block(), suite.read())
}

func (suite *ResultsFileTestSuite) TestClosed() {
	file, err := geolib.OpenResultsFile(suite.fs, "/results/geo_results.txt", false)

	suite.Require().NoError(err)
	suite.Equal("/results/geo_results.txt", file.Path())
	suite.NoError(file.Close())
	suite.NoError(file.Close())
	suite.Error(file.Write(suite.section))
}

func (suite *ResultsFileTestSuite) TestReadOnlyFs() {
	_, err := geolib.OpenResultsFile(afero.NewReadOnlyFs(suite.fs), "/results/geo_results.txt", false)

	suite.Error(err)
}

func TestResultsFile(t *testing.T) {
	suite.Run(t, &ResultsFileTestSuite{})
}
