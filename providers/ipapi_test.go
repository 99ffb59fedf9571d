package providers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/9seconds/geolookup/geolib"
	"github.com/9seconds/geolookup/providers"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"
)

const ipapiURL = "http://ip-api.com/json/23.22.13.113"

type MockedIPAPITestSuite struct {
	MockedProviderTestSuite

	prov geolib.Provider
}

func (suite *MockedIPAPITestSuite) SetupTest() {
	suite.MockedProviderTestSuite.SetupTest()

	suite.prov = providers.NewIPAPI(suite.http)
}

func (suite *MockedIPAPITestSuite) TestName() {
	suite.Equal(providers.NameIPAPI, suite.prov.Name())
	suite.Equal("IP-API", suite.prov.Title())
}

func (suite *MockedIPAPITestSuite) TestLookupFailed() {
	httpmock.RegisterResponder("GET", ipapiURL,
		httpmock.NewStringResponder(http.StatusTooManyRequests, ""))

	_, err := suite.prov.Lookup(context.Background(), suite.subject)

	suite.True(geolib.IsTransportError(err))
}

func (suite *MockedIPAPITestSuite) TestLookupBadJSON() {
	httpmock.RegisterResponder("GET", ipapiURL,
		httpmock.NewStringResponder(http.StatusOK, `{[`))

	_, err := suite.prov.Lookup(context.Background(), suite.subject)

	suite.True(geolib.IsParseError(err))
}

func (suite *MockedIPAPITestSuite) TestLookupStatusFail() {
	httpmock.RegisterResponder("GET", ipapiURL,
		httpmock.NewStringResponder(http.StatusOK,
			`{"status": "fail", "message": "reserved range", "query": "23.22.13.113"}`))

	_, err := suite.prov.Lookup(context.Background(), suite.subject)

	suite.True(geolib.IsParseError(err))
	suite.Contains(err.Error(), "reserved range")
}

func (suite *MockedIPAPITestSuite) TestOk() {
	httpmock.RegisterResponder("GET", ipapiURL,
		func(req *http.Request) (*http.Response, error) {
			suite.Equal("test-agent", req.Header.Get("User-Agent"))

			return httpmock.NewStringResponse(http.StatusOK, `{
  "status": "success",
  "country": "United States",
  "countryCode": "US",
  "region": "VA",
  "regionName": "Virginia",
  "city": "Ashburn",
  "zip": "20149",
  "lat": 39.0438,
  "lon": -77.4874,
  "timezone": "America/New_York",
  "isp": "Amazon.com, Inc.",
  "org": "AWS EC2 (us-east-1)",
  "as": "AS14618 Amazon.com, Inc.",
  "query": "23.22.13.113"
}`), nil
		})

	result, err := suite.prov.Lookup(context.Background(), suite.subject)

	suite.NoError(err)
	suite.NotContains(result, "status")
	suite.NotContains(result, "region")

	record := geolib.Record{}

	record.Merge(result)

	suite.Equal(geolib.Record{
		"ip":           "23.22.13.113",
		"country":      "United States",
		"country_code": "US",
		"region":       "Virginia",
		"region_code":  "VA",
		"city":         "Ashburn",
		"postal_code":  "20149",
		"latitude":     "39.0438",
		"longitude":    "-77.4874",
		"timezone":     "America/New_York",
		"isp":          "Amazon.com, Inc.",
		"org":          "AWS EC2 (us-east-1)",
		"asn":          "AS14618 Amazon.com, Inc.",
	}, record)
}

type IntegrationIPAPITestSuite struct {
	ProviderTestSuite

	prov geolib.Provider
}

func (suite *IntegrationIPAPITestSuite) SetupTest() {
	suite.ProviderTestSuite.SetupTest()

	suite.prov = providers.NewIPAPI(suite.http)
}

func (suite *IntegrationIPAPITestSuite) TestLookup() {
	result, err := suite.prov.Lookup(context.Background(), suite.subject)

	suite.NoError(err)
	suite.Equal("US", result["countryCode"])
}

func TestIPAPI(t *testing.T) {
	suite.Run(t, &MockedIPAPITestSuite{})
}

func TestIntegrationIPAPI(t *testing.T) {
	skipIntegration(t)

	suite.Run(t, &IntegrationIPAPITestSuite{})
}
