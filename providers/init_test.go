package providers_test

import (
	"net/http"
	"os"
	"testing"

	"github.com/9seconds/geolookup/geolib"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"
)

const integrationEnvName = "GEOLOOKUP_INTEGRATION"

type ProviderTestSuite struct {
	suite.Suite

	http    geolib.HTTPClient
	subject geolib.Subject
}

func (suite *ProviderTestSuite) SetupTest() {
	suite.http = geolib.NewHTTPClient(&http.Client{}, "test-agent")
	suite.subject = geolib.MustParseSubject("23.22.13.113")
}

type MockedProviderTestSuite struct {
	ProviderTestSuite
}

func (suite *MockedProviderTestSuite) SetupSuite() {
	httpmock.Activate()
}

func (suite *MockedProviderTestSuite) TearDownSuite() {
	httpmock.DeactivateAndReset()
}

func (suite *MockedProviderTestSuite) TearDownTest() {
	httpmock.Reset()
}

func skipIntegration(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipped because of the short mode")
	}

	if os.Getenv(integrationEnvName) == "" {
		t.Skip("Skipped because " + integrationEnvName + " is not set")
	}
}
