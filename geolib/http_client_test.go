package geolib_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/9seconds/geolookup/geolib"
	"github.com/mccutchen/go-httpbin/httpbin"
	"github.com/stretchr/testify/suite"
)

type HTTPClientTestSuite struct {
	suite.Suite

	httpbinEndpoint *httptest.Server
	c               geolib.HTTPClient
}

func (suite *HTTPClientTestSuite) SetupSuite() {
	suite.httpbinEndpoint = httptest.NewServer(httpbin.NewHTTPBin().Handler())
}

func (suite *HTTPClientTestSuite) TearDownSuite() {
	suite.httpbinEndpoint.Close()
}

func (suite *HTTPClientTestSuite) SetupTest() {
	suite.c = geolib.NewHTTPClient(suite.httpbinEndpoint.Client(), "test")
}

func (suite *HTTPClientTestSuite) userAgent(req *http.Request) string {
	resp, err := suite.c.Do(req)

	suite.Require().NoError(err)

	defer resp.Body.Close()

	data := struct {
		UserAgent string `json:"user-agent"`
	}{}

	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&data))

	return data.UserAgent
}

func (suite *HTTPClientTestSuite) TestDefaultUserAgent() {
	req, _ := http.NewRequest(http.MethodGet, suite.httpbinEndpoint.URL+"/user-agent", nil)

	suite.Equal("test", suite.userAgent(req))
}

func (suite *HTTPClientTestSuite) TestProviderUserAgent() {
	req, _ := http.NewRequest(http.MethodGet, suite.httpbinEndpoint.URL+"/user-agent", nil)

	req.Header.Set("User-Agent", "keycdn-tools:https://8.8.8.8")

	suite.Equal("keycdn-tools:https://8.8.8.8", suite.userAgent(req))
}

func (suite *HTTPClientTestSuite) TestBadStatus() {
	for _, v := range []string{"/status/500", "/status/404", "/status/304"} {
		req, _ := http.NewRequest(http.MethodGet, suite.httpbinEndpoint.URL+v, nil)
		_, err := suite.c.Do(req)

		suite.Error(err)
		suite.True(geolib.IsTransportError(err))
	}
}

func (suite *HTTPClientTestSuite) TestCannotDial() {
	req, _ := http.NewRequest(http.MethodGet, "http://127.0.0.1:1/status/200", nil)
	_, err := suite.c.Do(req)

	suite.Error(err)
	suite.True(geolib.IsTransportError(err))
}

func TestHTTPClient(t *testing.T) {
	suite.Run(t, &HTTPClientTestSuite{})
}

func TestHTTPClientDefaults(t *testing.T) {
	client := &http.Client{}

	geolib.NewHTTPClient(client, "")

	if client.Timeout != geolib.DefaultHTTPTimeout {
		t.Fatalf("unexpected timeout %v", client.Timeout)
	}
}
