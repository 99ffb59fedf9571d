package providers

import (
	"context"
	"fmt"
	"net/url"

	"github.com/9seconds/geolookup/geolib"
)

type ipstackProvider struct {
	client     geolib.HTTPClient
	httpScheme string
	authToken  string
}

func (i ipstackProvider) Name() string {
	return NameIPStack
}

func (i ipstackProvider) Title() string {
	return "IPStack"
}

func (i ipstackProvider) Lookup(ctx context.Context, subject geolib.Subject) (geolib.RawResult, error) {
	if subject.IsPrefix() {
		return nil, geolib.NewParseError("", ErrOnlyAddress)
	}

	resp, err := sendRequest(ctx, i.client, i.buildURL(subject),
		map[string]string{"Accept": "application/json"})
	if err != nil {
		return nil, err
	}

	defer flushResponse(resp.Body)

	result := geolib.RawResult{}

	if err := decodeJSON(resp.Body, &result); err != nil {
		return nil, err
	}

	if errorValue, ok := result["error"].(map[string]interface{}); ok {
		return nil, geolib.NewParseError("", fmt.Errorf(
			"failed response: code=%v, type=%v, info=%v",
			errorValue["code"],
			errorValue["type"],
			errorValue["info"]))
	}

	delete(result, "success")
	delete(result, "location")

	return result, nil
}

func (i ipstackProvider) buildURL(subject geolib.Subject) string {
	getQuery := url.Values{}

	getQuery.Set("access_key", i.authToken)
	getQuery.Set("output", "json")
	getQuery.Set("language", "en")
	getQuery.Set("hostname", "1")

	u := url.URL{
		Scheme:   i.httpScheme,
		Host:     "api.ipstack.com",
		Path:     subject.String(),
		RawQuery: getQuery.Encode(),
	}

	return u.String()
}

// NewIPStack returns a provider for ipstack.com. Free plans do not
// support HTTPS so it is optional.
func NewIPStack(client geolib.HTTPClient, authToken string, isSecure bool) (geolib.Provider, error) {
	scheme := "http"

	if isSecure {
		scheme = "https"
	}

	if authToken == "" {
		return nil, ErrAuthTokenIsRequired
	}

	return ipstackProvider{
		client:     client,
		authToken:  authToken,
		httpScheme: scheme,
	}, nil
}
