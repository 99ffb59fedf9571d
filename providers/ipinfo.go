package providers

import (
	"context"
	"net/url"
	"strings"

	"github.com/9seconds/geolookup/geolib"
)

type ipinfoProvider struct {
	authToken string
	client    geolib.HTTPClient
}

func (i ipinfoProvider) Name() string {
	return NameIPInfo
}

func (i ipinfoProvider) Title() string {
	return "IPInfo"
}

func (i ipinfoProvider) Lookup(ctx context.Context, subject geolib.Subject) (geolib.RawResult, error) {
	if subject.IsPrefix() {
		return nil, geolib.NewParseError("", ErrOnlyAddress)
	}

	headers := map[string]string{"Accept": "application/json"}

	if i.authToken != "" {
		headers["Authorization"] = "Bearer " + i.authToken
	}

	resp, err := sendRequest(ctx, i.client,
		"https://ipinfo.io/"+url.PathEscape(subject.String()), headers)
	if err != nil {
		return nil, err
	}

	defer flushResponse(resp.Body)

	result := geolib.RawResult{}

	if err := decodeJSON(resp.Body, &result); err != nil {
		return nil, err
	}

	// ipinfo uses country for a 2-letter code and region for a name
	renameField(result, "country", geolib.FieldCountryCode)
	renameField(result, "region", "region_name")

	if loc := rawString(result, "loc"); loc != "" {
		if chunks := strings.SplitN(loc, ",", 2); len(chunks) == 2 {
			result[geolib.FieldLatitude] = strings.TrimSpace(chunks[0])
			result[geolib.FieldLongitude] = strings.TrimSpace(chunks[1])

			delete(result, "loc")
		}
	}

	delete(result, "readme")

	return result, nil
}

// NewIPInfo returns a provider for ipinfo.io. A token is optional: the
// service works without it but with a small daily quota.
func NewIPInfo(client geolib.HTTPClient, authToken string) geolib.Provider {
	return ipinfoProvider{
		authToken: authToken,
		client:    client,
	}
}
