package providers

import (
	"context"
	"fmt"
	"net/url"

	"github.com/9seconds/geolookup/geolib"
)

type ipapiProvider struct {
	client geolib.HTTPClient
}

func (i ipapiProvider) Name() string {
	return NameIPAPI
}

func (i ipapiProvider) Title() string {
	return "IP-API"
}

func (i ipapiProvider) Lookup(ctx context.Context, subject geolib.Subject) (geolib.RawResult, error) {
	resp, err := sendRequest(ctx, i.client,
		"http://ip-api.com/json/"+url.PathEscape(subject.String()),
		map[string]string{"Accept": "application/json"})
	if err != nil {
		return nil, err
	}

	defer flushResponse(resp.Body)

	result := geolib.RawResult{}

	if err := decodeJSON(resp.Body, &result); err != nil {
		return nil, err
	}

	if status := rawString(result, "status"); status != "" && status != "success" {
		return nil, geolib.NewParseError("",
			fmt.Errorf("failed to geolocate: %s (%s)", status, rawString(result, "message")))
	}

	delete(result, "status")

	// ip-api returns a region code in region and a name in regionName
	renameField(result, "region", geolib.FieldRegionCode)

	return result, nil
}

// NewIPAPI returns a provider for ip-api.com. This is a free endpoint
// which works without a token but only over plain HTTP.
func NewIPAPI(client geolib.HTTPClient) geolib.Provider {
	return ipapiProvider{
		client: client,
	}
}
