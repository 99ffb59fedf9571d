package providers

import (
	"context"
	"fmt"
	"net/url"

	"github.com/9seconds/geolookup/geolib"
)

type keycdnResponse struct {
	Status      string `json:"status"`
	Description string `json:"description"`
	Data        struct {
		Geo geolib.RawResult `json:"geo"`
	} `json:"data"`
}

type keycdnProvider struct {
	client geolib.HTTPClient
}

func (k keycdnProvider) Name() string {
	return NameKeyCDN
}

func (k keycdnProvider) Title() string {
	return "KeyCDN"
}

func (k keycdnProvider) Lookup(ctx context.Context, subject geolib.Subject) (geolib.RawResult, error) {
	host := subject.String()

	// keycdn rejects requests without this exact user agent
	resp, err := sendRequest(ctx, k.client,
		"https://tools.keycdn.com/geo.json?host="+url.QueryEscape(host),
		map[string]string{
			"Accept":     "application/json",
			"User-Agent": "keycdn-tools:https://" + host,
		})
	if err != nil {
		return nil, err
	}

	defer flushResponse(resp.Body)

	jsonResponse := keycdnResponse{}

	if err := decodeJSON(resp.Body, &jsonResponse); err != nil {
		return nil, err
	}

	if jsonResponse.Status != "" && jsonResponse.Status != "success" {
		return nil, geolib.NewParseError("",
			fmt.Errorf("failed to geolocate: %s (%s)", jsonResponse.Status, jsonResponse.Description))
	}

	if jsonResponse.Data.Geo == nil {
		return nil, geolib.NewParseError("", fmt.Errorf("response has no data.geo: %s", jsonResponse.Description))
	}

	return jsonResponse.Data.Geo, nil
}

// NewKeyCDN returns a provider for tools.keycdn.com. Its fields are
// nested under data.geo.
func NewKeyCDN(client geolib.HTTPClient) geolib.Provider {
	return keycdnProvider{
		client: client,
	}
}
