package providers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/9seconds/geolookup/geolib"
)

type ip2cProvider struct {
	client geolib.HTTPClient
}

func (i ip2cProvider) Name() string {
	return NameIP2C
}

func (i ip2cProvider) Title() string {
	return "IP2C"
}

func (i ip2cProvider) Lookup(ctx context.Context, subject geolib.Subject) (geolib.RawResult, error) {
	if subject.IsPrefix() || !subject.Addr().Unmap().Is4() {
		return nil, geolib.NewParseError("", ErrOnlyIPv4)
	}

	ip := subject.Addr().Unmap().String()

	resp, err := sendRequest(ctx, i.client, "https://ip2c.org/?ip="+ip, nil)
	if err != nil {
		return nil, err
	}

	defer flushResponse(resp.Body)

	bodyBytes, err := io.ReadAll(bufio.NewReader(resp.Body))
	if err != nil {
		return nil, geolib.NewTransportError("cannot read response body", err)
	}

	body := strings.TrimSpace(string(bodyBytes))

	// 1;US;USA;United States
	chunks := strings.SplitN(body, ";", 4)

	switch {
	case len(chunks) != 4:
		return nil, geolib.NewParseError("", fmt.Errorf("incorrect response: %s", body))
	case chunks[0] != "1":
		return nil, geolib.NewParseError("", fmt.Errorf("ip2c cannot detect region: %s", body))
	}

	return geolib.RawResult{
		geolib.FieldIP:          ip,
		geolib.FieldCountryCode: chunks[1],
		"country_name":          chunks[3],
	}, nil
}

// NewIP2C returns a provider for ip2c.org. It knows countries of IPv4
// addresses only.
func NewIP2C(client geolib.HTTPClient) geolib.Provider {
	return ip2cProvider{
		client: client,
	}
}
