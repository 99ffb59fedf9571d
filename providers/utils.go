package providers

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/9seconds/geolookup/geolib"
)

func flushResponse(resp io.ReadCloser) {
	io.Copy(io.Discard, resp) // nolint: errcheck
	resp.Close()
}

func sendRequest(ctx context.Context,
	client geolib.HTTPClient,
	url string,
	headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, geolib.NewTransportError("cannot build a request", err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		if geolib.IsTransportError(err) {
			return nil, err
		}

		return nil, geolib.NewTransportError("cannot send a request", err)
	}

	return resp, nil
}

func decodeJSON(body io.Reader, target interface{}) error {
	decoder := json.NewDecoder(bufio.NewReader(body))

	decoder.UseNumber()

	if err := decoder.Decode(target); err != nil {
		return geolib.NewParseError("cannot parse a response", err)
	}

	return nil
}

func renameField(raw geolib.RawResult, from, to string) {
	if value, ok := raw[from]; ok {
		delete(raw, from)
		raw[to] = value
	}
}

func rawString(raw geolib.RawResult, key string) string {
	if value, ok := raw[key].(string); ok {
		return value
	}

	return ""
}
