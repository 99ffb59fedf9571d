package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/9seconds/geolookup/geolib"
	"github.com/9seconds/geolookup/providers"
)

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func makeProviders(conf *config) ([]geolib.Provider, error) {
	rv := make([]geolib.Provider, 0, len(conf.GetProviders()))

	for _, v := range conf.GetProviders() {
		prov, err := makeProvider(conf, v)
		if err != nil {
			for _, created := range rv {
				if offline, ok := created.(geolib.OfflineProvider); ok {
					offline.Shutdown()
				}
			}

			return nil, err
		}

		rv = append(rv, prov)
	}

	return rv, nil
}

func makeProvider(conf *config, v configProvider) (geolib.Provider, error) {
	httpClient := makeNewHTTPClient(conf, v)
	params := v.GetSpecificParameters()

	switch v.GetName() {
	case providers.NameKeyCDN:
		return providers.NewKeyCDN(httpClient), nil
	case providers.NameIPAPI:
		return providers.NewIPAPI(httpClient), nil
	case providers.NameIPInfo:
		return providers.NewIPInfo(httpClient, params["auth_token"]), nil
	case providers.NameIPStack:
		prov, err := providers.NewIPStack(httpClient,
			params["auth_token"], boolParam(params["secure"]))
		if err != nil {
			return nil, fmt.Errorf("cannot create ipstack provider: %w", err)
		}

		return prov, nil
	case providers.NameIP2C:
		return providers.NewIP2C(httpClient), nil
	case providers.NameHTMLTable:
		prov, err := providers.NewHTMLTable(httpClient,
			v.GetTitle(), params["url"], params["selector"])
		if err != nil {
			return nil, fmt.Errorf("cannot create htmltable provider: %w", err)
		}

		return prov, nil
	case providers.NameMaxmind:
		prov, err := providers.NewMaxmind(params["database_path"])
		if err != nil {
			return nil, fmt.Errorf("cannot create maxmind provider: %w", err)
		}

		return prov, nil
	case providers.NameIP2Location:
		prov, err := providers.NewIP2Location(params["database_path"])
		if err != nil {
			return nil, fmt.Errorf("cannot create ip2location provider: %w", err)
		}

		return prov, nil
	}

	return nil, fmt.Errorf("unsupported provider name: %s", v.GetName())
}

func makeNewHTTPClient(conf *config, v configProvider) geolib.HTTPClient {
	jar, err := cookiejar.New(nil)
	if err != nil {
		panic(err)
	}

	httpClient := &http.Client{
		Timeout: v.GetHTTPTimeout(conf.GetHTTPTimeout()),
		Jar:     jar,
	}

	return geolib.NewHTTPClient(httpClient, conf.GetUserAgent())
}

func boolParam(param string) bool {
	switch strings.ToLower(param) {
	case "1", "true", "enabled", "yes":
		return true
	default:
		return false
	}
}
