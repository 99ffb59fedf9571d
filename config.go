package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hjson/hjson-go/v4"

	"github.com/9seconds/geolookup/geolib"
	"github.com/9seconds/geolookup/providers"
)

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var v interface{}

	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("cannot unmarshal duration: %w", err)
	}

	vv, ok := v.(string)
	if !ok {
		return fmt.Errorf("incorrect duration: %v", v)
	}

	dur, err := time.ParseDuration(vv)
	if err != nil {
		return fmt.Errorf("cannot parse duration: %w", err)
	}

	d.Duration = dur

	return nil
}

type config struct {
	ResultsFile  string           `json:"results_file"`
	HTTPTimeout  duration         `json:"http_timeout"`
	UserAgent    string           `json:"user_agent"`
	Raw          bool             `json:"raw"`
	NoColor      bool             `json:"no_color"`
	Truncate     bool             `json:"truncate"`
	CountryNames bool             `json:"country_names"`
	Providers    []configProvider `json:"providers"`
}

func (c config) GetResultsFile() string {
	if c.ResultsFile != "" {
		return c.ResultsFile
	}

	return geolib.DefaultResultsFilePath()
}

func (c config) GetHTTPTimeout() time.Duration {
	if c.HTTPTimeout.Duration <= 0 {
		return geolib.DefaultHTTPTimeout
	}

	return c.HTTPTimeout.Duration
}

func (c config) GetUserAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}

	return geolib.DefaultUserAgent
}

func (c config) GetProviders() []configProvider {
	if len(c.Providers) == 0 {
		return []configProvider{
			{Name: providers.NameKeyCDN},
			{Name: providers.NameIPAPI},
		}
	}

	return c.Providers
}

type configProvider struct {
	Name               string            `json:"name"`
	Title              string            `json:"title"`
	HTTPTimeout        duration          `json:"http_timeout"`
	SpecificParameters map[string]string `json:"specific_parameters"`
}

func (c configProvider) GetName() string {
	return c.Name
}

func (c configProvider) GetTitle() string {
	return c.Title
}

func (c configProvider) GetHTTPTimeout(fallback time.Duration) time.Duration {
	if c.HTTPTimeout.Duration <= 0 {
		return fallback
	}

	return c.HTTPTimeout.Duration
}

func (c configProvider) GetSpecificParameters() map[string]string {
	if c.SpecificParameters == nil {
		return map[string]string{}
	}

	return c.SpecificParameters
}

func parseConfig(path string) (*config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}

	return parseConfigContent(content)
}

func parseConfigContent(content []byte) (*config, error) {
	conf := config{}
	rawMap := map[string]interface{}{}

	if err := hjson.Unmarshal(content, &rawMap); err != nil {
		return nil, fmt.Errorf("cannot parse hjson: %w", err)
	}

	rawBytes, err := json.Marshal(rawMap)
	if err != nil {
		return nil, fmt.Errorf("cannot convert hjson: %w", err)
	}

	if err := json.Unmarshal(rawBytes, &conf); err != nil {
		return nil, fmt.Errorf("incorrect config: %w", err)
	}

	if conf.ResultsFile != "" {
		conf.ResultsFile, err = filepath.Abs(conf.ResultsFile)
		if err != nil {
			return nil, fmt.Errorf("incorrect results file: %w", err)
		}
	}

	seenProviderNames := map[string]struct{}{}

	for _, v := range conf.Providers {
		if v.GetName() == "" {
			return nil, fmt.Errorf("provider name is empty")
		}

		if _, ok := seenProviderNames[v.GetName()]; ok {
			return nil, fmt.Errorf("provider %s is duplicated", v.GetName())
		}

		seenProviderNames[v.GetName()] = struct{}{}
	}

	return &conf, nil
}
