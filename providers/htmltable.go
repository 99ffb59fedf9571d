package providers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"

	"github.com/9seconds/geolookup/geolib"
)

const (
	// HTMLTableSubjectPlaceholder is replaced with a subject in URL
	// templates.
	HTMLTableSubjectPlaceholder = "{ip}"

	// HTMLTableDefaultSelector matches rows of all tables on a page.
	HTMLTableDefaultSelector = "table tr"

	htmlTableDefaultTitle = "HTML Table"
)

type htmlTableProvider struct {
	client      geolib.HTTPClient
	title       string
	urlTemplate string
	selector    string
}

func (h htmlTableProvider) Name() string {
	return NameHTMLTable
}

func (h htmlTableProvider) Title() string {
	return h.title
}

func (h htmlTableProvider) Lookup(ctx context.Context, subject geolib.Subject) (geolib.RawResult, error) {
	resp, err := sendRequest(ctx, h.client, h.buildURL(subject),
		map[string]string{"Accept": "text/html"})
	if err != nil {
		return nil, err
	}

	defer flushResponse(resp.Body)

	var result geolib.RawResult

	if isXPath(h.selector) {
		result, err = h.scrapeXPath(resp.Body)
	} else {
		result, err = h.scrapeCSS(resp.Body)
	}

	if err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, geolib.NewParseError("",
			fmt.Errorf("no table rows matched %q", h.selector))
	}

	return result, nil
}

func (h htmlTableProvider) scrapeCSS(body io.Reader) (geolib.RawResult, error) {
	doc, err := goquery.NewDocumentFromReader(bufio.NewReader(body))
	if err != nil {
		return nil, geolib.NewParseError("cannot parse html", err)
	}

	result := geolib.RawResult{}

	doc.Find(h.selector).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("th, td")
		if cells.Length() < 2 {
			return
		}

		addHTMLTableRow(result, cells.Eq(0).Text(), cells.Eq(1).Text())
	})

	return result, nil
}

func (h htmlTableProvider) scrapeXPath(body io.Reader) (geolib.RawResult, error) {
	tree, err := htmlquery.Parse(bufio.NewReader(body))
	if err != nil {
		return nil, geolib.NewParseError("cannot parse html", err)
	}

	rows, err := htmlquery.QueryAll(tree, h.selector)
	if err != nil {
		return nil, geolib.NewParseError("incorrect xpath expression", err)
	}

	result := geolib.RawResult{}

	for _, row := range rows {
		cells := htmlquery.Find(row, "./th|./td")
		if len(cells) < 2 {
			continue
		}

		addHTMLTableRow(result, htmlquery.InnerText(cells[0]), htmlquery.InnerText(cells[1]))
	}

	return result, nil
}

func (h htmlTableProvider) buildURL(subject geolib.Subject) string {
	return strings.ReplaceAll(h.urlTemplate,
		HTMLTableSubjectPlaceholder,
		url.PathEscape(subject.String()))
}

func addHTMLTableRow(result geolib.RawResult, keyText, valueText string) {
	key := htmlTableKey(keyText)
	value := strings.Join(strings.Fields(valueText), " ")

	if key != "" && value != "" {
		result[key] = value
	}
}

// Selectors which start with / or ./ are XPath expressions.
func isXPath(selector string) bool {
	return strings.HasPrefix(selector, "/") || strings.HasPrefix(selector, "./")
}

// "Country Name:" -> "country_name"
func htmlTableKey(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimRight(text, ":")

	return strings.ToLower(strings.Join(strings.Fields(text), "_"))
}

// NewHTMLTable returns a provider which scrapes 2-column rows of HTML
// tables: first cell is a field name, second is a value. urlTemplate
// should contain {ip} placeholder. selector is either CSS selector or
// XPath expression of table rows.
func NewHTMLTable(client geolib.HTTPClient, title, urlTemplate, selector string) (geolib.Provider, error) {
	if urlTemplate == "" {
		return nil, ErrURLIsRequired
	}

	if _, err := url.Parse(strings.ReplaceAll(urlTemplate, HTMLTableSubjectPlaceholder, "127.0.0.1")); err != nil {
		return nil, fmt.Errorf("incorrect url template: %w", err)
	}

	if title == "" {
		title = htmlTableDefaultTitle
	}

	if selector == "" {
		selector = HTMLTableDefaultSelector
	}

	return htmlTableProvider{
		client:      client,
		title:       title,
		urlTemplate: urlTemplate,
		selector:    selector,
	}, nil
}
