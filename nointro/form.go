package nointro

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// form is a scraped HTML form: where to submit and what to send.
type form struct {
	url    string
	method string
	values url.Values
}

// scrapeForm pulls the download form out of resp's page. The form
// action is resolved against the page URL and the submitted values are
// those of the submit button and any pre-checked inputs, matching what
// a browser would send on click.
func scrapeForm(resp *http.Response) (*form, error) {
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}
	sel := doc.Find("#content form").First()
	if sel.Length() == 0 {
		return nil, fmt.Errorf("%s: page has no download form", resp.Request.URL)
	}

	action, ok := sel.Attr("action")
	if !ok {
		return nil, fmt.Errorf("%s: download form has no action", resp.Request.URL)
	}
	ref, err := url.Parse(action)
	if err != nil {
		return nil, fmt.Errorf("bad form action %q: %w", action, err)
	}

	values := url.Values{}
	sel.Find("input[type=submit], input[checked]").Each(func(_ int, in *goquery.Selection) {
		name, ok := in.Attr("name")
		if !ok {
			return
		}
		values.Set(name, in.AttrOr("value", ""))
	})

	return &form{
		url:    resp.Request.URL.ResolveReference(ref).String(),
		method: strings.ToUpper(sel.AttrOr("method", http.MethodGet)),
		values: values,
	}, nil
}
