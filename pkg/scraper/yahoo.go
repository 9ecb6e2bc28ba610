package scraper

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SearchURL is the news-search listing the trending pass scrapes.
const SearchURL = "https://news.search.yahoo.com/search?p=trending+indian+market+news"

// redirectPattern matches the click-tracking wrapper that embeds the real
// destination between RU= and /RK.
var redirectPattern = regexp.MustCompile(`RU=(.+?)/RK`)

// ParseSearchResults extracts headline/link/snippet candidates from a
// news-search results page. List items whose class list contains an ad marker
// are skipped, and wrapped redirect links are unwrapped to their destination.
func ParseSearchResults(page string) []Candidate {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil
	}

	var out []Candidate
	doc.Find("li").Each(func(_ int, li *goquery.Selection) {
		class, _ := li.Attr("class")
		for _, token := range strings.Fields(class) {
			if strings.Contains(token, "ad") {
				return
			}
		}

		anchor := li.Find("h4.s-title a").First()
		headline := strings.TrimSpace(anchor.Text())
		link, _ := anchor.Attr("href")
		if headline == "" || link == "" {
			return
		}

		out = append(out, Candidate{
			Headline: headline,
			Link:     unwrapRedirect(link),
			Snippet:  strings.TrimSpace(li.Find("p.s-desc").First().Text()),
		})
	})

	return out
}

// unwrapRedirect decodes a RU=<target>/RK redirect-wrapper link to its
// embedded destination URL. Links without the wrapper pass through verbatim.
func unwrapRedirect(link string) string {
	unquoted, err := url.QueryUnescape(link)
	if err != nil {
		return link
	}

	m := redirectPattern.FindStringSubmatch(unquoted)
	if m == nil {
		return link
	}

	target, err := url.QueryUnescape(m[1])
	if err != nil {
		return m[1]
	}
	return target
}
