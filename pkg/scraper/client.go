// Package scraper fetches and parses third-party finance and news pages. The
// selectors and heuristics here are coupled to the page structure of the
// scraped sites; when that structure changes they degrade to sentinel values
// rather than failing the request.
package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// browserUA is sent on every outbound request; the scraped sites serve a
// stripped-down page to unknown clients.
const browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

const fetchTimeout = 20 * time.Second

type Scraper struct {
	client *resty.Client
}

func New() *Scraper {
	client := resty.New().
		SetTimeout(fetchTimeout).
		SetHeader("User-Agent", browserUA)
	return &Scraper{client: client}
}

// FetchPage GETs url and returns the raw response body. The status code is
// not checked; error pages simply yield markup the parsers find nothing in.
func (s *Scraper) FetchPage(ctx context.Context, url string) (string, error) {
	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	return resp.String(), nil
}
