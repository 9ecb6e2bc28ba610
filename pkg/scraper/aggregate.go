package scraper

import (
	"context"
	"strings"
	"sync"
)

// Candidate is a news-listing entry before its article has been fetched.
type Candidate struct {
	Headline string
	Link     string
	Snippet  string
}

// Item is a scraped news item. Article holds the extracted body text or one
// of the failure sentinels.
type Item struct {
	Headline string
	Link     string
	Snippet  string
	Article  string
}

// IsValid reports whether the item carries real article text rather than a
// failure sentinel.
func (it Item) IsValid() bool {
	return it.Article != "" &&
		!strings.HasPrefix(it.Article, errSentinelPrefix) &&
		it.Article != NoContentSentinel
}

// ScrapeArticles fetches and extracts every candidate's article concurrently.
// Output order matches input order; each goroutine writes only its own slot
// and the call returns once the slowest fetch has finished. A failed fetch
// yields that one item's sentinel and never cancels its siblings.
func (s *Scraper) ScrapeArticles(ctx context.Context, candidates []Candidate) []Item {
	items := make([]Item, len(candidates))

	var wg sync.WaitGroup
	for i, c := range candidates {
		wg.Add(1)
		go func(i int, c Candidate) {
			defer wg.Done()
			items[i] = Item{
				Headline: c.Headline,
				Link:     c.Link,
				Snippet:  c.Snippet,
				Article:  s.FetchArticle(ctx, c.Link),
			}
		}(i, c)
	}
	wg.Wait()

	return items
}

// FilterValid drops items whose extraction failed or came back empty,
// preserving order.
func FilterValid(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.IsValid() {
			out = append(out, it)
		}
	}
	return out
}
