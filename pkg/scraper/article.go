package scraper

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// NoContentSentinel is returned when no extraction path yields any text.
// Failure sentinels stand in for errors so one bad page never fails a pass;
// downstream filtering detects them by string comparison.
const NoContentSentinel = "No article content found."

const errSentinelPrefix = "Error scraping article: "

const (
	// Lines at or below minLineChars after stripping are boilerplate
	// (bylines, timestamps, share buttons) and are dropped.
	minLineChars    = 20
	maxArticleLines = 50

	// probable-article thresholds for the last-resort block scan
	minBlockBreaks = 3
	minBlockChars  = 500
)

// strippedTags are removed from the document before any text extraction.
const strippedTags = "aside, footer, nav, form, script, style, header, noscript"

// contentClasses are the main-content class names of common publishing
// platforms, scanned in order when no semantic <article> element exists.
var contentClasses = []string{
	"article-content", "story-body", "main-content", "content__article-body",
	"entry-content", "post-content", "news-content", "article__content",
	"caas-body", "caas-content", "body__inner", "story__content",
}

// junkKeywords disqualify a block in the probable-article scan.
var junkKeywords = []string{"copyright", "footer", "related", "advertisement", "comments"}

// FetchArticle downloads url and extracts its readable article text. Any
// fetch or parse failure is folded into a sentinel string.
func (s *Scraper) FetchArticle(ctx context.Context, url string) string {
	page, err := s.FetchPage(ctx, url)
	if err != nil {
		return errSentinelPrefix + err.Error()
	}
	return ExtractArticle(page)
}

// ExtractArticle pulls the most likely main-content text out of raw article
// markup. Extraction paths are tried in order: semantic <article> element,
// known content class names, then a heuristic scan over every div. The
// winning block's text is reduced to at most maxArticleLines lines longer
// than minLineChars.
func ExtractArticle(page string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return errSentinelPrefix + err.Error()
	}

	doc.Find(strippedTags).Remove()

	var text string
	if article := doc.Find("article").First(); article.Length() > 0 {
		text = blockText(article)
	} else if main := longestCandidate(contentCandidates(doc)); main != nil {
		text = blockText(main)
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if utf8.RuneCountInString(strings.TrimSpace(line)) > minLineChars {
			lines = append(lines, line)
			if len(lines) == maxArticleLines {
				break
			}
		}
	}

	if len(lines) == 0 {
		return NoContentSentinel
	}
	return strings.Join(lines, "\n")
}

// contentCandidates collects known content-class divs, falling back to a scan
// of every div for probable article blocks.
func contentCandidates(doc *goquery.Document) []*goquery.Selection {
	var candidates []*goquery.Selection
	for _, class := range contentClasses {
		if div := doc.Find("div." + class).First(); div.Length() > 0 {
			candidates = append(candidates, div)
		}
	}
	if len(candidates) > 0 {
		return candidates
	}

	doc.Find("div").Each(func(_ int, div *goquery.Selection) {
		if isProbableArticle(div) {
			candidates = append(candidates, div)
		}
	})
	return candidates
}

// isProbableArticle reports whether a block looks like body text: several
// line breaks, enough characters, and none of the junk keywords.
func isProbableArticle(div *goquery.Selection) bool {
	text := blockText(div)
	if strings.Count(text, "\n") < minBlockBreaks || len(text) < minBlockChars {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range junkKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}

// longestCandidate picks the candidate with the most visible text.
func longestCandidate(candidates []*goquery.Selection) *goquery.Selection {
	var best *goquery.Selection
	bestLen := -1
	for _, c := range candidates {
		if l := textLength(c); l > bestLen {
			best, bestLen = c, l
		}
	}
	return best
}

// blockText returns the selection's visible text with one line per text node,
// each stripped, empty nodes skipped.
func blockText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, "\n")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// textLength is the character count of the stripped text fragments.
func textLength(sel *goquery.Selection) int {
	total := 0
	for _, node := range sel.Nodes {
		var parts []string
		collectText(node, &parts)
		for _, p := range parts {
			total += len(p)
		}
	}
	return total
}
