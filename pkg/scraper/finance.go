package scraper

import (
	"fmt"
	"strings"

	"github.com/Baibhabsarkar41/Stocks-Analyzer/internal/model"

	"github.com/PuerkitoBio/goquery"
)

const financeOrigin = "https://www.google.com"

// maxRelatedNews caps how many cards of the quote page's related-news widget
// are considered.
const maxRelatedNews = 7

// QuoteURL builds the quote-page URL for an NSE symbol.
func QuoteURL(symbol string) string {
	return fmt.Sprintf("%s/finance/quote/%s:NSE", financeOrigin, symbol)
}

// ParseQuote reads the visible stock metrics off a quote page. Fields whose
// element is missing keep the not-available marker.
func ParseQuote(page string) model.StockSnapshot {
	snap := model.NewStockSnapshot()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return snap
	}

	if price := strings.TrimSpace(doc.Find("div.YMlKec.fxKbKc").First().Text()); price != "" {
		snap.Price = price
	}

	// summary rows next to the chart
	doc.Find("div.gyFHrc").Each(func(_ int, row *goquery.Selection) {
		label := strings.ToLower(strings.TrimSpace(row.Find("div.mfs7Fc").First().Text()))
		value := strings.TrimSpace(row.Find("div.P6K39c").First().Text())
		if label == "" || value == "" {
			return
		}

		switch {
		case strings.Contains(label, "previous close"):
			snap.PreviousClose = value
		case strings.Contains(label, "day range"):
			snap.DayRange = value
		case strings.Contains(label, "year range"):
			snap.YearRange = value
		case strings.Contains(label, "market cap"):
			snap.MarketCap = value
		case strings.Contains(label, "avg volume"), strings.Contains(label, "volume"):
			snap.AvgVolume = value
		case strings.Contains(label, "p/e ratio"):
			snap.PERatio = value
		case strings.Contains(label, "dividend yield"):
			snap.DividendYield = value
		case strings.Contains(label, "primary exchange"):
			snap.PrimaryExchange = value
		}
	})

	// financials table carries revenue and profit
	doc.Find("table.slpEwd tr.roXhBd").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		label := strings.ToLower(strings.TrimSpace(cells.Eq(0).Find("div.rsPbEe").Text()))
		value := strings.TrimSpace(cells.Eq(1).Text())
		if label == "" || value == "" {
			return
		}

		if strings.Contains(label, "revenue") && snap.Revenue == model.NotAvailable {
			snap.Revenue = value
		}
		if (strings.Contains(label, "net profit margin") || strings.Contains(label, "profit")) && snap.Profit == model.NotAvailable {
			snap.Profit = value
		}
	})

	return snap
}

// ParseRelatedNews pulls headline/link candidates out of the quote page's
// related-news widget. Relative links are made absolute against the site
// origin. Cards missing a headline or link are skipped.
func ParseRelatedNews(page string) []Candidate {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil
	}

	var out []Candidate
	doc.Find("div.yY3Lee").EachWithBreak(func(i int, item *goquery.Selection) bool {
		if i >= maxRelatedNews {
			return false
		}

		link, ok := item.Find("a[href]").First().Attr("href")
		headline := strings.TrimSpace(item.Find("div.Yfwt5").First().Text())
		if !ok || link == "" || headline == "" {
			return true
		}

		if strings.HasPrefix(link, "/") {
			link = financeOrigin + link
		}

		out = append(out, Candidate{Headline: headline, Link: link})
		return true
	})

	return out
}
