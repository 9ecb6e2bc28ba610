package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Baibhabsarkar41/Stocks-Analyzer/internal/model"
	"github.com/Baibhabsarkar41/Stocks-Analyzer/pkg/llm"
	"github.com/Baibhabsarkar41/Stocks-Analyzer/pkg/scraper"

	"github.com/gin-gonic/gin"
)

const (
	summaryContextItems  = 5
	overviewContextItems = 10
)

type NewsStore interface {
	FindByLink(link string) (*model.TrendingNews, error)
	Create(n *model.TrendingNews) error
	ListLatest(limit int) ([]model.TrendingNews, error)
}

type PageScraper interface {
	FetchPage(ctx context.Context, url string) (string, error)
	ScrapeArticles(ctx context.Context, candidates []scraper.Candidate) []scraper.Item
}

type Summarizer interface {
	Summarize(ctx context.Context, articles []string, trending []llm.TrendingItem, symbol string) (string, error)
	MarketOverview(ctx context.Context, trending []llm.TrendingItem) (string, error)
}

type StockHandler struct {
	scraper    PageScraper
	news       NewsStore
	summarizer Summarizer
}

func NewStockHandler(scraper PageScraper, news NewsStore, summarizer Summarizer) *StockHandler {
	return &StockHandler{scraper: scraper, news: news, summarizer: summarizer}
}

// GetStockData scrapes a quote page and returns its metrics, "N/A" for any
// field missing from the markup.
func (h *StockHandler) GetStockData(c *gin.Context) {
	symbol, ok := requireSymbol(c)
	if !ok {
		return
	}

	page, err := h.scraper.FetchPage(c.Request.Context(), scraper.QuoteURL(symbol))
	if err != nil {
		slog.Error("error fetching quote page", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Stock data fetch failed: %v", err)})
		return
	}

	snap := scraper.ParseQuote(page)
	c.JSON(http.StatusOK, StockDataResponse{Symbol: symbol, SnapshotResponse: toSnapshotResponse(snap)})
}

// GetGoogleNews scrapes the quote page's related-news widget, extracts each
// linked article concurrently, and returns the surviving items with a
// consolidated summary.
func (h *StockHandler) GetGoogleNews(c *gin.Context) {
	symbol, ok := requireSymbol(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	page, err := h.scraper.FetchPage(ctx, scraper.QuoteURL(symbol))
	if err != nil {
		slog.Error("error fetching quote page", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("News scraping failed: %v", err)})
		return
	}

	candidates := scraper.ParseRelatedNews(page)
	items := scraper.FilterValid(h.scraper.ScrapeArticles(ctx, candidates))

	summary, err := h.summarizer.Summarize(ctx, articleTexts(items), h.trendingItems(summaryContextItems), symbol)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gemini API key not configured"})
		return
	}

	c.JSON(http.StatusOK, GoogleNewsResponse{
		Symbol:              strings.ToUpper(symbol),
		News:                toNewsResponses(items),
		ConsolidatedSummary: summary,
		Sources:             itemLinks(items),
	})
}

// GetTrendingNewsIndia scrapes the news-search listing, extracts every
// result's article concurrently, and persists items not yet stored. A failed
// store for one item is logged and skipped; the rest continue.
func (h *StockHandler) GetTrendingNewsIndia(c *gin.Context) {
	ctx := c.Request.Context()

	page, err := h.scraper.FetchPage(ctx, scraper.SearchURL)
	if err != nil {
		slog.Error("error fetching news search page", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("News scraping failed: %v", err)})
		return
	}

	candidates := scraper.ParseSearchResults(page)
	items := scraper.FilterValid(h.scraper.ScrapeArticles(ctx, candidates))

	stored := 0
	for _, it := range items {
		existing, err := h.news.FindByLink(it.Link)
		if err != nil {
			slog.Error("error checking stored news", "link", it.Link, "error", err)
			continue
		}
		if existing != nil {
			continue
		}

		n := &model.TrendingNews{Headline: it.Headline, Link: it.Link, Snippet: it.Snippet, Article: it.Article}
		if err := h.news.Create(n); err != nil {
			slog.Error("error storing trending news", "link", it.Link, "error", err)
			continue
		}
		stored++
	}

	c.JSON(http.StatusOK, TrendingNewsResponse{
		News:         toNewsResponses(items),
		StoredInDB:   stored,
		TotalFetched: len(items),
	})
}

// GetMarketOverview generates a market overview from the most recently stored
// trending items.
func (h *StockHandler) GetMarketOverview(c *gin.Context) {
	overview, err := h.summarizer.MarketOverview(c.Request.Context(), h.trendingItems(overviewContextItems))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gemini API key not configured"})
		return
	}

	c.JSON(http.StatusOK, MarketOverviewResponse{
		MarketOverview: overview,
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
	})
}

// GetStockAnalysis combines the quote snapshot, the related-news pipeline,
// and the consolidated summary in one response. The quote page is fetched
// once and reused for both the metrics and the news widget.
func (h *StockHandler) GetStockAnalysis(c *gin.Context) {
	symbol, ok := requireSymbol(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	page, err := h.scraper.FetchPage(ctx, scraper.QuoteURL(symbol))
	if err != nil {
		slog.Error("error fetching quote page", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Stock analysis failed: %v", err)})
		return
	}

	snap := scraper.ParseQuote(page)
	candidates := scraper.ParseRelatedNews(page)
	items := scraper.FilterValid(h.scraper.ScrapeArticles(ctx, candidates))

	analysis, err := h.summarizer.Summarize(ctx, articleTexts(items), h.trendingItems(summaryContextItems), symbol)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gemini API key not configured"})
		return
	}

	c.JSON(http.StatusOK, StockAnalysisResponse{
		Symbol:                strings.ToUpper(symbol),
		StockData:             toSnapshotResponse(snap),
		StockNews:             toNewsResponses(items),
		ComprehensiveAnalysis: analysis,
		AnalysisTimestamp:     time.Now().UTC().Format(time.RFC3339),
	})
}

// Placeholder report collector kept for the frontend's report views.
var (
	placeholderReports = []string{
		"Report 1: Stock is performing well.",
		"Report 2: Analysts predict growth.",
	}
	placeholderSources = []string{
		"https://example.com/report1",
		"https://example.com/report2",
	}
)

func (h *StockHandler) GetRawReports(c *gin.Context) {
	c.JSON(http.StatusOK, RawReportsResponse{
		StockSymbol: c.Param("symbol"),
		Reports:     placeholderReports,
		Sources:     placeholderSources,
	})
}

func (h *StockHandler) GetStockGist(c *gin.Context) {
	c.JSON(http.StatusOK, StockGistResponse{
		StockSymbol: c.Param("symbol"),
		Gist:        "Summary: Stock shows positive trends based on reports.",
		Sources:     placeholderSources,
	})
}

// trendingItems reads recent stored news for prompt context. A read failure
// degrades to an empty context block, never a request failure.
func (h *StockHandler) trendingItems(limit int) []llm.TrendingItem {
	rows, err := h.news.ListLatest(limit)
	if err != nil {
		slog.Warn("error fetching trending context", "error", err)
		return nil
	}

	items := make([]llm.TrendingItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, llm.TrendingItem{Headline: r.Headline, Snippet: r.Snippet, Article: r.Article})
	}
	return items
}

func requireSymbol(c *gin.Context) (string, bool) {
	symbol := strings.TrimSpace(c.Query("symbol"))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol query parameter is required"})
		return "", false
	}
	return symbol, true
}

func toSnapshotResponse(s model.StockSnapshot) SnapshotResponse {
	return SnapshotResponse{
		Price:           s.Price,
		Revenue:         s.Revenue,
		Profit:          s.Profit,
		PreviousClose:   s.PreviousClose,
		DayRange:        s.DayRange,
		YearRange:       s.YearRange,
		MarketCap:       s.MarketCap,
		AvgVolume:       s.AvgVolume,
		PERatio:         s.PERatio,
		DividendYield:   s.DividendYield,
		PrimaryExchange: s.PrimaryExchange,
	}
}

func toNewsResponses(items []scraper.Item) []NewsItemResponse {
	out := make([]NewsItemResponse, len(items))
	for i, it := range items {
		out[i] = NewsItemResponse{Headline: it.Headline, Link: it.Link, Snippet: it.Snippet, Article: it.Article}
	}
	return out
}

func articleTexts(items []scraper.Item) []string {
	texts := make([]string, len(items))
	for i, it := range items {
		texts[i] = it.Article
	}
	return texts
}

func itemLinks(items []scraper.Item) []string {
	links := make([]string, len(items))
	for i, it := range items {
		links[i] = it.Link
	}
	return links
}
