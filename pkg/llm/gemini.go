// Package llm calls the Gemini generateContent API to turn scraped article
// text into market summaries. API failures collapse into fallback strings;
// only a missing credential surfaces as an error.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"
	requestTimeout  = 30 * time.Second

	summaryMaxTokens  = 1000
	overviewMaxTokens = 1200

	summaryFallback  = "Summary unavailable due to API error."
	overviewFallback = "Market overview unavailable due to error."

	noArticlesMessage = "No articles to summarize."
	noTrendingMessage = "No trending news available for market overview."
)

// ErrNoAPIKey means no Gemini credential is configured; callers turn this
// into a hard 500 rather than a fallback summary.
var ErrNoAPIKey = errors.New("gemini api key not configured")

// TrendingItem is a stored news row used as prompt context.
type TrendingItem struct {
	Headline string
	Snippet  string
	Article  string
}

type GeminiClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Summarize produces a five-point analyst summary of the given article texts,
// optionally enriched with recent trending items and a subject symbol. An
// empty article list short-circuits without an outbound call.
func (c *GeminiClient) Summarize(ctx context.Context, articles []string, trending []TrendingItem, symbol string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}
	if len(articles) == 0 {
		return noArticlesMessage, nil
	}

	text, err := c.generate(ctx, summaryPrompt(articles, trending, symbol), summaryMaxTokens)
	if err != nil {
		slog.Error("gemini summary failed", "error", err)
		return summaryFallback, nil
	}
	return text, nil
}

// MarketOverview produces a general market overview from stored trending
// items only.
func (c *GeminiClient) MarketOverview(ctx context.Context, trending []TrendingItem) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}
	if len(trending) == 0 {
		return noTrendingMessage, nil
	}

	text, err := c.generate(ctx, overviewPrompt(trending), overviewMaxTokens)
	if err != nil {
		slog.Error("gemini market overview failed", "error", err)
		return overviewFallback, nil
	}
	return text, nil
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate issues a single generateContent call with fixed sampling
// parameters. The API key travels as a query parameter.
func (c *GeminiClient) generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.3,
			MaxOutputTokens: maxTokens,
			TopP:            0.8,
			TopK:            40,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	endpoint := c.endpoint + "?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty gemini response")
	}

	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}
