package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func testClient(srv *httptest.Server, key string) *GeminiClient {
	return &GeminiClient{apiKey: key, endpoint: srv.URL, httpClient: srv.Client()}
}

func geminiReply(text string) string {
	return fmt.Sprintf(`{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, text)
}

func TestSummarize_NoAPIKey(t *testing.T) {
	c := NewGeminiClient("")
	_, err := c.Summarize(context.Background(), []string{"article"}, nil, "TCS")
	assert.Equal(t, ErrNoAPIKey, err)

	_, err = c.MarketOverview(context.Background(), []TrendingItem{{Headline: "h"}})
	assert.Equal(t, ErrNoAPIKey, err)
}

func TestSummarize_NoArticlesSkipsAPICall(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	got, err := testClient(srv, "test-key").Summarize(context.Background(), nil, nil, "TCS")

	assert.Equal(t, nil, err)
	assert.Equal(t, "No articles to summarize.", got)
	assert.Equal(t, 0, calls)
}

func TestSummarize_Success(t *testing.T) {
	var gotReq generateRequest
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		json.NewDecoder(r.Body).Decode(&gotReq)
		fmt.Fprint(w, geminiReply("  Sentiment is positive.\n"))
	}))
	defer srv.Close()

	trending := []TrendingItem{{Headline: "Nifty at record high", Snippet: "Indices extend gains"}}
	got, err := testClient(srv, "test-key").Summarize(context.Background(), []string{"article body"}, trending, "tcs")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Sentiment is positive.", got)
	assert.Equal(t, "test-key", gotKey)

	assert.Equal(t, 0.3, gotReq.GenerationConfig.Temperature)
	assert.Equal(t, 0.8, gotReq.GenerationConfig.TopP)
	assert.Equal(t, 40, gotReq.GenerationConfig.TopK)
	assert.Equal(t, summaryMaxTokens, gotReq.GenerationConfig.MaxOutputTokens)

	prompt := gotReq.Contents[0].Parts[0].Text
	assert.MatchRegex(t, prompt, "for TCS")
	assert.MatchRegex(t, prompt, "article body")
	assert.MatchRegex(t, prompt, "CURRENT MARKET TRENDS")
	assert.MatchRegex(t, prompt, "Nifty at record high")
}

func TestSummarize_APIErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	got, err := testClient(srv, "test-key").Summarize(context.Background(), []string{"article"}, nil, "")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Summary unavailable due to API error.", got)
}

func TestSummarize_EmptyCandidatesFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates":[]}`)
	}))
	defer srv.Close()

	got, err := testClient(srv, "test-key").Summarize(context.Background(), []string{"article"}, nil, "")

	assert.Equal(t, nil, err)
	assert.Equal(t, summaryFallback, got)
}

func TestMarketOverview_NoTrending(t *testing.T) {
	got, err := NewGeminiClient("test-key").MarketOverview(context.Background(), nil)

	assert.Equal(t, nil, err)
	assert.Equal(t, "No trending news available for market overview.", got)
}

func TestMarketOverview_Success(t *testing.T) {
	var gotReq generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		fmt.Fprint(w, geminiReply("Markets look steady."))
	}))
	defer srv.Close()

	trending := []TrendingItem{{Headline: "RBI holds rates", Snippet: "Policy unchanged"}}
	got, err := testClient(srv, "test-key").MarketOverview(context.Background(), trending)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Markets look steady.", got)
	assert.Equal(t, overviewMaxTokens, gotReq.GenerationConfig.MaxOutputTokens)
	assert.MatchRegex(t, gotReq.Contents[0].Parts[0].Text, "TRENDING MARKET NEWS")
	assert.MatchRegex(t, gotReq.Contents[0].Parts[0].Text, "RBI holds rates")
}

func TestMarketOverview_APIErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	got, err := testClient(srv, "test-key").MarketOverview(context.Background(), []TrendingItem{{Headline: "h"}})

	assert.Equal(t, nil, err)
	assert.Equal(t, "Market overview unavailable due to error.", got)
}
