package llm

import (
	"fmt"
	"strings"
)

const (
	maxArticleChars  = 2000
	maxCombinedChars = 10000

	maxTrendingContext = 5
	maxSnippetChars    = 100
	maxOverviewArticle = 300
)

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// summaryPrompt combines the article texts with the fixed five-point analysis
// template and, when available, a trending-news context block.
func summaryPrompt(articles []string, trending []TrendingItem, symbol string) string {
	truncated := make([]string, len(articles))
	for i, a := range articles {
		truncated[i] = truncate(a, maxArticleChars)
	}
	combined := truncate(strings.Join(truncated, "\n\n---\n\n"), maxCombinedChars)

	symbolText := ""
	if symbol != "" {
		symbolText = " for " + strings.ToUpper(symbol)
	}

	var sb strings.Builder
	sb.WriteString("You are a senior financial analyst with expertise in Indian stock markets. ")
	fmt.Fprintf(&sb, "Analyze the following news articles%s and provide a comprehensive 5-point summary.\n\n", symbolText)
	fmt.Fprintf(&sb, "SPECIFIC STOCK NEWS%s:\n%s\n", symbolText, combined)
	sb.WriteString(trendingContext(trending))
	sb.WriteString("\n")
	sb.WriteString("Based on both the specific stock news and current market trends, provide analysis covering:\n")
	sb.WriteString("1. **Overall Market Sentiment**: Current mood and investor confidence\n")
	sb.WriteString("2. **Key Market Drivers**: Main factors influencing the stock/market\n")
	sb.WriteString("3. **Technical & Fundamental Outlook**: Price targets, financial health, growth prospects\n")
	sb.WriteString("4. **Risk Assessment**: Potential challenges and market risks\n")
	sb.WriteString("5. **Investment Recommendation**: Clear BUY/SELL/HOLD recommendation with rationale\n\n")
	sb.WriteString("Consider both the specific stock context and broader market trends in your analysis. ")
	sb.WriteString("Be specific about price levels, timeframes, and confidence levels where applicable.")

	return sb.String()
}

// trendingContext renders up to maxTrendingContext stored items as the
// "current market trends" block; empty input renders nothing.
func trendingContext(items []TrendingItem) string {
	if len(items) == 0 {
		return ""
	}
	if len(items) > maxTrendingContext {
		items = items[:maxTrendingContext]
	}

	var sb strings.Builder
	sb.WriteString("\n\nCURRENT MARKET TRENDS (for additional context):\n")
	for i, it := range items {
		fmt.Fprintf(&sb, "%d. %s", i+1, it.Headline)
		if it.Snippet != "" {
			fmt.Fprintf(&sb, " - %s...", truncate(it.Snippet, maxSnippetChars))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// overviewPrompt renders stored trending items into the market-overview
// template.
func overviewPrompt(items []TrendingItem) string {
	var news strings.Builder
	for i, it := range items {
		fmt.Fprintf(&news, "%d. **%s**\n", i+1, it.Headline)
		if it.Snippet != "" {
			fmt.Fprintf(&news, "   %s\n", it.Snippet)
		}
		if len(it.Article) > 50 {
			fmt.Fprintf(&news, "   %s...\n", truncate(it.Article, maxOverviewArticle))
		}
		news.WriteString("\n")
	}

	var sb strings.Builder
	sb.WriteString("You are a senior financial market analyst. Based on the following trending Indian market news, ")
	sb.WriteString("provide a comprehensive market overview with:\n\n")
	sb.WriteString("1. **Current Market Sentiment**: Overall mood and direction\n")
	sb.WriteString("2. **Key Market Themes**: Major trends and sectors in focus\n")
	sb.WriteString("3. **Economic Indicators**: Important economic factors at play\n")
	sb.WriteString("4. **Sector Analysis**: Which sectors are performing well/poorly\n")
	sb.WriteString("5. **Market Outlook**: Short to medium-term market expectations\n\n")
	fmt.Fprintf(&sb, "TRENDING MARKET NEWS:\n%s\n", news.String())
	sb.WriteString("Provide actionable insights for investors and traders.")

	return sb.String()
}
