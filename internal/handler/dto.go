package handler

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type SnapshotResponse struct {
	Price           string `json:"price"`
	Revenue         string `json:"revenue"`
	Profit          string `json:"profit"`
	PreviousClose   string `json:"previous_close"`
	DayRange        string `json:"day_range"`
	YearRange       string `json:"year_range"`
	MarketCap       string `json:"market_cap"`
	AvgVolume       string `json:"avg_volume"`
	PERatio         string `json:"pe_ratio"`
	DividendYield   string `json:"dividend_yield"`
	PrimaryExchange string `json:"primary_exchange"`
}

type StockDataResponse struct {
	Symbol string `json:"symbol"`
	SnapshotResponse
}

type NewsItemResponse struct {
	Headline string `json:"headline"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet,omitempty"`
	Article  string `json:"article"`
}

type GoogleNewsResponse struct {
	Symbol              string             `json:"symbol"`
	News                []NewsItemResponse `json:"news"`
	ConsolidatedSummary string             `json:"consolidated_summary"`
	Sources             []string           `json:"sources"`
}

type TrendingNewsResponse struct {
	News         []NewsItemResponse `json:"news"`
	StoredInDB   int                `json:"stored_in_db"`
	TotalFetched int                `json:"total_fetched"`
}

type MarketOverviewResponse struct {
	MarketOverview string `json:"market_overview"`
	GeneratedAt    string `json:"generated_at"`
}

type StockAnalysisResponse struct {
	Symbol                string             `json:"symbol"`
	StockData             SnapshotResponse   `json:"stock_data"`
	StockNews             []NewsItemResponse `json:"stock_news"`
	ComprehensiveAnalysis string             `json:"comprehensive_analysis"`
	AnalysisTimestamp     string             `json:"analysis_timestamp"`
}

type RawReportsResponse struct {
	StockSymbol string   `json:"stock_symbol"`
	Reports     []string `json:"reports"`
	Sources     []string `json:"sources"`
}

type StockGistResponse struct {
	StockSymbol string   `json:"stock_symbol"`
	Gist        string   `json:"gist"`
	Sources     []string `json:"sources"`
}
