package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/Baibhabsarkar41/Stocks-Analyzer/db"
	"github.com/Baibhabsarkar41/Stocks-Analyzer/internal/auth"
	"github.com/Baibhabsarkar41/Stocks-Analyzer/internal/handler"
	"github.com/Baibhabsarkar41/Stocks-Analyzer/internal/repository"
	"github.com/Baibhabsarkar41/Stocks-Analyzer/internal/symbols"
	"github.com/Baibhabsarkar41/Stocks-Analyzer/pkg/llm"
	"github.com/Baibhabsarkar41/Stocks-Analyzer/pkg/scraper"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const defaultSymbolsCSV = "data/symbols_nse.csv"

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatalf("error migrating DB: %v", err)
	}

	csvPath := os.Getenv("SYMBOLS_CSV")
	if csvPath == "" {
		csvPath = defaultSymbolsCSV
	}
	index, err := symbols.Load(csvPath)
	if err != nil {
		log.Fatalf("error loading symbol table: %v", err)
	}
	slog.Info("symbol table loaded", "path", csvPath, "entries", index.Len())

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		secret = "replace-this-in-production"
		slog.Warn("SECRET_KEY not set, using insecure default")
	}
	tokens := auth.NewManager(secret)

	userRepo := repository.NewUserRepository(db.DB)
	newsRepo := repository.NewNewsRepository(db.DB)

	authHandler := handler.NewAuthHandler(userRepo, tokens)
	stockHandler := handler.NewStockHandler(scraper.New(), newsRepo, llm.NewGeminiClient(os.Getenv("GEMINI_API_KEY")))
	symbolHandler := handler.NewSymbolHandler(index)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.GET("/api/search-symbol", symbolHandler.Search)

	api := r.Group("/api", auth.RequireUser(tokens, userRepo))
	api.GET("/stocks/:symbol/raw", stockHandler.GetRawReports)
	api.GET("/stocks/:symbol/gist", stockHandler.GetStockGist)
	api.GET("/stock-data/", stockHandler.GetStockData)
	api.GET("/google-news/", stockHandler.GetGoogleNews)
	api.GET("/trending-news-india/", stockHandler.GetTrendingNewsIndia)
	api.GET("/market-overview/", stockHandler.GetMarketOverview)
	api.GET("/stock-analysis/", stockHandler.GetStockAnalysis)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	err = r.Run(addr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
