package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"finbrief/db"
	"finbrief/internal/auth"
	"finbrief/internal/handler"
	"finbrief/internal/repository"
	"finbrief/pkg/llm"
	"finbrief/pkg/market"
	"finbrief/pkg/news"
	"finbrief/pkg/translate"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var cache *db.Cache
	if os.Getenv("REDIS_URL") != "" {
		if err := db.ConnectRedis(); err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()
		cache = db.NewCache(db.Redis)
	} else {
		slog.Warn("REDIS_URL not set, response caching disabled")
		cache = db.NewCache(nil)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}
	issuer := auth.NewTokenIssuer(secret)

	userRepo := repository.NewUserRepository(db.DB)
	interestRepo := repository.NewInterestRepository(db.DB)
	portfolioRepo := repository.NewPortfolioRepository(db.DB)

	naver := news.NewNaverClient(news.NaverCredentials{
		ClientID:     os.Getenv("NAVER_CLIENT_ID"),
		ClientSecret: os.Getenv("NAVER_CLIENT_SECRET"),
	})
	aggregator := news.NewAggregator(naver, newGlobalSource())

	yahoo := market.NewYahooProvider()
	var providers []market.QuoteProvider
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		providers = append(providers, market.NewFinnhubProvider(key))
	}
	providers = append(providers, yahoo)
	quotes := market.NewService(providers...)

	analyst := llm.NewAnalyst(newGenerator())

	authHandler := handler.NewAuthHandler(userRepo, issuer)
	assetHandler := handler.NewAssetHandler(quotes, yahoo, aggregator, analyst, cache)
	interestHandler := handler.NewInterestHandler(interestRepo)
	portfolioHandler := handler.NewPortfolioHandler(portfolioRepo)
	homeHandler := handler.NewHomeHandler(quotes, yahoo)
	healthHandler := handler.NewHealthHandler(db.DB)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/health", healthHandler.GetHealth)
	r.GET("/home/indices", homeHandler.GetIndices)
	r.GET("/home/chart/:ticker", homeHandler.GetChart)
	r.GET("/home/exchange-rate", homeHandler.GetExchangeRate)

	protected := r.Group("/", auth.Middleware(issuer, userRepo))
	protected.GET("/users/me", authHandler.Me)
	protected.GET("/assets/price/:ticker", assetHandler.GetPrice)
	protected.GET("/assets/news/:ticker", assetHandler.GetNews)
	protected.GET("/assets/history/:ticker", assetHandler.GetHistory)
	protected.GET("/assets/briefing/:ticker", assetHandler.GetBriefing)
	protected.POST("/interests", interestHandler.Create)
	protected.GET("/interests", interestHandler.List)
	protected.DELETE("/interests/:ticker", interestHandler.Delete)
	protected.GET("/portfolio", portfolioHandler.List)
	protected.POST("/portfolio", portfolioHandler.Create)
	protected.DELETE("/portfolio/:id", portfolioHandler.Delete)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// newGlobalSource picks the global news strategy: Google News RSS by
// default, Yahoo provider news (with title translation) when requested.
func newGlobalSource() news.GlobalSource {
	if os.Getenv("GLOBAL_NEWS_SOURCE") == "yahoo" {
		translator := translate.NewGoogleClient(os.Getenv("TRANSLATE_TARGET_LANG"))
		return news.NewYahooNewsClient(translator)
	}
	return news.NewGoogleNewsClient()
}

func newGenerator() llm.Generator {
	switch os.Getenv("LLM_PROVIDER") {
	case "openai":
		return llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
	case "anthropic":
		return llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"))
	default:
		client, err := llm.NewGeminiClient(context.Background(), os.Getenv("GEMINI_API_KEY"))
		if err != nil {
			log.Fatalf("error initializing Gemini client: %v", err)
		}
		return client
	}
}
