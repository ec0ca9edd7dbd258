package main

import (
	"context"
	"log"
	"os"
	"strings"

	"formloom/internal/config"
	"formloom/internal/formapi"
	"formloom/internal/gemini"
	"formloom/internal/httputil"
	"formloom/internal/llmapi"
	"formloom/internal/pdf"
	"formloom/internal/prompt"
	"formloom/internal/ratelimit"
	"formloom/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := config.Load(); err != nil {
		log.Println("no .env loaded:", err)
	}

	ctx := context.Background()

	store, err := storage.Connect(ctx, storage.Options{
		Endpoint:  config.StorageEndpoint(),
		AccessKey: config.StorageAccessKey(),
		SecretKey: config.StorageSecretKey(),
		Bucket:    config.StorageBucket(),
		UseSSL:    config.StorageUseSSL(),
	})
	if err != nil {
		log.Fatal("storage: ", err)
	}

	var llm llmapi.Generator
	if key := config.GeminiAPIKey(); key == "" {
		log.Println("warning: GEMINI_API_KEY not set; rating endpoints will return errors")
	} else {
		client, err := gemini.NewClient(ctx, key, config.GeminiModel(), config.GeminiTemperature())
		if err != nil {
			log.Fatal("gemini: ", err)
		}
		llm = client
	}

	prompts, err := prompt.Load()
	if err != nil {
		log.Fatal("prompts: ", err)
	}

	renderer, err := pdf.NewRenderer(config.ChromeBin())
	if err != nil {
		log.Fatal("pdf renderer: ", err)
	}

	var limits ratelimit.Store = ratelimit.NewMemoryStore()
	if addr := config.RateLimitRedisAddr(); addr != "" {
		rs, err := ratelimit.NewRedisStore(addr, config.RateLimitRedisPassword())
		if err != nil {
			log.Fatal("rate limit redis: ", err)
		}
		defer rs.Close()
		limits = rs
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(httputil.RequestID())
	r.Use(httputil.Recovery(config.IsDevelopment()))

	corsCfg := cors.DefaultConfig()
	if origins := config.CORSOrigins(); len(origins) > 0 {
		corsCfg.AllowOrigins = origins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	r.Use(cors.New(corsCfg))

	r.GET("/health", formapi.Health())

	window := config.RateLimitWindow()

	api := r.Group("/api")
	api.Use(ratelimit.Middleware(limits, "api", config.RateLimitMax(), window))
	{
		formGroup := api.Group("/form")
		{
			formGroup.POST("/save/", formapi.Save(store))
			formGroup.GET("/load/:id", formapi.Load(store))
			formGroup.GET("/exists/:id", formapi.Exists(store))
			formGroup.GET("/list", formapi.List(store))
			formGroup.DELETE("/delete/:id", formapi.Delete(store))
			formGroup.POST("/export-pdf", formapi.ExportPDF(renderer))
		}

		llmGroup := api.Group("/llm")
		llmGroup.Use(ratelimit.Middleware(limits, "llm", config.LLMRateLimitMax(), window))
		{
			llmGroup.POST("/rate-simple-field", llmapi.RateSimpleField(llm, prompts))
			llmGroup.POST("/rate-detailed-row", llmapi.RateDetailedRow(llm, prompts))
			llmGroup.POST("/rate", llmapi.RateForm(llm, prompts))
		}
	}

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		if strings.HasPrefix(port, ":") {
			addr = port
		} else {
			addr = ":" + port
		}
	}

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
