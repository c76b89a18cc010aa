package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"wattcompare-backend/config"
	"wattcompare-backend/internal/mw"
	"wattcompare-backend/internal/ocr"
	"wattcompare-backend/internal/report"
	"wattcompare-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, engine ocr.Engine, gen *report.Generator, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, engine, gen)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	// Cache only the static banner; every other route reads live data.
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(ttl, 2*ttl)
	caching := mw.Cache(cacheStore, ttl)

	r.Use(rateLimiter)

	r.GET("/", caching, handler.GetHome)
	r.POST("/ocr", handler.PostOCR)
	r.POST("/add_appliance", handler.AddAppliance)
	r.GET("/list_appliances", handler.ListAppliances)
	r.POST("/compare", handler.CompareAppliances)
	r.GET("/export_pdf", handler.ExportPDF)

	return r
}
