package main

import (
	"log"

	"pimon/internal/config"
	"pimon/internal/controllers"
	"pimon/internal/middleware"
	"pimon/internal/routes"
	"pimon/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	history := services.NewHistory(cfg.HistorySize)
	sampler := services.NewSampler(history, cfg.SampleInterval, cfg.DiskPath, cfg.ProcessLimit)
	hub := services.NewWebSocketHub(history, cfg.SampleInterval)
	analyzer := services.NewDirectoryAnalyzer()

	sampler.Start()
	go hub.Run()

	r := gin.Default()
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter()))

	r.LoadHTMLGlob("./web/templates/*.html")

	routes.RegisterAPIRoutes(r,
		controllers.NewStatsController(history),
		controllers.NewProcessController(history),
		controllers.NewDiskController(analyzer),
	)
	routes.RegisterWebSocketRoutes(r, controllers.NewWebSocketController(hub))

	r.GET("/", func(c *gin.Context) {
		c.HTML(200, "dashboard.html", nil)
	})

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
