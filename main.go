package main

import (
	"html/template"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/amirulhaziq/jobsheet-api/config"
	"github.com/amirulhaziq/jobsheet-api/controllers"
	"github.com/amirulhaziq/jobsheet-api/middleware"
	"github.com/amirulhaziq/jobsheet-api/models"
	"github.com/amirulhaziq/jobsheet-api/services"
)

func main() {
	log.Info().Msg("Starting jobsheet server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Auto-migrate database models and seed the counter row. Both are
	// idempotent, so restarting never touches existing data.
	db := config.GetDB()
	if err := db.AutoMigrate(&models.Jobsheet{}, &models.Counter{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}
	if err := services.SeedCounter(db, cfg.CounterSeed); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed jobsheet counter")
	}
	log.Info().Msg("Database migration completed successfully")

	services.InitWebhookNotifier()
	if _, err := services.InitArchiveService(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize archive service")
	}

	router := setupRouter()

	port := ":" + cfg.Port
	log.Info().Msgf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

// setupRouter builds the full application router. Shared with the
// integration and acceptance tests.
func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	router.Use(cors.New(corsConfig))

	router.SetFuncMap(template.FuncMap{
		"hasType": func(types []string, name string) bool {
			for _, t := range types {
				if t == name {
					return true
				}
			}
			return false
		},
	})
	router.LoadHTMLGlob("templates/*")
	router.Static("/static", "./static")

	// Health and metrics endpoints
	router.GET("/health", healthCheck)
	router.GET("/metrics", metrics)

	// Form views
	router.GET("/", controllers.HomePage)
	router.GET("/create", controllers.CreateJobsheet)
	router.GET("/jobsheet/:js_number", controllers.ViewJobsheet)

	// JSON API
	router.POST("/api/save", controllers.SaveJobsheet)
	router.POST("/api/print/:js_number", controllers.PrintJobsheet)
	router.POST("/api/submit/:js_number", controllers.SubmitJobsheet)
	router.GET("/api/jobsheet/:js_number", controllers.GetJobsheet)

	return router
}

// healthCheck handles the health check endpoint used by Docker and load balancers
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

const metricsBody = "# HELP up App is up\n# TYPE up gauge\nup 1\n"

// metrics serves a constant plaintext gauge until real counters are needed
func metrics(c *gin.Context) {
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(metricsBody))
}
