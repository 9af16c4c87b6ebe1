package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"career-backend/internal/aiservice"
	"career-backend/internal/careers"
	"career-backend/internal/reports"
	"career-backend/internal/scoring"
	"career-backend/internal/shared/config"
	"career-backend/internal/shared/metrics"
	"career-backend/internal/shared/server/middleware"
	"career-backend/internal/shared/server/respond"
	"career-backend/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to embedded catalog: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to embedded catalog: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var careerRepo careers.Repo
	if sqlDB != nil {
		careerRepo = &careers.PGRepo{DB: sqlDB}
	} else {
		repo, err := careers.NewEmbeddedRepo()
		if err != nil {
			log.Fatalf("load embedded career catalog: %v", err)
		}
		careerRepo = repo
	}

	engine := scoring.NewEngine(scoring.DefaultQuestionBank(), cfg.TopBuckets, cfg.CareersPerBucket)
	enhancer := aiservice.NewClient(cfg.AIServiceURL, cfg.AIServiceEnabled, cfg.AIServiceTimeout)
	reportSvc := reports.NewService(careerRepo, engine, enhancer)
	reportHandler := reports.NewHandler(reportSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	reportHandler.RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
