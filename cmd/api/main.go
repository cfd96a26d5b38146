package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/attendance-tracker/internal/config"
	dbpkg "github.com/BruksfildServices01/attendance-tracker/internal/db"
	"github.com/BruksfildServices01/attendance-tracker/internal/policycache"
	"github.com/BruksfildServices01/attendance-tracker/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	cache, err := policycache.New(cfg)
	if err != nil {
		// cache é acelerador, não dependência: seguimos sem ele
		log.Printf("policy cache disabled: %v", err)
		cache = nil
	}
	if cache != nil {
		defer cache.Close()
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, cache)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
