package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NovaSalonTech/salon-scheduler/internal/config"
	dbpkg "github.com/NovaSalonTech/salon-scheduler/internal/db"
	"github.com/NovaSalonTech/salon-scheduler/internal/reminders"
	"github.com/NovaSalonTech/salon-scheduler/internal/routes"
	"github.com/NovaSalonTech/salon-scheduler/internal/session"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := session.NewClient(cfg.RedisURL)
	sessions := session.NewStore(rdb, cfg.SessionTTL())

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, sessions)

	reminders.New(db, cfg).Start()

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
