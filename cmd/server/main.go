package main

import (
	"fmt"
	"time"

	"github.com/laasya2505/kuber-ai-assignment/internal/chat"
	"github.com/laasya2505/kuber-ai-assignment/internal/config"
	"github.com/laasya2505/kuber-ai-assignment/internal/handlers"
	"github.com/laasya2505/kuber-ai-assignment/internal/purchase"
	"github.com/laasya2505/kuber-ai-assignment/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found")
	}
	cfg := config.Load()

	// init DB
	db, err := store.InitDB(cfg.DBPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to init db")
	}
	store.SetDB(db)

	if err := purchase.EnsureActivePrice(db, cfg.GoldPricePerGram); err != nil {
		logrus.WithError(err).Fatal("failed to seed gold price")
	}

	assistant := chat.NewAssistant(
		chat.NewResponder(chat.NewOpenAIClient(cfg)),
		cfg.SessionTTL,
		db,
	)
	purchases := purchase.NewService(db, cfg.GoldPricePerGram)

	// evict idle chat sessions in the background
	scheduler := gocron.NewScheduler(time.UTC)
	if _, err := scheduler.Every(cfg.SweepInterval).Do(func() {
		if n := assistant.Sessions().Sweep(); n > 0 {
			logrus.WithField("evicted", n).Info("swept idle chat sessions")
		}
	}); err != nil {
		logrus.WithError(err).Fatal("failed to schedule session sweeper")
	}
	scheduler.StartAsync()

	r := gin.Default()

	// health
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Kuber AI Gold Investment Assistant API is running!"})
	})

	// register handlers
	handlers.RegisterRoutes(r, &handlers.API{Assistant: assistant, Purchases: purchases})

	addr := fmt.Sprintf(":%d", cfg.Port)
	if err := r.Run(addr); err != nil {
		logrus.WithError(err).Fatal("server error")
	}
}
