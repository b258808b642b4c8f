package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chaicraft_back_end/internal/config"
	"chaicraft_back_end/internal/database"
	"chaicraft_back_end/internal/events"
	"chaicraft_back_end/internal/handlers"
	"chaicraft_back_end/internal/routes"
	"chaicraft_back_end/internal/seed"
	"chaicraft_back_end/internal/services"
	"chaicraft_back_end/internal/store"
	"chaicraft_back_end/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	db, err := database.Connect()
	if err != nil {
		log.Fatal("❌ Database connection failed: ", err)
	}
	defer db.Close()

	st := store.New(db)

	if err := seed.Run(st); err != nil {
		log.Println("⚠️ Seeding failed:", err)
	}

	hub := ws.NewHub()
	go hub.Run()

	var producer *events.Producer
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		producer, err = events.NewProducer(brokers)
		if err != nil {
			log.Println("⚠️ Kafka unavailable, order events disabled:", err)
			producer = nil
		} else {
			log.Println("✅ Kafka producer connected:", brokers)
			defer producer.Close()
		}
	}

	api := handlers.New(
		st,
		db.Redis,
		services.NewSearch(db.Elastic),
		services.NewMedia(db.MinIO),
		services.NewMailNotifier(),
		services.NewLLM(),
		hub,
		producer,
	)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.Getenv("FRONTEND_URL", "http://localhost:3000")},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Register(r, api)

	port := config.Getenv("PORT", "8080")
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Println("🚀 Chai Craft API listening on port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("❌ Server failed: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🔌 Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println("⚠️ Forced shutdown:", err)
	}
}
