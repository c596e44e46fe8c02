package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"traveljournal/config"
	"traveljournal/database"
	"traveljournal/handlers"
	"traveljournal/media"
	"traveljournal/routes"
	"traveljournal/store"
	"traveljournal/token"
)

func main() {
	log.Println("🚀 Starting Travel Journal API...")

	cfg := config.Load()

	if cfg.JWTSecret == "" || cfg.CloudinaryURL == "" {
		log.Fatal("❌ JWT_SECRET and CLOUDINARY_URL must be set")
	}

	// ===== CONNECT TO MONGODB WITH RETRY =====
	log.Println("🔌 Connecting to MongoDB...")

	var client *mongo.Client
	var dbErr error
	for i := 1; i <= 3; i++ {
		client, dbErr = database.Connect(cfg.MongoURI)
		if dbErr != nil {
			log.Printf("❌ MongoDB connection attempt %d failed: %v", i, dbErr)
			time.Sleep(2 * time.Second)
			continue
		}
		break
	}
	if dbErr != nil {
		log.Fatal("❌ Failed to connect to MongoDB:", dbErr)
	}

	db := client.Database(cfg.MongoDatabase)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer indexCancel()
	if err := database.EnsureIndexes(indexCtx, db); err != nil {
		log.Fatal("❌ Failed to ensure indexes:", err)
	}

	// ===== GIN MODE =====
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ===== WIRING =====
	tokens := token.NewService(cfg.JWTSecret)

	mediaStore, err := media.NewCloudinaryStore(cfg.CloudinaryURL)
	if err != nil {
		log.Fatal("❌ Cloudinary configuration error:", err)
	}

	h := handlers.New(
		store.NewMongoUserStore(db),
		store.NewMongoPostStore(db),
		tokens,
		mediaStore,
		cfg.PlaceholderImageURL,
	)

	router := routes.SetupRouter(h, tokens, cfg.CORSAllowedOrigins)

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "Travel Journal API running 🚀"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Server error:", err)
		}
	}()

	// ===== GRACEFUL SHUTDOWN =====
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("❌ Forced shutdown:", err)
	}

	if err := database.Disconnect(client); err != nil {
		log.Println("❌ MongoDB disconnect error:", err)
	}

	log.Println("👋 Server stopped gracefully")
}
