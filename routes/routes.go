package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"traveljournal/handlers"
	"traveljournal/middleware"
	"traveljournal/token"
)

func SetupRouter(h *handlers.Handler, tokens *token.Service, allowedOrigins []string) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes (no auth required)
	authLimiter := middleware.NewIPRateLimiter(30, time.Minute)
	router.POST("/create-account", middleware.RateLimit(authLimiter), h.CreateAccount)
	router.POST("/login", middleware.RateLimit(authLimiter), h.Login)

	// Everything else requires a bearer token
	protected := router.Group("/")
	protected.Use(middleware.BearerAuth(tokens))

	protected.GET("/get-user", h.GetUser)

	protected.POST("/add-travel-post", h.AddTravelPost)
	protected.GET("/get-all-posts", h.GetAllPosts)
	protected.PUT("/edit-post/:id", h.EditPost)
	protected.DELETE("/delete-post/:id", h.DeletePost)
	protected.PUT("/update-is-favourite/:id", h.UpdateIsFavourite)

	protected.POST("/image-upload", h.UploadImage)
	protected.DELETE("/delete-image", h.DeleteImage)

	protected.GET("/search", h.SearchPosts)
	protected.GET("/travel-posts/filter", h.FilterByDate)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":   true,
			"message": "Endpoint not found",
			"path":    c.Request.URL.Path,
		})
	})

	return router
}
