package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"nutrilife/database"
	"nutrilife/handlers"
	"nutrilife/middleware"
)

func SetupRouter() *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "NutriLife API is running",
			"time":    time.Now().Unix(),
		})
	})

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "http://127.0.0.1:3000", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes (no auth required), rate limited
	auth := router.Group("/api/auth")
	auth.Use(middleware.RateLimitMiddleware())
	auth.POST("/register", handlers.Register)
	auth.POST("/login", handlers.Login)

	// Protected routes group
	protected := router.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware())

	protected.GET("/auth/me", handlers.Me)

	// Users and bookmarks
	protected.GET("/users", handlers.ListUsers)
	protected.GET("/users/:id", handlers.GetUser)
	protected.PATCH("/users/:id", handlers.UpdateUser)
	protected.GET("/users/:id/bookmarks", handlers.GetBookmarks)
	protected.POST("/users/:id/bookmarks", handlers.AddBookmark)
	protected.DELETE("/users/:id/bookmarks/:shelterId", handlers.RemoveBookmark)

	// Shelters
	protected.GET("/shelters", handlers.ListShelters)
	protected.GET("/shelters/search", handlers.SearchShelters)
	protected.GET("/shelters/matches", handlers.GetMatches)
	protected.GET("/shelters/nearby", handlers.GetNearbyShelters)
	protected.GET("/shelters/:id", handlers.GetShelter)
	protected.POST("/shelters/:id/checkin", handlers.CheckIn)

	// Connections
	protected.GET("/connections", handlers.GetConnections)
	protected.POST("/connections", handlers.CreateConnection)
	protected.PATCH("/connections/:id", handlers.RespondConnection)

	// Community feed
	protected.GET("/community", handlers.GetCommunityFeed)
	protected.POST("/community", handlers.PostCommunityMessage)
	protected.PATCH("/community/:id/like", handlers.LikeCommunityMessage)

	// Nutrition logs
	protected.GET("/nutrition", handlers.GetNutritionLogs)
	protected.GET("/nutrition/:id", handlers.GetNutritionLog)
	protected.POST("/nutrition", handlers.CreateNutritionLog)
	protected.PUT("/nutrition/:id", handlers.UpdateNutritionLog)
	protected.DELETE("/nutrition/:id", handlers.DeleteNutritionLog)

	// Meal plans
	protected.GET("/mealplans", handlers.GetMealPlans)
	protected.GET("/mealplans/:id", handlers.GetMealPlan)
	protected.POST("/mealplans", handlers.CreateMealPlan)
	protected.PUT("/mealplans/:id", handlers.UpdateMealPlan)
	protected.DELETE("/mealplans/:id", handlers.DeleteMealPlan)

	// Recipes
	protected.GET("/recipes", handlers.GetRecipes)
	protected.GET("/recipes/:id", handlers.GetRecipe)
	protected.POST("/recipes", handlers.CreateRecipe)
	protected.PUT("/recipes/:id", handlers.UpdateRecipe)
	protected.DELETE("/recipes/:id", handlers.DeleteRecipe)

	// Admin routes
	admin := router.Group("/api/admin")
	admin.Use(middleware.JWTAuthMiddleware())
	admin.Use(middleware.AdminOnly(database.Users))
	admin.GET("/inventory", handlers.GetInventory)
	admin.PATCH("/inventory/:id", handlers.UpdateInventoryItem)
	admin.GET("/distributions", handlers.GetDistributions)
	admin.POST("/distributions", handlers.CreateDistribution)

	// Catch-all for undefined API routes
	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{
				"error":   "Endpoint not found",
				"path":    c.Request.URL.Path,
				"message": "Check the API documentation for available endpoints",
			})
			return
		}
		c.Next()
	})

	return router
}
