package routes

import (
	"net/http"
	"time"

	"github.com/funabab/ilivercare-app/handlers"
	"github.com/funabab/ilivercare-app/middleware"
	"github.com/funabab/ilivercare-app/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and sign-in endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterAccountHandler)
		api.POST("/login", hb.LoginHandler)
		api.GET("/verify", hb.VerifyEmailHandler)
	}
}

// RegisterRecordRoutes registers record CRUD and prediction endpoints.
func RegisterRecordRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/records")
	{
		// All record operations require authentication.
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.GET("", hb.ListRecordsHandler)
		api.POST("", hb.CreateRecordHandler)
		api.POST("/predict", hb.PredictRecordHandler)
		api.GET("/:id", hb.GetRecordHandler)
		api.PUT("/:id", hb.UpdateRecordHandler)
		api.DELETE("/:id", hb.DeleteRecordHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterRecordRoutes(r, hb)
	RegisterHealthRoute(r)
}
