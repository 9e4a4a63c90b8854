package routes

import (
	"github.com/labstack/echo/v4"

	"homenest/config"
	"homenest/handlers"
	"homenest/middleware"
	"homenest/utils"
)

func RegisterRoutes(e *echo.Echo, cfg *config.Config, cache *utils.Cache) {
	e.GET("/health", handlers.HealthCheck)

	userController := handlers.NewUserController(cfg)
	propertyController := handlers.NewPropertyController(cache, cfg.CacheTTL)
	reviewController := handlers.NewReviewController(cache)
	favoriteController := handlers.NewFavoriteController()
	statsController := handlers.NewStatsController()

	auth := middleware.JWT(cfg.JWTSecret)

	e.POST("/auth/register", userController.Register)
	e.POST("/auth/login", userController.Login)

	users := e.Group("/users", auth)
	users.GET("", userController.GetAllUsers)
	users.GET("/search", userController.SearchUserByEmail)
	users.GET("/profile", userController.GetProfile)
	users.PATCH("/profile", userController.UpdateProfile)
	users.DELETE("/profile", userController.DeleteAccount)
	users.GET("/stats", statsController.GetUserStats)

	e.GET("/properties", propertyController.ListProperties)
	e.GET("/latest-properties", propertyController.LatestProperties)
	e.GET("/properties/:id", propertyController.GetProperty)
	e.POST("/properties", propertyController.CreateProperty, auth)
	e.PATCH("/properties/:id", propertyController.UpdateProperty, auth)
	e.DELETE("/properties/:id", propertyController.DeleteProperty, auth)

	e.GET("/reviews", reviewController.ListReviews)
	e.POST("/reviews", reviewController.CreateReview, auth)
	e.PUT("/reviews/:id", reviewController.UpdateReview, auth)
	e.DELETE("/reviews/:id", reviewController.DeleteReview, auth)

	favorites := e.Group("/favorites", auth)
	favorites.POST("", favoriteController.CreateFavorite)
	favorites.GET("", favoriteController.GetFavorites)
	favorites.DELETE("/:propertyId", favoriteController.DeleteFavorite)
}
