package handlers

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"homenest/config"
	"homenest/models"
)

// StatsController aggregates a user's footprint across the property, review
// and favorite collections for the dashboard profile page.
type StatsController struct {
	properties *mongo.Collection
	reviews    *mongo.Collection
	favorites  *mongo.Collection
}

func NewStatsController() *StatsController {
	return &StatsController{
		properties: config.GetCollection(collectionNameOr("MONGODB_COLLECTION_PROPERTIES", "properties")),
		reviews:    config.GetCollection(collectionNameOr("MONGODB_COLLECTION_REVIEWS", "reviews")),
		favorites:  config.GetCollection(collectionNameOr("MONGODB_COLLECTION_FAVORITES", "favorites")),
	}
}

func (sc *StatsController) GetUserStats(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	ctx := c.Request().Context()

	var stats models.UserStats
	var err error

	if stats.Properties, err = sc.properties.CountDocuments(ctx, bson.M{"createdBy": userID}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count properties"})
	}
	if stats.Reviews, err = sc.reviews.CountDocuments(ctx, bson.M{"userId": userID}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count reviews"})
	}
	if stats.Favorites, err = sc.favorites.CountDocuments(ctx, bson.M{"userId": userID}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count favorites"})
	}

	return c.JSON(http.StatusOK, stats)
}

func collectionNameOr(envKey, fallback string) string {
	if name := os.Getenv(envKey); name != "" {
		return name
	}
	return fallback
}
