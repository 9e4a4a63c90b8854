package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"homenest/config"
	"homenest/models"
	"homenest/utils"
)

type FavoriteController struct {
	collection *mongo.Collection
}

func NewFavoriteController() *FavoriteController {
	return &FavoriteController{
		collection: config.GetCollection(collectionNameOr("MONGODB_COLLECTION_FAVORITES", "favorites")),
	}
}

func (fc *FavoriteController) CreateFavorite(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var req struct {
		PropertyID string `json:"propertyId"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if !utils.IsValidPropertyID(req.PropertyID) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	count, err := fc.collection.CountDocuments(c.Request().Context(), bson.M{"userId": userID, "propertyId": req.PropertyID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to check favorite"})
	}
	if count > 0 {
		return c.JSON(http.StatusConflict, map[string]string{"error": "Property already favorited"})
	}

	favorite := models.Favorite{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		PropertyID: req.PropertyID,
		CreatedAt:  time.Now(),
	}
	if _, err := fc.collection.InsertOne(c.Request().Context(), favorite); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to favorite property"})
	}
	return c.JSON(http.StatusCreated, favorite)
}

func (fc *FavoriteController) GetFavorites(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	cursor, err := fc.collection.Find(c.Request().Context(), bson.M{"userId": userID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch favorites"})
	}
	defer cursor.Close(c.Request().Context())

	favorites := []models.Favorite{}
	if err := cursor.All(c.Request().Context(), &favorites); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch favorites"})
	}
	return c.JSON(http.StatusOK, favorites)
}

func (fc *FavoriteController) DeleteFavorite(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	propertyID := c.Param("propertyId")
	if !utils.IsValidPropertyID(propertyID) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}
	if _, err := fc.collection.DeleteOne(c.Request().Context(), bson.M{"userId": userID, "propertyId": propertyID}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to remove favorite"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Favorite removed successfully"})
}
