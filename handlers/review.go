package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"homenest/config"
	"homenest/models"
	"homenest/utils"
)

type ReviewController struct {
	collection *mongo.Collection
	properties *mongo.Collection
	users      *mongo.Collection
	cache      *utils.Cache
}

func NewReviewController(cache *utils.Cache) *ReviewController {
	return &ReviewController{
		collection: config.GetCollection(collectionNameOr("MONGODB_COLLECTION_REVIEWS", "reviews")),
		properties: config.GetCollection(collectionNameOr("MONGODB_COLLECTION_PROPERTIES", "properties")),
		users:      config.GetCollection(collectionNameOr("MONGODB_COLLECTION_USERS", "users")),
		cache:      cache,
	}
}

// ListReviews supports the review dashboard: optional propertyId and
// userEmail scoping, a case-insensitive free-text search over property name
// and comment, and an exact rating filter.
func (rc *ReviewController) ListReviews(c echo.Context) error {
	query := bson.M{}
	if propertyID := c.QueryParam("propertyId"); propertyID != "" {
		query["propertyId"] = propertyID
	}
	if userEmail := c.QueryParam("userEmail"); userEmail != "" {
		query["userEmail"] = userEmail
	}
	if term := c.QueryParam("search"); term != "" {
		query["$or"] = []bson.M{
			{"propertyName": bson.M{"$regex": term, "$options": "i"}},
			{"comment": bson.M{"$regex": term, "$options": "i"}},
		}
	}
	if rating := c.QueryParam("rating"); rating != "" {
		if n, err := strconv.Atoi(rating); err == nil {
			query["rating"] = n
		}
	}

	cursor, err := rc.collection.Find(c.Request().Context(), query)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch reviews"})
	}
	defer cursor.Close(c.Request().Context())

	reviews := []models.Review{}
	if err := cursor.All(c.Request().Context(), &reviews); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch reviews"})
	}
	return c.JSON(http.StatusOK, reviews)
}

func (rc *ReviewController) CreateReview(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	userEmail := c.Get("user_email").(string)

	var input models.ReviewInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&input); err != nil {
		return err
	}
	if !utils.IsValidPropertyID(input.PropertyID) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	var property models.Property
	err := rc.properties.FindOne(c.Request().Context(), bson.M{"_id": input.PropertyID}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}

	var reviewer models.User
	userName := ""
	if err := rc.users.FindOne(c.Request().Context(), bson.M{"_id": userID}).Decode(&reviewer); err == nil {
		userName = reviewer.Name
	}

	review := models.Review{
		ID:           primitive.NewObjectID(),
		PropertyID:   input.PropertyID,
		PropertyName: property.Name,
		UserID:       userID,
		UserEmail:    userEmail,
		UserName:     userName,
		Rating:       input.Rating,
		Comment:      input.Comment,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if _, err := rc.collection.InsertOne(c.Request().Context(), review); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create review"})
	}

	rc.recomputeRating(c.Request().Context(), input.PropertyID)
	return c.JSON(http.StatusCreated, review)
}

func (rc *ReviewController) UpdateReview(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid review ID"})
	}

	var review models.Review
	if err := rc.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&review); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Review not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch review"})
	}
	if review.UserID != userID {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "You are not authorized to update this review"})
	}

	var input models.ReviewInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	updateDoc := bson.M{
		"rating":    input.Rating,
		"comment":   input.Comment,
		"updatedAt": time.Now(),
	}
	if _, err := rc.collection.UpdateOne(c.Request().Context(), bson.M{"_id": id}, bson.M{"$set": updateDoc}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update review"})
	}

	if err := rc.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&review); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated review"})
	}

	rc.recomputeRating(c.Request().Context(), review.PropertyID)
	return c.JSON(http.StatusOK, review)
}

func (rc *ReviewController) DeleteReview(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	userRole := c.Get("user_role").(string)
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid review ID"})
	}

	var review models.Review
	if err := rc.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&review); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Review not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch review"})
	}
	if review.UserID != userID && userRole != "admin" {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "You are not authorized to delete this review"})
	}

	if _, err := rc.collection.DeleteOne(c.Request().Context(), bson.M{"_id": id}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete review"})
	}

	rc.recomputeRating(c.Request().Context(), review.PropertyID)
	return c.JSON(http.StatusOK, map[string]string{"message": "Review deleted successfully"})
}

// recomputeRating stores the mean of a property's review ratings back on the
// property document. Ratings shown on cards are always derived from real
// reviews, never placeholders. Best effort: a failure here does not fail the
// review operation that triggered it.
func (rc *ReviewController) recomputeRating(ctx context.Context, propertyID string) {
	cursor, err := rc.collection.Find(ctx, bson.M{"propertyId": propertyID})
	if err != nil {
		return
	}
	defer cursor.Close(ctx)

	var sum, count float64
	for cursor.Next(ctx) {
		var review models.Review
		if err := cursor.Decode(&review); err != nil {
			continue
		}
		sum += float64(review.Rating)
		count++
	}

	rating := 0.0
	if count > 0 {
		rating = sum / count
	}
	_, _ = rc.properties.UpdateOne(ctx, bson.M{"_id": propertyID}, bson.M{"$set": bson.M{"rating": rating}})
	_ = rc.cache.InvalidatePrefix(ctx, "properties")
}
