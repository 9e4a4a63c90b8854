package handlers

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"homenest/config"
	"homenest/listing"
	"homenest/models"
	"homenest/utils"
)

const latestPropertiesLimit = 6

type PropertyController struct {
	collection *mongo.Collection
	cache      *utils.Cache
	cacheTTL   time.Duration
}

func NewPropertyController(cache *utils.Cache, cacheTTL time.Duration) *PropertyController {
	collectionName := os.Getenv("MONGODB_COLLECTION_PROPERTIES")
	if collectionName == "" {
		collectionName = "properties"
	}
	return &PropertyController{
		collection: config.GetCollection(collectionName),
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// ListProperties returns the listing collection filtered, searched and
// sorted via the query pipeline. Responses are cached per query-parameter
// combination; every property mutation invalidates the cache namespace.
func (pc *PropertyController) ListProperties(c echo.Context) error {
	ctx := c.Request().Context()

	params := map[string]string{
		"category": c.QueryParam("category"),
		"search":   c.QueryParam("search"),
		"sort":     c.QueryParam("sort"),
		"page":     c.QueryParam("page"),
		"limit":    c.QueryParam("limit"),
	}
	cacheKey := utils.QueryKey("properties", params)

	var cached []models.Property
	if hit, err := pc.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return c.JSON(http.StatusOK, cached)
	}

	properties, err := pc.fetchAll(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}

	result := listing.Apply(properties, listing.QueryState{
		Category: params["category"],
		Search:   params["search"],
		Sort:     params["sort"],
	})
	result = paginate(result, params["page"], params["limit"])

	_ = pc.cache.Set(ctx, cacheKey, result, pc.cacheTTL)
	return c.JSON(http.StatusOK, result)
}

// LatestProperties returns the newest listings for the home page strip.
func (pc *PropertyController) LatestProperties(c echo.Context) error {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(latestPropertiesLimit)
	cursor, err := pc.collection.Find(c.Request().Context(), bson.M{}, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}
	defer cursor.Close(c.Request().Context())

	properties := []models.Property{}
	if err := cursor.All(c.Request().Context(), &properties); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}
	return c.JSON(http.StatusOK, properties)
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	id := c.Param("id")
	if !utils.IsValidPropertyID(id) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}
	var property models.Property
	err := pc.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}
	return c.JSON(http.StatusOK, property)
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var input models.PropertyInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	property := input.Normalize()
	if property.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Property name is required"})
	}
	if models.NormalizeCategory(property.Category) == models.CategoryAll {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown category"})
	}
	property.Category = models.NormalizeCategory(property.Category)

	property.ID = primitive.NewObjectID().Hex()
	property.CreatedBy = &userID
	property.CreatedAt = time.Now()
	property.UpdatedAt = property.CreatedAt

	if _, err := pc.collection.InsertOne(c.Request().Context(), property); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create property"})
	}

	_ = pc.cache.InvalidatePrefix(c.Request().Context(), "properties")
	return c.JSON(http.StatusCreated, property)
}

func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	userRole := c.Get("user_role").(string)
	id := c.Param("id")
	if !utils.IsValidPropertyID(id) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	var property models.Property
	err := pc.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}
	if !canModify(property.CreatedBy, userID, userRole) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "You are not authorized to update this property"})
	}

	var input models.PropertyInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	update := input.Normalize()
	if models.NormalizeCategory(update.Category) == models.CategoryAll {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown category"})
	}

	updateDoc := bson.M{
		"name":        update.Name,
		"category":    models.NormalizeCategory(update.Category),
		"description": update.Description,
		"price":       update.Price,
		"location":    update.Location,
		"image":       update.Image,
		"sellerName":  update.SellerName,
		"sellerEmail": update.SellerEmail,
		"updatedAt":   time.Now(),
	}
	if _, err := pc.collection.UpdateOne(c.Request().Context(), bson.M{"_id": id}, bson.M{"$set": updateDoc}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update property"})
	}

	if err := pc.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&property); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated property"})
	}

	_ = pc.cache.InvalidatePrefix(c.Request().Context(), "properties")
	return c.JSON(http.StatusOK, property)
}

func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	userRole := c.Get("user_role").(string)
	id := c.Param("id")
	if !utils.IsValidPropertyID(id) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	var property models.Property
	err := pc.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}
	if !canModify(property.CreatedBy, userID, userRole) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "You are not authorized to delete this property"})
	}

	if _, err := pc.collection.DeleteOne(c.Request().Context(), bson.M{"_id": id}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete property"})
	}

	_ = pc.cache.InvalidatePrefix(c.Request().Context(), "properties")
	return c.JSON(http.StatusOK, map[string]string{"message": "Property deleted successfully"})
}

func (pc *PropertyController) fetchAll(c echo.Context) ([]models.Property, error) {
	cursor, err := pc.collection.Find(c.Request().Context(), bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(c.Request().Context())

	properties := []models.Property{}
	if err := cursor.All(c.Request().Context(), &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func canModify(createdBy *primitive.ObjectID, userID primitive.ObjectID, role string) bool {
	if role == "admin" {
		return true
	}
	return createdBy != nil && *createdBy == userID
}

// paginate slices the result window. A limit of zero means no pagination:
// the full result is returned.
func paginate(properties []models.Property, pageParam, limitParam string) []models.Property {
	limit, err := strconv.Atoi(limitParam)
	if err != nil || limit <= 0 {
		return properties
	}
	page := 1
	if n, err := strconv.Atoi(pageParam); err == nil && n > 0 {
		page = n
	}
	start := (page - 1) * limit
	if start >= len(properties) {
		return []models.Property{}
	}
	end := start + limit
	if end > len(properties) {
		end = len(properties)
	}
	return properties[start:end]
}
