package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Config struct {
	Port string

	MongoURI string
	MongoDB  string

	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration

	JWTSecret string
	JWTExpiry time.Duration
}

// Load reads configuration from the environment, picking up a .env file
// when one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          envOr("PORT", "8080"),
		MongoURI:      envOr("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:       envOr("MONGODB_DATABASE", "homenest"),
		RedisAddr:     envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CacheTTL:      time.Duration(envInt("CACHE_TTL_SECONDS", 60)) * time.Second,
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTExpiry:     time.Duration(envInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

var database *mongo.Database

// ConnectDB establishes the MongoDB connection used by GetCollection.
func ConnectDB(cfg *Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongodb: %w", err)
	}

	database = client.Database(cfg.MongoDB)
	return nil
}

// GetCollection returns a handle on the named collection. ConnectDB must
// have succeeded first.
func GetCollection(name string) *mongo.Collection {
	return database.Collection(name)
}

// Disconnect tears down the MongoDB connection.
func Disconnect(ctx context.Context) error {
	if database == nil {
		return nil
	}
	return database.Client().Disconnect(ctx)
}
