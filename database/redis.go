package database

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/BenDePortival/student-collaboration-api/repositories"
)

// PostFeedCacheKey is the Redis key holding the cached post feed as JSON.
// A background worker keeps it fresh; see main.go.
const PostFeedCacheKey = "cache:all_posts"

var Rdb *redis.Client
var Ctx = context.Background()

func ConnectRedis() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	redisPassword := os.Getenv("REDIS_PASSWORD")

	redisDBStr := os.Getenv("REDIS_DB")
	redisDB, err := strconv.Atoi(redisDBStr)
	if err != nil || redisDBStr == "" {
		redisDB = 0
	}

	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	_, err = Rdb.Ping(Ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	log.Println("Redis connection successfully opened.")
}

// RedisFeedCache reads the post feed cached by the background worker.
type RedisFeedCache struct{}

func NewPostFeedCache() *RedisFeedCache {
	return &RedisFeedCache{}
}

func (c *RedisFeedCache) GetFeed(ctx context.Context) (string, error) {
	cached, err := Rdb.Get(ctx, PostFeedCacheKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", repositories.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return cached, nil
}
