package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/BenDePortival/student-collaboration-api/authentication/routes"
	"github.com/BenDePortival/student-collaboration-api/database"
)

// How often to refresh the post feed cache from PostgreSQL
const postFeedCacheUpdateInterval = 10 * time.Second

// This function runs in the background to keep the post feed cache fresh.
func updatePostFeedCache() {
	posts := database.NewPostStore()

	ticker := time.NewTicker(postFeedCacheUpdateInterval)
	defer ticker.Stop()

	for {
		<-ticker.C // Wait for the ticker to fire

		// Fetch all posts from the primary database.
		allPosts, err := posts.All()
		if err != nil {
			log.Printf("Error fetching posts for cache update: %v", err)
			continue // Skip this update if there's an error
		}

		// Serialize the post list into JSON format.
		// If there are no posts, we'll cache an empty list.
		var data []byte
		if len(allPosts) > 0 {
			data, err = json.Marshal(allPosts)
			if err != nil {
				log.Printf("Error marshaling posts for cache: %v", err)
				continue
			}
		} else {
			data = []byte("[]") // Cache an empty JSON array
		}

		// Store the JSON data in Redis. We don't set a TTL because this
		// goroutine is responsible for keeping it up-to-date.
		err = database.Rdb.Set(database.Ctx, database.PostFeedCacheKey, data, 0).Err()
		if err != nil {
			log.Printf("Error setting post feed cache in Redis: %v", err)
		}
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize the database connection on startup.
	database.Connect()

	database.ConnectRedis()

	go updatePostFeedCache()

	app := fiber.New()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set in the environment")
	}

	routes.SetupRoutes(app, jwtSecret)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("Starting server on port %s...", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
