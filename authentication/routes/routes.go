package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BenDePortival/student-collaboration-api/authentication/controllers"
	"github.com/BenDePortival/student-collaboration-api/authentication/middleware"
	"github.com/BenDePortival/student-collaboration-api/database"
	"github.com/BenDePortival/student-collaboration-api/handlers"
)

func SetupRoutes(app *fiber.App, jwtSecret string) {
	auth := controllers.NewAuthController(database.NewUserStore(), jwtSecret)
	posts := handlers.NewPostHandler(database.NewPostStore(), database.NewCommentStore(), database.NewPostFeedCache())
	charts := handlers.NewChartHandler(database.NewChartStore())

	app.Get("/", handlers.Home)
	app.Get("/health", handlers.HealthCheck)

	app.Post("/api/auth/register", auth.Register)
	app.Post("/api/auth/login", auth.Login)

	// Protect routes with middleware
	protected := middleware.JwtAuthMiddleware(jwtSecret)
	app.Get("/api/user", protected, auth.User)

	app.Post("/api/posts", protected, posts.CreatePost)
	app.Get("/api/posts", protected, posts.ListPosts)
	app.Get("/api/posts/:slug", protected, posts.GetPost)
	app.Delete("/api/posts/:slug", protected, posts.DeletePost)
	app.Post("/api/posts/:slug/comments", protected, posts.CreateComment)
	app.Get("/api/posts/:slug/comments", protected, posts.ListComments)

	app.Post("/api/charts", protected, charts.CreateChart)
	app.Get("/api/charts", protected, charts.ListCharts)
	app.Get("/api/charts/:id", protected, charts.GetChart)
}
