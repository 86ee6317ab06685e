package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"

	"github.com/BenDePortival/student-collaboration-api/database"
	"github.com/BenDePortival/student-collaboration-api/models"
	"github.com/BenDePortival/student-collaboration-api/repositories"
)

// FeedCache serves the post feed as a cached JSON document. GetFeed returns
// repositories.ErrNotFound on a cache miss.
type FeedCache interface {
	GetFeed(ctx context.Context) (string, error)
}

// PostHandler handles HTTP operations for posts and their comments. Cache is
// optional; when nil the feed is always read from the store.
type PostHandler struct {
	Posts    repositories.PostStore
	Comments repositories.CommentStore
	Cache    FeedCache
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(posts repositories.PostStore, comments repositories.CommentStore, cache FeedCache) *PostHandler {
	return &PostHandler{Posts: posts, Comments: comments, Cache: cache}
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Tags    string `json:"tags"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

// CreatePost handles POST /api/posts
func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	userID, ok := c.Locals("x-user-id").(uint)
	if !ok {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Could not get user ID from token"})
	}

	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Failed to parse request body"})
	}
	if req.Title == "" || req.Content == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Title and content are required"})
	}

	postSlug := slug.Make(req.Title)
	if _, err := h.Posts.FindBySlug(postSlug); err == nil {
		return c.Status(http.StatusConflict).JSON(fiber.Map{"message": "A post with a similar title already exists"})
	} else if !errors.Is(err, repositories.ErrNotFound) {
		log.Printf("Post lookup failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create post"})
	}

	post := &models.Post{
		AuthorID: userID,
		Title:    req.Title,
		Slug:     postSlug,
		Content:  req.Content,
		Tags:     req.Tags,
	}
	if err := h.Posts.Create(post); err != nil {
		log.Printf("Failed to create post: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create post"})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Post created successfully",
		"post":    post,
	})
}

// ListPosts handles GET /api/posts. It serves the cached feed when available
// and falls back to the store when the cache is empty or unreachable.
func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	if h.Cache != nil {
		cached, err := h.Cache.GetFeed(database.Ctx)
		if err == nil {
			var posts []models.Post
			if jsonErr := json.Unmarshal([]byte(cached), &posts); jsonErr != nil {
				log.Printf("Failed to unmarshal cached posts: %v", jsonErr)
			} else {
				return c.JSON(fiber.Map{"posts": posts})
			}
		} else if !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("Post feed cache is not available: %v", err)
		}
	}

	posts, err := h.Posts.All()
	if err != nil {
		log.Printf("Failed to list posts: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to list posts"})
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// GetPost handles GET /api/posts/:slug
func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	post, err := h.Posts.FindBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "Post not found"})
		}
		log.Printf("Post lookup failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load post"})
	}
	return c.JSON(fiber.Map{"post": post})
}

// DeletePost handles DELETE /api/posts/:slug. Only the author may delete.
func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
	userID, ok := c.Locals("x-user-id").(uint)
	if !ok {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Could not get user ID from token"})
	}

	post, err := h.Posts.FindBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "Post not found"})
		}
		log.Printf("Post lookup failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load post"})
	}

	if post.AuthorID != userID {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"message": "You can only delete your own posts"})
	}

	if err := h.Posts.Delete(post.ID); err != nil {
		log.Printf("Failed to delete post: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete post"})
	}
	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}

// CreateComment handles POST /api/posts/:slug/comments
func (h *PostHandler) CreateComment(c *fiber.Ctx) error {
	userID, ok := c.Locals("x-user-id").(uint)
	if !ok {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Could not get user ID from token"})
	}

	post, err := h.Posts.FindBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "Post not found"})
		}
		log.Printf("Post lookup failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load post"})
	}

	var req CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Failed to parse request body"})
	}
	if req.Content == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Content is required"})
	}

	comment := &models.Comment{
		PostID:   post.ID,
		AuthorID: userID,
		Content:  req.Content,
	}
	if err := h.Comments.Create(comment); err != nil {
		log.Printf("Failed to create comment: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create comment"})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Comment created successfully",
		"comment": comment,
	})
}

// ListComments handles GET /api/posts/:slug/comments
func (h *PostHandler) ListComments(c *fiber.Ctx) error {
	post, err := h.Posts.FindBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "Post not found"})
		}
		log.Printf("Post lookup failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load post"})
	}

	comments, err := h.Comments.ForPost(post.ID)
	if err != nil {
		log.Printf("Failed to list comments: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to list comments"})
	}
	return c.JSON(fiber.Map{"comments": comments})
}
