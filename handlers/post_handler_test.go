package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BenDePortival/student-collaboration-api/models"
	"github.com/BenDePortival/student-collaboration-api/repositories"
)

// fakeAuth stands in for the JWT middleware, injecting a fixed user ID.
func fakeAuth(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("x-user-id", userID)
		return c.Next()
	}
}

func newPostApp(t *testing.T, userID uint) (*fiber.App, *repositories.InMemoryPostStore) {
	t.Helper()
	posts := repositories.NewInMemoryPostStore()
	comments := repositories.NewInMemoryCommentStore()
	h := NewPostHandler(posts, comments, nil)

	app := fiber.New()
	auth := fakeAuth(userID)
	app.Post("/api/posts", auth, h.CreatePost)
	app.Get("/api/posts", auth, h.ListPosts)
	app.Get("/api/posts/:slug", auth, h.GetPost)
	app.Delete("/api/posts/:slug", auth, h.DeletePost)
	app.Post("/api/posts/:slug/comments", auth, h.CreateComment)
	app.Get("/api/posts/:slug/comments", auth, h.ListComments)
	return app, posts
}

func do(t *testing.T, app *fiber.App, method, path string, payload interface{}) *http.Response {
	t.Helper()
	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestCreatePost_SlugFromTitle(t *testing.T) {
	app, _ := newPostApp(t, 1)

	resp := do(t, app, http.MethodPost, "/api/posts", map[string]string{
		"title":   "Study Group for Linear Algebra",
		"content": "Meets Tuesdays at the library.",
		"tags":    "maths,study-group",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	post := decode(t, resp)["post"].(map[string]interface{})
	assert.Equal(t, "study-group-for-linear-algebra", post["slug"])
	assert.Equal(t, float64(1), post["author_id"])
}

func TestCreatePost_MissingFields(t *testing.T) {
	app, _ := newPostApp(t, 1)

	resp := do(t, app, http.MethodPost, "/api/posts", map[string]string{"title": "No content"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreatePost_DuplicateTitle(t *testing.T) {
	app, _ := newPostApp(t, 1)

	first := do(t, app, http.MethodPost, "/api/posts", map[string]string{
		"title": "Exam Tips", "content": "a",
	})
	require.Equal(t, http.StatusCreated, first.StatusCode)

	second := do(t, app, http.MethodPost, "/api/posts", map[string]string{
		"title": "Exam Tips", "content": "b",
	})
	assert.Equal(t, http.StatusConflict, second.StatusCode)
}

// fakeFeedCache stands in for the Redis-backed feed cache.
type fakeFeedCache struct {
	payload string
	err     error
}

func (f *fakeFeedCache) GetFeed(_ context.Context) (string, error) {
	return f.payload, f.err
}

func newPostAppWithCache(t *testing.T, userID uint, cache FeedCache) (*fiber.App, *repositories.InMemoryPostStore) {
	t.Helper()
	posts := repositories.NewInMemoryPostStore()
	h := NewPostHandler(posts, repositories.NewInMemoryCommentStore(), cache)

	app := fiber.New()
	app.Get("/api/posts", fakeAuth(userID), h.ListPosts)
	return app, posts
}

func TestListPosts_ServesCachedFeed(t *testing.T) {
	feed := []models.Post{
		{AuthorID: 1, Title: "Cached", Slug: "cached", Content: "from redis"},
	}
	payload, err := json.Marshal(feed)
	require.NoError(t, err)

	// The store stays empty; only the cache can supply the post.
	app, _ := newPostAppWithCache(t, 1, &fakeFeedCache{payload: string(payload)})

	resp := do(t, app, http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decode(t, resp)["posts"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "cached", list[0].(map[string]interface{})["slug"])
}

func TestListPosts_CorruptCacheFallsBackToStore(t *testing.T) {
	app, posts := newPostAppWithCache(t, 1, &fakeFeedCache{payload: "{not json"})
	require.NoError(t, posts.Create(&models.Post{AuthorID: 1, Title: "Stored", Slug: "stored", Content: "x"}))

	resp := do(t, app, http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decode(t, resp)["posts"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "stored", list[0].(map[string]interface{})["slug"])
}

func TestListPosts_CacheMissFallsBackToStore(t *testing.T) {
	app, posts := newPostAppWithCache(t, 1, &fakeFeedCache{err: repositories.ErrNotFound})
	require.NoError(t, posts.Create(&models.Post{AuthorID: 1, Title: "Stored", Slug: "stored", Content: "x"}))

	resp := do(t, app, http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decode(t, resp)["posts"].([]interface{})
	assert.Len(t, list, 1)
}

func TestListPosts_FallsBackToStoreWithoutCache(t *testing.T) {
	app, posts := newPostApp(t, 1)

	require.NoError(t, posts.Create(&models.Post{AuthorID: 1, Title: "One", Slug: "one", Content: "x"}))
	require.NoError(t, posts.Create(&models.Post{AuthorID: 1, Title: "Two", Slug: "two", Content: "y"}))

	resp := do(t, app, http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decode(t, resp)["posts"].([]interface{})
	assert.Len(t, list, 2)
}

func TestGetPost_NotFound(t *testing.T) {
	app, _ := newPostApp(t, 1)

	resp := do(t, app, http.MethodGet, "/api/posts/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Post not found", decode(t, resp)["message"])
}

func TestDeletePost_OnlyAuthor(t *testing.T) {
	posts := repositories.NewInMemoryPostStore()
	comments := repositories.NewInMemoryCommentStore()
	require.NoError(t, posts.Create(&models.Post{AuthorID: 1, Title: "Mine", Slug: "mine", Content: "x"}))

	h := NewPostHandler(posts, comments, nil)
	app := fiber.New()
	app.Delete("/api/posts/:slug", fakeAuth(2), h.DeletePost) // a different user

	resp := do(t, app, http.MethodDelete, "/api/posts/mine", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Still present.
	_, err := posts.FindBySlug("mine")
	assert.NoError(t, err)
}

func TestDeletePost_Author(t *testing.T) {
	app, posts := newPostApp(t, 1)
	require.NoError(t, posts.Create(&models.Post{AuthorID: 1, Title: "Mine", Slug: "mine", Content: "x"}))

	resp := do(t, app, http.MethodDelete, "/api/posts/mine", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, err := posts.FindBySlug("mine")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestDeletePost_TitleReusableAfterDelete(t *testing.T) {
	app, _ := newPostApp(t, 1)

	created := do(t, app, http.MethodPost, "/api/posts", map[string]string{
		"title": "Reading Group", "content": "first run",
	})
	require.Equal(t, http.StatusCreated, created.StatusCode)

	deleted := do(t, app, http.MethodDelete, "/api/posts/reading-group", nil)
	require.Equal(t, http.StatusOK, deleted.StatusCode)

	// The slug must be free again once the post is gone.
	recreated := do(t, app, http.MethodPost, "/api/posts", map[string]string{
		"title": "Reading Group", "content": "second run",
	})
	assert.Equal(t, http.StatusCreated, recreated.StatusCode)
}

func TestComments_CreateAndList(t *testing.T) {
	app, posts := newPostApp(t, 1)
	require.NoError(t, posts.Create(&models.Post{AuthorID: 1, Title: "Thread", Slug: "thread", Content: "x"}))

	created := do(t, app, http.MethodPost, "/api/posts/thread/comments", map[string]string{
		"content": "Count me in!",
	})
	require.Equal(t, http.StatusCreated, created.StatusCode)

	empty := do(t, app, http.MethodPost, "/api/posts/thread/comments", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, empty.StatusCode)

	missing := do(t, app, http.MethodPost, "/api/posts/nope/comments", map[string]string{
		"content": "hello?",
	})
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)

	listed := do(t, app, http.MethodGet, "/api/posts/thread/comments", nil)
	require.Equal(t, http.StatusOK, listed.StatusCode)
	comments := decode(t, listed)["comments"].([]interface{})
	require.Len(t, comments, 1)
	assert.Equal(t, "Count me in!", comments[0].(map[string]interface{})["content"])
}
