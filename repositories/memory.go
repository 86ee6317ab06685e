package repositories

import (
	"sort"
	"sync"

	"github.com/BenDePortival/student-collaboration-api/models"
)

// In-memory store implementations. They back the handler tests and can serve
// as a storage layer for local development without Postgres.

type InMemoryUserStore struct {
	mu     sync.RWMutex
	nextID uint
	users  map[uint]models.User
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{nextID: 1, users: make(map[uint]models.User)}
}

func (s *InMemoryUserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return ErrDuplicate
		}
	}
	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = *user
	return nil
}

func (s *InMemoryUserStore) FindByID(id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, exists := s.users[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *InMemoryUserStore) FindByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryUserStore) FindByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// Count reports how many users are stored. Used by tests to assert that
// rejected registrations leave the store untouched.
func (s *InMemoryUserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

type InMemoryPostStore struct {
	mu     sync.RWMutex
	nextID uint
	posts  map[uint]models.Post
}

func NewInMemoryPostStore() *InMemoryPostStore {
	return &InMemoryPostStore{nextID: 1, posts: make(map[uint]models.Post)}
}

func (s *InMemoryPostStore) Create(post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.posts {
		if existing.Slug == post.Slug {
			return ErrDuplicate
		}
	}
	post.ID = s.nextID
	s.nextID++
	s.posts[post.ID] = *post
	return nil
}

func (s *InMemoryPostStore) All() ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	posts := make([]models.Post, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

func (s *InMemoryPostStore) FindBySlug(slug string) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, post := range s.posts {
		if post.Slug == slug {
			p := post
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryPostStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.posts[id]; !exists {
		return ErrNotFound
	}
	delete(s.posts, id)
	return nil
}

type InMemoryCommentStore struct {
	mu       sync.RWMutex
	nextID   uint
	comments map[uint]models.Comment
}

func NewInMemoryCommentStore() *InMemoryCommentStore {
	return &InMemoryCommentStore{nextID: 1, comments: make(map[uint]models.Comment)}
}

func (s *InMemoryCommentStore) Create(comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment.ID = s.nextID
	s.nextID++
	s.comments[comment.ID] = *comment
	return nil
}

func (s *InMemoryCommentStore) ForPost(postID uint) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	comments := make([]models.Comment, 0)
	for _, comment := range s.comments {
		if comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

type InMemoryChartStore struct {
	mu     sync.RWMutex
	nextID uint
	charts map[uint]models.Chart
}

func NewInMemoryChartStore() *InMemoryChartStore {
	return &InMemoryChartStore{nextID: 1, charts: make(map[uint]models.Chart)}
}

func (s *InMemoryChartStore) Create(chart *models.Chart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	chart.ID = s.nextID
	s.nextID++
	s.charts[chart.ID] = *chart
	return nil
}

func (s *InMemoryChartStore) ForOwner(ownerID uint) ([]models.Chart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	charts := make([]models.Chart, 0)
	for _, chart := range s.charts {
		if chart.OwnerID == ownerID {
			charts = append(charts, chart)
		}
	}
	sort.Slice(charts, func(i, j int) bool { return charts[i].ID < charts[j].ID })
	return charts, nil
}

func (s *InMemoryChartStore) FindByID(id uint) (*models.Chart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chart, exists := s.charts[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &chart, nil
}
