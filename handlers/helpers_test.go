package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"traveljournal/handlers"
	"traveljournal/media"
	"traveljournal/models"
	"traveljournal/routes"
	"traveljournal/store"
	"traveljournal/token"
)

const testPlaceholderURL = "/assets/placeholder.png"

func init() {
	gin.SetMode(gin.TestMode)
}

// memUserStore and memPostStore implement the store contracts in memory so
// the handler tests can run the full router without a database.

type memUserStore struct {
	mu    sync.Mutex
	users []*models.User
}

func (s *memUserStore) Create(_ context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, store.ErrConflict
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedOn = time.Now().UTC()
	s.users = append(s.users, user)
	return user, nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID.Hex() == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

type memPostStore struct {
	mu    sync.Mutex
	posts []*models.TravelPost
}

func (s *memPostStore) Create(_ context.Context, post *models.TravelPost) (*models.TravelPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post.ID = primitive.NewObjectID()
	post.CreatedOn = time.Now().UTC()
	s.posts = append(s.posts, post)
	copied := *post
	return &copied, nil
}

func (s *memPostStore) FindOwned(_ context.Context, id, ownerID string) (*models.TravelPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.ID.Hex() == id && p.UserID.Hex() == ownerID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memPostStore) Update(_ context.Context, post *models.TravelPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.posts {
		if p.ID == post.ID && p.UserID == post.UserID {
			copied := *post
			s.posts[i] = &copied
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *memPostStore) Delete(_ context.Context, id, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.posts {
		if p.ID.Hex() == id && p.UserID.Hex() == ownerID {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *memPostStore) ListByOwner(_ context.Context, ownerID string) ([]models.TravelPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query(ownerID, func(models.TravelPost) bool { return true }), nil
}

func (s *memPostStore) Search(_ context.Context, ownerID, query string) ([]models.TravelPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	needle := strings.ToLower(query)
	return s.query(ownerID, func(p models.TravelPost) bool {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			return true
		}
		for _, loc := range p.VisitedLocation {
			if strings.Contains(strings.ToLower(loc), needle) {
				return true
			}
		}
		return false
	}), nil
}

func (s *memPostStore) FilterByDateRange(_ context.Context, ownerID string, start, end time.Time) ([]models.TravelPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query(ownerID, func(p models.TravelPost) bool {
		return !p.VisitedDate.Before(start) && !p.VisitedDate.After(end)
	}), nil
}

// query applies the same ordering contract as the Mongo store: favourites
// first, stable insertion order within each group.
func (s *memPostStore) query(ownerID string, match func(models.TravelPost) bool) []models.TravelPost {
	out := []models.TravelPost{}
	for _, p := range s.posts {
		if p.UserID.Hex() == ownerID && match(*p) {
			out = append(out, *p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IsFavourite && !out[j].IsFavourite
	})
	return out
}

type fakeMedia struct {
	mu        sync.Mutex
	uploads   int
	deleted   []string
	uploadErr error
	deleteErr error
}

func (f *fakeMedia) Upload(_ context.Context, _ io.Reader, contentType string) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", media.ErrUnsupportedMedia
	}
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads++
	return fmt.Sprintf("https://cdn.example.com/uploads/file-%d.png", f.uploads), nil
}

func (f *fakeMedia) Delete(_ context.Context, locator string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, locator)
	return nil
}

type testEnv struct {
	router *gin.Engine
	users  *memUserStore
	posts  *memPostStore
	media  *fakeMedia
	tokens *token.Service
}

func newTestEnv() *testEnv {
	users := &memUserStore{}
	posts := &memPostStore{}
	mediaStore := &fakeMedia{}
	tokens := token.NewService("test-secret")

	h := handlers.New(users, posts, tokens, mediaStore, testPlaceholderURL)
	router := routes.SetupRouter(h, tokens, []string{"http://localhost:3000"})

	return &testEnv{
		router: router,
		users:  users,
		posts:  posts,
		media:  mediaStore,
		tokens: tokens,
	}
}

func (e *testEnv) do(t *testing.T, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) register(t *testing.T, fullName, email, password string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/create-account", "", gin.H{
		"fullName": fullName,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func (e *testEnv) createPost(t *testing.T, bearer, title string, body gin.H) string {
	t.Helper()

	payload := gin.H{
		"title":           title,
		"description":     "A day to remember",
		"visitedLocation": []string{"Somewhere"},
		"imageUrl":        "https://cdn.example.com/uploads/file-seed.png",
		"visitedDate":     time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
	}
	for k, v := range body {
		payload[k] = v
	}

	rec := e.do(t, http.MethodPost, "/add-travel-post", bearer, payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Posts struct {
			ID string `json:"id"`
		} `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Posts.ID)
	return resp.Posts.ID
}

func multipartImage(t *testing.T, fieldName, fileName, contentType string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fieldName, fileName))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}
