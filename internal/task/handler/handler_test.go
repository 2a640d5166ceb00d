package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"task-service/internal/middleware"
	"task-service/internal/session"
	"task-service/internal/task"
)

type fakeTaskStore struct {
	mu    sync.Mutex
	tasks map[string]task.Task
	order []string
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[string]task.Task)}
}

func (f *fakeTaskStore) Create(ctx context.Context, t task.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[t.ID] = t
	f.order = append(f.order, t.ID)
	return nil
}

func (f *fakeTaskStore) ListByOwner(ctx context.Context, userID string) ([]task.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []task.Task
	for _, id := range f.order {
		if t := f.tasks[id]; t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskStore) UpdateStatus(ctx context.Context, userID, taskID, status string) (*task.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[taskID]
	if !ok || t.UserID != userID {
		return nil, nil
	}
	t.Status = status
	// Mirror the NOW() the real store writes, but keep the ordering
	// deterministic regardless of clock resolution.
	t.UpdatedAt = time.Now().UTC()
	if !t.UpdatedAt.After(t.CreatedAt) {
		t.UpdatedAt = t.CreatedAt.Add(time.Millisecond)
	}
	f.tasks[taskID] = t
	return &t, nil
}

// newTaskRouter wires the task surface behind a real Manager on
// miniredis and returns live tokens for two users.
func newTaskRouter(t *testing.T) (*gin.Engine, string, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	sessionManager := session.NewManager(session.NewRedisStore(rdb), 5*time.Minute)

	h := NewHandler(task.NewService(newFakeTaskStore()))

	router := gin.New()
	protected := router.Group("/")
	protected.Use(middleware.GinRequireAuth(middleware.NewAuthMiddleware(sessionManager)))
	h.RegisterProtectedRoutes(protected)

	ctx := context.Background()
	adaToken, err := sessionManager.Issue(ctx, "ada")
	if err != nil {
		t.Fatalf("issue ada: %v", err)
	}
	bobToken, err := sessionManager.Issue(ctx, "bob")
	if err != nil {
		t.Fatalf("issue bob: %v", err)
	}

	return router, adaToken, bobToken
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeTask(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func createTask(t *testing.T, router *gin.Engine, token, title, dueDate string) map[string]any {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/tasks", token, gin.H{
		"title":       title,
		"description": "",
		"dueDate":     dueDate,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create task: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	return decodeTask(t, rec)
}

func TestTasksRequireAuth(t *testing.T) {
	router, _, _ := newTaskRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/tasks"},
		{http.MethodPost, "/tasks"},
		{http.MethodPatch, "/tasks/some-id"},
	} {
		rec := doJSON(t, router, tc.method, tc.path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s without token: expected 401, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestCreateTaskStartsPending(t *testing.T) {
	router, ada, _ := newTaskRouter(t)

	created := createTask(t, router, ada, "Write spec", "2025-01-01T00:00:00Z")
	if created["status"] != "pending" {
		t.Fatalf("expected pending, got %v", created["status"])
	}
	if created["id"] == nil || created["id"] == "" {
		t.Fatalf("missing id in %v", created)
	}
}

func TestCreateTaskRejectsInvalidInput(t *testing.T) {
	router, ada, _ := newTaskRouter(t)

	for _, body := range []gin.H{
		{"title": "", "dueDate": "2025-01-01T00:00:00Z"},
		{"title": "ok", "dueDate": "tomorrow"},
		{"title": "ok"},
	} {
		rec := doJSON(t, router, http.MethodPost, "/tasks", ada, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %v: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestListIsOwnerScoped(t *testing.T) {
	router, ada, bob := newTaskRouter(t)

	createTask(t, router, ada, "ada one", "2025-01-01T00:00:00Z")
	createTask(t, router, ada, "ada two", "2025-01-02T00:00:00Z")
	createTask(t, router, bob, "bob one", "2025-01-03T00:00:00Z")

	rec := doJSON(t, router, http.MethodGet, "/tasks", ada, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}

	var tasks []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &tasks); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks for ada, got %d", len(tasks))
	}
	for _, item := range tasks {
		if item["title"] == "bob one" {
			t.Fatal("bob's task visible to ada")
		}
	}
}

func TestListEmptyIsArray(t *testing.T) {
	router, ada, _ := newTaskRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/tasks", ada, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "[]" {
		t.Fatalf("expected empty array, got %q", got)
	}
}

func TestUpdateStatusLifecycle(t *testing.T) {
	router, ada, bob := newTaskRouter(t)

	created := createTask(t, router, ada, "Write spec", "2025-01-01T00:00:00Z")
	taskID := created["id"].(string)

	rec := doJSON(t, router, http.MethodPatch, "/tasks/"+taskID, ada, gin.H{"status": "completed"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	updated := decodeTask(t, rec)
	if updated["status"] != "completed" {
		t.Fatalf("expected completed, got %v", updated["status"])
	}

	createdAt, err := time.Parse(time.RFC3339Nano, created["createdAt"].(string))
	if err != nil {
		t.Fatalf("parse createdAt: %v", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, updated["updatedAt"].(string))
	if err != nil {
		t.Fatalf("parse updatedAt: %v", err)
	}
	if !updatedAt.After(createdAt) {
		t.Fatalf("updatedAt %v not after createdAt %v", updatedAt, createdAt)
	}

	// Bob neither sees nor learns about Ada's task.
	rec = doJSON(t, router, http.MethodPatch, "/tasks/"+taskID, bob, gin.H{"status": "completed"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("foreign update: expected 404, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPatch, "/tasks/no-such-id", bob, gin.H{"status": "completed"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing update: expected 404, got %d", rec.Code)
	}
}
