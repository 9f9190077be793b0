package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pathfinder-server/entities"
	"pathfinder-server/usecases"
	"pathfinder-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUserNotFound = errors.New("record not found")

type memUserRepo struct {
	byID map[string]*entities.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: make(map[string]*entities.User)}
}

func (r *memUserRepo) Create(user *entities.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.byID[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entities.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, errUserNotFound
}

func (r *memUserRepo) GetByUsername(username string) (*entities.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errUserNotFound
}

func (r *memUserRepo) GetByEmail(email string) (*entities.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errUserNotFound
}

func (r *memUserRepo) Update(user *entities.User) error {
	r.byID[user.ID] = user
	return nil
}

func newWSTestRouter() (*gin.Engine, *usecases.AuthUseCase, *memUserRepo) {
	gin.SetMode(gin.TestMode)
	repo := newMemUserRepo()
	auth := usecases.NewAuthUseCase(repo, "test-secret")
	handler := NewWSHandler(ws.NewManager(), auth)

	router := gin.New()
	router.GET("/ws", handler.HandleUserWS)
	return router, auth, repo
}

func TestHandleUserWS_MissingTokenIsUnauthorized(t *testing.T) {
	router, _, _ := newWSTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestHandleUserWS_GarbageTokenIsForbidden(t *testing.T) {
	router, _, _ := newWSTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/ws?token=not-a-jwt", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestHandleUserWS_DeletedUserIsUnauthorized(t *testing.T) {
	router, auth, repo := newWSTestRouter()

	user := &entities.User{Username: "ada", Email: "ada@example.com", PasswordHash: "x"}
	repo.Create(user)
	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	delete(repo.byID, user.ID)

	req := httptest.NewRequest(http.MethodGet, "/ws?token="+token, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for deleted user, got %d", rec.Code)
	}
}
