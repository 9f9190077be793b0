package usecases

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"pathfinder-server/entities"

	"github.com/google/uuid"
	"pgregory.net/rapid"
)

// in-memory UserRepository for tests
type memUserRepo struct {
	byID       map[string]*entities.User
	byUsername map[string]*entities.User
	byEmail    map[string]*entities.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:       make(map[string]*entities.User),
		byUsername: make(map[string]*entities.User),
		byEmail:    make(map[string]*entities.User),
	}
}

var errRepoNotFound = errors.New("record not found")

func (r *memUserRepo) Create(user *entities.User) error {
	if _, ok := r.byUsername[user.Username]; ok {
		return errors.New("duplicate key value violates unique constraint")
	}
	if _, ok := r.byEmail[user.Email]; ok {
		return errors.New("duplicate key value violates unique constraint")
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.byID[user.ID] = user
	r.byUsername[user.Username] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entities.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, errRepoNotFound
}

func (r *memUserRepo) GetByUsername(username string) (*entities.User, error) {
	if u, ok := r.byUsername[username]; ok {
		return u, nil
	}
	return nil, errRepoNotFound
}

func (r *memUserRepo) GetByEmail(email string) (*entities.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, errRepoNotFound
}

func (r *memUserRepo) Update(user *entities.User) error {
	r.byID[user.ID] = user
	return nil
}

func newTestAuth() (*AuthUseCase, *memUserRepo) {
	repo := newMemUserRepo()
	return NewAuthUseCase(repo, "test-secret"), repo
}

func validInput() RegisterInput {
	return RegisterInput{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "hunter22",
	}
}

func TestRegister_Success(t *testing.T) {
	uc, _ := newTestAuth()

	user, token, err := uc.Register(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Error("expected user id to be set")
	}
	if token == "" {
		t.Error("expected a token")
	}
	if user.PasswordHash == "hunter22" {
		t.Error("password stored in plaintext")
	}
}

func TestRegister_ResponseNeverContainsPasswordHash(t *testing.T) {
	uc, _ := newTestAuth()

	user, _, err := uc.Register(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(raw)
	if strings.Contains(body, "password") || strings.Contains(body, user.PasswordHash) {
		t.Errorf("serialized user leaks password material: %s", body)
	}
}

func TestRegister_Validation(t *testing.T) {
	uc, _ := newTestAuth()

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"missing username", RegisterInput{Email: "a@b.com", Password: "secret1"}},
		{"missing email", RegisterInput{Username: "a", Password: "secret1"}},
		{"missing password", RegisterInput{Username: "a", Email: "a@b.com"}},
		{"bad email", RegisterInput{Username: "a", Email: "not-an-email", Password: "secret1"}},
		{"short password", RegisterInput{Username: "a", Email: "a@b.com", Password: "abc"}},
		{"over-long password", RegisterInput{Username: "a", Email: "a@b.com", Password: strings.Repeat("a", 80)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := uc.Register(tt.input)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	uc, _ := newTestAuth()

	if _, _, err := uc.Register(validInput()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	second := validInput()
	second.Email = "other@example.com"
	_, _, err := uc.Register(second)
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newTestAuth()

	if _, _, err := uc.Register(validInput()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	second := validInput()
	second.Username = "grace"
	_, _, err := uc.Register(second)
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

// racingUserRepo simulates a concurrent insert: the duplicate pre-checks
// see nothing, but the unique index rejects the write.
type racingUserRepo struct{ *memUserRepo }

func (r *racingUserRepo) GetByUsername(string) (*entities.User, error) { return nil, errRepoNotFound }
func (r *racingUserRepo) GetByEmail(string) (*entities.User, error)    { return nil, errRepoNotFound }
func (r *racingUserRepo) Create(*entities.User) error {
	return errors.New("duplicate key value violates unique constraint \"idx_users_username\"")
}

func TestRegister_RaceSurfacesAsConflict(t *testing.T) {
	uc := NewAuthUseCase(&racingUserRepo{newMemUserRepo()}, "test-secret")

	_, _, err := uc.Register(validInput())
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict from unique violation, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	uc, _ := newTestAuth()
	if _, _, err := uc.Register(validInput()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	user, token, err := uc.Login("ada", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "ada" || token == "" {
		t.Errorf("unexpected login result: %+v, token=%q", user, token)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, _ := newTestAuth()
	if _, _, err := uc.Register(validInput()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	_, _, err := uc.Login("ada", "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	uc, _ := newTestAuth()

	_, _, err := uc.Login("nobody", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	uc, _ := newTestAuth()

	if _, _, err := uc.Login("", "pw"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for missing username, got %v", err)
	}
	if _, _, err := uc.Login("ada", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for missing password, got %v", err)
	}
}

func TestToken_RoundTrip(t *testing.T) {
	uc, _ := newTestAuth()

	token, err := uc.GenerateToken("user-123")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	userID, err := uc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("expected user-123, got %s", userID)
	}
}

func TestToken_ValidUntilExpiry(t *testing.T) {
	uc, _ := newTestAuth()

	issued := time.Now()
	uc.now = func() time.Time { return issued }
	token, err := uc.GenerateToken("user-123")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	// Just before the 7-day mark the token still verifies
	uc.now = func() time.Time { return issued.Add(TokenTTL - time.Minute) }
	if _, err := uc.ParseToken(token); err != nil {
		t.Errorf("token rejected before expiry: %v", err)
	}

	// Just after, it must be rejected
	uc.now = func() time.Time { return issued.Add(TokenTTL + time.Minute) }
	if _, err := uc.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid after expiry, got %v", err)
	}
}

func TestToken_TamperedSignature(t *testing.T) {
	uc, _ := newTestAuth()
	other := NewAuthUseCase(newMemUserRepo(), "different-secret")

	token, err := other.GenerateToken("user-123")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := uc.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for wrong signature, got %v", err)
	}
}

func TestAuthenticate_UserGone(t *testing.T) {
	uc, repo := newTestAuth()

	user, token, err := uc.Register(validInput())
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	delete(repo.byID, user.ID)

	if _, err := uc.Authenticate(token); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for vanished user, got %v", err)
	}
}

func TestHashVerify_Property(t *testing.T) {
	uc, _ := newTestAuth()

	rapid.Check(t, func(t *rapid.T) {
		// bcrypt only reads the first 72 bytes of input
		p := rapid.StringN(1, 32, 64).Draw(t, "p")
		q := rapid.StringN(1, 32, 64).Draw(t, "q")

		hash, err := uc.HashPassword(p)
		if err != nil {
			t.Fatalf("hash failed: %v", err)
		}
		if !uc.VerifyPassword(p, hash) {
			t.Fatalf("verify(p, hash(p)) = false for %q", p)
		}
		if p != q && uc.VerifyPassword(q, hash) {
			t.Fatalf("verify(q, hash(p)) = true for p=%q q=%q", p, q)
		}
	})
}
