package usecases

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pathfinder-server/entities"
	"pathfinder-server/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenTTL is how long an issued auth token stays valid.
const TokenTTL = 7 * 24 * time.Hour

// Claims are the JWT claims carried by Pathfinder auth tokens.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

type AuthUseCase struct {
	UserRepo repositories.UserRepository
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewAuthUseCase(userRepo repositories.UserRepository, secret string) *AuthUseCase {
	return &AuthUseCase{
		UserRepo: userRepo,
		secret:   []byte(secret),
		tokenTTL: TokenTTL,
		now:      time.Now,
	}
}

// RegisterInput carries the registration payload.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Title    string `json:"title"`
}

// HashPassword hashes a plaintext password with bcrypt.
func (uc *AuthUseCase) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored hash.
func (uc *AuthUseCase) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken signs a token carrying the user id.
func (uc *AuthUseCase) GenerateToken(userID string) (string, error) {
	now := uc.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(uc.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(uc.secret)
}

// ParseToken verifies signature and expiry and returns the user id.
func (uc *AuthUseCase) ParseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return uc.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return uc.now() }))
	if err != nil {
		return "", ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrTokenInvalid
	}
	return claims.UserID, nil
}

// Authenticate resolves a verified token to its user record.
func (uc *AuthUseCase) Authenticate(tokenString string) (*entities.User, error) {
	userID, err := uc.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	user, err := uc.UserRepo.GetByID(userID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Register validates input, rejects duplicates and creates the account.
func (uc *AuthUseCase) Register(input RegisterInput) (*entities.User, string, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, "", fmt.Errorf("%w: username, email and password are required", ErrValidation)
	}
	if !strings.Contains(input.Email, "@") {
		return nil, "", fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if len(input.Password) < 6 {
		return nil, "", fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}
	// bcrypt rejects inputs over 72 bytes
	if len(input.Password) > 72 {
		return nil, "", fmt.Errorf("%w: password must be at most 72 characters", ErrValidation)
	}

	if _, err := uc.UserRepo.GetByUsername(input.Username); err == nil {
		return nil, "", fmt.Errorf("%w: username taken", ErrConflict)
	}
	if _, err := uc.UserRepo.GetByEmail(input.Email); err == nil {
		return nil, "", fmt.Errorf("%w: email already registered", ErrConflict)
	}

	hash, err := uc.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &entities.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Title:        input.Title,
	}
	if err := uc.UserRepo.Create(user); err != nil {
		// Concurrent registration loses the race at the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			return nil, "", fmt.Errorf("%w: username or email taken", ErrConflict)
		}
		return nil, "", err
	}

	token, err := uc.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks credentials and issues a token. Unknown users and bad
// passwords return the same error.
func (uc *AuthUseCase) Login(username, password string) (*entities.User, string, error) {
	if username == "" || password == "" {
		return nil, "", fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	user, err := uc.UserRepo.GetByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !uc.VerifyPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ProfileInput carries the mutable profile fields.
type ProfileInput struct {
	FullName  string `json:"full_name"`
	Title     string `json:"title"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

// UpdateProfile patches the provided profile fields.
func (uc *AuthUseCase) UpdateProfile(userID string, input ProfileInput) (*entities.User, error) {
	user, err := uc.UserRepo.GetByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Title != "" {
		user.Title = input.Title
	}
	if input.Bio != "" {
		user.Bio = input.Bio
	}
	if input.AvatarURL != "" {
		user.AvatarURL = input.AvatarURL
	}

	if err := uc.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
