package services

import (
	"errors"
	"fmt"
	"time"

	"blogapi/app/models"
	"blogapi/app/repositories"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned for any login failure. Unknown
	// user and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned for a missing, malformed, expired, or
	// otherwise unverifiable token, including one whose user no longer
	// exists.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthService issues and verifies signed tokens for the single admin
// user.
type AuthService struct {
	users  repositories.UserRepository
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates a new AuthService. Tokens are HS256-signed
// with the given secret and expire after ttl.
func NewAuthService(users repositories.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), ttl: ttl}
}

// Login checks the supplied credentials against the sole user record
// and, on success, returns a signed token embedding the user's ID.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.users.First()
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	if username != user.Username {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":  user.ID.Hex(),
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// VerifyToken checks the token's signature and expiry and confirms the
// embedded user ID still resolves to an existing user.
func (s *AuthService) VerifyToken(token string) (*models.User, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	hex, _ := claims["id"].(string)
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}
