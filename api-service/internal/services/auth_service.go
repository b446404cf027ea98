package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"loc8r/api-service/internal/models"
	"loc8r/api-service/internal/utils"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthService struct {
	userRepo UserRepository
	jwtUtil  *utils.JWTUtil
}

func NewAuthService(userRepo UserRepository, jwtUtil *utils.JWTUtil) *AuthService {
	return &AuthService{userRepo: userRepo, jwtUtil: jwtUtil}
}

// Register creates a user with a derived password hash and returns a signed token.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	if name == "" || email == "" || password == "" {
		return "", fmt.Errorf("%w: all fields required", models.ErrValidation)
	}

	user := &models.User{Name: name, Email: email}
	if err := user.SetPassword(password); err != nil {
		return "", err
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return "", err
	}

	return s.jwtUtil.GenerateToken(utils.Identity{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Name:   user.Name,
	})
}

// Login checks the credentials and returns a signed token. Unknown email and
// wrong password yield the same error so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: all fields required", models.ErrValidation)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Printf("login failed for %s: user not found", email)
			return "", models.ErrUnauthorized
		}
		return "", err
	}

	if !user.ValidPassword(password) {
		log.Printf("login failed for %s: password mismatch", email)
		return "", models.ErrUnauthorized
	}

	return s.jwtUtil.GenerateToken(utils.Identity{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Name:   user.Name,
	})
}
