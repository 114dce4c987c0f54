package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"amavidya/internal/cache"
	"amavidya/internal/database"
	"amavidya/internal/models"
	"amavidya/internal/repository"
	"amavidya/internal/security"
)

var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// RegisterInput carries a validated registration request
type RegisterInput struct {
	Name     string
	Username string
	Email    string
	Password string
	Role     models.Role
	Grade    string
	Subject  string
}

// AuthService handles registration, login, and account lookups
type AuthService struct {
	db       *database.DB
	users    *repository.UserRepository
	tokens   *security.TokenManager
	email    *EmailService
	snapshot *cache.Store
}

// NewAuthService creates a new auth service
func NewAuthService(db *database.DB, users *repository.UserRepository, tokens *security.TokenManager, email *EmailService, snapshot *cache.Store) *AuthService {
	return &AuthService{
		db:       db,
		users:    users,
		tokens:   tokens,
		email:    email,
		snapshot: snapshot,
	}
}

// Register creates a new account. Students get a zero progress record
// in the same transaction so the account never exists without one.
func (s *AuthService) Register(input RegisterInput) (*models.User, string, error) {
	existing, err := s.users.GetUserByUsername(input.Username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, "", ErrUsernameTaken
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		Grade:        input.Grade,
		Subject:      input.Subject,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	txUsers := repository.NewUserRepository(tx)
	if err := txUsers.CreateUser(user); err != nil {
		return nil, "", err
	}

	if user.Role == models.RoleStudent {
		txProgress := repository.NewProgressRepository(tx)
		if err := txProgress.Save(user.ID, models.NewProgressRecord()); err != nil {
			return nil, "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, "", fmt.Errorf("failed to commit registration: %w", err)
	}

	if user.Email != "" {
		go func() {
			if err := s.email.SendWelcomeEmail(context.Background(), user.Email, user.Name); err != nil {
				log.Printf("Failed to send welcome email to %s: %v", user.Email, err)
			}
		}()
	}

	token, err := s.tokens.Issue(user.ID, user.Name, string(user.Role))
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	s.cacheUser(user)

	log.Printf("Registered %s account: %s", user.Role, user.Username)
	return user, token, nil
}

// Login verifies credentials and issues a bearer token
func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	user, err := s.users.GetUserByUsername(username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		// Burn a hash comparison so missing users take as long as
		// wrong passwords
		security.CheckPassword(password, "$2a$10$0000000000000000000000000000000000000000000000000000")
		return nil, "", ErrInvalidCredentials
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Name, string(user.Role))
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	s.cacheUser(user)
	return user, token, nil
}

// GetUser loads an account by ID. When the database is unreachable
// the last authenticated user can still be served from the snapshot,
// so a valid token keeps working through an outage.
func (s *AuthService) GetUser(userID string) (*models.User, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		cached := &models.User{}
		if cacheErr := s.snapshot.Get(cache.KeyCurrentUser, cached); cacheErr == nil && cached.ID == userID {
			return cached, nil
		}
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// cacheUser snapshots the signed-in account for offline reads
func (s *AuthService) cacheUser(user *models.User) {
	if err := s.snapshot.Put(cache.KeyCurrentUser, user); err != nil {
		log.Printf("Failed to snapshot user %s: %v", user.Username, err)
	}
}

// UpdateAvatar sets a user's avatar selection
func (s *AuthService) UpdateAvatar(userID, avatar string) error {
	user, err := s.GetUser(userID)
	if err != nil {
		return err
	}
	return s.users.UpdateAvatar(user.ID, avatar)
}
