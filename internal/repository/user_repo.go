package repository

import (
	"database/sql"
	"fmt"
	"time"

	"amavidya/internal/database"
	"amavidya/internal/models"
)

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db database.DBTX
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user account
func (r *UserRepository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO users (id, name, username, email, password_hash, role, grade, subject, avatar, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.db.Exec(query,
		user.ID,
		user.Name,
		user.Username,
		user.Email,
		user.PasswordHash,
		string(user.Role),
		user.Grade,
		user.Subject,
		user.Avatar,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by ID, returning nil when not found
func (r *UserRepository) GetUserByID(id string) (*models.User, error) {
	query := `
		SELECT id, name, username, email, password_hash, role, grade, subject, avatar, created_at, updated_at
		FROM users WHERE id = ?
	`
	return r.scanOne(r.db.QueryRow(query, id))
}

// GetUserByUsername retrieves a user by username, returning nil when
// not found
func (r *UserRepository) GetUserByUsername(username string) (*models.User, error) {
	query := `
		SELECT id, name, username, email, password_hash, role, grade, subject, avatar, created_at, updated_at
		FROM users WHERE username = ?
	`
	return r.scanOne(r.db.QueryRow(query, username))
}

// ListStudents retrieves all student accounts ordered by name
func (r *UserRepository) ListStudents() ([]models.User, error) {
	query := `
		SELECT id, name, username, email, password_hash, role, grade, subject, avatar, created_at, updated_at
		FROM users WHERE role = ? ORDER BY name ASC
	`
	rows, err := r.db.Query(query, string(models.RoleStudent))
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

// ListUsers retrieves every account ordered by creation time
func (r *UserRepository) ListUsers() ([]models.User, error) {
	query := `
		SELECT id, name, username, email, password_hash, role, grade, subject, avatar, created_at, updated_at
		FROM users ORDER BY created_at ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

// UpdateAvatar sets a user's avatar
func (r *UserRepository) UpdateAvatar(userID, avatar string) error {
	query := "UPDATE users SET avatar = ?, updated_at = ? WHERE id = ?"
	_, err := r.db.Exec(query, avatar, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}
	return nil
}

func (r *UserRepository) scanOne(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var role string
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&role,
		&user.Grade,
		&user.Subject,
		&user.Avatar,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	user.Role = models.Role(role)
	return user, nil
}

func (r *UserRepository) scanAll(rows *sql.Rows) ([]models.User, error) {
	var users []models.User
	for rows.Next() {
		var user models.User
		var role string
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&role,
			&user.Grade,
			&user.Subject,
			&user.Avatar,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		user.Role = models.Role(role)
		users = append(users, user)
	}
	return users, rows.Err()
}
