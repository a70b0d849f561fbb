package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/xpyvent/xpyvent-api/internal/domain/user"
	"github.com/xpyvent/xpyvent-api/internal/logger"
)

// PostgresUserRepository implements UserRepository using GORM
type PostgresUserRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresUserRepository creates a new PostgreSQL user repository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{
		db:  db,
		log: logger.Repository("user"),
	}
}

func (r *PostgresUserRepository) Create(u *user.User) error {
	r.log.Debug("Creating user", "email", u.Email)

	if err := u.Validate(); err != nil {
		r.log.Error("User validation failed", "error", err)
		return fmt.Errorf("user validation failed: %w", err)
	}

	if err := r.db.Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			r.log.Error("User with email already exists", "email", u.Email)
			return ErrDuplicateEmail
		}
		r.log.Error("Failed to create user", "error", err, "email", u.Email)
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.log.Info("User created successfully", "id", u.ID, "email", u.Email)
	return nil
}

func (r *PostgresUserRepository) GetByID(id string) (*user.User, error) {
	r.log.Debug("retrieving user by ID", "user_id", id)

	userID, err := uuid.Parse(id)
	if err != nil {
		r.log.Debug("Invalid user ID format", "id", id, "error", err)
		return nil, ErrNotFound
	}

	var u user.User
	if err := r.db.First(&u, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("User not found", "id", id)
			return nil, ErrNotFound
		}
		r.log.Error("Failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return &u, nil
}

func (r *PostgresUserRepository) GetByEmail(email string) (*user.User, error) {
	r.log.Debug("retrieving user by email", "email", email)

	if email == "" {
		return nil, ErrNotFound
	}

	var u user.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("User not found", "email", email)
			return nil, ErrNotFound
		}
		r.log.Error("Failed to get user by email", "email", email, "error", err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &u, nil
}

func (r *PostgresUserRepository) UpdateEmail(id, email string) error {
	r.log.Debug("Updating user email", "id", id, "email", email)

	userID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	result := r.db.Model(&user.User{}).Where("id = ?", userID).Update("email", email)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			r.log.Error("Another user with email already exists", "email", email)
			return ErrDuplicateEmail
		}
		r.log.Error("Failed to update user email", "id", id, "error", result.Error)
		return fmt.Errorf("failed to update user email: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	r.log.Info("User email updated successfully", "id", id)
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
