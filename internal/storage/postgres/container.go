package postgres

import (
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"github.com/xpyvent/xpyvent-api/internal/config"
	"github.com/xpyvent/xpyvent-api/internal/logger"
)

// Container implements RepositoryContainer on PostgreSQL
type Container struct {
	db           *gorm.DB
	log          *log.Logger
	userRepo     UserRepository
	profileRepo  ProfileRepository
	eventRepo    EventRepository
	mediaRepo    MediaRepository
	feedbackRepo FeedbackRepository
}

// NewContainer creates a new repository container with all repositories initialized
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.Repository("postgres_container")
	log.Info("Initializing PostgreSQL repository container...")

	db, err := Connect(cfg)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		log.Error("Failed to run migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	container := NewContainerWithDB(db)

	if err := container.Health(); err != nil {
		log.Error("Container health check failed", "error", err)
		return nil, fmt.Errorf("container health check failed: %w", err)
	}

	log.Info("PostgreSQL repository container initialized successfully")
	return container, nil
}

// NewContainerWithDB creates a container with an existing database connection
func NewContainerWithDB(db *gorm.DB) *Container {
	return &Container{
		db:           db,
		log:          logger.Repository("postgres_container"),
		userRepo:     NewPostgresUserRepository(db),
		profileRepo:  NewPostgresProfileRepository(db),
		eventRepo:    NewPostgresEventRepository(db),
		mediaRepo:    NewPostgresMediaRepository(db),
		feedbackRepo: NewPostgresFeedbackRepository(db),
	}
}

// Users returns the user repository
func (c *Container) Users() UserRepository {
	return c.userRepo
}

// Profiles returns the profile repository
func (c *Container) Profiles() ProfileRepository {
	return c.profileRepo
}

// Events returns the event repository
func (c *Container) Events() EventRepository {
	return c.eventRepo
}

// Media returns the media repository
func (c *Container) Media() MediaRepository {
	return c.mediaRepo
}

// Feedback returns the feedback repository
func (c *Container) Feedback() FeedbackRepository {
	return c.feedbackRepo
}

// Health performs a health check on the database connection and tables
func (c *Container) Health() error {
	c.log.Debug("Performing container health check...")

	if err := HealthCheck(c.db); err != nil {
		c.log.Error("Database health check failed", "error", err)
		return fmt.Errorf("database health check failed: %w", err)
	}

	for _, table := range []string{"users", "profiles", "events", "media", "feedback"} {
		var count int64
		if err := c.db.Table(table).Count(&count).Error; err != nil {
			c.log.Error("Table health check failed", "table", table, "error", err)
			return fmt.Errorf("table %s health check failed: %w", table, err)
		}
	}

	c.log.Debug("Container health check completed successfully")
	return nil
}

// Close gracefully shuts down the container and closes the database connection
func (c *Container) Close() error {
	c.log.Info("Closing PostgreSQL repository container...")

	if c.db == nil {
		c.log.Warn("Database connection is nil, nothing to close")
		return nil
	}

	if err := Close(); err != nil {
		c.log.Error("Failed to close database connection", "error", err)
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	c.db = nil

	c.log.Info("PostgreSQL repository container closed successfully")
	return nil
}

// GetDB returns the underlying database connection (for advanced usage)
func (c *Container) GetDB() *gorm.DB {
	return c.db
}

// BeginTransaction starts a new database transaction
func (c *Container) BeginTransaction() (*TransactionContainer, error) {
	tx := c.db.Begin()
	if tx.Error != nil {
		c.log.Error("Failed to begin transaction", "error", tx.Error)
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	c.log.Debug("Database transaction started")
	return NewTransactionContainer(tx), nil
}

// WithTransaction runs fn against a transaction-scoped container. An error
// from fn rolls everything back; otherwise the transaction commits.
func (c *Container) WithTransaction(fn func(RepositoryContainer) error) error {
	tx, err := c.BeginTransaction()
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			c.log.Error("Failed to roll back transaction", "error", rbErr)
		}
		return err
	}

	return tx.Commit()
}

// TransactionContainer wraps the repositories in a database transaction
type TransactionContainer struct {
	tx           *gorm.DB
	log          *log.Logger
	userRepo     UserRepository
	profileRepo  ProfileRepository
	eventRepo    EventRepository
	mediaRepo    MediaRepository
	feedbackRepo FeedbackRepository
}

// NewTransactionContainer creates a new transaction container
func NewTransactionContainer(tx *gorm.DB) *TransactionContainer {
	return &TransactionContainer{
		tx:           tx,
		log:          logger.Repository("postgres_transaction"),
		userRepo:     NewPostgresUserRepository(tx),
		profileRepo:  NewPostgresProfileRepository(tx),
		eventRepo:    NewPostgresEventRepository(tx),
		mediaRepo:    NewPostgresMediaRepository(tx),
		feedbackRepo: NewPostgresFeedbackRepository(tx),
	}
}

// Users returns the user repository within the transaction
func (tc *TransactionContainer) Users() UserRepository {
	return tc.userRepo
}

// Profiles returns the profile repository within the transaction
func (tc *TransactionContainer) Profiles() ProfileRepository {
	return tc.profileRepo
}

// Events returns the event repository within the transaction
func (tc *TransactionContainer) Events() EventRepository {
	return tc.eventRepo
}

// Media returns the media repository within the transaction
func (tc *TransactionContainer) Media() MediaRepository {
	return tc.mediaRepo
}

// Feedback returns the feedback repository within the transaction
func (tc *TransactionContainer) Feedback() FeedbackRepository {
	return tc.feedbackRepo
}

// Commit commits the transaction
func (tc *TransactionContainer) Commit() error {
	if tc.tx == nil {
		return fmt.Errorf("transaction already closed")
	}

	if err := tc.tx.Commit().Error; err != nil {
		tc.log.Error("Failed to commit transaction", "error", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	tc.tx = nil
	tc.log.Debug("Database transaction committed")
	return nil
}

// Rollback rolls back the transaction
func (tc *TransactionContainer) Rollback() error {
	if tc.tx == nil {
		return fmt.Errorf("transaction already closed")
	}

	if err := tc.tx.Rollback().Error; err != nil {
		tc.log.Error("Failed to roll back transaction", "error", err)
		return fmt.Errorf("failed to roll back transaction: %w", err)
	}

	tc.tx = nil
	tc.log.Debug("Database transaction rolled back")
	return nil
}

// Health reports whether the transaction is still open
func (tc *TransactionContainer) Health() error {
	if tc.tx == nil {
		return fmt.Errorf("transaction is closed")
	}
	return nil
}

// Close rolls back the transaction if it is still open
func (tc *TransactionContainer) Close() error {
	if tc.tx == nil {
		return nil
	}
	return tc.Rollback()
}

// WithTransaction runs fn against the already-open transaction
func (tc *TransactionContainer) WithTransaction(fn func(RepositoryContainer) error) error {
	return fn(tc)
}
