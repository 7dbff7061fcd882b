package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"blogapi/internal/domain"
	"blogapi/internal/platform/logger"
	"blogapi/internal/store"
)

// PostgresBlogStore implements the store.BlogStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBlogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBlogStore creates a new PostgreSQL implementation of the
// BlogStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresBlogStore(db store.DBTX, logger *slog.Logger) *PostgresBlogStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBlogStore{
		db:     db,
		logger: logger.With(slog.String("component", "blog_store")),
	}
}

// Ensure PostgresBlogStore implements store.BlogStore interface
var _ store.BlogStore = (*PostgresBlogStore)(nil)

// Create implements store.BlogStore.Create
// It saves a new blog to the database and populates the assigned id.
// Returns store.ErrInvalidEntity if the author id doesn't exist
// (foreign key violation).
func (s *PostgresBlogStore) Create(ctx context.Context, blog *domain.Blog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := blog.Validate(); err != nil {
		log.Warn("blog validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO blogs (title, body, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		blog.Title,
		blog.Body,
		blog.AuthorID,
		blog.CreatedAt,
		blog.UpdatedAt,
	).Scan(&blog.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during blog creation",
				slog.String("error", err.Error()),
				slog.Any("user_id", blog.AuthorID))
			return fmt.Errorf("%w: user with ID %d not found",
				store.ErrInvalidEntity, *blog.AuthorID)
		}

		log.Error("failed to create blog",
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("blog created successfully",
		slog.Int64("blog_id", blog.ID))
	return nil
}

// GetByID implements store.BlogStore.GetByID
// It retrieves a blog by its unique ID.
// Returns store.ErrBlogNotFound if the blog does not exist.
func (s *PostgresBlogStore) GetByID(ctx context.Context, id int64) (*domain.Blog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, body, user_id, created_at, updated_at
		FROM blogs
		WHERE id = $1
	`

	var blog domain.Blog
	var authorID sql.NullInt64

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&blog.ID,
		&blog.Title,
		&blog.Body,
		&authorID,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("blog not found", slog.Int64("blog_id", id))
			return nil, store.ErrBlogNotFound
		}
		log.Error("failed to get blog by ID",
			slog.String("error", err.Error()),
			slog.Int64("blog_id", id))
		return nil, MapError(err)
	}

	if authorID.Valid {
		blog.AuthorID = &authorID.Int64
	}

	return &blog, nil
}

// List implements store.BlogStore.List
// It retrieves all blogs ordered by creation time, newest first.
func (s *PostgresBlogStore) List(ctx context.Context) ([]*domain.Blog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, body, user_id, created_at, updated_at
		FROM blogs
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list blogs", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	blogs := make([]*domain.Blog, 0)
	for rows.Next() {
		var blog domain.Blog
		var authorID sql.NullInt64

		if err := rows.Scan(
			&blog.ID,
			&blog.Title,
			&blog.Body,
			&authorID,
			&blog.CreatedAt,
			&blog.UpdatedAt,
		); err != nil {
			log.Error("failed to scan blog row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}

		if authorID.Valid {
			blog.AuthorID = &authorID.Int64
		}
		blogs = append(blogs, &blog)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating blog rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return blogs, nil
}

// Update implements store.BlogStore.Update
// It replaces the title and body of an existing blog.
// Returns store.ErrBlogNotFound if the blog does not exist.
func (s *PostgresBlogStore) Update(ctx context.Context, id int64, title, body string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE blogs
		SET title = $1, body = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(ctx, query, title, body, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to update blog",
			slog.String("error", err.Error()),
			slog.Int64("blog_id", id))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		log.Debug("blog not found during update", slog.Int64("blog_id", id))
		return store.ErrBlogNotFound
	}

	log.Info("blog updated successfully", slog.Int64("blog_id", id))
	return nil
}

// Delete implements store.BlogStore.Delete
// It removes a blog from the store by its ID.
// Returns store.ErrBlogNotFound if the blog does not exist.
func (s *PostgresBlogStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM blogs WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete blog",
			slog.String("error", err.Error()),
			slog.Int64("blog_id", id))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		log.Debug("blog not found during delete", slog.Int64("blog_id", id))
		return store.ErrBlogNotFound
	}

	log.Info("blog deleted successfully", slog.Int64("blog_id", id))
	return nil
}
