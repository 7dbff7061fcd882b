package store

import (
	"context"

	"blogapi/internal/domain"
)

// BlogStore defines the interface for blog data persistence.
// All operations are single-record; there is no optimistic concurrency
// control, so the last writer wins.
type BlogStore interface {
	// Create saves a new blog to the store.
	// On success the blog's ID is populated with the store-assigned id.
	// Returns ErrInvalidEntity if AuthorID references a user that does
	// not exist.
	Create(ctx context.Context, blog *domain.Blog) error

	// GetByID retrieves a blog by its unique ID.
	// Returns ErrBlogNotFound if the blog does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Blog, error)

	// List retrieves all blogs, newest first.
	List(ctx context.Context) ([]*domain.Blog, error)

	// Update replaces the title and body of an existing blog.
	// Returns ErrBlogNotFound if the blog does not exist.
	Update(ctx context.Context, id int64, title, body string) error

	// Delete removes a blog from the store by its ID.
	// Returns ErrBlogNotFound if the blog does not exist.
	Delete(ctx context.Context, id int64) error
}
