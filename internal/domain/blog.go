package domain

import (
	"errors"
	"time"
)

// Blog validation errors.
var (
	ErrEmptyTitle = errors.New("title cannot be empty")
	ErrEmptyBody  = errors.New("body cannot be empty")
)

// Blog represents a single blog post.
// AuthorID optionally references the creating user; a nil AuthorID means the
// post was created anonymously. The relation is non-owning: deleting a blog
// never touches the referenced user.
type Blog struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	AuthorID  *int64    `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBlog creates a new Blog with the given title, body and optional author.
// The ID is zero until the store assigns one on creation.
// Returns an error if validation fails.
func NewBlog(title, body string, authorID *int64) (*Blog, error) {
	blog := &Blog{
		Title:     title,
		Body:      body,
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := blog.Validate(); err != nil {
		return nil, err
	}

	return blog, nil
}

// Validate checks if the Blog has valid data.
// Returns an error if any field fails validation.
func (b *Blog) Validate() error {
	if b.Title == "" {
		return ErrEmptyTitle
	}

	if b.Body == "" {
		return ErrEmptyBody
	}

	return nil
}
