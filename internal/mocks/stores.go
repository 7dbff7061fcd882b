package mocks

import (
	"context"

	"blogapi/internal/domain"
	"blogapi/internal/store"
)

// MockUserStore is a configurable test double for store.UserStore.
type MockUserStore struct {
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByIDFn    func(ctx context.Context, id int64) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

var _ store.UserStore = (*MockUserStore)(nil)

// Create implements store.UserStore.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

// GetByID implements store.UserStore.
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements store.UserStore.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, store.ErrUserNotFound
}

// MockBlogStore is a configurable test double for store.BlogStore.
type MockBlogStore struct {
	CreateFn  func(ctx context.Context, blog *domain.Blog) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Blog, error)
	ListFn    func(ctx context.Context) ([]*domain.Blog, error)
	UpdateFn  func(ctx context.Context, id int64, title, body string) error
	DeleteFn  func(ctx context.Context, id int64) error
}

var _ store.BlogStore = (*MockBlogStore)(nil)

// Create implements store.BlogStore.
func (m *MockBlogStore) Create(ctx context.Context, blog *domain.Blog) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, blog)
	}
	return nil
}

// GetByID implements store.BlogStore.
func (m *MockBlogStore) GetByID(ctx context.Context, id int64) (*domain.Blog, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrBlogNotFound
}

// List implements store.BlogStore.
func (m *MockBlogStore) List(ctx context.Context) ([]*domain.Blog, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

// Update implements store.BlogStore.
func (m *MockBlogStore) Update(ctx context.Context, id int64, title, body string) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, title, body)
	}
	return store.ErrBlogNotFound
}

// Delete implements store.BlogStore.
func (m *MockBlogStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return store.ErrBlogNotFound
}
