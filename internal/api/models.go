package api

// Common request/response structures. Each endpoint has its own output
// struct explicitly listing the fields it exposes; nothing is narrowed by
// embedding or inheritance.

// CreateUserRequest defines the payload for the user creation endpoint.
type CreateUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UserResponse defines the public shape of a user. It carries neither the
// id nor any password material.
type UserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	// AccessToken is the JWT bearer token used for API authorization.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`
}

// BlogRequest defines the payload for blog creation and update endpoints.
// UserID optionally attributes the post to an existing user.
type BlogRequest struct {
	Title  string `json:"title" validate:"required"`
	Body   string `json:"body"  validate:"required"`
	UserID *int64 `json:"user_id,omitempty"`
}

// BlogResponse defines the public shape of a single blog post.
type BlogResponse struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID *int64 `json:"user_id,omitempty"`
}

// DetailResponse carries a human-readable confirmation message.
type DetailResponse struct {
	Detail string `json:"detail"`
}
