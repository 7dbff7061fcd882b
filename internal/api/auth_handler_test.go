package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"blogapi/internal/api"
	"blogapi/internal/domain"
	"blogapi/internal/mocks"
	"blogapi/internal/service/auth"
	"blogapi/internal/store"
)

func loginRequest(t *testing.T, body any) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	hashed, err := hasher.Hash("opensesame")
	require.NoError(t, err)

	knownUser := &domain.User{
		ID:             1,
		Name:           "Ada",
		Email:          "ada@example.com",
		HashedPassword: hashed,
	}

	userStore := &mocks.MockUserStore{
		GetByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			if email == knownUser.Email {
				return knownUser, nil
			}
			return nil, store.ErrUserNotFound
		},
	}

	tokenService := &mocks.MockTokenService{Token: "signed-token"}
	handler := api.NewAuthHandler(userStore, tokenService, hasher)

	t.Run("valid credentials return bearer token", func(t *testing.T) {
		t.Parallel()
		recorder := httptest.NewRecorder()
		handler.Login(recorder, loginRequest(t, api.LoginRequest{
			Email:    "ada@example.com",
			Password: "opensesame",
		}))

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp api.TokenResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "signed-token", resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()

		unknownRecorder := httptest.NewRecorder()
		handler.Login(unknownRecorder, loginRequest(t, api.LoginRequest{
			Email:    "nobody@example.com",
			Password: "opensesame",
		}))

		wrongRecorder := httptest.NewRecorder()
		handler.Login(wrongRecorder, loginRequest(t, api.LoginRequest{
			Email:    "ada@example.com",
			Password: "wrong-password",
		}))

		assert.Equal(t, http.StatusNotFound, unknownRecorder.Code)
		assert.Equal(t, http.StatusNotFound, wrongRecorder.Code)

		var unknownBody, wrongBody map[string]any
		require.NoError(t, json.Unmarshal(unknownRecorder.Body.Bytes(), &unknownBody))
		require.NoError(t, json.Unmarshal(wrongRecorder.Body.Bytes(), &wrongBody))
		assert.Equal(t, unknownBody["detail"], wrongBody["detail"])
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader([]byte("{not json")))
		handler.Login(recorder, req)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		t.Parallel()
		recorder := httptest.NewRecorder()
		handler.Login(recorder, loginRequest(t, api.LoginRequest{Email: "ada@example.com"}))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("store failure maps to 500", func(t *testing.T) {
		t.Parallel()
		failingStore := &mocks.MockUserStore{
			GetByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
				return nil, errors.New("connection refused")
			},
		}
		h := api.NewAuthHandler(failingStore, tokenService, hasher)

		recorder := httptest.NewRecorder()
		h.Login(recorder, loginRequest(t, api.LoginRequest{
			Email:    "ada@example.com",
			Password: "opensesame",
		}))
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})

	t.Run("token issue failure maps to 500", func(t *testing.T) {
		t.Parallel()
		failingTokens := &mocks.MockTokenService{IssueErr: errors.New("signing failed")}
		h := api.NewAuthHandler(userStore, failingTokens, hasher)

		recorder := httptest.NewRecorder()
		h.Login(recorder, loginRequest(t, api.LoginRequest{
			Email:    "ada@example.com",
			Password: "opensesame",
		}))
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestLoginRoundTrip(t *testing.T) {
	t.Parallel()

	// Real token service: a login token must validate back to the same email.
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	hashed, err := hasher.Hash("opensesame")
	require.NoError(t, err)

	userStore := &mocks.MockUserStore{
		GetByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{
				ID:             1,
				Name:           "Ada",
				Email:          email,
				HashedPassword: hashed,
			}, nil
		},
	}

	tokenService := auth.NewTestTokenService(
		"test-secret-that-is-long-enough-for-testing", 30*time.Minute, nil)
	handler := api.NewAuthHandler(userStore, tokenService, hasher)

	recorder := httptest.NewRecorder()
	handler.Login(recorder, loginRequest(t, api.LoginRequest{
		Email:    "ada@example.com",
		Password: "opensesame",
	}))
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp api.TokenResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	claims, err := tokenService.ValidateToken(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.Subject)
}
