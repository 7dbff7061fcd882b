package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"blogapi/internal/api/shared"
	"blogapi/internal/domain"
	"blogapi/internal/store"
)

// BlogHandler handles blog-related API requests.
type BlogHandler struct {
	blogStore store.BlogStore
}

// NewBlogHandler creates a new BlogHandler with the given dependencies.
func NewBlogHandler(blogStore store.BlogStore) *BlogHandler {
	return &BlogHandler{
		blogStore: blogStore,
	}
}

// blogResponse maps a domain blog to its public shape.
func blogResponse(blog *domain.Blog) BlogResponse {
	return BlogResponse{
		ID:     blog.ID,
		Title:  blog.Title,
		Body:   blog.Body,
		UserID: blog.AuthorID,
	}
}

// List handles the GET /blog/ endpoint. The route is protected; the auth
// middleware has already verified the caller by the time this runs.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to fetch blogs", err)
		return
	}

	responses := make([]BlogResponse, 0, len(blogs))
	for _, blog := range blogs {
		responses = append(responses, blogResponse(blog))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// Create handles the POST /blog/ endpoint.
// The owning user id is optional; when present it must reference an
// existing user.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req BlogRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	blog, err := domain.NewBlog(req.Title, req.Body, req.UserID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid blog data: "+err.Error())
		return
	}

	if err := h.blogStore.Create(r.Context(), blog); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Unknown user id")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create blog", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, blogResponse(blog))
}

// GetByID handles the GET /blog/{id} endpoint.
func (h *BlogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.blogID(w, r)
	if !ok {
		return
	}

	blog, err := h.blogStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrBlogNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, blogNotFoundDetail(id))
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to fetch blog", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, blogResponse(blog))
}

// Update handles the PUT /blog/{id} endpoint.
// A successful update answers 202 with a confirmation message.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.blogID(w, r)
	if !ok {
		return
	}

	var req BlogRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.blogStore.Update(r.Context(), id, req.Title, req.Body); err != nil {
		if errors.Is(err, store.ErrBlogNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, blogNotFoundDetail(id))
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to update blog", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, DetailResponse{
		Detail: fmt.Sprintf("Blog %d has been successfully updated", id),
	})
}

// Delete handles the DELETE /blog/{id} endpoint.
// A successful delete answers 204 with an empty body.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.blogID(w, r)
	if !ok {
		return
	}

	if err := h.blogStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrBlogNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, blogNotFoundDetail(id))
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to delete blog", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// blogID parses the {id} route parameter. On failure it writes a 400
// response and reports false.
func (h *BlogHandler) blogID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid blog id")
		return 0, false
	}
	return id, true
}

func blogNotFoundDetail(id int64) string {
	return fmt.Sprintf("Blog with the id %d is not available", id)
}
