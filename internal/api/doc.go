// Package api contains the HTTP handlers for the blog service.
//
// Handlers translate between the HTTP surface and the store and service
// layers: they decode and validate request bodies, call the appropriate
// collaborator, and map result errors to HTTP status codes exactly once at
// this boundary.
package api
