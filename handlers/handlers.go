// Package handlers contains the HTTP layer: request validation, token
// issuance on the auth endpoints, and composition of the stores and the
// media gateway. Ownership is threaded explicitly into every store call.
package handlers

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"traveljournal/media"
	"traveljournal/middleware"
	"traveljournal/store"
	"traveljournal/token"
)

type Handler struct {
	users          store.UserStore
	posts          store.PostStore
	tokens         *token.Service
	media          media.Store
	placeholderURL string
}

func New(users store.UserStore, posts store.PostStore, tokens *token.Service, mediaStore media.Store, placeholderURL string) *Handler {
	return &Handler{
		users:          users,
		posts:          posts,
		tokens:         tokens,
		media:          mediaStore,
		placeholderURL: placeholderURL,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{"error": true, "message": message}
}

func callerID(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}

// cleanupImage removes a replaced or orphaned blob after the record mutation
// has already succeeded. Failures are logged, never surfaced: a leftover blob
// is recoverable, a record pointing at a vanished image is not.
func (h *Handler) cleanupImage(ctx context.Context, imageURL string) {
	if imageURL == "" || imageURL == h.placeholderURL {
		return
	}
	if err := h.media.Delete(ctx, imageURL); err != nil {
		log.Printf("image cleanup failed for %s: %v", imageURL, err)
	}
}
