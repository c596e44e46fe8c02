package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"traveljournal/models"
	"traveljournal/store"
)

type travelPostRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	VisitedLocation []string `json:"visitedLocation"`
	ImageURL        string   `json:"imageUrl"`
	VisitedDate     int64    `json:"visitedDate"`
}

// validate runs the pure missing-field checks before any store is touched.
// visitedLocation must be present but may be empty; the image is optional on
// edit, where an empty value falls back to the placeholder.
func (r *travelPostRequest) validate(requireImage bool) bool {
	if r.Title == "" || r.Description == "" || r.VisitedLocation == nil || r.VisitedDate == 0 {
		return false
	}
	if requireImage && r.ImageURL == "" {
		return false
	}
	return true
}

func (h *Handler) AddTravelPost(c *gin.Context) {
	var req travelPostRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.validate(true) {
		c.JSON(http.StatusBadRequest, errorResponse("All fields are required"))
		return
	}

	owner, err := primitive.ObjectIDFromHex(callerID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, errorResponse("Invalid user ID"))
		return
	}

	post, err := h.posts.Create(c.Request.Context(), &models.TravelPost{
		UserID:          owner,
		Title:           req.Title,
		Description:     req.Description,
		VisitedLocation: req.VisitedLocation,
		ImageURL:        req.ImageURL,
		VisitedDate:     time.UnixMilli(req.VisitedDate).UTC(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Something went wrong"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"error":   false,
		"posts":   post,
		"message": "Added successfully",
	})
}

func (h *Handler) GetAllPosts(c *gin.Context) {
	posts, err := h.posts.ListByOwner(c.Request.Context(), callerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Something went wrong"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *Handler) EditPost(c *gin.Context) {
	var req travelPostRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.validate(false) {
		c.JSON(http.StatusBadRequest, errorResponse("All fields are required"))
		return
	}

	ctx := c.Request.Context()

	post, err := h.posts.FindOwned(ctx, c.Param("id"), callerID(c))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse("Travel post not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Something went wrong"))
		return
	}

	imageURL := req.ImageURL
	if imageURL == "" {
		imageURL = h.placeholderURL
	}
	oldImage := post.ImageURL

	post.Title = req.Title
	post.Description = req.Description
	post.VisitedLocation = req.VisitedLocation
	post.ImageURL = imageURL
	post.VisitedDate = time.UnixMilli(req.VisitedDate).UTC()

	if err := h.posts.Update(ctx, post); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Travel post not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Something went wrong"))
		return
	}

	// The record now points at the new image; only then drop the old one.
	if oldImage != post.ImageURL {
		h.cleanupImage(ctx, oldImage)
	}

	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"post":    post,
		"message": "Successfully updated",
	})
}

func (h *Handler) DeletePost(c *gin.Context) {
	ctx := c.Request.Context()

	post, err := h.posts.FindOwned(ctx, c.Param("id"), callerID(c))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse("Travel post not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Something went wrong"))
		return
	}

	if err := h.posts.Delete(ctx, c.Param("id"), callerID(c)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Travel post not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Something went wrong"))
		return
	}

	// Record is gone; image cleanup is best-effort.
	h.cleanupImage(ctx, post.ImageURL)

	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"message": "Successfully deleted",
	})
}

func (h *Handler) UpdateIsFavourite(c *gin.Context) {
	var req struct {
		IsFavourite bool `json:"isFavourite"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	ctx := c.Request.Context()

	post, err := h.posts.FindOwned(ctx, c.Param("id"), callerID(c))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse("Travel post not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Something went wrong"))
		return
	}

	post.IsFavourite = req.IsFavourite

	if err := h.posts.Update(ctx, post); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Travel post not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Something went wrong"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"post":    post,
		"message": "Successfully updated",
	})
}

func (h *Handler) SearchPosts(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, errorResponse("query is required"))
		return
	}

	results, err := h.posts.Search(c.Request.Context(), callerID(c), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Something went wrong"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"stories": results})
}

func (h *Handler) FilterByDate(c *gin.Context) {
	start, startErr := strconv.ParseInt(c.Query("startDate"), 10, 64)
	end, endErr := strconv.ParseInt(c.Query("endDate"), 10, 64)
	if startErr != nil || endErr != nil {
		c.JSON(http.StatusBadRequest, errorResponse("startDate and endDate are required"))
		return
	}

	posts, err := h.posts.FilterByDateRange(
		c.Request.Context(),
		callerID(c),
		time.UnixMilli(start).UTC(),
		time.UnixMilli(end).UTC(),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Something went wrong"))
		return
	}

	c.JSON(http.StatusOK, posts)
}
