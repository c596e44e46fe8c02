package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"traveljournal/models"
	"traveljournal/store"
)

type createAccountRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) CreateAccount(c *gin.Context) {
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FullName == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, errorResponse("All fields are required"))
		return
	}

	ctx := c.Request.Context()

	if _, err := h.users.FindByEmail(ctx, req.Email); err == nil {
		c.JSON(http.StatusBadRequest, errorResponse("User already exists"))
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, errorResponse("Something went wrong"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to hash password"))
		return
	}

	user, err := h.users.Create(ctx, &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusBadRequest, errorResponse("User already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Something went wrong"))
		return
	}

	accessToken, err := h.tokens.Issue(user.ID.Hex())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to generate token"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"error":       false,
		"user":        gin.H{"fullName": user.FullName, "email": user.Email},
		"accessToken": accessToken,
		"message":     "Account created successfully",
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, errorResponse("Email and password are required"))
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusBadRequest, errorResponse("User does not exist"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Something went wrong"))
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Incorrect password"))
		return
	}

	accessToken, err := h.tokens.Issue(user.ID.Hex())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to generate token"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":       false,
		"message":     "User login successfully",
		"user":        gin.H{"fullName": user.FullName, "email": user.Email},
		"accessToken": accessToken,
	})
}

func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.users.FindByID(c.Request.Context(), callerID(c))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, errorResponse("User not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Something went wrong"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"message": "",
	})
}
