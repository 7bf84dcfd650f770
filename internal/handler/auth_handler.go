package handler

import (
	"log/slog"
	"net/http"

	"finbrief/internal/auth"
	"finbrief/internal/model"

	"github.com/gin-gonic/gin"
)

type UserStore interface {
	GetByEmail(email string) (*model.User, error)
	Create(user *model.User) error
}

type AuthHandler struct {
	users  UserStore
	issuer *auth.TokenIssuer
}

func NewAuthHandler(users UserStore, issuer *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{users: users, issuer: issuer}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	existing, err := h.users.GetByEmail(req.Email)
	if err != nil {
		slog.Error("error checking for existing user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("error hashing password", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	user := &model.User{
		Email:          req.Email,
		HashedPassword: hashed,
		Nickname:       req.Nickname,
	}

	if err := h.users.Create(user); err != nil {
		slog.Error("error creating user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.users.GetByEmail(req.Username)
	if err != nil {
		slog.Error("error fetching user for login", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if user == nil || !auth.VerifyPassword(req.Password, user.HashedPassword) {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.issuer.Issue(user.Email)
	if err != nil {
		slog.Error("error issuing token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	nickname := user.Nickname
	if nickname == "" {
		nickname = "사용자"
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Nickname:    nickname,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, newUserResponse(auth.CurrentUser(c)))
}
