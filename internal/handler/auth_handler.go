package handler

import (
	"log/slog"
	"net/http"

	"github.com/Baibhabsarkar41/Stocks-Analyzer/internal/auth"
	"github.com/Baibhabsarkar41/Stocks-Analyzer/internal/model"

	"github.com/gin-gonic/gin"
)

type UserStore interface {
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
}

type AuthHandler struct {
	users  UserStore
	tokens *auth.Manager
}

func NewAuthHandler(users UserStore, tokens *auth.Manager) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	existing, err := h.users.FindByUsername(req.Username)
	if err != nil {
		slog.Error("error checking username", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already registered"})
		return
	}

	existing, err = h.users.FindByEmail(req.Email)
	if err != nil {
		slog.Error("error checking email", "error", err)
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

	user := &model.User{Username: req.Username, Email: req.Email, HashedPassword: hashed}
	if err := h.users.Create(user); err != nil {
		slog.Error("error creating user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "User registered successfully"})
}

// Login accepts form-encoded or JSON credentials. The failure message never
// says which credential was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.users.FindByUsername(req.Username)
	if err != nil {
		slog.Error("error fetching user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if user == nil || !auth.CheckPassword(req.Password, user.HashedPassword) {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
		return
	}

	token, err := h.tokens.CreateToken(user.Username)
	if err != nil {
		slog.Error("error creating token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}
