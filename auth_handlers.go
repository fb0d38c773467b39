package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var validate = validator.New()

const tokenTTL = 7 * 24 * time.Hour

type RegisterReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserDTO is the profile shape returned by auth endpoints; the password hash
// never leaves the server.
type UserDTO struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	SubscriptionTier string `json:"subscriptionTier"`
	Points           int    `json:"points"`
}

func toUserDTO(u User) UserDTO {
	return UserDTO{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		SubscriptionTier: u.SubscriptionTier,
		Points:           u.Points,
	}
}

func issueToken(userID string, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// POST /api/auth/register
func Register(db *gorm.DB, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}
		if err := validate.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}

		var existing User
		err := db.First(&existing, "email = ?", req.Email).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}

		u := User{
			ID:               uuid.New().String(),
			Email:            req.Email,
			PasswordHash:     string(hash),
			Name:             req.Name,
			SubscriptionTier: "FREE",
		}
		if err := db.Create(&u).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}

		token, err := issueToken(u.ID, secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "User created successfully",
			"token":   token,
			"user":    toUserDTO(u),
		})
	}
}

// POST /api/auth/login
func Login(db *gorm.DB, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}
		if err := validate.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}

		// unknown email and wrong password answer identically
		var u User
		if err := db.First(&u, "email = ?", req.Email).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := issueToken(u.ID, secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   token,
			"user":    toUserDTO(u),
		})
	}
}

// GET /api/auth/me
func GetMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("user")
		u, ok2 := v.(User)
		if !ok || !ok2 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": toUserDTO(u)})
	}
}
