package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"finance-control-go/internal/auth"
	"finance-control-go/internal/models"
)

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// POST /api/auth/register
func (s *Server) register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if err := s.db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(409, gin.H{"error": "email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(500, gin.H{"error": "failed to hash password"})
		return
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Active:       true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to create user"})
		return
	}

	token, err := s.issueToken(&user)
	if err != nil {
		c.JSON(500, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(201, authResponse{Token: token, User: &user})
}

// POST /api/auth/login
func (s *Server) login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := s.db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(401, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(500, gin.H{"error": "failed to look up user"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(401, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := s.issueToken(&user)
	if err != nil {
		c.JSON(500, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(200, authResponse{Token: token, User: &user})
}

// GET /api/auth/me
func (s *Server) me(c *gin.Context) {
	user := c.MustGet("user").(*models.User)
	c.JSON(200, user)
}

func (s *Server) issueToken(user *models.User) (string, error) {
	ttl := time.Duration(s.cfg.JWTExpiresH) * time.Hour
	return auth.Sign(s.cfg.JWTSecret, user.ID, ttl)
}
