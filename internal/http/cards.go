package http

import (
	"github.com/gin-gonic/gin"

	"finance-control-go/internal/models"
)

type creditCardInput struct {
	Name             string  `json:"name" binding:"required"`
	Network          string  `json:"network" binding:"required,oneof=VISA MASTERCARD AMEX ELO HIPERCARD OTHER"`
	Number           string  `json:"number" binding:"required"`
	Limit            float64 `json:"limit" binding:"required,gt=0"`
	DueDay           int     `json:"dueDay" binding:"required,min=1,max=31"`
	ClosingDay       int     `json:"closingDay" binding:"required,min=1,max=31"`
	CurrentStatement float64 `json:"currentStatement"`
	NextStatement    float64 `json:"nextStatement"`
	Notes            string  `json:"notes"`
	Active           *bool   `json:"active"`
}

// GET /api/credit-cards
func (s *Server) listCreditCards(c *gin.Context) {
	userID := currentUserID(c)

	var cards []models.CreditCard
	if err := s.db.Where("user_id = ?", userID).Order("name asc").Find(&cards).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to list credit cards"})
		return
	}
	c.JSON(200, cards)
}

// GET /api/credit-cards/:id
func (s *Server) getCreditCard(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var card models.CreditCard
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&card).Error; err != nil {
		c.JSON(404, gin.H{"error": "credit card not found"})
		return
	}
	c.JSON(200, card)
}

// POST /api/credit-cards
func (s *Server) createCreditCard(c *gin.Context) {
	userID := currentUserID(c)

	var input creditCardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	card := models.CreditCard{
		Name:             input.Name,
		Network:          input.Network,
		Number:           input.Number,
		Limit:            input.Limit,
		DueDay:           input.DueDay,
		ClosingDay:       input.ClosingDay,
		CurrentStatement: input.CurrentStatement,
		NextStatement:    input.NextStatement,
		Notes:            input.Notes,
		Active:           true,
		UserID:           userID,
	}
	if input.Active != nil {
		card.Active = *input.Active
	}
	if err := s.db.Create(&card).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to create credit card"})
		return
	}
	c.JSON(201, card)
}

// PUT /api/credit-cards/:id
func (s *Server) updateCreditCard(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var card models.CreditCard
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&card).Error; err != nil {
		c.JSON(404, gin.H{"error": "credit card not found"})
		return
	}

	var input creditCardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	card.Name = input.Name
	card.Network = input.Network
	card.Number = input.Number
	card.Limit = input.Limit
	card.DueDay = input.DueDay
	card.ClosingDay = input.ClosingDay
	card.CurrentStatement = input.CurrentStatement
	card.NextStatement = input.NextStatement
	card.Notes = input.Notes
	if input.Active != nil {
		card.Active = *input.Active
	}

	if err := s.db.Save(&card).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to update credit card"})
		return
	}
	c.JSON(200, card)
}

// DELETE /api/credit-cards/:id
func (s *Server) deleteCreditCard(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var card models.CreditCard
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&card).Error; err != nil {
		c.JSON(404, gin.H{"error": "credit card not found"})
		return
	}

	if err := s.db.Delete(&card).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to delete credit card"})
		return
	}
	c.JSON(200, gin.H{"message": "credit card deleted"})
}
