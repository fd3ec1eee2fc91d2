package http

import (
	"github.com/gin-gonic/gin"

	"finance-control-go/internal/models"
)

type investmentInput struct {
	Name           string  `json:"name" binding:"required"`
	Kind           string  `json:"kind" binding:"required,oneof=FIXED_INCOME VARIABLE_INCOME REAL_ESTATE_FUND CRYPTO OTHER"`
	InvestedAmount float64 `json:"investedAmount" binding:"required,gt=0"`
	CurrentValue   float64 `json:"currentValue" binding:"required,gt=0"`
	StartDate      string  `json:"startDate" binding:"required"`
	MaturityDate   *string `json:"maturityDate"`
	Institution    string  `json:"institution"`
	Notes          string  `json:"notes"`
	Active         *bool   `json:"active"`
}

// GET /api/investments
func (s *Server) listInvestments(c *gin.Context) {
	userID := currentUserID(c)

	var investments []models.Investment
	if err := s.db.Where("user_id = ?", userID).Order("name asc").Find(&investments).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to list investments"})
		return
	}
	c.JSON(200, investments)
}

// GET /api/investments/:id
func (s *Server) getInvestment(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var investment models.Investment
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&investment).Error; err != nil {
		c.JSON(404, gin.H{"error": "investment not found"})
		return
	}
	c.JSON(200, investment)
}

// POST /api/investments
func (s *Server) createInvestment(c *gin.Context) {
	userID := currentUserID(c)

	var input investmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if !validDate(input.StartDate) {
		c.JSON(400, gin.H{"error": "startDate must be YYYY-MM-DD"})
		return
	}
	if input.MaturityDate != nil && !validDate(*input.MaturityDate) {
		c.JSON(400, gin.H{"error": "maturityDate must be YYYY-MM-DD"})
		return
	}

	investment := models.Investment{
		Name:           input.Name,
		Kind:           input.Kind,
		InvestedAmount: input.InvestedAmount,
		CurrentValue:   input.CurrentValue,
		StartDate:      input.StartDate,
		MaturityDate:   input.MaturityDate,
		Institution:    input.Institution,
		Notes:          input.Notes,
		Active:         true,
		UserID:         userID,
	}
	if input.Active != nil {
		investment.Active = *input.Active
	}
	investment.RefreshYield()

	if err := s.db.Create(&investment).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to create investment"})
		return
	}
	c.JSON(201, investment)
}

// PUT /api/investments/:id
func (s *Server) updateInvestment(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var investment models.Investment
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&investment).Error; err != nil {
		c.JSON(404, gin.H{"error": "investment not found"})
		return
	}

	var input investmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if !validDate(input.StartDate) {
		c.JSON(400, gin.H{"error": "startDate must be YYYY-MM-DD"})
		return
	}
	if input.MaturityDate != nil && !validDate(*input.MaturityDate) {
		c.JSON(400, gin.H{"error": "maturityDate must be YYYY-MM-DD"})
		return
	}

	investment.Name = input.Name
	investment.Kind = input.Kind
	investment.InvestedAmount = input.InvestedAmount
	investment.CurrentValue = input.CurrentValue
	investment.StartDate = input.StartDate
	investment.MaturityDate = input.MaturityDate
	investment.Institution = input.Institution
	investment.Notes = input.Notes
	if input.Active != nil {
		investment.Active = *input.Active
	}
	investment.RefreshYield()

	if err := s.db.Save(&investment).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to update investment"})
		return
	}
	c.JSON(200, investment)
}

// DELETE /api/investments/:id
func (s *Server) deleteInvestment(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var investment models.Investment
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&investment).Error; err != nil {
		c.JSON(404, gin.H{"error": "investment not found"})
		return
	}

	if err := s.db.Delete(&investment).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to delete investment"})
		return
	}
	c.JSON(200, gin.H{"message": "investment deleted"})
}
