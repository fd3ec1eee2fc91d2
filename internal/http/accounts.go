package http

import (
	"github.com/gin-gonic/gin"

	"finance-control-go/internal/models"
)

type bankAccountInput struct {
	Bank              string  `json:"bank" binding:"required"`
	Branch            string  `json:"branch" binding:"required"`
	Number            string  `json:"number" binding:"required"`
	Kind              string  `json:"kind" binding:"required,oneof=CHECKING SAVINGS SALARY INVESTMENT"`
	Balance           float64 `json:"balance"`
	ReconciledBalance float64 `json:"reconciledBalance"`
	LastReconciledAt  *string `json:"lastReconciledAt"`
	Notes             string  `json:"notes"`
	Active            *bool   `json:"active"`
}

// GET /api/bank-accounts
func (s *Server) listBankAccounts(c *gin.Context) {
	userID := currentUserID(c)

	var accounts []models.BankAccount
	if err := s.db.Where("user_id = ?", userID).Order("bank asc").Find(&accounts).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to list bank accounts"})
		return
	}
	c.JSON(200, accounts)
}

// GET /api/bank-accounts/:id
func (s *Server) getBankAccount(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var account models.BankAccount
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&account).Error; err != nil {
		c.JSON(404, gin.H{"error": "bank account not found"})
		return
	}
	c.JSON(200, account)
}

// POST /api/bank-accounts
func (s *Server) createBankAccount(c *gin.Context) {
	userID := currentUserID(c)

	var input bankAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if input.LastReconciledAt != nil && !validDate(*input.LastReconciledAt) {
		c.JSON(400, gin.H{"error": "lastReconciledAt must be YYYY-MM-DD"})
		return
	}

	account := models.BankAccount{
		Bank:              input.Bank,
		Branch:            input.Branch,
		Number:            input.Number,
		Kind:              input.Kind,
		Balance:           input.Balance,
		ReconciledBalance: input.ReconciledBalance,
		LastReconciledAt:  input.LastReconciledAt,
		Notes:             input.Notes,
		Active:            true,
		UserID:            userID,
	}
	if input.Active != nil {
		account.Active = *input.Active
	}
	if err := s.db.Create(&account).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to create bank account"})
		return
	}
	c.JSON(201, account)
}

// PUT /api/bank-accounts/:id
func (s *Server) updateBankAccount(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var account models.BankAccount
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&account).Error; err != nil {
		c.JSON(404, gin.H{"error": "bank account not found"})
		return
	}

	var input bankAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if input.LastReconciledAt != nil && !validDate(*input.LastReconciledAt) {
		c.JSON(400, gin.H{"error": "lastReconciledAt must be YYYY-MM-DD"})
		return
	}

	account.Bank = input.Bank
	account.Branch = input.Branch
	account.Number = input.Number
	account.Kind = input.Kind
	account.Balance = input.Balance
	account.ReconciledBalance = input.ReconciledBalance
	account.LastReconciledAt = input.LastReconciledAt
	account.Notes = input.Notes
	if input.Active != nil {
		account.Active = *input.Active
	}

	if err := s.db.Save(&account).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to update bank account"})
		return
	}
	c.JSON(200, account)
}

// DELETE /api/bank-accounts/:id
func (s *Server) deleteBankAccount(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var account models.BankAccount
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&account).Error; err != nil {
		c.JSON(404, gin.H{"error": "bank account not found"})
		return
	}

	if err := s.db.Delete(&account).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to delete bank account"})
		return
	}
	c.JSON(200, gin.H{"message": "bank account deleted"})
}
