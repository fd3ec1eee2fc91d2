package http

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"

	"finance-control-go/internal/models"
)

// GET /api/payables
func (s *Server) listPayables(c *gin.Context) {
	userID := currentUserID(c)

	var payables []models.Payable
	err := s.db.Where("user_id = ?", userID).
		Preload("Supplier").Preload("BankAccount").Preload("CreditCard").
		Order("due_date asc").
		Find(&payables).Error
	if err != nil {
		c.JSON(500, gin.H{"error": "failed to list payables"})
		return
	}
	c.JSON(200, payables)
}

// GET /api/payables/:id
func (s *Server) getPayable(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var payable models.Payable
	err := s.db.Where("id = ? AND user_id = ?", id, userID).
		Preload("Supplier").Preload("BankAccount").Preload("CreditCard").
		First(&payable).Error
	if err != nil {
		c.JSON(404, gin.H{"error": "payable not found"})
		return
	}
	c.JSON(200, payable)
}

// POST /api/payables
func (s *Server) createPayable(c *gin.Context) {
	userID := currentUserID(c)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(400, gin.H{"error": "failed to read body"})
		return
	}
	if !s.validateBody(c, s.payableSchema, body) {
		return
	}

	var payable models.Payable
	if err := json.Unmarshal(body, &payable); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	payable.ID = 0
	payable.UserID = userID
	if payable.Status == "" {
		payable.Status = models.PayableStatusPending
	}
	if !normalizePayableDates(c, &payable) {
		return
	}

	if err := s.db.Create(&payable).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to create payable"})
		return
	}
	c.JSON(201, payable)
}

// PUT /api/payables/:id
func (s *Server) updatePayable(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var payable models.Payable
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&payable).Error; err != nil {
		c.JSON(404, gin.H{"error": "payable not found"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(400, gin.H{"error": "failed to read body"})
		return
	}
	if !s.validateBody(c, s.payableSchema, body) {
		return
	}

	var input models.Payable
	if err := json.Unmarshal(body, &input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	payable.Description = input.Description
	payable.Amount = input.Amount
	payable.DueDate = input.DueDate
	payable.PaidDate = input.PaidDate
	payable.PaymentMethod = input.PaymentMethod
	payable.Category = input.Category
	payable.Notes = input.Notes
	payable.ReceiptURL = input.ReceiptURL
	payable.SupplierID = input.SupplierID
	payable.BankAccountID = input.BankAccountID
	payable.CreditCardID = input.CreditCardID
	if input.Status != "" {
		payable.Status = input.Status
	}
	if !normalizePayableDates(c, &payable) {
		return
	}

	if err := s.db.Save(&payable).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to update payable"})
		return
	}
	c.JSON(200, payable)
}

// POST /api/payables/:id/pay
func (s *Server) payPayable(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var payable models.Payable
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&payable).Error; err != nil {
		c.JSON(404, gin.H{"error": "payable not found"})
		return
	}

	paidAt := today()
	payable.Status = models.PayableStatusPaid
	payable.PaidDate = &paidAt
	if err := s.db.Save(&payable).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to mark payable as paid"})
		return
	}
	c.JSON(200, payable)
}

// POST /api/payables/:id/cancel
func (s *Server) cancelPayable(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var payable models.Payable
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&payable).Error; err != nil {
		c.JSON(404, gin.H{"error": "payable not found"})
		return
	}

	payable.Status = models.PayableStatusCanceled
	payable.PaidDate = nil
	if err := s.db.Save(&payable).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to cancel payable"})
		return
	}
	c.JSON(200, payable)
}

// DELETE /api/payables/:id
func (s *Server) deletePayable(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var payable models.Payable
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&payable).Error; err != nil {
		c.JSON(404, gin.H{"error": "payable not found"})
		return
	}

	if err := s.db.Delete(&payable).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to delete payable"})
		return
	}
	c.JSON(200, gin.H{"message": "payable deleted"})
}

// normalizePayableDates keeps the paidDate/status invariant: PAID
// requires a paidDate, any other status clears it. Writes a 400 and
// returns false on violation.
func normalizePayableDates(c *gin.Context, p *models.Payable) bool {
	if p.Status == models.PayableStatusPaid {
		if p.PaidDate == nil {
			c.JSON(400, gin.H{"error": "paidDate is required when status is PAID"})
			return false
		}
	} else {
		p.PaidDate = nil
	}
	return true
}
