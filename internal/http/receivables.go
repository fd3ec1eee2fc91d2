package http

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"

	"finance-control-go/internal/models"
)

// GET /api/receivables
func (s *Server) listReceivables(c *gin.Context) {
	userID := currentUserID(c)

	var receivables []models.Receivable
	err := s.db.Where("user_id = ?", userID).
		Preload("Client").Preload("BankAccount").
		Order("due_date asc").
		Find(&receivables).Error
	if err != nil {
		c.JSON(500, gin.H{"error": "failed to list receivables"})
		return
	}
	c.JSON(200, receivables)
}

// GET /api/receivables/:id
func (s *Server) getReceivable(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var receivable models.Receivable
	err := s.db.Where("id = ? AND user_id = ?", id, userID).
		Preload("Client").Preload("BankAccount").
		First(&receivable).Error
	if err != nil {
		c.JSON(404, gin.H{"error": "receivable not found"})
		return
	}
	c.JSON(200, receivable)
}

// POST /api/receivables
func (s *Server) createReceivable(c *gin.Context) {
	userID := currentUserID(c)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(400, gin.H{"error": "failed to read body"})
		return
	}
	if !s.validateBody(c, s.receivableSchema, body) {
		return
	}

	var receivable models.Receivable
	if err := json.Unmarshal(body, &receivable); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	receivable.ID = 0
	receivable.UserID = userID
	if receivable.Status == "" {
		receivable.Status = models.ReceivableStatusPending
	}
	if !normalizeReceivableDates(c, &receivable) {
		return
	}

	if err := s.db.Create(&receivable).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to create receivable"})
		return
	}
	c.JSON(201, receivable)
}

// PUT /api/receivables/:id
func (s *Server) updateReceivable(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var receivable models.Receivable
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&receivable).Error; err != nil {
		c.JSON(404, gin.H{"error": "receivable not found"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(400, gin.H{"error": "failed to read body"})
		return
	}
	if !s.validateBody(c, s.receivableSchema, body) {
		return
	}

	var input models.Receivable
	if err := json.Unmarshal(body, &input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	receivable.Description = input.Description
	receivable.Amount = input.Amount
	receivable.DueDate = input.DueDate
	receivable.ReceivedDate = input.ReceivedDate
	receivable.ReceiptMethod = input.ReceiptMethod
	receivable.Notes = input.Notes
	receivable.ClientID = input.ClientID
	receivable.BankAccountID = input.BankAccountID
	if input.Status != "" {
		receivable.Status = input.Status
	}
	if !normalizeReceivableDates(c, &receivable) {
		return
	}

	if err := s.db.Save(&receivable).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to update receivable"})
		return
	}
	c.JSON(200, receivable)
}

// POST /api/receivables/:id/receive
func (s *Server) receiveReceivable(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var receivable models.Receivable
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&receivable).Error; err != nil {
		c.JSON(404, gin.H{"error": "receivable not found"})
		return
	}

	receivedAt := today()
	receivable.Status = models.ReceivableStatusReceived
	receivable.ReceivedDate = &receivedAt
	if err := s.db.Save(&receivable).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to mark receivable as received"})
		return
	}
	c.JSON(200, receivable)
}

// POST /api/receivables/:id/cancel
func (s *Server) cancelReceivable(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var receivable models.Receivable
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&receivable).Error; err != nil {
		c.JSON(404, gin.H{"error": "receivable not found"})
		return
	}

	receivable.Status = models.ReceivableStatusCanceled
	receivable.ReceivedDate = nil
	if err := s.db.Save(&receivable).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to cancel receivable"})
		return
	}
	c.JSON(200, receivable)
}

// DELETE /api/receivables/:id
func (s *Server) deleteReceivable(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var receivable models.Receivable
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&receivable).Error; err != nil {
		c.JSON(404, gin.H{"error": "receivable not found"})
		return
	}

	if err := s.db.Delete(&receivable).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to delete receivable"})
		return
	}
	c.JSON(200, gin.H{"message": "receivable deleted"})
}

func normalizeReceivableDates(c *gin.Context, r *models.Receivable) bool {
	if r.Status == models.ReceivableStatusReceived {
		if r.ReceivedDate == nil {
			c.JSON(400, gin.H{"error": "receivedDate is required when status is RECEIVED"})
			return false
		}
	} else {
		r.ReceivedDate = nil
	}
	return true
}
