package http

import (
	"github.com/gin-gonic/gin"

	"finance-control-go/internal/models"
)

// GET /api/clients
func (s *Server) listClients(c *gin.Context) {
	userID := currentUserID(c)

	var clients []models.Client
	if err := s.db.Where("user_id = ?", userID).Order("name asc").Find(&clients).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to list clients"})
		return
	}
	c.JSON(200, clients)
}

// GET /api/clients/:id
func (s *Server) getClient(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var client models.Client
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&client).Error; err != nil {
		c.JSON(404, gin.H{"error": "client not found"})
		return
	}
	c.JSON(200, client)
}

// POST /api/clients
func (s *Server) createClient(c *gin.Context) {
	userID := currentUserID(c)

	var input struct {
		Name     string `json:"name" binding:"required"`
		Kind     string `json:"kind" binding:"required,oneof=PF PJ"`
		Document string `json:"document" binding:"required"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
		City     string `json:"city"`
		State    string `json:"state"`
		Zip      string `json:"zip"`
		Notes    string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	client := models.Client{
		Name:     input.Name,
		Kind:     input.Kind,
		Document: input.Document,
		Email:    input.Email,
		Phone:    input.Phone,
		Address:  input.Address,
		City:     input.City,
		State:    input.State,
		Zip:      input.Zip,
		Notes:    input.Notes,
		Active:   true,
		UserID:   userID,
	}
	if err := s.db.Create(&client).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to create client"})
		return
	}
	c.JSON(201, client)
}

// PUT /api/clients/:id
func (s *Server) updateClient(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var client models.Client
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&client).Error; err != nil {
		c.JSON(404, gin.H{"error": "client not found"})
		return
	}

	var input struct {
		Name     string `json:"name" binding:"required"`
		Kind     string `json:"kind" binding:"required,oneof=PF PJ"`
		Document string `json:"document" binding:"required"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
		City     string `json:"city"`
		State    string `json:"state"`
		Zip      string `json:"zip"`
		Notes    string `json:"notes"`
		Active   *bool  `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	client.Name = input.Name
	client.Kind = input.Kind
	client.Document = input.Document
	client.Email = input.Email
	client.Phone = input.Phone
	client.Address = input.Address
	client.City = input.City
	client.State = input.State
	client.Zip = input.Zip
	client.Notes = input.Notes
	if input.Active != nil {
		client.Active = *input.Active
	}

	if err := s.db.Save(&client).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to update client"})
		return
	}
	c.JSON(200, client)
}

// DELETE /api/clients/:id
func (s *Server) deleteClient(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var client models.Client
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&client).Error; err != nil {
		c.JSON(404, gin.H{"error": "client not found"})
		return
	}

	if err := s.db.Delete(&client).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to delete client"})
		return
	}
	c.JSON(200, gin.H{"message": "client deleted"})
}
