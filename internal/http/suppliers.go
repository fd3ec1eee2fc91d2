package http

import (
	"github.com/gin-gonic/gin"

	"finance-control-go/internal/models"
)

// GET /api/suppliers
func (s *Server) listSuppliers(c *gin.Context) {
	userID := currentUserID(c)

	var suppliers []models.Supplier
	if err := s.db.Where("user_id = ?", userID).Order("name asc").Find(&suppliers).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to list suppliers"})
		return
	}
	c.JSON(200, suppliers)
}

// GET /api/suppliers/:id
func (s *Server) getSupplier(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var supplier models.Supplier
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&supplier).Error; err != nil {
		c.JSON(404, gin.H{"error": "supplier not found"})
		return
	}
	c.JSON(200, supplier)
}

// POST /api/suppliers
func (s *Server) createSupplier(c *gin.Context) {
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

	supplier := models.Supplier{
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
	if err := s.db.Create(&supplier).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to create supplier"})
		return
	}
	c.JSON(201, supplier)
}

// PUT /api/suppliers/:id
func (s *Server) updateSupplier(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var supplier models.Supplier
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&supplier).Error; err != nil {
		c.JSON(404, gin.H{"error": "supplier not found"})
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

	supplier.Name = input.Name
	supplier.Kind = input.Kind
	supplier.Document = input.Document
	supplier.Email = input.Email
	supplier.Phone = input.Phone
	supplier.Address = input.Address
	supplier.City = input.City
	supplier.State = input.State
	supplier.Zip = input.Zip
	supplier.Notes = input.Notes
	if input.Active != nil {
		supplier.Active = *input.Active
	}

	if err := s.db.Save(&supplier).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to update supplier"})
		return
	}
	c.JSON(200, supplier)
}

// DELETE /api/suppliers/:id
func (s *Server) deleteSupplier(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var supplier models.Supplier
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&supplier).Error; err != nil {
		c.JSON(404, gin.H{"error": "supplier not found"})
		return
	}

	if err := s.db.Delete(&supplier).Error; err != nil {
		c.JSON(500, gin.H{"error": "failed to delete supplier"})
		return
	}
	c.JSON(200, gin.H{"message": "supplier deleted"})
}
