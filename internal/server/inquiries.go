package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enotalexnot/ztk-catalog/internal/models"
)

type inquiryCreate struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Message string  `json:"message" binding:"required"`
}

func (s *Server) createInquiry(c *gin.Context) {
	var req inquiryCreate
	if !bindJSON(c, &req) {
		return
	}
	in := models.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
	}
	if err := s.store.CreateInquiry(&in); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, in)
}

func (s *Server) listInquiries(c *gin.Context) {
	inquiries, err := s.store.ListInquiries()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, inquiries)
}
