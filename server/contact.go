package server

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/model"
	"github.com/somosmas/ong-api/repository"
)

const contactNotFoundMsg = "Contact not found"

type createContactRequest struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required,email"`
	Phone   string `form:"phone" json:"phone" binding:"required"`
	Message string `form:"message" json:"message" binding:"required,max=400"`
}

type updateContactRequest struct {
	Name    *string `form:"name" json:"name"`
	Email   *string `form:"email" json:"email" binding:"omitempty,email"`
	Phone   *string `form:"phone" json:"phone"`
	Message *string `form:"message" json:"message" binding:"omitempty,max=400"`
}

func (s *Server) ListContacts(c *gin.Context) {
	contacts, err := repository.New[model.Contact](s.DB).All(-1)
	if err != nil {
		badRequest(c)
		return
	}
	okResponse(c, contacts, "Contacts retrieved successfully")
}

func (s *Server) ShowContact(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, contactNotFoundMsg)
		return
	}
	contact, err := repository.New[model.Contact](s.DB).Get(id)
	if err != nil {
		respondError(c, err, contactNotFoundMsg)
		return
	}
	okResponse(c, contact, "Contact retrieved successfully")
}

func (s *Server) CreateContact(c *gin.Context) {
	var req createContactRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}

	contact := model.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := repository.New[model.Contact](s.DB).Create(&contact); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, contact, "Contact created successfully")
}

func (s *Server) UpdateContact(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, contactNotFoundMsg)
		return
	}

	var req updateContactRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}

	repo := repository.New[model.Contact](s.DB)
	contact, err := repo.Get(id)
	if err != nil {
		respondError(c, err, contactNotFoundMsg)
		return
	}

	if req.Name != nil {
		contact.Name = *req.Name
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.Message != nil {
		contact.Message = *req.Message
	}

	if err := repo.Save(contact); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, contact, "Contact updated successfully")
}

func (s *Server) DeleteContact(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, contactNotFoundMsg)
		return
	}

	repo := repository.New[model.Contact](s.DB)
	contact, err := repo.Get(id)
	if err != nil {
		respondError(c, err, contactNotFoundMsg)
		return
	}

	if err := repo.Delete(contact); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, contact, "Contact deleted successfully")
}
