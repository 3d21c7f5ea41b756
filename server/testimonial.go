package server

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/model"
	"github.com/somosmas/ong-api/repository"
)

const testimonialNotFoundMsg = "Testimonial not found"

type createTestimonialRequest struct {
	Name        string `form:"name" json:"name" binding:"required"`
	Description string `form:"description" json:"description" binding:"required"`
}

type updateTestimonialRequest struct {
	Name        *string `form:"name" json:"name"`
	Description *string `form:"description" json:"description"`
}

func (s *Server) ListTestimonials(c *gin.Context) {
	testimonials, err := repository.New[model.Testimonial](s.DB).All(-1)
	if err != nil {
		badRequest(c)
		return
	}
	okResponse(c, testimonials, "Testimonials retrieved successfully")
}

func (s *Server) ShowTestimonial(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, testimonialNotFoundMsg)
		return
	}
	testimonial, err := repository.New[model.Testimonial](s.DB).Get(id)
	if err != nil {
		respondError(c, err, testimonialNotFoundMsg)
		return
	}
	okResponse(c, testimonial, "Testimonial retrieved successfully")
}

func (s *Server) CreateTestimonial(c *gin.Context) {
	var req createTestimonialRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}
	image, err := formImage(c, "image")
	if err != nil {
		badRequest(c)
		return
	}

	key, err := s.Images.Store(image)
	if err != nil {
		badRequest(c)
		return
	}

	testimonial := model.Testimonial{Name: req.Name, Image: key, Description: req.Description}
	if err := repository.New[model.Testimonial](s.DB).Create(&testimonial); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, testimonial, "Testimonial created successfully")
}

func (s *Server) UpdateTestimonial(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, testimonialNotFoundMsg)
		return
	}

	var req updateTestimonialRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}

	repo := repository.New[model.Testimonial](s.DB)
	testimonial, err := repo.Get(id)
	if err != nil {
		respondError(c, err, testimonialNotFoundMsg)
		return
	}

	if req.Name != nil {
		testimonial.Name = *req.Name
	}
	if req.Description != nil {
		testimonial.Description = *req.Description
	}

	image, err := optionalFormImage(c, "image")
	if err != nil {
		badRequest(c)
		return
	}
	if image != nil {
		key, err := s.Images.Replace(testimonial.Image, image)
		if err != nil {
			badRequest(c)
			return
		}
		testimonial.Image = key
	}

	if err := repo.Save(testimonial); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, testimonial, "Testimonial updated successfully")
}

func (s *Server) DeleteTestimonial(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, testimonialNotFoundMsg)
		return
	}

	repo := repository.New[model.Testimonial](s.DB)
	testimonial, err := repo.Get(id)
	if err != nil {
		respondError(c, err, testimonialNotFoundMsg)
		return
	}

	if err := s.Images.Remove(testimonial.Image); err != nil {
		badRequest(c)
		return
	}
	if err := repo.Delete(testimonial); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, testimonial, "Testimonial deleted successfully")
}
