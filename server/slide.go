package server

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/model"
	"github.com/somosmas/ong-api/repository"
)

const slideNotFoundMsg = "Slide not found"

type createSlideRequest struct {
	Name        string `form:"name" json:"name" binding:"required"`
	Description string `form:"description" json:"description" binding:"required"`
	Order       *int   `form:"order" json:"order" binding:"required"`
	UserID      *uint  `form:"user_id" json:"user_id"`
}

type updateSlideRequest struct {
	Name        *string `form:"name" json:"name"`
	Description *string `form:"description" json:"description"`
	Order       *int    `form:"order" json:"order"`
	UserID      *uint   `form:"user_id" json:"user_id"`
}

// ListSlides searches name as a substring or description as an exact
// match, capped at ?limit= (default 5).
func (s *Server) ListSlides(c *gin.Context) {
	q := s.DB.Limit(limitParam(c))
	if search, ok := c.GetQuery("search"); ok {
		q = q.Where("name LIKE ? OR description = ?", "%"+search+"%", search)
	}

	var slides []model.Slide
	if err := q.Find(&slides).Error; err != nil {
		badRequest(c)
		return
	}
	okResponse(c, slides, "Slides retrieved successfully")
}

func (s *Server) ShowSlide(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, slideNotFoundMsg)
		return
	}
	slide, err := repository.New[model.Slide](s.DB).Get(id)
	if err != nil {
		respondError(c, err, slideNotFoundMsg)
		return
	}
	okResponse(c, slide, "Slide retrieved successfully")
}

func (s *Server) CreateSlide(c *gin.Context) {
	var req createSlideRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}
	image, err := formImage(c, "image")
	if err != nil {
		badRequest(c)
		return
	}

	if req.UserID != nil {
		if ok := s.recordExists(c, userNotFoundMsg, repository.Exists[model.User], *req.UserID); !ok {
			return
		}
	}

	key, err := s.Images.Store(image)
	if err != nil {
		badRequest(c)
		return
	}

	slide := model.Slide{
		Name:        req.Name,
		Description: req.Description,
		Image:       key,
		Order:       *req.Order,
		UserID:      req.UserID,
	}
	if err := repository.New[model.Slide](s.DB).Create(&slide); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, slide, "Slide created successfully")
}

func (s *Server) UpdateSlide(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, slideNotFoundMsg)
		return
	}

	var req updateSlideRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}

	repo := repository.New[model.Slide](s.DB)
	slide, err := repo.Get(id)
	if err != nil {
		respondError(c, err, slideNotFoundMsg)
		return
	}

	if req.Name != nil {
		slide.Name = *req.Name
	}
	if req.Description != nil {
		slide.Description = *req.Description
	}
	if req.Order != nil {
		slide.Order = *req.Order
	}
	if req.UserID != nil {
		if ok := s.recordExists(c, userNotFoundMsg, repository.Exists[model.User], *req.UserID); !ok {
			return
		}
		slide.UserID = req.UserID
	}

	image, err := optionalFormImage(c, "image")
	if err != nil {
		badRequest(c)
		return
	}
	if image != nil {
		key, err := s.Images.Replace(slide.Image, image)
		if err != nil {
			badRequest(c)
			return
		}
		slide.Image = key
	}

	if err := repo.Save(slide); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, slide, "Slide updated successfully")
}

func (s *Server) DeleteSlide(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, slideNotFoundMsg)
		return
	}

	repo := repository.New[model.Slide](s.DB)
	slide, err := repo.Get(id)
	if err != nil {
		respondError(c, err, slideNotFoundMsg)
		return
	}

	if err := s.Images.Remove(slide.Image); err != nil {
		badRequest(c)
		return
	}
	if err := repo.Delete(slide); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, slide, "Slide deleted successfully")
}
