package server

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/model"
	"github.com/somosmas/ong-api/repository"
)

const activityNotFoundMsg = "Activity not found"

type createActivityRequest struct {
	Name        string `form:"name" json:"name" binding:"required"`
	Slug        string `form:"slug" json:"slug"`
	Description string `form:"description" json:"description" binding:"required"`
	UserID      *uint  `form:"user_id" json:"user_id"`
	CategoryID  *uint  `form:"category_id" json:"category_id"`
}

type updateActivityRequest struct {
	Name        *string `form:"name" json:"name"`
	Slug        *string `form:"slug" json:"slug"`
	Description *string `form:"description" json:"description"`
	UserID      *uint   `form:"user_id" json:"user_id"`
	CategoryID  *uint   `form:"category_id" json:"category_id"`
}

func (s *Server) ListActivities(c *gin.Context) {
	activities, err := repository.New[model.Activity](s.DB).All(-1)
	if err != nil {
		badRequest(c)
		return
	}
	okResponse(c, activities, "Activities retrieved successfully")
}

func (s *Server) ShowActivity(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, activityNotFoundMsg)
		return
	}
	activity, err := repository.New[model.Activity](s.DB).Get(id)
	if err != nil {
		respondError(c, err, activityNotFoundMsg)
		return
	}
	okResponse(c, activity, "Activity retrieved successfully")
}

func (s *Server) CreateActivity(c *gin.Context) {
	var req createActivityRequest
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
	if req.CategoryID != nil {
		if ok := s.recordExists(c, categoryNotFoundMsg, repository.Exists[model.Category], *req.CategoryID); !ok {
			return
		}
	}

	key, err := s.Images.Store(image)
	if err != nil {
		badRequest(c)
		return
	}

	activity := model.Activity{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Image:       key,
		UserID:      req.UserID,
		CategoryID:  req.CategoryID,
	}
	if err := repository.New[model.Activity](s.DB).Create(&activity); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, activity, "Activity created successfully")
}

func (s *Server) UpdateActivity(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, activityNotFoundMsg)
		return
	}

	var req updateActivityRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}

	repo := repository.New[model.Activity](s.DB)
	activity, err := repo.Get(id)
	if err != nil {
		respondError(c, err, activityNotFoundMsg)
		return
	}

	if req.Name != nil {
		activity.Name = *req.Name
	}
	if req.Slug != nil {
		activity.Slug = *req.Slug
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.UserID != nil {
		if ok := s.recordExists(c, userNotFoundMsg, repository.Exists[model.User], *req.UserID); !ok {
			return
		}
		activity.UserID = req.UserID
	}
	if req.CategoryID != nil {
		if ok := s.recordExists(c, categoryNotFoundMsg, repository.Exists[model.Category], *req.CategoryID); !ok {
			return
		}
		activity.CategoryID = req.CategoryID
	}

	image, err := optionalFormImage(c, "image")
	if err != nil {
		badRequest(c)
		return
	}
	if image != nil {
		key, err := s.Images.Replace(activity.Image, image)
		if err != nil {
			badRequest(c)
			return
		}
		activity.Image = key
	}

	if err := repo.Save(activity); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, activity, "Activity updated successfully")
}

func (s *Server) DeleteActivity(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, activityNotFoundMsg)
		return
	}

	repo := repository.New[model.Activity](s.DB)
	activity, err := repo.Get(id)
	if err != nil {
		respondError(c, err, activityNotFoundMsg)
		return
	}

	if err := s.Images.Remove(activity.Image); err != nil {
		badRequest(c)
		return
	}
	if err := repo.Delete(activity); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, activity, "Activity deleted successfully")
}
