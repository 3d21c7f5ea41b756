package server

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/model"
	"github.com/somosmas/ong-api/repository"
)

const categoryNotFoundMsg = "Category not found"

type createCategoryRequest struct {
	Name        string `form:"name" json:"name" binding:"required"`
	Description string `form:"description" json:"description" binding:"required"`
}

type updateCategoryRequest struct {
	Name        *string `form:"name" json:"name"`
	Description *string `form:"description" json:"description"`
}

func (s *Server) ListCategories(c *gin.Context) {
	categories, err := repository.New[model.Category](s.DB).All(-1)
	if err != nil {
		badRequest(c)
		return
	}
	okResponse(c, categories, "Categories retrieved successfully")
}

func (s *Server) ShowCategory(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, categoryNotFoundMsg)
		return
	}
	category, err := repository.New[model.Category](s.DB).Get(id)
	if err != nil {
		respondError(c, err, categoryNotFoundMsg)
		return
	}
	okResponse(c, category, "Category retrieved successfully")
}

func (s *Server) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}

	category := model.Category{Name: req.Name, Description: req.Description}

	// The image is optional here, unlike most content resources.
	image, err := optionalFormImage(c, "image")
	if err != nil {
		badRequest(c)
		return
	}
	if image != nil {
		key, err := s.Images.Store(image)
		if err != nil {
			badRequest(c)
			return
		}
		category.Image = key
	}

	if err := repository.New[model.Category](s.DB).Create(&category); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, category, "Category created successfully")
}

func (s *Server) UpdateCategory(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, categoryNotFoundMsg)
		return
	}

	var req updateCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}

	repo := repository.New[model.Category](s.DB)
	category, err := repo.Get(id)
	if err != nil {
		respondError(c, err, categoryNotFoundMsg)
		return
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	image, err := optionalFormImage(c, "image")
	if err != nil {
		badRequest(c)
		return
	}
	if image != nil {
		key, err := s.Images.Replace(category.Image, image)
		if err != nil {
			badRequest(c)
			return
		}
		category.Image = key
	}

	if err := repo.Save(category); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, category, "Category updated successfully")
}

func (s *Server) DeleteCategory(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, categoryNotFoundMsg)
		return
	}

	repo := repository.New[model.Category](s.DB)
	category, err := repo.Get(id)
	if err != nil {
		respondError(c, err, categoryNotFoundMsg)
		return
	}

	if err := s.Images.Remove(category.Image); err != nil {
		badRequest(c)
		return
	}
	if err := repo.Delete(category); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, category, "Category deleted successfully")
}
