package server

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/model"
	"github.com/somosmas/ong-api/repository"
)

const socialMediaItemNotFoundMsg = "Social media item not found"

type createSocialMediaItemRequest struct {
	Name string `form:"name" json:"name" binding:"required"`
	URL  string `form:"url" json:"url" binding:"required"`
}

type updateSocialMediaItemRequest struct {
	Name *string `form:"name" json:"name"`
	URL  *string `form:"url" json:"url"`
}

func (s *Server) ListSocialMediaItems(c *gin.Context) {
	items, err := repository.New[model.SocialMediaItem](s.DB).All(-1)
	if err != nil {
		badRequest(c)
		return
	}
	okResponse(c, items, "Social media items retrieved successfully")
}

func (s *Server) ShowSocialMediaItem(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, socialMediaItemNotFoundMsg)
		return
	}
	item, err := repository.New[model.SocialMediaItem](s.DB).Get(id)
	if err != nil {
		respondError(c, err, socialMediaItemNotFoundMsg)
		return
	}
	okResponse(c, item, "Social media item retrieved successfully")
}

func (s *Server) CreateSocialMediaItem(c *gin.Context) {
	var req createSocialMediaItemRequest
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

	item := model.SocialMediaItem{Name: req.Name, Image: key, URL: req.URL}
	if err := repository.New[model.SocialMediaItem](s.DB).Create(&item); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, item, "Social media item created successfully")
}

func (s *Server) UpdateSocialMediaItem(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, socialMediaItemNotFoundMsg)
		return
	}

	var req updateSocialMediaItemRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}

	repo := repository.New[model.SocialMediaItem](s.DB)
	item, err := repo.Get(id)
	if err != nil {
		respondError(c, err, socialMediaItemNotFoundMsg)
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.URL != nil {
		item.URL = *req.URL
	}

	image, err := optionalFormImage(c, "image")
	if err != nil {
		badRequest(c)
		return
	}
	if image != nil {
		key, err := s.Images.Replace(item.Image, image)
		if err != nil {
			badRequest(c)
			return
		}
		item.Image = key
	}

	if err := repo.Save(item); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, item, "Social media item updated successfully")
}

func (s *Server) DeleteSocialMediaItem(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, socialMediaItemNotFoundMsg)
		return
	}

	repo := repository.New[model.SocialMediaItem](s.DB)
	item, err := repo.Get(id)
	if err != nil {
		respondError(c, err, socialMediaItemNotFoundMsg)
		return
	}

	if err := s.Images.Remove(item.Image); err != nil {
		badRequest(c)
		return
	}
	if err := repo.Delete(item); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, item, "Social media item deleted successfully")
}
