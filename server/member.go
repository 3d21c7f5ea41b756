package server

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/model"
	"github.com/somosmas/ong-api/repository"
)

const memberNotFoundMsg = "Member not found"

type createMemberRequest struct {
	FullName    string `form:"full_name" json:"full_name" binding:"required"`
	Description string `form:"description" json:"description" binding:"required"`
	FacebookURL string `form:"facebook_url" json:"facebook_url" binding:"required"`
	LinkedinURL string `form:"linkedin_url" json:"linkedin_url" binding:"required"`
}

type updateMemberRequest struct {
	FullName    *string `form:"full_name" json:"full_name"`
	Description *string `form:"description" json:"description"`
	FacebookURL *string `form:"facebook_url" json:"facebook_url"`
	LinkedinURL *string `form:"linkedin_url" json:"linkedin_url"`
}

// ListMembers searches full_name when ?search= is present, capped at
// ?limit= (default 5).
func (s *Server) ListMembers(c *gin.Context) {
	repo := repository.New[model.Member](s.DB)
	limit := limitParam(c)

	var (
		members []model.Member
		err     error
	)
	if search, ok := c.GetQuery("search"); ok {
		members, err = repo.Search("full_name", search, limit)
	} else {
		members, err = repo.All(limit)
	}
	if err != nil {
		badRequest(c)
		return
	}
	okResponse(c, members, "Members retrieved successfully")
}

func (s *Server) ShowMember(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, memberNotFoundMsg)
		return
	}
	member, err := repository.New[model.Member](s.DB).Get(id)
	if err != nil {
		respondError(c, err, memberNotFoundMsg)
		return
	}
	okResponse(c, member, "Member retrieved successfully")
}

func (s *Server) CreateMember(c *gin.Context) {
	var req createMemberRequest
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

	member := model.Member{
		FullName:    req.FullName,
		Description: req.Description,
		Image:       key,
		FacebookURL: req.FacebookURL,
		LinkedinURL: req.LinkedinURL,
	}
	if err := repository.New[model.Member](s.DB).Create(&member); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, member, "Member created successfully")
}

func (s *Server) UpdateMember(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, memberNotFoundMsg)
		return
	}

	var req updateMemberRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}

	repo := repository.New[model.Member](s.DB)
	member, err := repo.Get(id)
	if err != nil {
		respondError(c, err, memberNotFoundMsg)
		return
	}

	if req.FullName != nil {
		member.FullName = *req.FullName
	}
	if req.Description != nil {
		member.Description = *req.Description
	}
	if req.FacebookURL != nil {
		member.FacebookURL = *req.FacebookURL
	}
	if req.LinkedinURL != nil {
		member.LinkedinURL = *req.LinkedinURL
	}

	image, err := optionalFormImage(c, "image")
	if err != nil {
		badRequest(c)
		return
	}
	if image != nil {
		key, err := s.Images.Replace(member.Image, image)
		if err != nil {
			badRequest(c)
			return
		}
		member.Image = key
	}

	if err := repo.Save(member); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, member, "Member updated successfully")
}

func (s *Server) DeleteMember(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, memberNotFoundMsg)
		return
	}

	repo := repository.New[model.Member](s.DB)
	member, err := repo.Get(id)
	if err != nil {
		respondError(c, err, memberNotFoundMsg)
		return
	}

	if err := s.Images.Remove(member.Image); err != nil {
		badRequest(c)
		return
	}
	if err := repo.Delete(member); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, member, "Member deleted successfully")
}
