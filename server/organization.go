package server

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/model"
	"github.com/somosmas/ong-api/repository"
)

const organizationNotFoundMsg = "Organization not found"

// The organization profile is update-only: every text field must be sent
// on PUT, the logo upload alone is optional.
type updateOrganizationRequest struct {
	Name             string `form:"name" json:"name" binding:"required"`
	ShortDescription string `form:"short_description" json:"short_description" binding:"required"`
	LongDescription  string `form:"long_description" json:"long_description" binding:"required"`
	WelcomeText      string `form:"welcome_text" json:"welcome_text" binding:"required"`
	Address          string `form:"address" json:"address" binding:"required"`
	Phone            string `form:"phone" json:"phone" binding:"required"`
	CellPhone        string `form:"cell_phone" json:"cell_phone" binding:"required"`
	FacebookURL      string `form:"facebook_url" json:"facebook_url" binding:"required"`
	LinkedinURL      string `form:"linkedin_url" json:"linkedin_url" binding:"required"`
	InstagramURL     string `form:"instagram_url" json:"instagram_url" binding:"required"`
	TwitterURL       string `form:"twitter_url" json:"twitter_url" binding:"required"`
}

func (s *Server) ShowOrganization(c *gin.Context) {
	org, err := repository.New[model.Organization](s.DB).Get(model.OrganizationID)
	if err != nil {
		respondError(c, err, organizationNotFoundMsg)
		return
	}
	okResponse(c, org, "Organization retrieved successfully")
}

func (s *Server) UpdateOrganization(c *gin.Context) {
	var req updateOrganizationRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}

	repo := repository.New[model.Organization](s.DB)
	org, err := repo.Get(model.OrganizationID)
	if err != nil {
		respondError(c, err, organizationNotFoundMsg)
		return
	}

	org.Name = req.Name
	org.ShortDescription = req.ShortDescription
	org.LongDescription = req.LongDescription
	org.WelcomeText = req.WelcomeText
	org.Address = req.Address
	org.Phone = req.Phone
	org.CellPhone = req.CellPhone
	org.FacebookURL = req.FacebookURL
	org.LinkedinURL = req.LinkedinURL
	org.InstagramURL = req.InstagramURL
	org.TwitterURL = req.TwitterURL

	logo, err := optionalFormImage(c, "logo")
	if err != nil {
		badRequest(c)
		return
	}
	if logo != nil {
		key, err := s.Images.Replace(org.Logo, logo)
		if err != nil {
			badRequest(c)
			return
		}
		org.Logo = key
	}

	if err := repo.Save(org); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, org, "Organization updated successfully")
}
