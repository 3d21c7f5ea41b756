package server

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/model"
	"github.com/somosmas/ong-api/repository"
)

const projectNotFoundMsg = "Project not found"

type createProjectRequest struct {
	Title       string `form:"title" json:"title" binding:"required"`
	Description string `form:"description" json:"description" binding:"required"`
	DueDate     string `form:"due_date" json:"due_date" binding:"required"`
}

type updateProjectRequest struct {
	Title       *string `form:"title" json:"title"`
	Description *string `form:"description" json:"description"`
	DueDate     *string `form:"due_date" json:"due_date"`
}

func (s *Server) ListProjects(c *gin.Context) {
	projects, err := repository.New[model.Project](s.DB).All(-1)
	if err != nil {
		badRequest(c)
		return
	}
	okResponse(c, projects, "Projects retrieved successfully")
}

func (s *Server) ShowProject(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, projectNotFoundMsg)
		return
	}
	project, err := repository.New[model.Project](s.DB).Get(id)
	if err != nil {
		respondError(c, err, projectNotFoundMsg)
		return
	}
	okResponse(c, project, "Project retrieved successfully")
}

func (s *Server) CreateProject(c *gin.Context) {
	var req createProjectRequest
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

	project := model.Project{
		Title:       req.Title,
		Description: req.Description,
		Image:       key,
		DueDate:     req.DueDate,
	}
	if err := repository.New[model.Project](s.DB).Create(&project); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, project, "Project created successfully")
}

func (s *Server) UpdateProject(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, projectNotFoundMsg)
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}

	repo := repository.New[model.Project](s.DB)
	project, err := repo.Get(id)
	if err != nil {
		respondError(c, err, projectNotFoundMsg)
		return
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.DueDate != nil {
		project.DueDate = *req.DueDate
	}

	image, err := optionalFormImage(c, "image")
	if err != nil {
		badRequest(c)
		return
	}
	if image != nil {
		key, err := s.Images.Replace(project.Image, image)
		if err != nil {
			badRequest(c)
			return
		}
		project.Image = key
	}

	if err := repo.Save(project); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, project, "Project updated successfully")
}

func (s *Server) DeleteProject(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, projectNotFoundMsg)
		return
	}

	repo := repository.New[model.Project](s.DB)
	project, err := repo.Get(id)
	if err != nil {
		respondError(c, err, projectNotFoundMsg)
		return
	}

	if err := s.Images.Remove(project.Image); err != nil {
		badRequest(c)
		return
	}
	if err := repo.Delete(project); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, project, "Project deleted successfully")
}
