package server

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/model"
	"github.com/somosmas/ong-api/repository"
)

const roleNotFoundMsg = "Role not found"

type updateRoleRequest struct {
	Name string `form:"name" json:"name" binding:"required"`
}

func (s *Server) ListRoles(c *gin.Context) {
	roles, err := repository.New[model.Role](s.DB).All(-1)
	if err != nil {
		badRequest(c)
		return
	}
	okResponse(c, roles, "Roles retrieved successfully")
}

func (s *Server) ShowRole(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, roleNotFoundMsg)
		return
	}
	role, err := repository.New[model.Role](s.DB).Get(id)
	if err != nil {
		respondError(c, err, roleNotFoundMsg)
		return
	}
	okResponse(c, role, "Role retrieved successfully")
}

// UpdateRole renames a role. The router guards this behind the token
// middleware and the roles.update permission.
func (s *Server) UpdateRole(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, roleNotFoundMsg)
		return
	}

	var req updateRoleRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}

	repo := repository.New[model.Role](s.DB)
	role, err := repo.Get(id)
	if err != nil {
		respondError(c, err, roleNotFoundMsg)
		return
	}

	role.Name = req.Name
	if err := repo.Save(role); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, role, "Role updated successfully")
}
