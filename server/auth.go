package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/somosmas/ong-api/model"
	"github.com/somosmas/ong-api/repository"
	"github.com/somosmas/ong-api/server/middlewares"
	"github.com/somosmas/ong-api/utils"
)

type registerRequest struct {
	Name                 string `form:"name" json:"name" binding:"required"`
	Email                string `form:"email" json:"email" binding:"required,email"`
	Password             string `form:"password" json:"password" binding:"required"`
	PasswordConfirmation string `form:"password_confirmation" json:"password_confirmation" binding:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

// newToken mints an opaque bearer token. Two uuids stripped of dashes,
// nothing to decode on the client side.
func newToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

// Register creates an account with the standard user role.
func (s *Server) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}

	var count int64
	if err := s.DB.Model(&model.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil || count > 0 {
		badRequest(c)
		return
	}

	role, err := repository.New[model.Role](s.DB).Get(model.UserRoleID)
	if err != nil {
		badRequest(c)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		badRequest(c)
		return
	}

	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Roles:    []*model.Role{role},
	}
	if err := repository.New[model.User](s.DB).Create(&user); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, newUserView(&user), "User registered successfully")
}

// Login checks the credentials and issues a bearer token on match. Any
// mismatch, unknown email included, answers 401 Invalid Credentials so
// account existence is not disclosed.
func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}

	var user model.User
	if err := s.DB.Preload("Roles").Where("email = ?", req.Email).First(&user).Error; err != nil {
		unauthorized(c, "Invalid Credentials")
		return
	}
	if !utils.CheckPassword(user.Password, req.Password) {
		unauthorized(c, "Invalid Credentials")
		return
	}

	access := model.AccessToken{Token: newToken(), UserID: user.ID}
	if err := s.DB.Create(&access).Error; err != nil {
		badRequest(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    newUserView(&user),
		"token":   access.Token,
		"message": "Login successfully",
	})
}

// CurrentUser returns the account behind the presented bearer token.
// Runs after the token middleware, which stashed the user id.
func (s *Server) CurrentUser(c *gin.Context) {
	userID := c.GetUint(middlewares.UserIDKey)

	user, err := s.getUserWithRoles(userID)
	if err != nil {
		respondError(c, err, userNotFoundMsg)
		return
	}
	c.JSON(http.StatusOK, newUserView(user))
}
