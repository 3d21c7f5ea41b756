package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"

	"github.com/somosmas/ong-api/model"
	"github.com/somosmas/ong-api/repository"
	"github.com/somosmas/ong-api/utils"
)

const userNotFoundMsg = "User not found"

type createUserRequest struct {
	Name      string `form:"name" json:"name" binding:"required"`
	Email     string `form:"email" json:"email" binding:"required,email"`
	Password  string `form:"password" json:"password" binding:"required"`
	Latitude  *int   `form:"latitude" json:"latitude" binding:"omitempty,min=0"`
	Longitude *int   `form:"longitude" json:"longitude" binding:"omitempty,min=0"`
	Address   string `form:"address" json:"address"`
	RoleID    uint   `form:"role_id" json:"role_id" binding:"required,min=1"`
}

type updateUserRequest struct {
	Name      *string `form:"name" json:"name"`
	Email     *string `form:"email" json:"email" binding:"omitempty,email"`
	Password  *string `form:"password" json:"password"`
	Latitude  *int    `form:"latitude" json:"latitude" binding:"omitempty,min=0"`
	Longitude *int    `form:"longitude" json:"longitude" binding:"omitempty,min=0"`
	Address   *string `form:"address" json:"address"`
	RoleID    *uint   `form:"role_id" json:"role_id" binding:"omitempty,min=1"`
}

// roleView strips a role down to what user payloads expose; timestamps
// and the permission join stay internal.
type roleView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type userView struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Latitude     *int       `json:"latitude"`
	Longitude    *int       `json:"longitude"`
	Address      string     `json:"address"`
	ProfileImage string     `json:"profile_image"`
	Roles        []roleView `json:"roles"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func newUserView(u *model.User) userView {
	var view userView
	copier.Copy(&view, u)
	if view.Roles == nil {
		view.Roles = []roleView{}
	}
	return view
}

func newUserViews(users []model.User) []userView {
	views := make([]userView, 0, len(users))
	for i := range users {
		views = append(views, newUserView(&users[i]))
	}
	return views
}

// ListUsers searches name as a substring or email as an exact match,
// capped at ?limit= (default 5).
func (s *Server) ListUsers(c *gin.Context) {
	q := s.DB.Preload("Roles").Limit(limitParam(c))
	if search, ok := c.GetQuery("search"); ok {
		q = q.Where("name LIKE ? OR email = ?", "%"+search+"%", search)
	}

	var users []model.User
	if err := q.Find(&users).Error; err != nil {
		badRequest(c)
		return
	}
	okResponse(c, newUserViews(users), "Users retrieved successfully")
}

func (s *Server) ShowUser(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, userNotFoundMsg)
		return
	}

	user, err := s.getUserWithRoles(id)
	if err != nil {
		respondError(c, err, userNotFoundMsg)
		return
	}
	okResponse(c, newUserView(user), "User retrieved successfully")
}

func (s *Server) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}

	// The unique index on email backs this up; checking first keeps the
	// duplicate case on the same 400 path as other validation failures.
	var count int64
	if err := s.DB.Model(&model.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil || count > 0 {
		badRequest(c)
		return
	}

	role, err := repository.New[model.Role](s.DB).Get(req.RoleID)
	if err != nil {
		respondError(c, err, roleNotFoundMsg)
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
		Address:  req.Address,
		Roles:    []*model.Role{role},
	}
	if req.Latitude != nil {
		user.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		user.Longitude = req.Longitude
	}

	image, err := optionalFormImage(c, "profile_image")
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
		user.ProfileImage = key
	}

	if err := repository.New[model.User](s.DB).Create(&user); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, newUserView(&user), "User created successfully")
}

func (s *Server) UpdateUser(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, userNotFoundMsg)
		return
	}

	var req updateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}

	user, err := s.getUserWithRoles(id)
	if err != nil {
		respondError(c, err, userNotFoundMsg)
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			badRequest(c)
			return
		}
		user.Password = hash
	}
	if req.Latitude != nil {
		user.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		user.Longitude = req.Longitude
	}
	if req.Address != nil {
		user.Address = *req.Address
	}

	image, err := optionalFormImage(c, "profile_image")
	if err != nil {
		badRequest(c)
		return
	}
	if image != nil {
		key, err := s.Images.Replace(user.ProfileImage, image)
		if err != nil {
			badRequest(c)
			return
		}
		user.ProfileImage = key
	}

	if req.RoleID != nil {
		role, err := repository.New[model.Role](s.DB).Get(*req.RoleID)
		if err != nil {
			respondError(c, err, roleNotFoundMsg)
			return
		}
		if err := s.DB.Model(user).Association("Roles").Replace(role); err != nil {
			badRequest(c)
			return
		}
		user.Roles = []*model.Role{role}
	}

	if err := repository.New[model.User](s.DB).Save(user); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, newUserView(user), "User updated successfully")
}

func (s *Server) DeleteUser(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, userNotFoundMsg)
		return
	}

	user, err := s.getUserWithRoles(id)
	if err != nil {
		respondError(c, err, userNotFoundMsg)
		return
	}

	if err := s.Images.Remove(user.ProfileImage); err != nil {
		badRequest(c)
		return
	}
	if err := repository.New[model.User](s.DB).Delete(user); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, newUserView(user), "User deleted successfully")
}

func (s *Server) getUserWithRoles(id uint) (*model.User, error) {
	var user model.User
	if err := s.DB.Preload("Roles").First(&user, id).Error; err != nil {
		return nil, mapRecordError(err)
	}
	return &user, nil
}
