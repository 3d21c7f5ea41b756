package server

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/model"
	"github.com/somosmas/ong-api/repository"
)

const newsNotFoundMsg = "News not found"

type createNewsRequest struct {
	Name       string `form:"name" json:"name" binding:"required"`
	Slug       string `form:"slug" json:"slug"`
	Content    string `form:"content" json:"content" binding:"required"`
	UserID     *uint  `form:"user_id" json:"user_id"`
	CategoryID *uint  `form:"category_id" json:"category_id"`
}

type updateNewsRequest struct {
	Name       *string `form:"name" json:"name"`
	Slug       *string `form:"slug" json:"slug"`
	Content    *string `form:"content" json:"content"`
	UserID     *uint   `form:"user_id" json:"user_id"`
	CategoryID *uint   `form:"category_id" json:"category_id"`
}

// ListNews supports substring search on name plus a category equality
// filter, both optional and combinable, capped at ?limit= (default 5).
func (s *Server) ListNews(c *gin.Context) {
	q := s.DB.Limit(limitParam(c))
	if search, ok := c.GetQuery("search"); ok {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	if category, ok := c.GetQuery("category"); ok {
		q = q.Where("category_id = ?", category)
	}

	var news []model.News
	if err := q.Find(&news).Error; err != nil {
		badRequest(c)
		return
	}
	okResponse(c, news, "News retrieved successfully")
}

func (s *Server) ShowNews(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, newsNotFoundMsg)
		return
	}
	news, err := repository.New[model.News](s.DB).Get(id)
	if err != nil {
		respondError(c, err, newsNotFoundMsg)
		return
	}
	okResponse(c, news, "News retrieved successfully")
}

func (s *Server) CreateNews(c *gin.Context) {
	var req createNewsRequest
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

	news := model.News{
		Name:       req.Name,
		Slug:       req.Slug,
		Content:    req.Content,
		Image:      key,
		UserID:     req.UserID,
		CategoryID: req.CategoryID,
	}
	if err := repository.New[model.News](s.DB).Create(&news); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, news, "News created successfully")
}

func (s *Server) UpdateNews(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, newsNotFoundMsg)
		return
	}

	var req updateNewsRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}

	repo := repository.New[model.News](s.DB)
	news, err := repo.Get(id)
	if err != nil {
		respondError(c, err, newsNotFoundMsg)
		return
	}

	if req.Name != nil {
		news.Name = *req.Name
	}
	if req.Slug != nil {
		news.Slug = *req.Slug
	}
	if req.Content != nil {
		news.Content = *req.Content
	}
	if req.UserID != nil {
		if ok := s.recordExists(c, userNotFoundMsg, repository.Exists[model.User], *req.UserID); !ok {
			return
		}
		news.UserID = req.UserID
	}
	if req.CategoryID != nil {
		if ok := s.recordExists(c, categoryNotFoundMsg, repository.Exists[model.Category], *req.CategoryID); !ok {
			return
		}
		news.CategoryID = req.CategoryID
	}

	image, err := optionalFormImage(c, "image")
	if err != nil {
		badRequest(c)
		return
	}
	if image != nil {
		key, err := s.Images.Replace(news.Image, image)
		if err != nil {
			badRequest(c)
			return
		}
		news.Image = key
	}

	if err := repo.Save(news); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, news, "News updated successfully")
}

func (s *Server) DeleteNews(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, newsNotFoundMsg)
		return
	}

	repo := repository.New[model.News](s.DB)
	news, err := repo.Get(id)
	if err != nil {
		respondError(c, err, newsNotFoundMsg)
		return
	}

	if err := s.Images.Remove(news.Image); err != nil {
		badRequest(c)
		return
	}
	if err := repo.Delete(news); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, news, "News deleted successfully")
}
