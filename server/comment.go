package server

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/model"
	"github.com/somosmas/ong-api/repository"
)

const commentNotFoundMsg = "Comment not found"

type createCommentRequest struct {
	Text    string `form:"text" json:"text" binding:"required"`
	Visible *bool  `form:"visible" json:"visible"`
	NewsID  *uint  `form:"news_id" json:"news_id"`
	UserID  *uint  `form:"user_id" json:"user_id"`
}

type updateCommentRequest struct {
	Text    *string `form:"text" json:"text"`
	Visible *bool   `form:"visible" json:"visible"`
	NewsID  *uint   `form:"news_id" json:"news_id"`
	UserID  *uint   `form:"user_id" json:"user_id"`
}

func (s *Server) ListComments(c *gin.Context) {
	comments, err := repository.New[model.Comment](s.DB).All(-1)
	if err != nil {
		badRequest(c)
		return
	}
	okResponse(c, comments, "Comments retrieved successfully")
}

func (s *Server) ShowComment(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, commentNotFoundMsg)
		return
	}
	comment, err := repository.New[model.Comment](s.DB).Get(id)
	if err != nil {
		respondError(c, err, commentNotFoundMsg)
		return
	}
	okResponse(c, comment, "Comment retrieved successfully")
}

func (s *Server) CreateComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}

	comment := model.Comment{Text: req.Text, Visible: true}
	if req.Visible != nil {
		comment.Visible = *req.Visible
	}

	if req.NewsID != nil {
		if ok := s.recordExists(c, newsNotFoundMsg, repository.Exists[model.News], *req.NewsID); !ok {
			return
		}
		comment.NewsID = req.NewsID
	}
	if req.UserID != nil {
		if ok := s.recordExists(c, userNotFoundMsg, repository.Exists[model.User], *req.UserID); !ok {
			return
		}
		comment.UserID = req.UserID
	}

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
		comment.Image = key
	}

	if err := repository.New[model.Comment](s.DB).Create(&comment); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, comment, "Comment created successfully")
}

func (s *Server) UpdateComment(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, commentNotFoundMsg)
		return
	}

	var req updateCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c)
		return
	}

	repo := repository.New[model.Comment](s.DB)
	comment, err := repo.Get(id)
	if err != nil {
		respondError(c, err, commentNotFoundMsg)
		return
	}

	if req.Text != nil {
		comment.Text = *req.Text
	}
	if req.Visible != nil {
		comment.Visible = *req.Visible
	}
	if req.NewsID != nil {
		if ok := s.recordExists(c, newsNotFoundMsg, repository.Exists[model.News], *req.NewsID); !ok {
			return
		}
		comment.NewsID = req.NewsID
	}
	if req.UserID != nil {
		if ok := s.recordExists(c, userNotFoundMsg, repository.Exists[model.User], *req.UserID); !ok {
			return
		}
		comment.UserID = req.UserID
	}

	image, err := optionalFormImage(c, "image")
	if err != nil {
		badRequest(c)
		return
	}
	if image != nil {
		key, err := s.Images.Replace(comment.Image, image)
		if err != nil {
			badRequest(c)
			return
		}
		comment.Image = key
	}

	if err := repo.Save(comment); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, comment, "Comment updated successfully")
}

func (s *Server) DeleteComment(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		notFound(c, commentNotFoundMsg)
		return
	}

	repo := repository.New[model.Comment](s.DB)
	comment, err := repo.Get(id)
	if err != nil {
		respondError(c, err, commentNotFoundMsg)
		return
	}

	if err := s.Images.Remove(comment.Image); err != nil {
		badRequest(c)
		return
	}
	if err := repo.Delete(comment); err != nil {
		badRequest(c)
		return
	}
	okResponse(c, comment, "Comment deleted successfully")
}
