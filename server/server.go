// Package server holds the REST handlers for every resource. Handlers
// hang off a Server value so their dependencies are explicit instead of
// living in package globals.
package server

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/somosmas/ong-api/repository"
	"github.com/somosmas/ong-api/storage"
)

// defaultListLimit caps search-capable list endpoints unless the caller
// passes ?limit= explicitly.
const defaultListLimit = 5

type Server struct {
	DB     *gorm.DB
	Images storage.ImageStore
}

func New(db *gorm.DB, images storage.ImageStore) *Server {
	return &Server{DB: db, Images: images}
}

// idParam parses the :id route segment. A non-numeric id behaves like a
// missing row, the caller turns the error into its own 404.
func idParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}

// limitParam reads ?limit= and passes a parseable value through
// verbatim, so ?limit=0 selects nothing. Absent or garbage values fall
// back to the default cap.
func limitParam(c *gin.Context) int {
	if v, ok := c.GetQuery("limit"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultListLimit
}

// mapRecordError normalizes raw gorm lookups onto the repository error
// taxonomy for handlers that query with Preload instead of Repository.
func mapRecordError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	return err
}

// recordExists runs a foreign-key lookup and writes the target's 404
// when the row is missing. Returns false when the handler should stop.
func (s *Server) recordExists(c *gin.Context, notFoundMsg string, exists func(db *gorm.DB, id uint) (bool, error), id uint) bool {
	ok, err := exists(s.DB, id)
	if err != nil {
		badRequest(c)
		return false
	}
	if !ok {
		notFound(c, notFoundMsg)
		return false
	}
	return true
}
