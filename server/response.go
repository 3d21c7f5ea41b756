package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/repository"
)

// Every response goes through one of these helpers so the envelope shape
// stays uniform: {success, data, message} on the happy path and
// {success, error} on failures.

func okResponse(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "message": message})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": message})
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Bad request"})
}

func unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": message})
}

// respondError maps a repository error onto the envelope taxonomy:
// missing rows turn into the resource-specific 404, everything else into
// the generic 400.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, notFoundMsg)
		return
	}
	badRequest(c)
}
