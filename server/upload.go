package server

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"
)

// maxImageBytes is the size class accepted for uploads. Bigger files are
// rejected before they reach the store.
const maxImageBytes = 10 << 20

var errNotAnImage = errors.New("uploaded file is not an image")

// formImage extracts a required image upload from the multipart form.
func formImage(c *gin.Context, field string) (*multipart.FileHeader, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}
	if err := validateImage(file); err != nil {
		return nil, err
	}
	return file, nil
}

// optionalFormImage returns (nil, nil) when the field is absent or the
// request has no multipart body at all, and an error only when a file
// was sent but fails validation.
func optionalFormImage(c *gin.Context, field string) (*multipart.FileHeader, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	if err := validateImage(file); err != nil {
		return nil, err
	}
	return file, nil
}

func validateImage(file *multipart.FileHeader) error {
	if file.Size > maxImageBytes {
		return errNotAnImage
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return errNotAnImage
	}
	return nil
}
